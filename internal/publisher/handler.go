package publisher

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hafiztri/comic-shelf/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Publisher, error)
	GetByID(id int64) (*Publisher, error)
	Create(dto PublisherDTO) (*Publisher, error)
	Update(id int64, dto PublisherDTO) (*Publisher, error)
	Delete(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetPublishers(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.Service.GetAll()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to get publishers")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"publishers": publishers})
}

func (h *Handler) GetPublisher(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid publisher id")
		return
	}

	p, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetPublisher: lookup failed", "publisher_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get publisher")
		return
	}
	if p == nil {
		h.WriteError(w, http.StatusNotFound, "publisher not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) CreatePublisher(w http.ResponseWriter, r *http.Request) {
	var dto PublisherDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.Create(dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("CreatePublisher: create failed", "error", err)
		h.WriteError(w, http.StatusConflict, "publisher already exists")
		return
	}
	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) UpdatePublisher(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid publisher id")
		return
	}

	var dto PublisherDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.Update(id, dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("UpdatePublisher: update failed", "publisher_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to update publisher")
		return
	}
	if p == nil {
		h.WriteError(w, http.StatusNotFound, "publisher not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) DeletePublisher(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid publisher id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeletePublisher: delete failed", "publisher_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete publisher")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
