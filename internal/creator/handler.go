package creator

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hafiztri/comic-shelf/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Creator, error)
	GetByID(id int64) (*Creator, error)
	Create(dto CreatorDTO) (*Creator, error)
	Update(id int64, dto CreatorDTO) (*Creator, error)
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

func (h *Handler) GetCreators(w http.ResponseWriter, r *http.Request) {
	creators, err := h.Service.GetAll()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to get creators")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"creators": creators})
}

func (h *Handler) GetCreator(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid creator id")
		return
	}

	c, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetCreator: lookup failed", "creator_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get creator")
		return
	}
	if c == nil {
		h.WriteError(w, http.StatusNotFound, "creator not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) CreateCreator(w http.ResponseWriter, r *http.Request) {
	var dto CreatorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.Create(dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("CreateCreator: create failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to create creator")
		return
	}
	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) UpdateCreator(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid creator id")
		return
	}

	var dto CreatorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.Update(id, dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("UpdateCreator: update failed", "creator_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to update creator")
		return
	}
	if c == nil {
		h.WriteError(w, http.StatusNotFound, "creator not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteCreator(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid creator id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteCreator: delete failed", "creator_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete creator")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
