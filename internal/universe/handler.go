package universe

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hafiztri/comic-shelf/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Universe, error)
	GetByID(id int64) (*Universe, error)
	Create(dto UniverseDTO) (*Universe, error)
	Update(id int64, dto UniverseDTO) (*Universe, error)
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

func (h *Handler) GetUniverses(w http.ResponseWriter, r *http.Request) {
	universes, err := h.Service.GetAll()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to get universes")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"universes": universes})
}

func (h *Handler) GetUniverse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid universe id")
		return
	}

	u, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetUniverse: lookup failed", "universe_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get universe")
		return
	}
	if u == nil {
		h.WriteError(w, http.StatusNotFound, "universe not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) CreateUniverse(w http.ResponseWriter, r *http.Request) {
	var dto UniverseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Create(dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("CreateUniverse: create failed", "error", err)
		h.WriteError(w, http.StatusConflict, "universe already exists")
		return
	}
	h.WriteJSON(w, http.StatusCreated, u)
}

func (h *Handler) UpdateUniverse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid universe id")
		return
	}

	var dto UniverseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Update(id, dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("UpdateUniverse: update failed", "universe_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to update universe")
		return
	}
	if u == nil {
		h.WriteError(w, http.StatusNotFound, "universe not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) DeleteUniverse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid universe id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteUniverse: delete failed", "universe_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete universe")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
