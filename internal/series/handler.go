package series

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hafiztri/comic-shelf/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Series, error)
	GetByID(id int64) (*Series, error)
	Create(dto SeriesDTO) (*Series, error)
	Update(id int64, dto SeriesDTO) (*Series, error)
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

func (h *Handler) GetAllSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.Service.GetAll()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to get series")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"series": series})
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid series id")
		return
	}

	s, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetSeries: lookup failed", "series_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get series")
		return
	}
	if s == nil {
		h.WriteError(w, http.StatusNotFound, "series not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, s)
}

func (h *Handler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	var dto SeriesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.Service.Create(dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("CreateSeries: create failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to create series")
		return
	}
	h.WriteJSON(w, http.StatusCreated, s)
}

func (h *Handler) UpdateSeries(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid series id")
		return
	}

	var dto SeriesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.Service.Update(id, dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("UpdateSeries: update failed", "series_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to update series")
		return
	}
	if s == nil {
		h.WriteError(w, http.StatusNotFound, "series not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, s)
}

func (h *Handler) DeleteSeries(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid series id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteSeries: delete failed", "series_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete series")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
