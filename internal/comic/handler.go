package comic

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hafiztri/comic-shelf/internal/transport"
)

type ServiceAPI interface {
	GetAll(filter Filter) ([]*Comic, error)
	GetByID(id int64) (*Comic, error)
	Create(dto ComicDTO) (*Comic, error)
	Update(id int64, dto ComicDTO) (*Comic, error)
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

func (h *Handler) GetComics(w http.ResponseWriter, r *http.Request) {
	var filter Filter
	if v := r.URL.Query().Get("series_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.SeriesID = id
		}
	}
	if v := r.URL.Query().Get("publisher_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.PublisherID = id
		}
	}

	comics, err := h.Service.GetAll(filter)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to get comics")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"comics": comics})
}

func (h *Handler) GetComic(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid comic id")
		return
	}

	c, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetComic: lookup failed", "comic_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get comic")
		return
	}
	if c == nil {
		h.WriteError(w, http.StatusNotFound, "comic not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) CreateComic(w http.ResponseWriter, r *http.Request) {
	var dto ComicDTO
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
		h.Logger.Error("CreateComic: create failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to create comic")
		return
	}
	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) UpdateComic(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid comic id")
		return
	}

	var dto ComicDTO
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
		h.Logger.Error("UpdateComic: update failed", "comic_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to update comic")
		return
	}
	if c == nil {
		h.WriteError(w, http.StatusNotFound, "comic not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteComic(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid comic id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteComic: delete failed", "comic_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete comic")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
