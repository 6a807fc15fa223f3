package edition

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
	"github.com/hafiztri/comic-shelf/internal/transport"
)

type ServiceAPI interface {
	GetAll(format string) ([]*Edition, error)
	GetByID(id int64) (*Edition, error)
	Create(dto EditionDTO) (*Edition, error)
	Update(id int64, dto EditionDTO) (*Edition, error)
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

func (h *Handler) GetEditions(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && !ValidFormat(format) {
		h.WriteError(w, http.StatusBadRequest, "format must be omnibus or tpb")
		return
	}
	h.listEditions(w, format)
}

// GetOmnibuses and GetTradePaperbacks back the /omnibuses and
// /trade-paperbacks routes, which are fixed-format views of /editions.
func (h *Handler) GetOmnibuses(w http.ResponseWriter, r *http.Request) {
	h.listEditions(w, catalogDatamodel.EditionFormatOmnibus)
}

func (h *Handler) GetTradePaperbacks(w http.ResponseWriter, r *http.Request) {
	h.listEditions(w, catalogDatamodel.EditionFormatTPB)
}

func (h *Handler) listEditions(w http.ResponseWriter, format string) {
	editions, err := h.Service.GetAll(format)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "failed to get editions")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"editions": editions})
}

func (h *Handler) GetEdition(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid edition id")
		return
	}

	e, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetEdition: lookup failed", "edition_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get edition")
		return
	}
	if e == nil {
		h.WriteError(w, http.StatusNotFound, "edition not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) CreateEdition(w http.ResponseWriter, r *http.Request) {
	var dto EditionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Create(dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("CreateEdition: create failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to create edition")
		return
	}
	h.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) UpdateEdition(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid edition id")
		return
	}

	var dto EditionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Update(id, dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("UpdateEdition: update failed", "edition_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to update edition")
		return
	}
	if e == nil {
		h.WriteError(w, http.StatusNotFound, "edition not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) DeleteEdition(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid edition id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteEdition: delete failed", "edition_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete edition")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
