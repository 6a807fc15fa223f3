package rbac

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hafiztri/comic-shelf/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(baseHandler *transport.BaseHandler, service *Service) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func (h *Handler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Service.GetAllRoles()
	if err != nil {
		h.Logger.Error("GetRoles: failed to list roles", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get roles")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"roles": roles})
}

func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	role, err := h.Service.GetRole(id)
	if err != nil {
		h.Logger.Error("GetRole: lookup failed", "role_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get role")
		return
	}
	if role == nil {
		h.WriteError(w, http.StatusNotFound, "role not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, role)
}

func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var dto RoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := h.Service.CreateRole(dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("CreateRole: create failed", "error", err)
		h.WriteError(w, http.StatusConflict, "role already exists")
		return
	}
	h.WriteJSON(w, http.StatusCreated, role)
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	var dto RoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := h.Service.UpdateRole(id, dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("UpdateRole: update failed", "role_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to update role")
		return
	}
	if role == nil {
		h.WriteError(w, http.StatusNotFound, "role not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, role)
}

func (h *Handler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	if err := h.Service.DeleteRole(id); err != nil {
		h.Logger.Error("DeleteRole: delete failed", "role_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete role")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.Service.GetAllPermissions()
	if err != nil {
		h.Logger.Error("GetPermissions: failed to list permissions", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get permissions")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"permissions": perms})
}

func (h *Handler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	var dto PermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	perm, err := h.Service.CreatePermission(dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("CreatePermission: create failed", "error", err)
		h.WriteError(w, http.StatusConflict, "permission already exists")
		return
	}
	h.WriteJSON(w, http.StatusCreated, perm)
}

func (h *Handler) DeletePermission(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid permission id")
		return
	}

	if err := h.Service.DeletePermission(id); err != nil {
		h.Logger.Error("DeletePermission: delete failed", "permission_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete permission")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GrantPermission(w http.ResponseWriter, r *http.Request) {
	roleID, ok := h.pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}
	permID, ok := h.pathID(r, "permID")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid permission id")
		return
	}

	if err := h.Service.GrantPermission(roleID, permID); err != nil {
		switch err {
		case ErrRoleNotFound, ErrPermissionNotFound:
			h.WriteError(w, http.StatusNotFound, err.Error())
		default:
			h.Logger.Error("GrantPermission: grant failed", "role_id", roleID, "permission_id", permID, "error", err)
			h.WriteError(w, http.StatusInternalServerError, "failed to grant permission")
		}
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "permission granted"})
}

func (h *Handler) RevokePermission(w http.ResponseWriter, r *http.Request) {
	roleID, ok := h.pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}
	permID, ok := h.pathID(r, "permID")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid permission id")
		return
	}

	if err := h.Service.RevokePermission(roleID, permID); err != nil {
		h.Logger.Error("RevokePermission: revoke failed", "role_id", roleID, "permission_id", permID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to revoke permission")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AssignRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	roleID, ok := h.pathID(r, "roleID")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	if err := h.Service.AssignRole(userID, roleID); err != nil {
		switch err {
		case ErrRoleNotFound:
			h.WriteError(w, http.StatusNotFound, err.Error())
		default:
			h.Logger.Error("AssignRole: assign failed", "user_id", userID, "role_id", roleID, "error", err)
			h.WriteError(w, http.StatusInternalServerError, "failed to assign role")
		}
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "role assigned"})
}

func (h *Handler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	roleID, ok := h.pathID(r, "roleID")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	if err := h.Service.RemoveRole(userID, roleID); err != nil {
		h.Logger.Error("RemoveRole: remove failed", "user_id", userID, "role_id", roleID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to remove role")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
