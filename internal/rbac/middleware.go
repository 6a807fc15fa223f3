package rbac

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/hafiztri/comic-shelf/internal"
)

// Authorizer resolves a set of role ids to the permission names they grant.
type Authorizer interface {
	PermissionSetForRoles(roleIDs []int64) (map[string]bool, error)
}

type Authorization struct {
	authorizer Authorizer
	logger     *slog.Logger
}

func NewAuthorization(authorizer Authorizer, logger *slog.Logger) *Authorization {
	return &Authorization{
		authorizer: authorizer,
		logger:     logger,
	}
}

// Require returns a middleware that passes only when the identity's roles
// grant every named permission. It must run after the authentication
// middleware; a missing identity is a route wiring bug and answers 401. A
// user with no roles is denied even for an empty requirement list.
func (a *Authorization) Require(permissions ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := internal.IdentityFromContext(r.Context())
			if !ok {
				a.logger.Warn("authorization check without identity in context", "path", r.URL.Path)
				writeMessage(w, http.StatusUnauthorized, "Authentication required. No user information found.")
				return
			}

			if len(identity.RoleIDs) == 0 {
				a.logger.Warn("access denied: no roles assigned", "user_id", identity.UserID)
				writeMessage(w, http.StatusForbidden, "Access denied. No roles assigned.")
				return
			}

			held, err := a.authorizer.PermissionSetForRoles(identity.RoleIDs)
			if err != nil {
				a.logger.Error("permission resolution failed", "user_id", identity.UserID, "error", err)
				writeMessage(w, http.StatusInternalServerError, "Error checking permissions")
				return
			}

			missing := false
			for _, required := range permissions {
				if !held[required] {
					missing = true
					break
				}
			}

			if missing {
				has := make([]string, 0, len(held))
				for name := range held {
					has = append(has, name)
				}
				sort.Strings(has)

				a.logger.Warn("access denied: insufficient permissions",
					"user_id", identity.UserID,
					"required", permissions,
					"has", has)

				// The caller is already authenticated and identified, so
				// disclosing both sets is acceptable here.
				writeBody(w, http.StatusForbidden, map[string]interface{}{
					"message":  "Access denied. Insufficient permissions.",
					"required": permissions,
					"has":      has,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeBody(w, status, map[string]interface{}{"message": message})
}

func writeBody(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
