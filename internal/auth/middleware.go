package auth

import (
	"net/http"

	"github.com/hafiztri/comic-shelf/internal"
)

// extractToken returns the bearer token from the Authorization header, or
// from the access_token cookie when the header is absent.
func (h *Handler) extractToken(r *http.Request) string {
	if token := h.ExtractTokenFromHeader(r); token != "" {
		return token
	}
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func (h *Handler) resolveIdentity(r *http.Request) (*internal.Identity, error) {
	token := h.extractToken(r)
	if token == "" {
		return nil, nil
	}

	claims, err := h.Service.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	return h.Service.GetIdentity(claims.UserID)
}

// AuthMiddleware rejects requests without a valid token and attaches the
// verified identity to the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.extractToken(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		identity, err := h.Service.GetIdentity(claims.UserID)
		if err != nil {
			h.Logger.Error("auth middleware: failed to resolve identity", "user_id", claims.UserID, "error", err)
			h.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := internal.ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware attaches an identity when a valid token is present
// and otherwise lets the request through anonymously, for public routes that
// personalize output for signed-in callers.
func (h *Handler) OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.resolveIdentity(r)
		if err != nil || identity == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := internal.ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
