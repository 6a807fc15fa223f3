package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/hafiztri/comic-shelf/internal/transport"
	"github.com/hafiztri/comic-shelf/pkg/logger"
)

// resetRequestMessage is deliberately identical whether or not the account
// exists, to prevent account enumeration.
const resetRequestMessage = "If an account with that email exists, a password reset link has been sent."

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI

	cookieSecure bool
	cookieMaxAge time.Duration
}

func NewHandler(svc ServiceAPI, cookieSecure bool, cookieMaxAge time.Duration) *Handler {
	lg := logger.Default()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler:  transport.NewBaseHandler(lg),
		Service:      svc,
		cookieSecure: cookieSecure,
		cookieMaxAge: cookieMaxAge,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Register(dto); err != nil {
		switch err {
		case ErrEmailTaken, ErrUsernameTaken:
			h.WriteError(w, http.StatusConflict, err.Error())
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.Logger.Error("registration failed", "error", err)
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]string{"message": "account created"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.Service.Login(dto)
	if err != nil {
		switch err {
		case ErrUserNotFound, ErrIncorrectPassword:
			h.WriteError(w, http.StatusUnauthorized, err.Error())
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.Logger.Error("login failed", "error", err)
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "login successful",
		"token":   token,
	})
}

func (h *Handler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var dto ResetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.RequestPasswordReset(r.Context(), dto); err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("password reset request failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": resetRequestMessage})
}

func (h *Handler) RedeemPasswordReset(w http.ResponseWriter, r *http.Request) {
	rawToken := chi.URLParam(r, "token")

	var dto ResetRedeemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.RedeemPasswordReset(rawToken, dto.Password); err != nil {
		if err == ErrInvalidResetToken {
			h.WriteError(w, http.StatusBadRequest, "Invalid or expired password reset token.")
			return
		}
		h.Logger.Error("password reset redeem failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
