// internal/handlers/http/auth_handler.go
package http

import (
	"net/http"

	"alphawell/internal/middleware"
	"alphawell/internal/services"
	"alphawell/internal/util"
)

type AuthHandler struct {
	Svc     *services.AuthService
	Metrics *Metrics
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	Refresh string `json:"refresh"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in services.SignupInput
	if err := decodeJSON(w, r, &in); err != nil {
		util.WriteError(w, err)
		return
	}
	s, err := h.Svc.Signup(r.Context(), in)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, s)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginReq
	if err := decodeJSON(w, r, &in); err != nil {
		util.WriteError(w, err)
		return
	}
	s, err := h.Svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		if h.Metrics != nil && util.StatusOf(err) == http.StatusUnauthorized {
			h.Metrics.ObserveLoginFailure()
		}
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, s)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshReq
	if err := decodeJSON(w, r, &in); err != nil {
		util.WriteError(w, err)
		return
	}
	pair, err := h.Svc.Refresh(r.Context(), in.Refresh)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, pair)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var in refreshReq
	if err := decodeJSON(w, r, &in); err != nil {
		util.WriteError(w, err)
		return
	}
	if err := h.Svc.Logout(r.Context(), in.Refresh); err != nil {
		util.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me butuh middleware.JWTAuth di depannya.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		util.WriteError(w, util.Unauthorized("missing token"))
		return
	}
	u, err := h.Svc.Me(r.Context(), p.UserID)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, u)
}
