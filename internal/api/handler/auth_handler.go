package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"learnpath_backend/internal/app/service"
	"learnpath_backend/internal/common"
	"learnpath_backend/internal/common/security"
)

// sessionCookieName is where the signed session token lives. jwtauth's
// Verifier looks the token up under this cookie name.
const sessionCookieName = "jwt"

type AuthHandler struct {
	authService *service.AuthService
	sessionExp  time.Duration
}

func NewAuthHandler(authService *service.AuthService, sessionExp time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionExp: sessionExp}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
	r.Get("/logout", h.logout)
}

// Signup and login are form posts from the auth page. Success redirects to
// the courses view; auth-level failures render back into the form as a 200
// with an error flag rather than a 4xx.
func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	req := service.SignupRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	result, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			common.RespondWithJSON(w, http.StatusOK, common.ErrorResponse{Error: "Email already registered.", Form: "signup"})
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	h.setSessionCookie(w, result.Token)
	http.Redirect(w, r, "/courses", http.StatusSeeOther)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	req := service.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			common.RespondWithJSON(w, http.StatusOK, common.ErrorResponse{Error: "Invalid email or password.", Form: "login"})
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	h.setSessionCookie(w, result.Token)
	http.Redirect(w, r, "/courses", http.StatusSeeOther)
}

// logout revokes the session server-side and clears the cookie. It succeeds
// regardless of whether a valid session was attached.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if token, claims, err := jwtauth.FromContext(r.Context()); err == nil && token != nil {
		if sessionID, err := security.GetSessionIDFromClaims(claims); err == nil {
			_ = h.authService.Logout(r.Context(), sessionID)
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionExp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
