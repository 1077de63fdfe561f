package http

import (
	"net/http"

	"github.com/L-alam/amongyall-sub001/internal/core/ports"
)

type AuthHandler struct {
	authService    ports.AuthService
	redirectURL    string
	cookieDomain   string
	cookieSameSite http.SameSite
}

func NewAuthHandler(authService ports.AuthService, redirectURL string, cookieDomain string, cookieSameSite http.SameSite) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		redirectURL:    redirectURL,
		cookieDomain:   cookieDomain,
		cookieSameSite: cookieSameSite,
	}
}

type anonymousLoginRequest struct {
	DisplayName string `json:"display_name"`
}

// tokenResponse is returned to clients that cannot keep cookies, such as the
// mobile app. They send the access token back as a Bearer header.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Anonymous godoc
// @Summary      Signs in without an account
// @Description  Creates an anonymous user and returns its tokens, also set as cookies.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201
// @Router       /oauth/anonymous [post]
func (h *AuthHandler) Anonymous(w http.ResponseWriter, r *http.Request) {
	var req anonymousLoginRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	accessToken, refreshToken, err := h.authService.LoginAnonymously(r.Context(), req.DisplayName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setAccessTokenCookie(w, accessToken)
	h.setRefreshTokenCookie(w, refreshToken)
	writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	credential := r.FormValue("credential")
	if credential == "" {
		writeMessage(w, http.StatusBadRequest, "Missing credential")
		return
	}

	accessToken, refreshToken, err := h.authService.LoginWithGoogle(r.Context(), credential)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	h.setAccessTokenCookie(w, accessToken)
	h.setRefreshTokenCookie(w, refreshToken)

	if h.redirectURL == "" {
		writeJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken, RefreshToken: refreshToken})
		return
	}
	http.Redirect(w, r, h.redirectURL, http.StatusSeeOther)
}

// Refresh godoc
// @Summary      Refreshes the authenticated user's access token
// @Description  Creates a new access token cookie based on the refresh token. This cookie is used as authentication for `/api` calls.
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      401
// @Router       /oauth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := refreshTokenFrom(r)
	if refreshToken == "" {
		writeMessage(w, http.StatusUnauthorized, "Missing refresh token")
		return
	}

	accessToken, newRefreshToken, err := h.authService.RefreshAccessToken(r.Context(), refreshToken)
	if err != nil {
		h.expireCookies(w)
		writeMessage(w, http.StatusUnauthorized, "Refresh failed")
		return
	}

	h.setAccessTokenCookie(w, accessToken)
	if newRefreshToken != "" && newRefreshToken != refreshToken {
		h.setRefreshTokenCookie(w, newRefreshToken)
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken, RefreshToken: newRefreshToken})
}

// Logout godoc
// @Summary      Logs the authenticated user out
// @Description  Revokes the refresh token and clears both cookies
// @Tags         auth
// @Accept       json
// @Success      200
// @Router       /oauth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if refreshToken := refreshTokenFrom(r); refreshToken != "" {
		_ = h.authService.Logout(r.Context(), refreshToken)
	}

	h.expireCookies(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// refreshTokenFrom prefers the cookie and falls back to the X-Refresh-Token header.
func refreshTokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get("X-Refresh-Token")
}

func (h *AuthHandler) setAccessTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   true,
		SameSite: h.cookieSameSite,
		MaxAge:   15 * 60, // 15 minutes
	})
}

func (h *AuthHandler) setRefreshTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   true,
		SameSite: h.cookieSameSite,
		MaxAge:   7 * 24 * 60 * 60, // 7 days
	})
}

func (h *AuthHandler) expireCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: "access_token", MaxAge: -1, Path: "/", Domain: h.cookieDomain})
	http.SetCookie(w, &http.Cookie{Name: "refresh_token", MaxAge: -1, Path: "/", Domain: h.cookieDomain})
}
