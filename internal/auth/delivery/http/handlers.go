package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"assistente-agenda/internal/assistant"
	"assistente-agenda/internal/auth"
	"assistente-agenda/pkg/response"
)

// Google godoc
// @Summary     Start Google sign-in
// @Description Redirects the browser to the Google consent screen.
// @Tags        Auth
// @Success     302
// @Failure     503 {object} response.Resp "Sign-in not configured"
// @Router      /auth/google [GET]
func (h *handler) Google(c *gin.Context) {
	ctx := c.Request.Context()

	authURL, state, err := h.mgr.BeginLogin(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrOAuthNotConfigured) {
			response.Fail(c, http.StatusServiceUnavailable, msgNotConfigured, nil)
			return
		}
		h.l.Errorf(ctx, "internal.auth.http.Google: %v", err)
		response.InternalError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, authURL)
}

// Callback godoc
// @Summary     Google sign-in callback
// @Description Exchanges the authorization code, creates a session and redirects to the UI.
// @Tags        Auth
// @Param       state query string true "OAuth state"
// @Param       code  query string true "Authorization code"
// @Success     302
// @Router      /auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	state := c.Query("state")
	cookieState, _ := c.Cookie(stateCookieName)
	c.SetCookie(stateCookieName, "", -1, "/", "", h.cookie.Secure, true)

	if state == "" || state != cookieState {
		h.l.Warnf(ctx, "internal.auth.http.Callback: state mismatch")
		c.Redirect(http.StatusFound, redirectLoginFailed)
		return
	}
	if errParam := c.Query("error"); errParam != "" {
		h.l.Warnf(ctx, "internal.auth.http.Callback: consent denied: %s", errParam)
		c.Redirect(http.StatusFound, redirectLoginFailed)
		return
	}

	sess, err := h.mgr.CompleteLogin(ctx, state, c.Query("code"))
	if err != nil {
		h.l.Errorf(ctx, "internal.auth.http.Callback: %v", err)
		c.Redirect(http.StatusFound, redirectLoginFailed)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, sess.ID, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, redirectAfterLogin)
}

// Status godoc
// @Summary     Connection status
// @Description Reports whether the browser has a live Google Calendar session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /auth/status [GET]
func (h *handler) Status(c *gin.Context) {
	sess, err := h.mgr.Session(c.Request.Context(), h.sessionID(c))
	if err != nil {
		response.OK(c, statusResp{Connected: false, Message: msgNotConnected})
		return
	}
	response.OK(c, statusResp{
		Connected: true,
		Email:     sess.Email,
		Name:      sess.Name,
		Method:    "oauth",
	})
}

// Login godoc
// @Summary     Begin sign-in
// @Description Tells the UI where to send the browser to connect Google Calendar.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} loginResp
// @Router      /auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	if !h.mgr.Enabled() {
		response.OK(c, loginResp{Success: false, Message: msgNotConfigured})
		return
	}
	response.OK(c, loginResp{
		Success:         true,
		RedirectToOAuth: true,
		URL:             loginPath,
		Message:         msgRedirecting,
	})
}

// Logout godoc
// @Summary     Sign out
// @Description Drops the server-side session and clears the cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} logoutResp
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.mgr.Logout(c.Request.Context(), h.sessionID(c))
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	response.OK(c, logoutResp{Success: true, Message: msgDisconnected})
}

func (h *handler) Credentials(c *gin.Context) assistant.CredentialProvider {
	return h.mgr.Credentials(h.sessionID(c))
}

func (h *handler) sessionID(c *gin.Context) string {
	id, err := c.Cookie(h.cookie.Name)
	if err != nil {
		return ""
	}
	return id
}
