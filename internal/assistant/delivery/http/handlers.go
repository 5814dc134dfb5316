package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assistente-agenda/internal/assistant"
	"assistente-agenda/pkg/response"
)

// SendMessage godoc
// @Summary     Send a message to the assistant
// @Description Interprets the text and either schedules an event in Google Calendar or replies conversationally.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "User message"
// @Success     200  {object} messageResp
// @Failure     400  {object} response.Resp "Empty message"
// @Failure     429  {object} response.Resp "Too many requests"
// @Router      /api/v1/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.assistant.http.SendMessage: bind: %v", err)
		response.Error(c, errInvalidBody, nil)
		return
	}

	out := h.uc.Handle(ctx, req.toInput(h.creds.Credentials(c)))
	if out.Kind == assistant.ReplyEmptyInput {
		response.Fail(c, http.StatusBadRequest, out.Reply, newMessageResp(out))
		return
	}

	h.l.Infof(ctx, "internal.assistant.http.SendMessage: kind=%s strategy=%s", out.Kind, out.Strategy)
	response.OK(c, newMessageResp(out))
}

// Upcoming godoc
// @Summary     List upcoming events
// @Description Returns the caller's events for the next days (default 7).
// @Tags        Assistant
// @Produce     json
// @Param       days query int false "Days ahead (1-31, default 7)"
// @Success     200 {object} upcomingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Not signed in"
// @Failure     502 {object} response.Resp "Calendar unavailable"
// @Router      /api/v1/events/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpcomingReq(c)
	if err != nil {
		response.Error(c, errInvalidQuery, nil)
		return
	}

	out, err := h.uc.Upcoming(ctx, req.toInput(h.creds.Credentials(c)))
	if err != nil {
		h.l.Errorf(ctx, "internal.assistant.http.Upcoming: %v", err)
		status, msg := h.mapError(err)
		response.Fail(c, status, msg, nil)
		return
	}

	response.OK(c, newUpcomingResp(out))
}
