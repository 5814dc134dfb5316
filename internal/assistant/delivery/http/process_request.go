package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processMessageReq binds the message body. An empty body reads as empty text.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpcomingReq(c *gin.Context) (upcomingReq, error) {
	var req upcomingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
