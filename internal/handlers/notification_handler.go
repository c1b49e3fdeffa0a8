package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tuningapp/notification-service/internal/dispatch"
	"github.com/tuningapp/notification-service/internal/models"
)

// NotificationSender is the synchronous send surface of the dispatcher,
// satisfied by *dispatch.Orchestrator.
type NotificationSender interface {
	SendDirect(ctx context.Context, req *models.SendNotificationRequest) (string, error)
	SendToTopic(ctx context.Context, req *models.SendTopicRequest) (string, error)
}

// NotificationHandler handles the direct notification send endpoints
type NotificationHandler struct {
	sender NotificationSender
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(sender NotificationSender) *NotificationHandler {
	return &NotificationHandler{sender: sender}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.POST("/notifications/send", h.Send)
	g.POST("/notifications/topic", h.SendToTopic)
}

// Send delivers one notification to a token or a named user.
func (h *NotificationHandler) Send(c echo.Context) error {
	var req models.SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	messageID, err := h.sender.SendDirect(c.Request().Context(), &req)
	if err != nil {
		return dispatchErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.SendNotificationResponse{
		Success:   true,
		MessageID: messageID,
	})
}

// SendToTopic delivers one notification to a topic.
func (h *NotificationHandler) SendToTopic(c echo.Context) error {
	var req models.SendTopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	messageID, err := h.sender.SendToTopic(c.Request().Context(), &req)
	if err != nil {
		return dispatchErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.SendNotificationResponse{
		Success:   true,
		MessageID: messageID,
	})
}

// dispatchErrorResponse maps the dispatcher's classified errors onto HTTP.
func dispatchErrorResponse(c echo.Context, err error) error {
	var dispatchErr *dispatch.DispatchError
	if !errors.As(err, &dispatchErr) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	httpStatus := http.StatusInternalServerError
	switch dispatchErr.Code {
	case dispatch.CodeInvalidArgument:
		httpStatus = http.StatusBadRequest
	case dispatch.CodeNotFound:
		httpStatus = http.StatusNotFound
	}

	return c.JSON(httpStatus, echo.Map{
		"success": false,
		"code":    dispatchErr.Code,
		"error":   dispatchErr.Message,
	})
}
