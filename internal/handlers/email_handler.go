package handlers

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/tuningapp/notification-service/internal/mailer"
)

// EmailHandler handles the email relay endpoints
type EmailHandler struct {
	mailer mailer.Mailer
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(m mailer.Mailer) *EmailHandler {
	return &EmailHandler{mailer: m}
}

// RegisterEmailRoutes registers email routes
func (h *EmailHandler) RegisterEmailRoutes(g *echo.Group) {
	g.POST("/emails/password-reset", h.SendPasswordReset)
	g.POST("/emails/test", h.SendTest)
}

// PasswordResetEmailRequest defines the request body for the password reset email
type PasswordResetEmailRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Code    string `json:"code" validate:"required"`
	Subject string `json:"subject,omitempty"`
}

// SendPasswordReset sends the password reset code email over the SMTP relay.
func (h *EmailHandler) SendPasswordReset(c echo.Context) error {
	var req PasswordResetEmailRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg := mailer.PasswordResetEmail(req.Email, req.Code, req.Subject)
	if err := h.mailer.Send(c.Request().Context(), msg); err != nil {
		log.Printf("password reset email to %s failed: %v", req.Email, err)
		return c.JSON(http.StatusBadGateway, echo.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Email could not be sent",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Email sent successfully",
	})
}

// TestEmailRequest defines the request body for the test email
type TestEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SendTest sends a connectivity test email.
func (h *EmailHandler) SendTest(c echo.Context) error {
	var req TestEmailRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.mailer.Send(c.Request().Context(), mailer.TestEmail(req.Email)); err != nil {
		log.Printf("test email to %s failed: %v", req.Email, err)
		return c.JSON(http.StatusBadGateway, echo.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Test email could not be sent",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Test email sent",
	})
}
