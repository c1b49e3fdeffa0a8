package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tuningapp/notification-service/internal/repositories"
)

// DispatchLogHandler exposes the dispatch audit log for the admin panel
type DispatchLogHandler struct {
	logRepository repositories.DispatchLogRepository
}

// NewDispatchLogHandler creates a new DispatchLogHandler
func NewDispatchLogHandler(logRepo repositories.DispatchLogRepository) *DispatchLogHandler {
	return &DispatchLogHandler{logRepository: logRepo}
}

// RegisterDispatchLogRoutes registers dispatch log routes
func (h *DispatchLogHandler) RegisterDispatchLogRoutes(g *echo.Group) {
	g.GET("/dispatch-logs", h.GetRecent)
	g.GET("/dispatch-logs/record/:recordId", h.GetByRecord)
}

// GetRecent returns the most recent dispatch log entries.
func (h *DispatchLogHandler) GetRecent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	logs, err := h.logRepository.GetRecent(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"logs": logs}})
}

// GetByRecord returns the dispatch log entries for one queue record.
func (h *DispatchLogHandler) GetByRecord(c echo.Context) error {
	recordID := c.Param("recordId")
	if recordID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Record ID is required")
	}

	logs, err := h.logRepository.GetByRecordID(recordID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"logs": logs}})
}
