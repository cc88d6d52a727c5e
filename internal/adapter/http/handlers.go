package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"welfare-backend/internal/usecase/report"
)

type Handler struct{ reports *report.Usecase }

func NewHandler(reports *report.Usecase) *Handler { return &Handler{reports: reports} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handler) Dashboard(c echo.Context) error {
	stats, err := h.reports.Dashboard(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
