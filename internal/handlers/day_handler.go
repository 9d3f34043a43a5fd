package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/gravadigital/turnier-api/internal/domain/schedule"
	"github.com/gravadigital/turnier-api/internal/export"
	"github.com/gravadigital/turnier-api/internal/logger"
	"github.com/gravadigital/turnier-api/internal/middleware/requestlog"
	"github.com/gravadigital/turnier-api/internal/response"
	"github.com/gravadigital/turnier-api/internal/services"
)

type DayHandler struct {
	service *services.TournamentService
	log     *log.Logger
}

func NewDayHandler(service *services.TournamentService) *DayHandler {
	return &DayHandler{service: service, log: logger.Handler("day")}
}

// GetDays handles GET /api/days
func (h *DayHandler) GetDays(c *gin.Context) {
	days, err := h.service.SimpleDays()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "", days)
}

// CreateDay handles POST /api/days
func (h *DayHandler) CreateDay(c *gin.Context) {
	var spec schedule.Spec
	if !bindJSON(c, &spec) {
		return
	}
	if err := validate.ValidateDaySpec(spec); err != nil {
		response.FromError(c, err)
		return
	}

	id, err := h.service.AddDay(spec)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusCreated, "Day added", gin.H{"id": id})
}

// GetDay handles GET /api/days/:id
func (h *DayHandler) GetDay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	day, err := h.service.DayData(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "", day)
}

// DeleteDay handles DELETE /api/days/:id
func (h *DayHandler) DeleteDay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	diags, err := h.service.RemoveDay(id)
	mutated(c, "Day removed", nil, diags, err)
}

// ExportDay handles GET /api/days/:id/export
func (h *DayHandler) ExportDay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	body, date, err := h.service.ExportDay(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.log.Info("Day exported", "day", id, "bytes", len(body), "request_id", requestlog.RequestID(c))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="day-%s.xlsx"`, date))
	c.Data(http.StatusOK, export.ContentType, body)
}
