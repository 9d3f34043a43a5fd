package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/fencer"
	"github.com/gravadigital/turnier-api/internal/response"
	"github.com/gravadigital/turnier-api/internal/services"
)

type FencerHandler struct {
	service *services.FencerService
}

func NewFencerHandler(service *services.FencerService) *FencerHandler {
	return &FencerHandler{service: service}
}

type UpdateFencersRequest struct {
	Fencers []fencer.Record `json:"fencers"`
}

type AssignFencerRequest struct {
	Group *common.GroupID `json:"group" binding:"required"`
}

// GetFencers handles GET /api/fencers
func (h *FencerHandler) GetFencers(c *gin.Context) {
	fencers, err := h.service.All()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "", fencers)
}

// UpdateFencers handles PUT /api/fencers
func (h *FencerHandler) UpdateFencers(c *gin.Context) {
	var req UpdateFencersRequest
	if !bindJSON(c, &req) {
		return
	}
	for _, rec := range req.Fencers {
		if err := validate.ValidateName(rec.Name); err != nil {
			response.FromError(c, err)
			return
		}
	}
	diags, err := h.service.Update(req.Fencers)
	mutated(c, "Fencers updated", nil, diags, err)
}

// AssignFencer handles POST /api/fencers/:id/groups
func (h *FencerHandler) AssignFencer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req AssignFencerRequest
	if !bindJSON(c, &req) {
		return
	}
	diags, err := h.service.Assign(id, *req.Group)
	mutated(c, "Fencer assigned", nil, diags, err)
}

// DeleteFencer handles DELETE /api/fencers/:id
func (h *FencerHandler) DeleteFencer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	diags, err := h.service.Remove(id)
	mutated(c, "Fencer removed", nil, diags, err)
}
