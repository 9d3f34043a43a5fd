package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/services"
)

type AssignmentHandler struct {
	service *services.TournamentService
}

func NewAssignmentHandler(service *services.TournamentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// The zero composite id is a live address; absent fields stay nil.
type AssignRequest struct {
	Group *common.GroupID     `json:"group" binding:"required"`
	Arena *common.ArenaSlotID `json:"arena" binding:"required"`
}

type FreeGroupRequest struct {
	Group *common.GroupID `json:"group" binding:"required"`
}

type FreeArenaRequest struct {
	Arena *common.ArenaSlotID `json:"arena" binding:"required"`
}

// Assign handles POST /api/assignments
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if !bindJSON(c, &req) {
		return
	}
	diags, err := h.service.AddGroupToArena(*req.Group, *req.Arena)
	mutated(c, "Group assigned", nil, diags, err)
}

// FreeGroup handles POST /api/assignments/free-group
func (h *AssignmentHandler) FreeGroup(c *gin.Context) {
	var req FreeGroupRequest
	if !bindJSON(c, &req) {
		return
	}
	diags, err := h.service.FreeUpGroup(*req.Group)
	mutated(c, "Group freed", nil, diags, err)
}

// FreeArena handles POST /api/assignments/free-arena
func (h *AssignmentHandler) FreeArena(c *gin.Context) {
	var req FreeArenaRequest
	if !bindJSON(c, &req) {
		return
	}
	diags, err := h.service.FreeUpArena(*req.Arena)
	mutated(c, "Arena freed", nil, diags, err)
}
