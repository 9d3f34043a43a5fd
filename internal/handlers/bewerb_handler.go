package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/turnier-api/internal/response"
	"github.com/gravadigital/turnier-api/internal/services"
)

type BewerbHandler struct {
	service *services.TournamentService
}

func NewBewerbHandler(service *services.TournamentService) *BewerbHandler {
	return &BewerbHandler{service: service}
}

type CreateBewerbRequest struct {
	Name         string `json:"name" binding:"required"`
	NumberRounds uint32 `json:"number_rounds"`
	NumberGroups uint32 `json:"number_groups"`
}

// GetBewerbs handles GET /api/bewerbs
func (h *BewerbHandler) GetBewerbs(c *gin.Context) {
	bewerbs, err := h.service.Bewerbs()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "", bewerbs)
}

// CreateBewerb handles POST /api/bewerbs
func (h *BewerbHandler) CreateBewerb(c *gin.Context) {
	var req CreateBewerbRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validate.ValidateBewerb(req.Name, req.NumberRounds, req.NumberGroups); err != nil {
		response.FromError(c, err)
		return
	}

	id, err := h.service.AddBewerb(req.Name, req.NumberRounds, req.NumberGroups)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusCreated, "Bewerb added", id)
}

// DeleteBewerb handles DELETE /api/bewerbs/:id
func (h *BewerbHandler) DeleteBewerb(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	diags, err := h.service.RemoveBewerb(id)
	mutated(c, "Bewerb removed", nil, diags, err)
}

// GetFreeGroups handles GET /api/groups/free
func (h *BewerbHandler) GetFreeGroups(c *gin.Context) {
	groups, err := h.service.FreeGroups()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "", groups)
}
