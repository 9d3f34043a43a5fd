package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/turnier-api/internal/response"
	"github.com/gravadigital/turnier-api/internal/services"
)

type TournamentHandler struct {
	service *services.TournamentService
}

func NewTournamentHandler(service *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{service: service}
}

type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

type PathRequest struct {
	Path string `json:"path"`
}

// CreateTournament handles POST /api/tournament
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req NameRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validate.ValidateName(req.Name); err != nil {
		response.FromError(c, err)
		return
	}

	summary, err := h.service.Create(req.Name)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusCreated, "Tournament created", summary)
}

// GetTournament handles GET /api/tournament
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	summary, err := h.service.Summary()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "", summary)
}

// ChangeName handles PUT /api/tournament/name
func (h *TournamentHandler) ChangeName(c *gin.Context) {
	var req NameRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validate.ValidateName(req.Name); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.service.ChangeName(req.Name); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "Tournament renamed", nil)
}

// LoadTournament handles POST /api/tournament/load. An empty body loads the
// configured default snapshot.
func (h *TournamentHandler) LoadTournament(c *gin.Context) {
	var req PathRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	if err := validate.ValidateSnapshotPath(req.Path); err != nil {
		response.FromError(c, err)
		return
	}

	result, diags, err := h.service.Load(c.Request.Context(), req.Path)
	mutated(c, "Tournament loaded", result, diags, err)
}

// SaveTournament handles POST /api/tournament/save
func (h *TournamentHandler) SaveTournament(c *gin.Context) {
	var req PathRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	if err := validate.ValidateSnapshotPath(req.Path); err != nil {
		response.FromError(c, err)
		return
	}

	meta, err := h.service.Save(c.Request.Context(), req.Path)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "Tournament saved", meta)
}
