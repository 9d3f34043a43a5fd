package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/response"
	"github.com/gravadigital/turnier-api/internal/validation"
)

var validate = validation.TournamentValidation{}

// bindJSON decodes the body into req, answering 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}

// pathID parses the :id parameter, answering 400 on failure
func pathID(c *gin.Context) (uint32, bool) {
	id, err := validation.ParseID(c.Param("id"), "id")
	if err != nil {
		response.FromError(c, err)
		return 0, false
	}
	return id, true
}

// mutated answers a mutation that may carry integrity warnings
func mutated(c *gin.Context, message string, data any, diags common.Diagnostics, err error) {
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.WithWarnings(c, http.StatusOK, message, data, diags)
}
