package app

import (
	"net/http"

	"rawtails/internal/middleware"
	"rawtails/internal/service"
	"rawtails/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService service.HealthService
}

func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// List handles fetching the acting user's pet health log
// GET /api/health/records?petName=
func (h *HealthHandler) List(c *gin.Context) {
	userID := middleware.ActingUser(c)
	if userID == "" {
		util.Unauthorized(c, "missing "+middleware.UserIDHeader+" header")
		return
	}

	records, err := h.healthService.List(userID, c.Query("petName"))
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "failed to fetch health records")
		return
	}

	util.SuccessResponse(c, http.StatusOK, gin.H{"records": records})
}

// Create handles adding a health log entry
// POST /api/health/records
func (h *HealthHandler) Create(c *gin.Context) {
	userID := middleware.ActingUser(c)

	var input service.AddHealthRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, util.ValidationMessage(err))
		return
	}

	record, err := h.healthService.Add(userID, input)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	util.SuccessResponse(c, http.StatusCreated, record)
}
