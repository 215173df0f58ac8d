package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"presence/internal/application/registration/dto"
	"presence/internal/shared/errors"
	"presence/internal/shared/logger"
	"presence/internal/shared/utils"
)

// SubmitRegistrationService submits a validated registration.
type SubmitRegistrationService interface {
	Execute(ctx context.Context, req dto.SubmitRegistrationRequest) (*dto.SubmitRegistrationResponse, error)
}

// GetRegistrationService retrieves a registration by employee id.
type GetRegistrationService interface {
	Execute(ctx context.Context, eid string) (*dto.RegistrationResponse, error)
}

// RegistrationHandler handles HTTP requests for registration operations
type RegistrationHandler struct {
	submitService SubmitRegistrationService
	getService    GetRegistrationService
	logger        logger.Interface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(
	submitService SubmitRegistrationService,
	getService GetRegistrationService,
	log logger.Interface,
) *RegistrationHandler {
	return &RegistrationHandler{
		submitService: submitService,
		getService:    getService,
		logger:        log,
	}
}

// Root handles GET /
func (h *RegistrationHandler) Root(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Connection established successfully", nil)
}

// SubmitInfo handles POST /info_input
func (h *RegistrationHandler) SubmitInfo(c *gin.Context) {
	var req dto.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit info", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	resp, err := h.submitService.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "Record inserted successfully!")
}

// GetInfo handles GET /info_output/:eid
func (h *RegistrationHandler) GetInfo(c *gin.Context) {
	eid := c.Param("eid")
	if eid == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("eid is required"))
		return
	}

	resp, err := h.getService.Execute(c.Request.Context(), eid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
