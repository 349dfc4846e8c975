package handlers

import (
	"io"
	"net/http"

	"github.com/examai/exam-service/internal/services"
	"github.com/examai/exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	BaseHandler
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService, logger utils.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler:       NewBaseHandler(logger),
		assessmentService: assessmentService,
	}
}

// CreateAssessment creates an assessment from a JSON payload.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	h.LogRequest(c, "Creating assessment")

	var req services.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	assessment, err := h.assessmentService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

// ListAssessments returns every stored assessment.
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	assessments, err := h.assessmentService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessments)
}

// GetAssessment fetches one assessment by its store id.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	assessment, err := h.assessmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// CreateAssessmentFromUpload generates an assessment from an uploaded source
// file. Title, description and source_type arrive as optional query
// parameters.
func (h *AssessmentHandler) CreateAssessmentFromUpload(c *gin.Context) {
	h.LogRequest(c, "Creating assessment from upload")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing uploaded file",
			Details: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Unreadable uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Unreadable uploaded file", err)
		return
	}

	req := services.UploadAssessmentRequest{
		Title:       c.DefaultQuery("title", "Generated Assessment"),
		Description: c.DefaultQuery("description", "Generated from uploaded source"),
		SourceType:  c.DefaultQuery("source_type", "file"),
		Filename:    fileHeader.Filename,
		Data:        data,
	}

	assessment, err := h.assessmentService.CreateFromUpload(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assessment)
}
