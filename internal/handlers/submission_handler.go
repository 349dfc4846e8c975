package handlers

import (
	"net/http"

	"github.com/examai/exam-service/internal/services"
	"github.com/examai/exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	BaseHandler
	submissionService services.SubmissionService
}

func NewSubmissionHandler(submissionService services.SubmissionService, logger utils.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler:       NewBaseHandler(logger),
		submissionService: submissionService,
	}
}

// CreateSubmission records a student's answers against an assessment. The
// referenced assessment must exist; otherwise nothing is stored and the
// response is a 404 naming the missing entity.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	h.LogRequest(c, "Creating submission")

	var req services.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	submission, err := h.submissionService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// GradeSubmission runs the grading engine over a stored submission, persists
// the result and returns it. Grading twice with no intervening edits yields
// the same result.
func (h *SubmissionHandler) GradeSubmission(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	h.LogRequest(c, "Grading submission", "submission_id", id)

	result, err := h.submissionService.Grade(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
