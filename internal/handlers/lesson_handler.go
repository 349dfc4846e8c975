package handlers

import (
	"net/http"

	"github.com/examai/exam-service/internal/services"
	"github.com/examai/exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	BaseHandler
	lessonService services.LessonService
}

func NewLessonHandler(lessonService services.LessonService, logger utils.Logger) *LessonHandler {
	return &LessonHandler{
		BaseHandler:   NewBaseHandler(logger),
		lessonService: lessonService,
	}
}

func (h *LessonHandler) CreateLesson(c *gin.Context) {
	h.LogRequest(c, "Creating lesson")

	var req services.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	lesson, err := h.lessonService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

func (h *LessonHandler) ListLessons(c *gin.Context) {
	lessons, err := h.lessonService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lessons)
}
