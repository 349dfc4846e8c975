package handlers

import (
	"github.com/examai/exam-service/internal/config"
	"github.com/examai/exam-service/internal/repositories"
	"github.com/examai/exam-service/internal/services"
	"github.com/examai/exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	healthHandler     *HealthHandler
	assessmentHandler *AssessmentHandler
	submissionHandler *SubmissionHandler
	lessonHandler     *LessonHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	repo repositories.Repository,
	cfg *config.Config,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		healthHandler:     NewHealthHandler(repo, cfg, logger),
		assessmentHandler: NewAssessmentHandler(serviceManager.Assessment(), logger),
		submissionHandler: NewSubmissionHandler(serviceManager.Submission(), logger),
		lessonHandler:     NewLessonHandler(serviceManager.Lesson(), logger),
	}
}

// SetupRoutes sets up all API routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/", hm.healthHandler.Root)
	router.GET("/test", hm.healthHandler.TestStore)

	assessments := router.Group("/assessments")
	{
		assessments.POST("", hm.assessmentHandler.CreateAssessment)
		assessments.GET("", hm.assessmentHandler.ListAssessments)
		assessments.POST("/from-upload", hm.assessmentHandler.CreateAssessmentFromUpload)
		assessments.GET("/:id", hm.assessmentHandler.GetAssessment)
	}

	submissions := router.Group("/submissions")
	{
		submissions.POST("", hm.submissionHandler.CreateSubmission)
		submissions.POST("/:id/grade", hm.submissionHandler.GradeSubmission)
	}

	lessons := router.Group("/lessons")
	{
		lessons.POST("", hm.lessonHandler.CreateLesson)
		lessons.GET("", hm.lessonHandler.ListLessons)
	}
}
