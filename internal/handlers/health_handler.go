package handlers

import (
	"net/http"
	"unicode/utf8"

	"github.com/examai/exam-service/internal/config"
	"github.com/examai/exam-service/internal/repositories"
	"github.com/examai/exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	BaseHandler
	repo repositories.Repository
	cfg  *config.Config
}

func NewHealthHandler(repo repositories.Repository, cfg *config.Config, logger utils.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: NewBaseHandler(logger),
		repo:        repo,
		cfg:         cfg,
	}
}

// Root is the liveness endpoint.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "ExamAi backend running",
	})
}

// TestStore reports store connectivity. Failures are part of the diagnostic
// payload, never an error response.
func (h *HealthHandler) TestStore(c *gin.Context) {
	info := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      setOrNot(h.cfg.DatabaseURLSet()),
		"database_name":     setOrNot(h.cfg.DatabaseNameSet()),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	ctx := c.Request.Context()
	if err := h.repo.Ping(ctx); err != nil {
		h.LogError(c, err, "store ping failed")
		info["database"] = "error: " + truncate(err.Error(), 60)
		c.JSON(http.StatusOK, info)
		return
	}

	info["database"] = "connected"
	info["connection_status"] = "connected"

	if names, err := h.repo.CollectionNames(ctx); err != nil {
		info["database"] = "connected but error: " + truncate(err.Error(), 60)
	} else {
		info["database"] = "connected and working"
		info["collections"] = names
	}

	c.JSON(http.StatusOK, info)
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

// truncate shortens s to at most n bytes without splitting a UTF-8 rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
