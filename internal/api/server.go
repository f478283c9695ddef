// Package api exposes the planner store over HTTP. Every route is declared
// in one closed table in router.go; handlers decode, call a repository and
// map taxonomy errors onto statuses. No handler calls another handler.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"year-planner/apperr"
	"year-planner/internal/repository"
)

// Server bundles the repositories and settings shared by all handlers.
type Server struct {
	db      *gorm.DB
	years   *repository.YearRepository
	reading *repository.ReadingRepository
	work    *repository.WorkRepository
	token   string
	log     zerolog.Logger
}

func NewServer(db *gorm.DB, token string, log zerolog.Logger) *Server {
	return &Server{
		db:      db,
		years:   repository.NewYearRepository(db),
		reading: repository.NewReadingRepository(db),
		work:    repository.NewWorkRepository(db),
		token:   token,
		log:     log,
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bind decodes and validates the JSON body, answering 400 itself on failure.
func (s *Server) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"kind":  apperr.KindValidation,
			"error": "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}

// pathID parses a numeric path parameter, answering 400 itself on failure.
func (s *Server) pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"kind":  apperr.KindValidation,
			"error": "invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}

// error maps a repository error onto its status. Unclassified errors are
// logged in full and reported as a bare internal error.
func (s *Server) error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	msg := err.Error()
	if kind == apperr.KindInternal || kind == apperr.KindCascadeIntegrity {
		s.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		msg = "internal error"
	}
	c.JSON(statusOf(kind), gin.H{"kind": kind, "error": msg})
}

func statusOf(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
