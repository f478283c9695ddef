package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"year-planner/internal/repository"
)

// yearScoped is satisfied by every entity living under a year.
type yearScoped interface {
	SetYear(id uint)
}

// patcher turns a bound PATCH body into column updates.
type patcher interface {
	Changes() map[string]any
}

// registerScoped wires List/Create/Update/Delete for one year-scoped entity
// onto the /years/:year_id group. T is the row type, PT its pointer, P the
// patch type.
func registerScoped[T any, PT interface {
	*T
	yearScoped
}, P patcher](s *Server, g *gin.RouterGroup, entity, path string) {
	repo := repository.NewScopedRepository[T](s.db, entity)

	g.GET("/"+path, func(c *gin.Context) {
		yearID, ok := s.pathID(c, "year_id")
		if !ok {
			return
		}
		rows, err := repo.List(c.Request.Context(), yearID)
		if err != nil {
			s.error(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	})

	g.POST("/"+path, func(c *gin.Context) {
		yearID, ok := s.pathID(c, "year_id")
		if !ok {
			return
		}
		var row T
		if !s.bind(c, &row) {
			return
		}
		PT(&row).SetYear(yearID)
		if err := repo.Create(c.Request.Context(), &row); err != nil {
			s.error(c, err)
			return
		}
		c.JSON(http.StatusCreated, row)
	})

	g.PATCH("/"+path+"/:id", func(c *gin.Context) {
		yearID, ok := s.pathID(c, "year_id")
		if !ok {
			return
		}
		id, ok := s.pathID(c, "id")
		if !ok {
			return
		}
		var patch P
		if !s.bind(c, &patch) {
			return
		}
		row, err := repo.Update(c.Request.Context(), yearID, id, patch.Changes())
		if err != nil {
			s.error(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	})

	g.DELETE("/"+path+"/:id", func(c *gin.Context) {
		yearID, ok := s.pathID(c, "year_id")
		if !ok {
			return
		}
		id, ok := s.pathID(c, "id")
		if !ok {
			return
		}
		if err := repo.Delete(c.Request.Context(), yearID, id); err != nil {
			s.error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
