package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"year-planner/internal/repository"
)

// registerList wires CRUD for one flat collection (goals, courses,
// wishlist) at /<path>.
func registerList[T any, P patcher](s *Server, g *gin.RouterGroup, entity, path string) {
	repo := repository.NewListRepository[T](s.db, entity)

	g.GET("/"+path, func(c *gin.Context) {
		rows, err := repo.List(c.Request.Context())
		if err != nil {
			s.error(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	})

	g.POST("/"+path, func(c *gin.Context) {
		var row T
		if !s.bind(c, &row) {
			return
		}
		if err := repo.Create(c.Request.Context(), &row); err != nil {
			s.error(c, err)
			return
		}
		c.JSON(http.StatusCreated, row)
	})

	g.PATCH("/"+path+"/:id", func(c *gin.Context) {
		id, ok := s.pathID(c, "id")
		if !ok {
			return
		}
		var patch P
		if !s.bind(c, &patch) {
			return
		}
		row, err := repo.Update(c.Request.Context(), id, patch.Changes())
		if err != nil {
			s.error(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	})

	g.DELETE("/"+path+"/:id", func(c *gin.Context) {
		id, ok := s.pathID(c, "id")
		if !ok {
			return
		}
		if err := repo.Delete(c.Request.Context(), id); err != nil {
			s.error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
