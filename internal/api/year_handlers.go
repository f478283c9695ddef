package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"year-planner/model"
)

func (s *Server) listYears(c *gin.Context) {
	years, err := s.years.List(c.Request.Context())
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

func (s *Server) createYear(c *gin.Context) {
	var year model.Year
	if !s.bind(c, &year) {
		return
	}
	if err := s.years.Create(c.Request.Context(), &year); err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusCreated, year)
}

func (s *Server) updateYear(c *gin.Context) {
	id, ok := s.pathID(c, "year_id")
	if !ok {
		return
	}
	var patch model.YearPatch
	if !s.bind(c, &patch) {
		return
	}
	year, err := s.years.Update(c.Request.Context(), id, *patch.YearNumber)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, year)
}

func (s *Server) deleteYear(c *gin.Context) {
	id, ok := s.pathID(c, "year_id")
	if !ok {
		return
	}
	if err := s.years.Delete(c.Request.Context(), id); err != nil {
		s.error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
