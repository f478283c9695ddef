package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"year-planner/model"
)

func (s *Server) listReadings(c *gin.Context) {
	rows, err := s.reading.List(c.Request.Context())
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) createReading(c *gin.Context) {
	var input model.ReadingInput
	if !s.bind(c, &input) {
		return
	}
	reading, err := s.reading.Create(c.Request.Context(), &input)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusCreated, reading)
}

func (s *Server) updateReading(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var patch model.ReadingPatch
	if !s.bind(c, &patch) {
		return
	}
	reading, err := s.reading.Update(c.Request.Context(), id, patch)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, reading)
}

func (s *Server) deleteReading(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	if err := s.reading.Delete(c.Request.Context(), id); err != nil {
		s.error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listAuthors(c *gin.Context) {
	rows, err := s.reading.ListAuthors(c.Request.Context())
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) deleteAuthor(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	if err := s.reading.DeleteAuthor(c.Request.Context(), id); err != nil {
		s.error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
