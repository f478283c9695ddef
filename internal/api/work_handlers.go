package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"year-planner/model"
)

func (s *Server) listWork(c *gin.Context) {
	rows, err := s.work.List(c.Request.Context())
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) createWork(c *gin.Context) {
	var work model.Work
	if !s.bind(c, &work) {
		return
	}
	if err := s.work.Create(c.Request.Context(), &work); err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusCreated, work)
}

func (s *Server) updateWork(c *gin.Context) {
	id, ok := s.pathID(c, "work_id")
	if !ok {
		return
	}
	var patch model.WorkPatch
	if !s.bind(c, &patch) {
		return
	}
	work, err := s.work.Update(c.Request.Context(), id, patch.Changes())
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, work)
}

func (s *Server) deleteWork(c *gin.Context) {
	id, ok := s.pathID(c, "work_id")
	if !ok {
		return
	}
	if err := s.work.Delete(c.Request.Context(), id); err != nil {
		s.error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listWorkNotes(c *gin.Context) {
	workID, ok := s.pathID(c, "work_id")
	if !ok {
		return
	}
	rows, err := s.work.ListNotes(c.Request.Context(), workID)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) createWorkNote(c *gin.Context) {
	workID, ok := s.pathID(c, "work_id")
	if !ok {
		return
	}
	var note model.WorkNote
	if !s.bind(c, &note) {
		return
	}
	note.ID = 0
	note.WorkID = workID
	if err := s.work.CreateNote(c.Request.Context(), &note); err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (s *Server) updateWorkNote(c *gin.Context) {
	workID, ok := s.pathID(c, "work_id")
	if !ok {
		return
	}
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var patch model.WorkNotePatch
	if !s.bind(c, &patch) {
		return
	}
	note, err := s.work.UpdateNote(c.Request.Context(), workID, id, patch.Changes())
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (s *Server) deleteWorkNote(c *gin.Context) {
	workID, ok := s.pathID(c, "work_id")
	if !ok {
		return
	}
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	if err := s.work.DeleteNote(c.Request.Context(), workID, id); err != nil {
		s.error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
