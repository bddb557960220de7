package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/models"
)

// createRunHandler handles POST /api/v1/runs. Submission is accepted, not
// executed inline: the worker pool claims the pending run. With an ack_key
// the endpoint is idempotent and replays return the original run.
func (s *Server) createRunHandler(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	created, err := s.runs.CreateRun(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"thread_id": created.ID,
		"status":    created.Status,
	})
}

// listRunsHandler handles GET /api/v1/runs.
func (s *Server) listRunsHandler(c *gin.Context) {
	filters := models.RunFilters{
		OwnerID:     c.Query("owner_id"),
		WorkspaceID: c.Query("workspace_id"),
		Search:      c.Query("search"),
	}

	if v := c.Query("status"); v != "" {
		if err := run.StatusValidator(run.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	if v := c.Query("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since: must be RFC3339"})
			return
		}
		filters.CreatedAt = &t
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.runs.ListRuns(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getRunHandler handles GET /api/v1/runs/:id. The response joins the run
// row with its latest checkpoint (active skill, history tail).
func (s *Server) getRunHandler(c *gin.Context) {
	status, err := s.runs.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// resumeRunHandler handles POST /api/v1/runs/:id/resume. Delivers a human
// approval to a paused run; any replica may pick the run back up.
func (s *Server) resumeRunHandler(c *gin.Context) {
	// An empty body is a bare approval.
	var req models.ResumeRunRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	if err := s.runs.Resume(c.Request.Context(), c.Param("id"), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"thread_id": c.Param("id"), "status": "pending"})
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel.
func (s *Server) cancelRunHandler(c *gin.Context) {
	threadID := c.Param("id")

	if err := s.runs.Cancel(c.Request.Context(), threadID); err != nil {
		respondServiceError(c, err)
		return
	}

	// Short-circuit for runs driven on this pod; other pods react to the
	// control channel signal.
	if s.pool != nil {
		s.pool.CancelRun(threadID)
	}

	c.JSON(http.StatusOK, gin.H{"thread_id": threadID, "message": "cancellation requested"})
}

// rerunHandler handles POST /api/v1/runs/:id/rerun. An empty body forks the
// run unchanged; new_sop / new_initial_data / new_llm_model edit the fork.
func (s *Server) rerunHandler(c *gin.Context) {
	var req models.RerunRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	forked, err := s.runs.Rerun(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"thread_id":        forked.ID,
		"parent_thread_id": c.Param("id"),
		"status":           forked.Status,
	})
}
