package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/pkg/models"
)

// listSkillsHandler handles GET /api/v1/skills. Returns the registry view
// for the requested workspace: filesystem skills, the workspace's own
// database skills and public skills, without manifest bodies.
func (s *Server) listSkillsHandler(c *gin.Context) {
	workspace := c.Query("workspace_id")

	loaded := s.registry.List(workspace)
	infos := make([]models.SkillInfo, 0, len(loaded))
	for _, skill := range loaded {
		infos = append(infos, models.SkillInfo{
			Name:        skill.Name,
			Description: skill.Description,
			Executor:    string(skill.Executor),
			Requires:    skill.Requires,
			Produces:    skill.Produces,
			Source:      string(skill.Source.Kind),
		})
	}
	c.JSON(http.StatusOK, gin.H{"skills": infos})
}

// saveSkillHandler handles POST /api/v1/skills: create or update a
// database-sourced skill, then reload the registry so the change is live.
func (s *Server) saveSkillHandler(c *gin.Context) {
	var req models.SaveSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	s.upsertSkill(c, req)
}

// updateSkillHandler handles PUT /api/v1/skills/:name. The path name wins
// over any name in the body.
func (s *Server) updateSkillHandler(c *gin.Context) {
	var req models.SaveSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	req.Name = c.Param("name")
	s.upsertSkill(c, req)
}

func (s *Server) upsertSkill(c *gin.Context, req models.SaveSkillRequest) {
	record, err := s.skillSvc.SaveSkill(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	s.reloadRegistry(c)

	c.JSON(http.StatusOK, gin.H{
		"name":         record.Name,
		"workspace_id": record.WorkspaceID,
		"is_public":    record.IsPublic,
	})
}

// deleteSkillHandler handles DELETE /api/v1/skills/:name.
func (s *Server) deleteSkillHandler(c *gin.Context) {
	name := c.Param("name")
	workspace := c.Query("workspace_id")

	if err := s.skillSvc.DeleteSkill(c.Request.Context(), name, workspace); err != nil {
		respondServiceError(c, err)
		return
	}
	s.reloadRegistry(c)

	c.JSON(http.StatusOK, gin.H{"message": "skill deleted"})
}

// reloadSkillsHandler handles POST /api/v1/skills/reload: rebuild the
// registry snapshot from the filesystem and database sources.
func (s *Server) reloadSkillsHandler(c *gin.Context) {
	if err := s.registry.LoadAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reload failed: " + err.Error()})
		return
	}

	diags := s.registry.Diagnostics()
	problems := make([]gin.H, 0, len(diags))
	for _, d := range diags {
		problems = append(problems, gin.H{
			"name":   d.Name,
			"source": string(d.Source),
			"error":  d.Err.Error(),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "registry reloaded",
		"diagnostics": problems,
	})
}

// reloadRegistry refreshes the snapshot after a skill mutation. A reload
// failure does not mask the successful write; the stale snapshot stays
// live until the next reload.
func (s *Server) reloadRegistry(c *gin.Context) {
	if err := s.registry.LoadAll(c.Request.Context()); err != nil {
		slog.Warn("Registry reload after skill mutation failed", "error", err)
	}
}
