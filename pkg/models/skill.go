package models

import "github.com/weftworks/weft/ent"

// SaveSkillRequest creates or updates a database-sourced skill.
type SaveSkillRequest struct {
	Name        string `json:"name"`
	WorkspaceID string `json:"workspace_id"`
	IsPublic    bool   `json:"is_public"`
	Manifest    string `json:"manifest"`
	CreatedBy   string `json:"created_by,omitempty"`
}

// SkillListResponse lists stored skill records.
type SkillListResponse struct {
	Skills []*ent.SkillRecord `json:"skills"`
}

// SkillInfo is the registry view of a loaded skill, returned by the
// listing endpoint without exposing manifests of other tenants.
type SkillInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Executor    string   `json:"executor"`
	Requires    []string `json:"requires,omitempty"`
	Produces    []string `json:"produces,omitempty"`
	Source      string   `json:"source"`
}
