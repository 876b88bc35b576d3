package request

import "studio_ops/internal/usecase"

// ProjectCreateRequest is the stored-copy project payload. projectId, when
// present, references the source invoice to copy fields from.

type ProjectCreateRequest struct {
	ClientID      string `json:"clientId"`
	ProjectID     string `json:"projectId"`
	ProjectName   string `json:"projectName"`
	Deadline      string `json:"deadline"`
	Notes         string `json:"notes"`
	StatusProject string `json:"statusProject"`
}

func (r ProjectCreateRequest) ToInput() usecase.StoredProjectInput {
	return usecase.StoredProjectInput{
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
		ProjectName:   r.ProjectName,
		Deadline:      r.Deadline,
		Notes:         r.Notes,
		StatusProject: r.StatusProject,
	}
}
