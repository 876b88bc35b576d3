package entities

// Project is the stored-copy project record written by POST /projects. It is
// a compatibility artifact: the canonical project listing is the computed
// ProjectRow view and never reads this collection.

type Project struct {
	ID            ID       `json:"_id"`
	ClientID      string   `json:"clientId,omitempty"`
	ProjectID     string   `json:"projectId,omitempty"` // source invoice reference
	ProjectName   string   `json:"projectName,omitempty"`
	Deadline      string   `json:"deadline,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	StatusProject string   `json:"statusProject,omitempty"`
	Total         *float64 `json:"total,omitempty"`
	Dibayar       *float64 `json:"dibayar,omitempty"`
}

// ProjectRow is one row of the computed project view: an invoice joined with
// its client plus derived fields.

type ProjectRow struct {
	ID          ID       `json:"_id"`
	ClientID    string   `json:"clientId,omitempty"`
	ClientName  string   `json:"clientName,omitempty"`
	ProjectName string   `json:"projectName,omitempty"`
	Deadline    string   `json:"deadline,omitempty"`
	Status      string   `json:"status,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Dibayar     *float64 `json:"dibayar,omitempty"`
	Total       float64  `json:"total"`
	Outstanding float64  `json:"outstanding"`
}
