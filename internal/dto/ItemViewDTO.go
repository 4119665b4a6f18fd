package dto

import "time"

// ItemViewDTO is the display record surfaced by resolved views. It is a
// copy: denormalized fields (ProjectName, FolderPath, access data) are
// stamped per view and never written back to the stored entities.
type ItemViewDTO struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Name        string     `json:"name"`
	Path        string     `json:"path"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	GroupIDs    []string   `json:"group_ids,omitempty"`
	GroupNames  []string   `json:"group_names,omitempty"`
	OrderIndex  int        `json:"order_index"`
	ProjectName string     `json:"project_name,omitempty"`
	FolderPath  string     `json:"folder_path,omitempty"`
	LastAccess  *time.Time `json:"last_access,omitempty"`
	AccessCount int        `json:"access_count"`
}
