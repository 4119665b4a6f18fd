package models

import (
	"strings"
	"time"
)

// PathAccessHistory holds one record per unique launched path. The key is
// the lowercased path, so case variants of the same path share a record.
type PathAccessHistory struct {
	PathKey        string    `gorm:"type:text;primaryKey" json:"-"`
	Path           string    `gorm:"type:text;not null" json:"path"`
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	Category       string    `gorm:"type:varchar(255)" json:"category,omitempty"`
	ProjectName    string    `gorm:"type:varchar(255)" json:"project_name,omitempty"`
	LastAccessTime time.Time `json:"last_access_time"`
	AccessCount    int       `gorm:"default:0" json:"access_count"`
}

func NormalizePath(path string) string {
	return strings.ToLower(strings.TrimSpace(path))
}
