package models

import (
	"time"
)

type LauncherItem struct {
	BaseModel
	ProjectID    string     `gorm:"type:varchar(36);index;not null" json:"project_id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Path         string     `gorm:"type:text;not null" json:"path"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	Category     string     `gorm:"type:varchar(255)" json:"category,omitempty"`
	GroupIDs     []string   `gorm:"serializer:json" json:"group_ids,omitempty"`
	OrderIndex   int        `gorm:"default:0" json:"order_index"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
}

func (i *LauncherItem) GetOrderIndex() int  { return i.OrderIndex }
func (i *LauncherItem) SetOrderIndex(n int) { i.OrderIndex = n }

// InGroup reports membership against a group id, honouring the virtual
// "all" group.
func (i *LauncherItem) InGroup(groupID string) bool {
	if groupID == "" || groupID == GroupAll {
		return true
	}
	for _, id := range i.GroupIDs {
		if id == groupID {
			return true
		}
	}
	return false
}
