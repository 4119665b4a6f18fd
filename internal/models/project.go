package models

type Project struct {
	BaseModel
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	OrderIndex int            `gorm:"default:0" json:"order_index"`
	ParentID   *string        `gorm:"type:varchar(36);index" json:"parent_id,omitempty"`
	IsFolder   bool           `gorm:"default:false" json:"is_folder"`
	Groups     []ItemGroup    `gorm:"foreignKey:ProjectID" json:"groups,omitempty"`
	Items      []LauncherItem `gorm:"foreignKey:ProjectID" json:"items,omitempty"`
}

func (p *Project) GetOrderIndex() int  { return p.OrderIndex }
func (p *Project) SetOrderIndex(i int) { p.OrderIndex = i }
