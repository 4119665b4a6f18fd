package models

// GroupAll is the virtual group meaning "every item in the project".
// It is never stored and never appears in an item's GroupIDs.
const GroupAll = "all"

type ItemGroup struct {
	BaseModel
	ProjectID  string `gorm:"type:varchar(36);index;not null" json:"project_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`

	// Derived on read, never persisted.
	ItemCount int `gorm:"-" json:"item_count"`
}

func (g *ItemGroup) GetOrderIndex() int  { return g.OrderIndex }
func (g *ItemGroup) SetOrderIndex(i int) { g.OrderIndex = i }
