package entities

type Subcategory struct {
	Document
	Name       string `gorm:"not null;index" json:"name"`
	Slug       string `gorm:"not null;uniqueIndex" json:"slug"`
	Icon       string `json:"icon"`
	Order      int    `gorm:"column:sort_order;default:0" json:"order"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`
	CategoryID *uint  `gorm:"index" json:"category_id,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}
