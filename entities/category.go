package entities

type Category struct {
	Document
	CategoryName string `gorm:"not null" json:"category_name"`
	Slug         string `gorm:"not null;uniqueIndex" json:"slug"`
	ImageID      *uint  `json:"image_id,omitempty"`

	Image         *Media         `gorm:"foreignKey:ImageID"`
	Subcategories []*Subcategory `gorm:"foreignKey:CategoryID"`
	Products      []*Product     `gorm:"foreignKey:CategoryID"`
	Timestamp
}
