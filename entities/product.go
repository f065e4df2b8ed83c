package entities

type Product struct {
	Document
	ProductName   string  `gorm:"not null;index" json:"product_name"`
	Slug          string  `gorm:"not null;uniqueIndex" json:"slug"`
	Description   string  `gorm:"type:text" json:"description"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`
	IsFeatured    bool    `gorm:"default:false" json:"is_featured"`
	Price         float64 `json:"price"`
	Stock         int     `gorm:"default:0" json:"stock"`
	Taste         string  `json:"taste"`
	Origin        string  `json:"origin"`
	CategoryID    *uint   `gorm:"index" json:"category_id,omitempty"`
	SubcategoryID *uint   `gorm:"index" json:"subcategory_id,omitempty"`

	Images      []*Media     `gorm:"many2many:product_images"`
	Category    *Category    `gorm:"foreignKey:CategoryID"`
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID"`
	Reviews     []*Review    `gorm:"foreignKey:ProductID"`
	Timestamp
}
