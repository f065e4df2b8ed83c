package entities

type Review struct {
	Document
	ProductID    uint   `gorm:"not null;uniqueIndex:idx_review_user_product" json:"product_id"`
	UserID       *uint  `gorm:"index;uniqueIndex:idx_review_user_product" json:"user_id,omitempty"`
	AuthorName   string `json:"author_name"`
	Rating       int    `gorm:"not null" json:"rating"`
	Title        string `json:"title"`
	Content      string `gorm:"type:text" json:"content"`
	HelpfulCount int    `gorm:"default:0" json:"helpful_count"`
	IsApproved   bool   `gorm:"default:true" json:"is_approved"`

	Product *Product `gorm:"foreignKey:ProductID"`
	User    *User    `gorm:"foreignKey:UserID"`
	Timestamp
}
