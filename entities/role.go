package entities

const (
	RoleTypePublic        = "public"
	RoleTypeAuthenticated = "authenticated"
	RoleTypeAdmin         = "admin"
)

type Role struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Type        string `gorm:"size:32;not null;uniqueIndex" json:"type"`
	Description string `json:"description"`

	Permissions []*Permission `gorm:"foreignKey:RoleID"`
	Timestamp
}

type Permission struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID  uint   `gorm:"not null;uniqueIndex:idx_role_action" json:"role_id"`
	Action  string `gorm:"not null;uniqueIndex:idx_role_action" json:"action"`
	Enabled bool   `gorm:"default:true" json:"enabled"`

	Role *Role `gorm:"foreignKey:RoleID"`
	Timestamp
}
