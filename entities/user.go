package entities

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	Document
	Username string `gorm:"not null;uniqueIndex" json:"username"`
	Email    string `gorm:"not null;uniqueIndex" json:"email"`
	Password string `json:"-"`
	Blocked  bool   `gorm:"default:false" json:"blocked"`
	RoleID   uint   `json:"role_id"`

	Role *Role `gorm:"foreignKey:RoleID"`
	Timestamp
}

// BeforeCreate hashes the plain password and assigns a document id.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if err := u.Document.BeforeCreate(tx); err != nil {
		return err
	}
	if u.Password == "" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
