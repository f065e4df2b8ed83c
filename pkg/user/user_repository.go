package user

import (
	"context"

	"Go-Storefront/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error)
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		CheckUserExists(ctx context.Context, username, email string) (bool, error)
		GetRoleByType(ctx context.Context, roleType string) (*entities.Role, error)
		RegisterUser(ctx context.Context, user *entities.User) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload("Role").
		Where("LOWER(email) = LOWER(?) OR username = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload("Role").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("username = ? OR LOWER(email) = LOWER(?)", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) GetRoleByType(ctx context.Context, roleType string) (*entities.Role, error) {
	var role entities.Role
	if err := r.db.WithContext(ctx).Where("type = ?", roleType).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) RegisterUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Omit("Role").Create(user).Error
}
