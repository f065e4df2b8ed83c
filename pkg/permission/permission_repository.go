package permission

import (
	"context"

	"Go-Storefront/entities"

	"gorm.io/gorm"
)

type (
	PermissionRepository interface {
		GetRoles(ctx context.Context) ([]*entities.Role, error)
		GetRole(ctx context.Context, id uint) (*entities.Role, error)
		GetRoleByType(ctx context.Context, roleType string) (*entities.Role, error)
		UpdateRole(ctx context.Context, role *entities.Role, enabled []string) error
	}

	permissionRepository struct {
		db *gorm.DB
	}
)

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) GetRoles(ctx context.Context) ([]*entities.Role, error) {
	var roles []*entities.Role
	if err := r.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *permissionRepository) GetRole(ctx context.Context, id uint) (*entities.Role, error) {
	var role entities.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").Where("id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *permissionRepository) GetRoleByType(ctx context.Context, roleType string) (*entities.Role, error) {
	var role entities.Role
	if err := r.db.WithContext(ctx).
		Preload("Permissions", "enabled = ?", true).
		Where("type = ?", roleType).
		First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateRole saves the role attributes and replaces its permission set with enabled.
func (r *permissionRepository) UpdateRole(ctx context.Context, role *entities.Role, enabled []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Permissions").Save(role).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", role.ID).Delete(&entities.Permission{}).Error; err != nil {
			return err
		}
		if len(enabled) == 0 {
			return nil
		}
		perms := make([]*entities.Permission, 0, len(enabled))
		for _, action := range enabled {
			perms = append(perms, &entities.Permission{RoleID: role.ID, Action: action, Enabled: true})
		}
		return tx.Create(&perms).Error
	})
}
