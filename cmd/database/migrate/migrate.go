package migration

import (
	"Go-Storefront/domain"
	"Go-Storefront/entities"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Migrate(db *gorm.DB) error {
	models := []any{
		&entities.Media{},
		&entities.Role{},
		&entities.Permission{},
		&entities.User{},
		&entities.Category{},
		&entities.Subcategory{},
		&entities.Product{},
		&entities.Review{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			zap.S().Errorf("error migrating %T: %v", m, err)
			return err
		}
	}

	if err := Seed(db); err != nil {
		zap.S().Errorf("error seeding roles: %v", err)
		return err
	}

	zap.S().Info("database migration complete")
	return nil
}

var defaultRoles = []struct {
	role    entities.Role
	actions []string
}{
	{entities.Role{Name: "Public", Type: entities.RoleTypePublic, Description: "Default role given to unauthenticated user."}, domain.PublicReadActions},
	{entities.Role{Name: "Authenticated", Type: entities.RoleTypeAuthenticated, Description: "Default role given to authenticated user."}, append(append([]string{}, domain.PublicReadActions...), domain.AuthenticatedActions...)},
	{entities.Role{Name: "Admin", Type: entities.RoleTypeAdmin, Description: "Full access to content and permissions."}, nil},
}

// Seed creates the default roles and grants. Existing roles and grants are left untouched.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, d := range defaultRoles {
			role := d.role
			if err := tx.Where(entities.Role{Type: role.Type}).FirstOrCreate(&role).Error; err != nil {
				return err
			}

			for _, action := range d.actions {
				perm := entities.Permission{RoleID: role.ID, Action: action, Enabled: true}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&perm).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
