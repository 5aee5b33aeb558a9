package repository

import (
	"github.com/hackdash/dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormRoleRepository is a GORM implementation of RoleRepository
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &GormRoleRepository{db: db}
}

// Create creates a new role
func (r *GormRoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

// FindByID finds a role by ID
func (r *GormRoleRepository) FindByID(id uint64) (*models.Role, error) {
	var role models.Role
	if err := r.db.First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByName finds a role by its unique name
func (r *GormRoleRepository) FindByName(name string) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// List returns all roles
func (r *GormRoleRepository) List() ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// Update updates a role
func (r *GormRoleRepository) Update(role *models.Role) error {
	return r.db.Save(role).Error
}

// Delete deletes a role. Users holding the role keep their row; only the
// foreign key is cleared.
func (r *GormRoleRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("role_id = ?", id).
			Update("role_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Role{}, id).Error
	})
}
