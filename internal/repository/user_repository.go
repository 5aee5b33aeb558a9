package repository

import (
	"github.com/hackdash/dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetRole overwrites the user's role foreign key
func (r *GormUserRepository) SetRole(userID uint64, roleID *uint64) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("role_id", roleID).Error
}

// SetProject overwrites the user's project foreign key
func (r *GormUserRepository) SetProject(userID uint64, projectID *uint64) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("project_id", projectID).Error
}
