package repository

import (
	"github.com/hackdash/dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithOwner creates the project row and assigns the acting user's
// project foreign key atomically. Either both succeed or neither does, so a
// mid-sequence failure cannot leave an ownerless project behind.
func (r *GormProjectRepository) CreateWithOwner(project *models.Project, ownerID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", ownerID).
			Update("project_id", project.ID).Error
	})
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// List returns all projects
func (r *GormProjectRepository) List() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("PrizesAttempted").Preload("PrizesWon").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project and its prize join rows in a transaction. Members
// keep their user rows with the project foreign key cleared; prizes are never
// touched beyond the join rows.
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		project := models.Project{ID: id}

		if err := tx.Model(&project).Association("PrizesWon").Clear(); err != nil {
			return err
		}

		if err := tx.Model(&project).Association("PrizesAttempted").Clear(); err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("project_id = ?", id).
			Update("project_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}

// ReplaceAttemptedPrizes swaps the project's whole attempted set for the given
// prizes in one transaction.
func (r *GormProjectRepository) ReplaceAttemptedPrizes(project *models.Project, prizes []models.Prize) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(prizes) == 0 {
			return tx.Model(project).Association("PrizesAttempted").Clear()
		}

		return tx.Model(project).Association("PrizesAttempted").Replace(&prizes)
	})
}
