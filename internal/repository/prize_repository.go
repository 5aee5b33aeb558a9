package repository

import (
	"github.com/hackdash/dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormPrizeRepository is a GORM implementation of PrizeRepository
type GormPrizeRepository struct {
	db *gorm.DB
}

// NewPrizeRepository creates a new PrizeRepository
func NewPrizeRepository(db *gorm.DB) PrizeRepository {
	return &GormPrizeRepository{db: db}
}

// Create creates a new prize
func (r *GormPrizeRepository) Create(prize *models.Prize) error {
	return r.db.Create(prize).Error
}

// FindByID finds a prize by ID with optional preloading
func (r *GormPrizeRepository) FindByID(id uint64, preload ...string) (*models.Prize, error) {
	var prize models.Prize
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&prize, id).Error; err != nil {
		return nil, err
	}

	return &prize, nil
}

// List returns all prizes
func (r *GormPrizeRepository) List() ([]models.Prize, error) {
	var prizes []models.Prize
	if err := r.db.Find(&prizes).Error; err != nil {
		return nil, err
	}
	return prizes, nil
}

// Update updates a prize
func (r *GormPrizeRepository) Update(prize *models.Prize) error {
	return r.db.Save(prize).Error
}

// Delete deletes a prize and its project join rows
func (r *GormPrizeRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		prize := models.Prize{ID: id}

		if err := tx.Model(&prize).Association("WinningProjects").Clear(); err != nil {
			return err
		}

		if err := tx.Model(&prize).Association("AttemptingProjects").Clear(); err != nil {
			return err
		}

		return tx.Delete(&models.Prize{}, id).Error
	})
}

// AddWinner adds the project to the prize's won set. The join table carries a
// composite key, so a duplicate add leaves the set unchanged.
func (r *GormPrizeRepository) AddWinner(prize *models.Prize, project *models.Project) error {
	return r.db.Model(prize).Association("WinningProjects").Append(project)
}

// RemoveWinner removes the project from the won set; removing a non-member is
// a no-op.
func (r *GormPrizeRepository) RemoveWinner(prize *models.Prize, project *models.Project) error {
	return r.db.Model(prize).Association("WinningProjects").Delete(project)
}
