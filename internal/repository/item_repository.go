package repository

import (
	"Launchbox/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.LauncherItem]
	FindByProjectID(projectID string) ([]models.LauncherItem, error)
	FindByPathAndProjectID(path, projectID string) (*models.LauncherItem, error)
	FindByIDAndProjectID(id, projectID string) (*models.LauncherItem, error)
	TouchByPath(path string, accessedAt time.Time) error
}

type ItemRepositoryImpl[T models.LauncherItem] struct {
	GenericRepository[models.LauncherItem]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.LauncherItem]{
		GenericRepository: NewGenericRepository[models.LauncherItem](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl[T]) FindByProjectID(projectID string) ([]models.LauncherItem, error) {
	var items []models.LauncherItem
	err := r.db.Where("project_id = ?", projectID).Order("order_index").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindByPathAndProjectID matches the launch path case-insensitively; path
// uniqueness within a project is case-insensitive.
func (r *ItemRepositoryImpl[T]) FindByPathAndProjectID(path, projectID string) (*models.LauncherItem, error) {
	var item models.LauncherItem
	err := r.db.Where("LOWER(path) = LOWER(?) AND project_id = ?", path, projectID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// TouchByPath stamps LastAccessed on every item sharing the launched path,
// regardless of owning project.
func (r *ItemRepositoryImpl[T]) TouchByPath(path string, accessedAt time.Time) error {
	return r.db.Model(&models.LauncherItem{}).
		Where("LOWER(path) = LOWER(?)", path).
		Update("last_accessed", accessedAt).Error
}

func (r *ItemRepositoryImpl[T]) FindByIDAndProjectID(id, projectID string) (*models.LauncherItem, error) {
	var item models.LauncherItem
	err := r.db.Where("id = ? AND project_id = ?", id, projectID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
