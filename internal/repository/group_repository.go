package repository

import (
	"Launchbox/internal/models"
	"errors"
	"gorm.io/gorm"
)

type GroupRepository interface {
	GenericRepository[models.ItemGroup]
	FindByProjectID(projectID string) ([]models.ItemGroup, error)
	FindByIDAndProjectID(id, projectID string) (*models.ItemGroup, error)
}

type GroupRepositoryImpl[T models.ItemGroup] struct {
	GenericRepository[models.ItemGroup]
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GroupRepositoryImpl[models.ItemGroup]{
		GenericRepository: NewGenericRepository[models.ItemGroup](db),
		db:                db,
	}
}

func (r *GroupRepositoryImpl[T]) FindByProjectID(projectID string) ([]models.ItemGroup, error) {
	var groups []models.ItemGroup
	err := r.db.Where("project_id = ?", projectID).Order("order_index").Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *GroupRepositoryImpl[T]) FindByIDAndProjectID(id, projectID string) (*models.ItemGroup, error) {
	var group models.ItemGroup
	err := r.db.Where("id = ? AND project_id = ?", id, projectID).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}
