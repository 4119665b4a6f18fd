package repository

import (
	"Launchbox/internal/models"
	"errors"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	GenericRepository[models.Project]
	FindSummaries() ([]models.Project, error)
	FindDetail(id string) (*models.Project, error)
	FindByParentID(parentID *string) ([]models.Project, error)
	FindNonFolders() ([]models.Project, error)
	FindDeleted() ([]models.Project, error)
	DeleteSubtree(id string) error
	HardDeleteSubtree(id string) error
}

type ProjectRepositoryImpl[T models.Project] struct {
	GenericRepository[models.Project]
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl[models.Project]{
		GenericRepository: NewGenericRepository[models.Project](db),
		db:                db,
	}
}

// FindSummaries returns every project without groups or items loaded. The
// result is what the hierarchy builder consumes.
func (r *ProjectRepositoryImpl[T]) FindSummaries() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("order_index").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl[T]) FindDetail(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Groups", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl[T]) FindByParentID(parentID *string) ([]models.Project, error) {
	var projects []models.Project
	query := r.db.Order("order_index")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl[T]) FindNonFolders() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Preload("Groups", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		Where("is_folder = ?", false).
		Order("order_index").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl[T]) FindDeleted() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Unscoped().Where("deleted_at IS NOT NULL").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// DeleteSubtree soft-deletes a project together with its full descendant
// subtree and the groups and items owned by any project in it. The janitor
// hard-purges soft-deleted rows later.
func (r *ProjectRepositoryImpl[T]) DeleteSubtree(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			WITH RECURSIVE descendants AS (
				SELECT id FROM projects WHERE id = ?
				UNION ALL
				SELECT p.id FROM projects p
				INNER JOIN descendants d ON p.parent_id = d.id
			)
			UPDATE item_groups SET deleted_at = CURRENT_TIMESTAMP
			WHERE project_id IN (SELECT id FROM descendants) AND deleted_at IS NULL`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			WITH RECURSIVE descendants AS (
				SELECT id FROM projects WHERE id = ?
				UNION ALL
				SELECT p.id FROM projects p
				INNER JOIN descendants d ON p.parent_id = d.id
			)
			UPDATE launcher_items SET deleted_at = CURRENT_TIMESTAMP
			WHERE project_id IN (SELECT id FROM descendants) AND deleted_at IS NULL`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`
			WITH RECURSIVE descendants AS (
				SELECT id FROM projects WHERE id = ?
				UNION ALL
				SELECT p.id FROM projects p
				INNER JOIN descendants d ON p.parent_id = d.id
			)
			UPDATE projects SET deleted_at = CURRENT_TIMESTAMP
			WHERE id IN (SELECT id FROM descendants) AND deleted_at IS NULL`, id).Error
	})
}

func (r *ProjectRepositoryImpl[T]) HardDeleteSubtree(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			WITH RECURSIVE descendants AS (
				SELECT id FROM projects WHERE id = ?
				UNION ALL
				SELECT p.id FROM projects p
				INNER JOIN descendants d ON p.parent_id = d.id
			)
			DELETE FROM item_groups WHERE project_id IN (SELECT id FROM descendants)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			WITH RECURSIVE descendants AS (
				SELECT id FROM projects WHERE id = ?
				UNION ALL
				SELECT p.id FROM projects p
				INNER JOIN descendants d ON p.parent_id = d.id
			)
			DELETE FROM launcher_items WHERE project_id IN (SELECT id FROM descendants)`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`
			WITH RECURSIVE descendants AS (
				SELECT id FROM projects WHERE id = ?
				UNION ALL
				SELECT p.id FROM projects p
				INNER JOIN descendants d ON p.parent_id = d.id
			)
			DELETE FROM projects WHERE id IN (SELECT id FROM descendants)`, id).Error
	})
}
