package repository

import (
	"Launchbox/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type HistoryRepository interface {
	FindByKey(pathKey string) (*models.PathAccessHistory, error)
	FindAll() ([]models.PathAccessHistory, error)
	FindSince(since time.Time, limit int) ([]models.PathAccessHistory, error)
	Save(record *models.PathAccessHistory) error
	Count() (int64, error)
	Prune(maxEntries int) error
}

type HistoryRepositoryImpl struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &HistoryRepositoryImpl{db: db}
}

func (r *HistoryRepositoryImpl) FindByKey(pathKey string) (*models.PathAccessHistory, error) {
	var record models.PathAccessHistory
	err := r.db.First(&record, "path_key = ?", pathKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *HistoryRepositoryImpl) FindAll() ([]models.PathAccessHistory, error) {
	var records []models.PathAccessHistory
	err := r.db.Order("last_access_time DESC, access_count DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *HistoryRepositoryImpl) FindSince(since time.Time, limit int) ([]models.PathAccessHistory, error) {
	var records []models.PathAccessHistory
	err := r.db.
		Where("last_access_time >= ?", since).
		Order("last_access_time DESC, access_count DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *HistoryRepositoryImpl) Save(record *models.PathAccessHistory) error {
	return r.db.Save(record).Error
}

func (r *HistoryRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.PathAccessHistory{}).Count(&count).Error
	return count, err
}

// Prune keeps the maxEntries most recently accessed records and drops the
// rest, oldest first.
func (r *HistoryRepositoryImpl) Prune(maxEntries int) error {
	return r.db.Exec(`
		DELETE FROM path_access_histories
		WHERE path_key NOT IN (
			SELECT path_key FROM path_access_histories
			ORDER BY last_access_time DESC
			LIMIT ?
		)`, maxEntries).Error
}
