package services

import (
	"Launchbox/internal/config"
	"Launchbox/internal/dto"
	"Launchbox/internal/hierarchy"
	"Launchbox/internal/mapper"
	"Launchbox/internal/models"
	"Launchbox/internal/repository"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type AccessService interface {
	RecordAccess(path, name, category, projectName string) (*models.PathAccessHistory, error)
	Today() ([]models.PathAccessHistory, error)
	Weekly() ([]models.PathAccessHistory, error)
	RecentlyUsed() ([]dto.ItemViewDTO, error)
}

type accessServiceImpl struct {
	historyRepo   repository.HistoryRepository
	itemRepo      repository.ItemRepository
	projectRepo   repository.ProjectRepository
	configuration *config.Configuration
	collator      *collate.Collator
	now           func() time.Time
}

func NewAccessService(
	historyRepo repository.HistoryRepository,
	itemRepo repository.ItemRepository,
	projectRepo repository.ProjectRepository,
	configuration *config.Configuration,
) AccessService {
	return &accessServiceImpl{
		historyRepo:   historyRepo,
		itemRepo:      itemRepo,
		projectRepo:   projectRepo,
		configuration: configuration,
		collator:      collate.New(language.Und, collate.IgnoreCase),
		now:           time.Now,
	}
}

// RecordAccess upserts the history record for a launched path. Lookup is
// case-insensitive, so "C:\a.txt" and "c:\A.TXT" always share one record.
// The display metadata is overwritten with the latest launch context. The
// log is pruned to the configured cap after every mutation.
func (s *accessServiceImpl) RecordAccess(path, name, category, projectName string) (*models.PathAccessHistory, error) {
	now := s.now()
	key := models.NormalizePath(path)

	record, err := s.historyRepo.FindByKey(key)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &models.PathAccessHistory{PathKey: key}
	}
	record.Path = path
	record.Name = name
	record.Category = category
	record.ProjectName = projectName
	record.LastAccessTime = now
	record.AccessCount++
	if err := s.historyRepo.Save(record); err != nil {
		return nil, err
	}

	if err := s.itemRepo.TouchByPath(path, now); err != nil {
		return nil, err
	}

	count, err := s.historyRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > int64(s.configuration.History.MaxEntries) {
		if err := s.historyRepo.Prune(s.configuration.History.MaxEntries); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// Today returns records accessed on the current calendar date, most recent
// first, ties broken by access count.
func (s *accessServiceImpl) Today() ([]models.PathAccessHistory, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.historyRepo.FindSince(startOfDay, s.configuration.History.TodayLimit)
}

// Weekly returns records accessed within the last seven days.
func (s *accessServiceImpl) Weekly() ([]models.PathAccessHistory, error) {
	return s.historyRepo.FindSince(s.now().Add(-7*24*time.Hour), s.configuration.History.WeeklyLimit)
}

// RecentlyUsed joins every item of every non-folder project against the
// access log by path. Items never launched still appear, after all accessed
// ones, in a stable collated order.
func (s *accessServiceImpl) RecentlyUsed() ([]dto.ItemViewDTO, error) {
	summaries, err := s.projectRepo.FindSummaries()
	if err != nil {
		return nil, err
	}
	forest := hierarchy.Build(summaries)

	projects, err := s.projectRepo.FindNonFolders()
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.FindAll()
	if err != nil {
		return nil, err
	}
	byPath := make(map[string]*models.PathAccessHistory, len(history))
	for i := range history {
		byPath[history[i].PathKey] = &history[i]
	}

	var views []dto.ItemViewDTO
	for i := range projects {
		project := &projects[i]
		folderPath := hierarchy.FolderPath(forest.Find(project.ID))
		for j := range project.Items {
			view := mapper.ToItemViewDTO(&project.Items[j], project.Name, folderPath)
			if record, ok := byPath[models.NormalizePath(view.Path)]; ok {
				t := record.LastAccessTime
				view.LastAccess = &t
				view.AccessCount = record.AccessCount
			} else {
				view.LastAccess = nil
				view.AccessCount = 0
			}
			views = append(views, *view)
		}
	}

	sort.SliceStable(views, func(i, j int) bool {
		ti, tj := accessTime(&views[i]), accessTime(&views[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		if views[i].AccessCount != views[j].AccessCount {
			return views[i].AccessCount > views[j].AccessCount
		}
		if c := s.collator.CompareString(views[i].ProjectName, views[j].ProjectName); c != 0 {
			return c < 0
		}
		return s.collator.CompareString(views[i].Name, views[j].Name) < 0
	})
	return views, nil
}

func accessTime(view *dto.ItemViewDTO) time.Time {
	if view.LastAccess == nil {
		return time.Time{}
	}
	return *view.LastAccess
}
