package services

import (
	"Launchbox/internal/models"
	"Launchbox/internal/ordering"
	"Launchbox/internal/repository"

	"github.com/google/uuid"
)

type ItemService interface {
	AddItem(projectID, name, path, description, category string, groupIDs []string) (*models.LauncherItem, error)
	GetItems(projectID string) ([]models.LauncherItem, error)
	GetItemByID(projectID, itemID string) (*models.LauncherItem, error)
	UpdateItem(projectID, itemID, name, path, description, category string, groupIDs []string) (*models.LauncherItem, error)
	SetItemGroups(projectID, itemID string, groupIDs []string) (*models.LauncherItem, error)
	DeleteItem(projectID, itemID string) error
	MoveItem(projectID, itemID, direction string) error
	RepositionItem(projectID, itemID string, newIndex int) error
}

type itemServiceImpl struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) ItemService {
	return &itemServiceImpl{itemRepo: itemRepo}
}

// AddItem appends an item to the project. An item whose path already exists
// in the project (case-insensitively) is rejected with ErrDuplicatePath, not
// merged.
func (s *itemServiceImpl) AddItem(projectID, name, path, description, category string, groupIDs []string) (*models.LauncherItem, error) {
	existing, err := s.itemRepo.FindByPathAndProjectID(path, projectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicatePath
	}
	siblings, err := s.itemRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}
	item := &models.LauncherItem{
		BaseModel:   models.BaseModel{ID: uuid.NewString()},
		ProjectID:   projectID,
		Name:        name,
		Path:        path,
		Description: description,
		Category:    category,
		GroupIDs:    sanitizeGroupIDs(groupIDs),
		OrderIndex:  len(siblings),
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) GetItems(projectID string) ([]models.LauncherItem, error) {
	return s.itemRepo.FindByProjectID(projectID)
}

func (s *itemServiceImpl) GetItemByID(projectID, itemID string) (*models.LauncherItem, error) {
	return s.itemRepo.FindByIDAndProjectID(itemID, projectID)
}

func (s *itemServiceImpl) UpdateItem(projectID, itemID, name, path, description, category string, groupIDs []string) (*models.LauncherItem, error) {
	item, err := s.itemRepo.FindByIDAndProjectID(itemID, projectID)
	if err != nil || item == nil {
		return nil, err
	}
	if path != "" && models.NormalizePath(path) != models.NormalizePath(item.Path) {
		existing, err := s.itemRepo.FindByPathAndProjectID(path, projectID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != item.ID {
			return nil, ErrDuplicatePath
		}
		item.Path = path
	}
	if name != "" {
		item.Name = name
	}
	item.Description = description
	item.Category = category
	if groupIDs != nil {
		item.GroupIDs = sanitizeGroupIDs(groupIDs)
	}
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) SetItemGroups(projectID, itemID string, groupIDs []string) (*models.LauncherItem, error) {
	item, err := s.itemRepo.FindByIDAndProjectID(itemID, projectID)
	if err != nil || item == nil {
		return nil, err
	}
	item.GroupIDs = sanitizeGroupIDs(groupIDs)
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(projectID, itemID string) error {
	item, err := s.itemRepo.FindByIDAndProjectID(itemID, projectID)
	if err != nil || item == nil {
		return err
	}
	if err := s.itemRepo.Delete(itemID); err != nil {
		return err
	}
	return s.renumberItems(projectID)
}

func (s *itemServiceImpl) MoveItem(projectID, itemID, direction string) error {
	siblings, index, err := s.locate(projectID, itemID)
	if err != nil || index < 0 {
		return err
	}
	delta := -1
	if direction == "down" {
		delta = 1
	}
	if !ordering.Move(siblings, index, delta) {
		return nil
	}
	return s.saveAll(siblings[min(index, index+delta) : max(index, index+delta)+1])
}

func (s *itemServiceImpl) RepositionItem(projectID, itemID string, newIndex int) error {
	siblings, index, err := s.locate(projectID, itemID)
	if err != nil || index < 0 {
		return err
	}
	return s.saveAll(ordering.Reposition(siblings, index, newIndex))
}

func (s *itemServiceImpl) locate(projectID, itemID string) ([]*models.LauncherItem, int, error) {
	list, err := s.itemRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, -1, err
	}
	siblings := make([]*models.LauncherItem, len(list))
	for i := range list {
		siblings[i] = &list[i]
	}
	ordering.Sort(siblings)
	for i, sibling := range siblings {
		if sibling.ID == itemID {
			return siblings, i, nil
		}
	}
	return nil, -1, nil
}

func (s *itemServiceImpl) renumberItems(projectID string) error {
	list, err := s.itemRepo.FindByProjectID(projectID)
	if err != nil {
		return err
	}
	siblings := make([]*models.LauncherItem, len(list))
	for i := range list {
		siblings[i] = &list[i]
	}
	ordering.Sort(siblings)
	return s.saveAll(ordering.Renumber(siblings))
}

func (s *itemServiceImpl) saveAll(items []*models.LauncherItem) error {
	for _, item := range items {
		if err := s.itemRepo.Update(item); err != nil {
			return err
		}
	}
	return nil
}

// sanitizeGroupIDs drops the reserved "all" id; membership in "all" is
// implicit and never stored.
func sanitizeGroupIDs(groupIDs []string) []string {
	cleaned := make([]string, 0, len(groupIDs))
	for _, id := range groupIDs {
		if id == "" || id == models.GroupAll {
			continue
		}
		cleaned = append(cleaned, id)
	}
	return cleaned
}
