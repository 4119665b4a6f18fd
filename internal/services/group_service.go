package services

import (
	"Launchbox/internal/models"
	"Launchbox/internal/ordering"
	"Launchbox/internal/repository"
	"strings"

	"github.com/google/uuid"
)

type GroupService interface {
	GetGroups(projectID string) ([]models.ItemGroup, error)
	CreateGroup(projectID, name string) (*models.ItemGroup, error)
	RenameGroup(projectID, groupID, name string) (*models.ItemGroup, error)
	DeleteGroup(projectID, groupID string) error
	MoveGroup(projectID, groupID, direction string) error
	RepositionGroup(projectID, groupID string, newIndex int) error
}

type groupServiceImpl struct {
	groupRepo repository.GroupRepository
	itemRepo  repository.ItemRepository
}

func NewGroupService(groupRepo repository.GroupRepository, itemRepo repository.ItemRepository) GroupService {
	return &groupServiceImpl{groupRepo: groupRepo, itemRepo: itemRepo}
}

// GetGroups returns the project's groups with the virtual "all" group
// synthesized first. Item counts are derived from the current item
// collection on every call, never read from storage.
func (s *groupServiceImpl) GetGroups(projectID string) ([]models.ItemGroup, error) {
	stored, err := s.groupRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}

	memberCounts := make(map[string]int)
	for _, item := range items {
		for _, groupID := range item.GroupIDs {
			memberCounts[groupID]++
		}
	}

	groups := make([]models.ItemGroup, 0, len(stored)+1)
	groups = append(groups, models.ItemGroup{
		BaseModel: models.BaseModel{ID: models.GroupAll},
		ProjectID: projectID,
		Name:      "All",
		ItemCount: len(items),
	})
	for _, group := range stored {
		group.ItemCount = memberCounts[group.ID]
		groups = append(groups, group)
	}
	return groups, nil
}

// CreateGroup rejects any casing of the reserved "all" name; a stored
// group named "All" would collide with the synthesized virtual group.
func (s *groupServiceImpl) CreateGroup(projectID, name string) (*models.ItemGroup, error) {
	if strings.EqualFold(name, models.GroupAll) {
		return nil, ErrReservedGroup
	}
	stored, err := s.groupRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}
	group := &models.ItemGroup{
		BaseModel:  models.BaseModel{ID: uuid.NewString()},
		ProjectID:  projectID,
		Name:       name,
		OrderIndex: len(stored),
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupServiceImpl) RenameGroup(projectID, groupID, name string) (*models.ItemGroup, error) {
	if groupID == models.GroupAll || strings.EqualFold(name, models.GroupAll) {
		return nil, ErrReservedGroup
	}
	group, err := s.groupRepo.FindByIDAndProjectID(groupID, projectID)
	if err != nil || group == nil {
		return nil, err
	}
	group.Name = name
	if err := s.groupRepo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup removes the group, strips its id from every member item and
// closes the gap in the group ordering. Items left without groups remain
// visible under "all".
func (s *groupServiceImpl) DeleteGroup(projectID, groupID string) error {
	if groupID == models.GroupAll {
		return ErrReservedGroup
	}
	group, err := s.groupRepo.FindByIDAndProjectID(groupID, projectID)
	if err != nil || group == nil {
		return err
	}
	if err := s.groupRepo.Delete(groupID); err != nil {
		return err
	}

	items, err := s.itemRepo.FindByProjectID(projectID)
	if err != nil {
		return err
	}
	for i := range items {
		kept := items[i].GroupIDs[:0]
		removed := false
		for _, id := range items[i].GroupIDs {
			if id == groupID {
				removed = true
				continue
			}
			kept = append(kept, id)
		}
		if removed {
			items[i].GroupIDs = kept
			if err := s.itemRepo.Update(&items[i]); err != nil {
				return err
			}
		}
	}
	return s.renumberGroups(projectID)
}

func (s *groupServiceImpl) MoveGroup(projectID, groupID, direction string) error {
	if groupID == models.GroupAll {
		return nil
	}
	siblings, index, err := s.locate(projectID, groupID)
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

func (s *groupServiceImpl) RepositionGroup(projectID, groupID string, newIndex int) error {
	if groupID == models.GroupAll {
		return nil
	}
	siblings, index, err := s.locate(projectID, groupID)
	if err != nil || index < 0 {
		return err
	}
	return s.saveAll(ordering.Reposition(siblings, index, newIndex))
}

func (s *groupServiceImpl) locate(projectID, groupID string) ([]*models.ItemGroup, int, error) {
	list, err := s.groupRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, -1, err
	}
	siblings := make([]*models.ItemGroup, len(list))
	for i := range list {
		siblings[i] = &list[i]
	}
	ordering.Sort(siblings)
	for i, sibling := range siblings {
		if sibling.ID == groupID {
			return siblings, i, nil
		}
	}
	return nil, -1, nil
}

func (s *groupServiceImpl) renumberGroups(projectID string) error {
	list, err := s.groupRepo.FindByProjectID(projectID)
	if err != nil {
		return err
	}
	siblings := make([]*models.ItemGroup, len(list))
	for i := range list {
		siblings[i] = &list[i]
	}
	ordering.Sort(siblings)
	return s.saveAll(ordering.Renumber(siblings))
}

func (s *groupServiceImpl) saveAll(groups []*models.ItemGroup) error {
	for _, group := range groups {
		if err := s.groupRepo.Update(group); err != nil {
			return err
		}
	}
	return nil
}
