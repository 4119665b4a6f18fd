package services

import (
	"Launchbox/internal/hierarchy"
	"Launchbox/internal/models"
	"Launchbox/internal/ordering"
	"Launchbox/internal/repository"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectService interface {
	CreateProject(name string, parentID *string, isFolder bool) (*models.Project, error)
	GetProjectByID(id string) (*models.Project, error)
	GetProjectSummaries() ([]models.Project, error)
	GetTree() (*hierarchy.Forest, error)
	RenameProject(id, name string) (*models.Project, error)
	ReparentProject(id string, newParentID *string) (*models.Project, error)
	DeleteProject(id string) error
	MoveProject(id, direction string) error
	RepositionProject(id string, newIndex int, newParentID *string) error
}

type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{projectRepo: projectRepo}
}

func (s *projectServiceImpl) CreateProject(name string, parentID *string, isFolder bool) (*models.Project, error) {
	siblings, err := s.projectRepo.FindByParentID(parentID)
	if err != nil {
		return nil, err
	}
	project := &models.Project{
		BaseModel:  models.BaseModel{ID: uuid.NewString()},
		Name:       name,
		ParentID:   parentID,
		IsFolder:   isFolder,
		OrderIndex: len(siblings),
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectServiceImpl) GetProjectByID(id string) (*models.Project, error) {
	return s.projectRepo.FindDetail(id)
}

func (s *projectServiceImpl) GetProjectSummaries() ([]models.Project, error) {
	return s.projectRepo.FindSummaries()
}

func (s *projectServiceImpl) GetTree() (*hierarchy.Forest, error) {
	summaries, err := s.projectRepo.FindSummaries()
	if err != nil {
		return nil, err
	}
	return hierarchy.Build(summaries), nil
}

func (s *projectServiceImpl) RenameProject(id, name string) (*models.Project, error) {
	project, err := s.projectRepo.FindDetail(id)
	if err != nil || project == nil {
		return nil, err
	}
	project.Name = name
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// ReparentProject moves a project (or folder) under a new parent. The move
// is rejected with ErrCycle when the new parent lies inside the project's
// own subtree. Both the old and the new sibling sets are renumbered.
func (s *projectServiceImpl) ReparentProject(id string, newParentID *string) (*models.Project, error) {
	summaries, err := s.projectRepo.FindSummaries()
	if err != nil {
		return nil, err
	}
	if hierarchy.WouldCreateCycle(summaries, id, newParentID) {
		return nil, ErrCycle
	}

	var project *models.Project
	for i := range summaries {
		if summaries[i].ID == id {
			project = &summaries[i]
			break
		}
	}
	if project == nil {
		return nil, nil
	}

	oldParentID := project.ParentID
	project.ParentID = newParentID
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}
	if err := s.renumberSiblings(oldParentID); err != nil {
		return nil, err
	}
	if err := s.renumberSiblings(newParentID); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project and its whole descendant subtree in one
// cascading operation, then closes the gap in the remaining sibling set.
func (s *projectServiceImpl) DeleteProject(id string) error {
	project, err := s.projectRepo.FindDetail(id)
	if err != nil {
		return err
	}
	if project == nil {
		return nil
	}
	if err := s.projectRepo.DeleteSubtree(id); err != nil {
		return err
	}
	return s.renumberSiblings(project.ParentID)
}

// MoveProject swaps the project with its adjacent sibling. direction is
// "up" or "down"; a move past either end of the sibling list is a no-op.
func (s *projectServiceImpl) MoveProject(id, direction string) error {
	project, siblings, index, err := s.locate(id)
	if err != nil || project == nil {
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

// RepositionProject implements drag-target semantics: optional reparent,
// then reinsert at newIndex and renumber densely.
func (s *projectServiceImpl) RepositionProject(id string, newIndex int, newParentID *string) error {
	project, siblings, index, err := s.locate(id)
	if err != nil || project == nil {
		return err
	}

	sameParent := (newParentID == nil && project.ParentID == nil) ||
		(newParentID != nil && project.ParentID != nil && *newParentID == *project.ParentID)

	if sameParent {
		changed := ordering.Reposition(siblings, index, newIndex)
		return s.saveAll(changed)
	}

	if _, err := s.ReparentProject(id, newParentID); err != nil {
		return err
	}
	_, siblings, index, err = s.locate(id)
	if err != nil {
		return err
	}
	changed := ordering.Reposition(siblings, index, newIndex)
	return s.saveAll(changed)
}

// locate resolves a project together with its ordered sibling set. An
// unknown id is a no-op for the callers, but a real storage error still
// propagates.
func (s *projectServiceImpl) locate(id string) (*models.Project, []*models.Project, int, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, nil
		}
		return nil, nil, 0, err
	}
	if project == nil {
		return nil, nil, 0, nil
	}
	list, err := s.projectRepo.FindByParentID(project.ParentID)
	if err != nil {
		return nil, nil, 0, err
	}
	siblings := make([]*models.Project, len(list))
	for i := range list {
		siblings[i] = &list[i]
	}
	ordering.Sort(siblings)
	for i, sibling := range siblings {
		if sibling.ID == id {
			return sibling, siblings, i, nil
		}
	}
	return nil, nil, 0, nil
}

func (s *projectServiceImpl) renumberSiblings(parentID *string) error {
	list, err := s.projectRepo.FindByParentID(parentID)
	if err != nil {
		return err
	}
	siblings := make([]*models.Project, len(list))
	for i := range list {
		siblings[i] = &list[i]
	}
	ordering.Sort(siblings)
	return s.saveAll(ordering.Renumber(siblings))
}

func (s *projectServiceImpl) saveAll(projects []*models.Project) error {
	for _, project := range projects {
		if err := s.projectRepo.Update(project); err != nil {
			return err
		}
	}
	return nil
}
