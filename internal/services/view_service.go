package services

import (
	"Launchbox/internal/dto"
	"Launchbox/internal/hierarchy"
	"Launchbox/internal/mapper"
	"Launchbox/internal/repository"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SelectionKind enumerates the mutually exclusive view modes. Selecting a
// project clears any folder, group or smart selection and vice versa; the
// tagged Selection struct makes that exclusivity structural.
type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionProject
	SelectionFolder
	SelectionGroup
	SelectionSmart
)

const (
	SmartToday  = "today"
	SmartWeekly = "weekly"
	SmartRecent = "recent"
)

type Selection struct {
	Kind      SelectionKind
	ProjectID string
	GroupID   string
	Smart     string
}

type ViewService interface {
	Resolve(sel Selection, query string) ([]dto.ItemViewDTO, error)
}

type viewServiceImpl struct {
	projectRepo   repository.ProjectRepository
	accessService AccessService
	collator      *collate.Collator
}

func NewViewService(projectRepo repository.ProjectRepository, accessService AccessService) ViewService {
	return &viewServiceImpl{
		projectRepo:   projectRepo,
		accessService: accessService,
		collator:      collate.New(language.Und, collate.IgnoreCase),
	}
}

// Resolve computes the visible item set for a selection and applies the
// free-text search filter on top. The result is a slice of display copies;
// stored entities are never mutated while rendering.
func (s *viewServiceImpl) Resolve(sel Selection, query string) ([]dto.ItemViewDTO, error) {
	var views []dto.ItemViewDTO
	var err error

	switch sel.Kind {
	case SelectionProject:
		views, err = s.resolveProject(sel.ProjectID, "")
	case SelectionGroup:
		views, err = s.resolveProject(sel.ProjectID, sel.GroupID)
	case SelectionFolder:
		views, err = s.resolveFolder(sel.ProjectID)
	case SelectionSmart:
		views, err = s.resolveSmart(sel.Smart)
	default:
		views, err = s.resolveGlobal()
	}
	if err != nil {
		return nil, err
	}
	return FilterItems(query, views), nil
}

// resolveProject lists one project's items in manual order, optionally
// intersected with a group's membership. The virtual "all" group applies no
// filtering.
func (s *viewServiceImpl) resolveProject(projectID, groupID string) ([]dto.ItemViewDTO, error) {
	project, err := s.projectRepo.FindDetail(projectID)
	if err != nil || project == nil {
		return nil, err
	}

	summaries, err := s.projectRepo.FindSummaries()
	if err != nil {
		return nil, err
	}
	folderPath := hierarchy.FolderPath(hierarchy.Build(summaries).Find(projectID))

	groupNames := make(map[string]string, len(project.Groups))
	for _, group := range project.Groups {
		groupNames[group.ID] = group.Name
	}

	views := make([]dto.ItemViewDTO, 0, len(project.Items))
	for i := range project.Items {
		item := &project.Items[i]
		if !item.InGroup(groupID) {
			continue
		}
		view := mapper.ToItemViewDTO(item, project.Name, folderPath)
		for _, id := range item.GroupIDs {
			if name, ok := groupNames[id]; ok {
				view.GroupNames = append(view.GroupNames, name)
			}
		}
		views = append(views, *view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].OrderIndex < views[j].OrderIndex
	})
	return views, nil
}

// resolveFolder aggregates every non-folder descendant of the folder. Group
// tags are per-project and intentionally ignored across projects; each item
// is stamped with its owning project name and ancestor folder path.
func (s *viewServiceImpl) resolveFolder(folderID string) ([]dto.ItemViewDTO, error) {
	summaries, err := s.projectRepo.FindSummaries()
	if err != nil {
		return nil, err
	}
	forest := hierarchy.Build(summaries)
	node := forest.Find(folderID)
	if node == nil {
		return nil, nil
	}

	wanted := make(map[string]bool)
	for _, project := range hierarchy.Descendants(node) {
		wanted[project.ID] = true
	}
	return s.aggregate(forest, wanted)
}

// resolveGlobal aggregates every item of every non-folder project.
func (s *viewServiceImpl) resolveGlobal() ([]dto.ItemViewDTO, error) {
	summaries, err := s.projectRepo.FindSummaries()
	if err != nil {
		return nil, err
	}
	return s.aggregate(hierarchy.Build(summaries), nil)
}

// aggregate collects items across projects. wanted restricts to a project
// id set; nil means every non-folder project. Group tags never filter here,
// but the resolved group names still ride along so search can match them.
// Ordering is by collated project name, then the item's own manual order.
func (s *viewServiceImpl) aggregate(forest *hierarchy.Forest, wanted map[string]bool) ([]dto.ItemViewDTO, error) {
	projects, err := s.projectRepo.FindNonFolders()
	if err != nil {
		return nil, err
	}

	var views []dto.ItemViewDTO
	for i := range projects {
		project := &projects[i]
		if wanted != nil && !wanted[project.ID] {
			continue
		}
		folderPath := hierarchy.FolderPath(forest.Find(project.ID))
		groupNames := make(map[string]string, len(project.Groups))
		for _, group := range project.Groups {
			groupNames[group.ID] = group.Name
		}
		for j := range project.Items {
			view := mapper.ToItemViewDTO(&project.Items[j], project.Name, folderPath)
			for _, id := range project.Items[j].GroupIDs {
				if name, ok := groupNames[id]; ok {
					view.GroupNames = append(view.GroupNames, name)
				}
			}
			views = append(views, *view)
		}
	}

	sort.SliceStable(views, func(i, j int) bool {
		if c := s.collator.CompareString(views[i].ProjectName, views[j].ProjectName); c != 0 {
			return c < 0
		}
		return views[i].OrderIndex < views[j].OrderIndex
	})
	return views, nil
}

func (s *viewServiceImpl) resolveSmart(tag string) ([]dto.ItemViewDTO, error) {
	switch tag {
	case SmartToday:
		records, err := s.accessService.Today()
		if err != nil {
			return nil, err
		}
		return mapper.ToHistoryViewDTOs(records), nil
	case SmartWeekly:
		records, err := s.accessService.Weekly()
		if err != nil {
			return nil, err
		}
		return mapper.ToHistoryViewDTOs(records), nil
	case SmartRecent:
		return s.accessService.RecentlyUsed()
	}
	return nil, nil
}
