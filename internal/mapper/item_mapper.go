package mapper

import (
	"Launchbox/internal/dto"
	"Launchbox/internal/models"
)

func ToItemViewDTO(item *models.LauncherItem, projectName, folderPath string) *dto.ItemViewDTO {
	view := &dto.ItemViewDTO{
		ID:          item.ID,
		ProjectID:   item.ProjectID,
		Name:        item.Name,
		Path:        item.Path,
		Description: item.Description,
		Category:    item.Category,
		GroupIDs:    append([]string(nil), item.GroupIDs...),
		OrderIndex:  item.OrderIndex,
		ProjectName: projectName,
		FolderPath:  folderPath,
	}
	if item.LastAccessed != nil {
		t := *item.LastAccessed
		view.LastAccess = &t
	}
	return view
}

func ToHistoryViewDTO(record *models.PathAccessHistory) *dto.ItemViewDTO {
	t := record.LastAccessTime
	return &dto.ItemViewDTO{
		Name:        record.Name,
		Path:        record.Path,
		Category:    record.Category,
		ProjectName: record.ProjectName,
		LastAccess:  &t,
		AccessCount: record.AccessCount,
	}
}

func ToHistoryViewDTOs(records []models.PathAccessHistory) []dto.ItemViewDTO {
	views := make([]dto.ItemViewDTO, 0, len(records))
	for i := range records {
		views = append(views, *ToHistoryViewDTO(&records[i]))
	}
	return views
}
