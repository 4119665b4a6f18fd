package services

import (
	"Launchbox/internal/dto"
	"strings"
)

// FilterItems applies multi-term AND search over the resolved view. The
// query is split on whitespace; an item survives only if every token is a
// case-insensitive substring of its combined name, path, category,
// description and group names. An empty query returns the input unchanged,
// and the input order is always preserved, so filtering is idempotent.
func FilterItems(query string, views []dto.ItemViewDTO) []dto.ItemViewDTO {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return views
	}

	filtered := make([]dto.ItemViewDTO, 0, len(views))
	for _, view := range views {
		haystack := strings.ToLower(strings.Join([]string{
			view.Name,
			view.Path,
			view.Category,
			view.Description,
			strings.Join(view.GroupNames, " "),
		}, " "))

		matched := true
		for _, token := range tokens {
			if !strings.Contains(haystack, token) {
				matched = false
				break
			}
		}
		if matched {
			filtered = append(filtered, view)
		}
	}
	return filtered
}
