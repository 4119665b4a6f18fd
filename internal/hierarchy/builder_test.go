package hierarchy

import (
	"Launchbox/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func project(id, name string, parentID *string, isFolder bool, orderIndex int) models.Project {
	return models.Project{
		BaseModel:  models.BaseModel{ID: id},
		Name:       name,
		ParentID:   parentID,
		IsFolder:   isFolder,
		OrderIndex: orderIndex,
	}
}

func strPtr(s string) *string { return &s }

func TestBuild_OneNodePerProject(t *testing.T) {
	projects := []models.Project{
		project("f1", "Work", nil, true, 0),
		project("p1", "API", strPtr("f1"), false, 0),
		project("p2", "Docs", strPtr("f1"), false, 1),
		project("p3", "Scratch", nil, false, 1),
	}

	forest := Build(projects)

	assert.Equal(t, 4, forest.Len())
	assert.Len(t, forest.Roots, 2)
	work := forest.Find("f1")
	assert.Len(t, work.Children, 2)
	assert.Equal(t, "API", work.Children[0].Name)
	assert.Equal(t, "Docs", work.Children[1].Name)
}

func TestBuild_DanglingParentPromotedToRoot(t *testing.T) {
	projects := []models.Project{
		project("p1", "Orphan", strPtr("missing"), false, 0),
	}

	forest := Build(projects)

	assert.Len(t, forest.Roots, 1)
	assert.Equal(t, "Orphan", forest.Roots[0].Name)
	assert.Nil(t, forest.Roots[0].Parent)
}

func TestBuild_SelfParentPromotedToRoot(t *testing.T) {
	projects := []models.Project{
		project("p1", "Loop", strPtr("p1"), false, 0),
	}

	forest := Build(projects)

	assert.Len(t, forest.Roots, 1)
	assert.Nil(t, forest.Roots[0].Parent)
}

func TestBuild_TwoNodeParentCycleStaysReachable(t *testing.T) {
	projects := []models.Project{
		project("a", "A", strPtr("b"), true, 0),
		project("b", "B", strPtr("a"), false, 0),
	}

	forest := Build(projects)

	var visited []string
	forest.Walk(func(node *ProjectNode) {
		visited = append(visited, node.Name)
	})

	assert.Equal(t, 2, forest.Len())
	assert.Len(t, visited, 2)
	assert.Len(t, forest.Roots, 1)
	// The first cycle member in input order is promoted; the other stays
	// its child.
	assert.Equal(t, "A", forest.Roots[0].Name)
	assert.Nil(t, forest.Roots[0].Parent)
	assert.Len(t, forest.Roots[0].Children, 1)
	assert.Equal(t, "B", forest.Roots[0].Children[0].Name)
}

func TestBuild_LongerParentCycleStaysReachable(t *testing.T) {
	projects := []models.Project{
		project("a", "A", strPtr("c"), true, 0),
		project("b", "B", strPtr("a"), true, 0),
		project("c", "C", strPtr("b"), false, 0),
		project("p1", "Outside", nil, false, 0),
	}

	forest := Build(projects)

	visited := 0
	forest.Walk(func(node *ProjectNode) { visited++ })

	assert.Equal(t, 4, forest.Len())
	assert.Equal(t, 4, visited)
	assert.Len(t, forest.Roots, 2)
}

func TestBuild_SiblingsSortedByOrderIndex(t *testing.T) {
	projects := []models.Project{
		project("p3", "Third", nil, false, 2),
		project("p1", "First", nil, false, 0),
		project("p2", "Second", nil, false, 1),
	}

	forest := Build(projects)

	assert.Equal(t, "First", forest.Roots[0].Name)
	assert.Equal(t, "Second", forest.Roots[1].Name)
	assert.Equal(t, "Third", forest.Roots[2].Name)
}

func TestBuild_FolderNodesCarryNoProject(t *testing.T) {
	projects := []models.Project{
		project("f1", "Work", nil, true, 0),
		project("p1", "API", nil, false, 1),
	}

	forest := Build(projects)

	assert.Nil(t, forest.Find("f1").Project)
	assert.NotNil(t, forest.Find("p1").Project)
	assert.Equal(t, FolderMarker+"Work", forest.Find("f1").Label)
	assert.Equal(t, "API", forest.Find("p1").Label)
}

func TestWalk_DepthFirstInSiblingOrder(t *testing.T) {
	projects := []models.Project{
		project("f1", "A", nil, true, 0),
		project("p1", "A1", strPtr("f1"), false, 0),
		project("f2", "A2", strPtr("f1"), true, 1),
		project("p2", "A2a", strPtr("f2"), false, 0),
		project("p3", "B", nil, false, 1),
	}

	var visited []string
	Build(projects).Walk(func(node *ProjectNode) {
		visited = append(visited, node.Name)
	})

	assert.Equal(t, []string{"A", "A1", "A2", "A2a", "B"}, visited)
}

func TestDescendants_CollectsNonFoldersOnly(t *testing.T) {
	projects := []models.Project{
		project("f1", "Work", nil, true, 0),
		project("f2", "Inner", strPtr("f1"), true, 0),
		project("p1", "API", strPtr("f2"), false, 0),
		project("p2", "Docs", strPtr("f1"), false, 1),
		project("p3", "Elsewhere", nil, false, 1),
	}

	forest := Build(projects)
	descendants := Descendants(forest.Find("f1"))

	names := make([]string, len(descendants))
	for i, p := range descendants {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"API", "Docs"}, names)
}

func TestDescendants_NilNode(t *testing.T) {
	assert.Nil(t, Descendants(nil))
}

func TestFolderPath_RootLevel(t *testing.T) {
	projects := []models.Project{
		project("p1", "API", nil, false, 0),
	}
	forest := Build(projects)

	assert.Equal(t, RootLabel, FolderPath(forest.Find("p1")))
}

func TestFolderPath_NestedFolders(t *testing.T) {
	projects := []models.Project{
		project("f1", "Work", nil, true, 0),
		project("f2", "Backend", strPtr("f1"), true, 0),
		project("p1", "API", strPtr("f2"), false, 0),
	}
	forest := Build(projects)

	assert.Equal(t, "Work"+PathSeparator+"Backend", FolderPath(forest.Find("p1")))
}

func TestWouldCreateCycle(t *testing.T) {
	projects := []models.Project{
		project("f1", "Work", nil, true, 0),
		project("f2", "Inner", strPtr("f1"), true, 0),
		project("p1", "API", strPtr("f2"), false, 0),
		project("p2", "Other", nil, false, 1),
	}

	assert.True(t, WouldCreateCycle(projects, "f1", strPtr("f2")), "moving a folder under its own child")
	assert.True(t, WouldCreateCycle(projects, "f1", strPtr("f1")), "self parent")
	assert.False(t, WouldCreateCycle(projects, "f2", strPtr("p2")))
	assert.False(t, WouldCreateCycle(projects, "f2", nil))
	assert.False(t, WouldCreateCycle(projects, "p1", strPtr("f1")))
}

func TestWouldCreateCycle_UnknownParentChainStops(t *testing.T) {
	projects := []models.Project{
		project("p1", "A", strPtr("ghost"), false, 0),
	}

	assert.False(t, WouldCreateCycle(projects, "p1", strPtr("ghost")))
}
