package repository

import (
	"Launchbox/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDBWithProjects() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	err := db.AutoMigrate(&models.Project{}, &models.ItemGroup{}, &models.LauncherItem{})
	if err != nil {
		panic(err)
	}
	return db
}

func seedProject(db *gorm.DB, id, name string, parentID *string, isFolder bool, orderIndex int) {
	db.Create(&models.Project{
		BaseModel:  models.BaseModel{ID: id},
		Name:       name,
		ParentID:   parentID,
		IsFolder:   isFolder,
		OrderIndex: orderIndex,
	})
}

func seedSubtree(db *gorm.DB) {
	// F (folder) -> G (folder) -> Q (project with one group and one item),
	// plus an unrelated root project.
	f := "f"
	g := "g"
	seedProject(db, "f", "F", nil, true, 0)
	seedProject(db, "g", "G", &f, true, 0)
	seedProject(db, "q", "Q", &g, false, 0)
	seedProject(db, "other", "Other", nil, false, 1)
	db.Create(&models.ItemGroup{BaseModel: models.BaseModel{ID: "grp"}, ProjectID: "q", Name: "Docs"})
	db.Create(&models.LauncherItem{BaseModel: models.BaseModel{ID: "itm"}, ProjectID: "q", Name: "Readme", Path: "/q/readme"})
	db.Create(&models.LauncherItem{BaseModel: models.BaseModel{ID: "keep"}, ProjectID: "other", Name: "Keep", Path: "/other/keep"})
}

func TestProjectRepository_FindByParentID(t *testing.T) {
	db := setupTestDBWithProjects()
	projectRepo := NewProjectRepository(db)
	seedSubtree(db)

	roots, err := projectRepo.FindByParentID(nil)
	assert.NoError(t, err)
	assert.Len(t, roots, 2)
	assert.Equal(t, "F", roots[0].Name)

	f := "f"
	children, err := projectRepo.FindByParentID(&f)
	assert.NoError(t, err)
	assert.Len(t, children, 1)
	assert.Equal(t, "G", children[0].Name)
}

func TestProjectRepository_FindDetail_NotFound(t *testing.T) {
	db := setupTestDBWithProjects()
	projectRepo := NewProjectRepository(db)

	project, err := projectRepo.FindDetail("ghost")

	assert.NoError(t, err)
	assert.Nil(t, project)
}

func TestProjectRepository_FindNonFolders_PreloadsGroupsAndItems(t *testing.T) {
	db := setupTestDBWithProjects()
	projectRepo := NewProjectRepository(db)
	seedSubtree(db)

	projects, err := projectRepo.FindNonFolders()

	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "Q", projects[0].Name)
	assert.Len(t, projects[0].Groups, 1)
	assert.Equal(t, "Docs", projects[0].Groups[0].Name)
	assert.Len(t, projects[0].Items, 1)
	assert.Equal(t, "Readme", projects[0].Items[0].Name)
}

func TestProjectRepository_DeleteSubtree_CascadesAndSparesSiblings(t *testing.T) {
	db := setupTestDBWithProjects()
	projectRepo := NewProjectRepository(db)
	itemRepo := NewItemRepository(db)
	groupRepo := NewGroupRepository(db)
	seedSubtree(db)

	err := projectRepo.DeleteSubtree("f")
	assert.NoError(t, err)

	summaries, err := projectRepo.FindSummaries()
	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "Other", summaries[0].Name)

	item, err := itemRepo.FindByIDAndProjectID("itm", "q")
	assert.NoError(t, err)
	assert.Nil(t, item)
	group, err := groupRepo.FindByIDAndProjectID("grp", "q")
	assert.NoError(t, err)
	assert.Nil(t, group)

	kept, err := itemRepo.FindByIDAndProjectID("keep", "other")
	assert.NoError(t, err)
	assert.NotNil(t, kept)

	// Soft-deleted rows stay visible to the janitor.
	deleted, err := projectRepo.FindDeleted()
	assert.NoError(t, err)
	assert.Len(t, deleted, 3)
}

func TestProjectRepository_HardDeleteSubtree_PurgesRows(t *testing.T) {
	db := setupTestDBWithProjects()
	projectRepo := NewProjectRepository(db)
	seedSubtree(db)

	err := projectRepo.DeleteSubtree("f")
	assert.NoError(t, err)
	err = projectRepo.HardDeleteSubtree("f")
	assert.NoError(t, err)

	var projectCount, itemCount, groupCount int64
	db.Unscoped().Model(&models.Project{}).Count(&projectCount)
	db.Unscoped().Model(&models.LauncherItem{}).Count(&itemCount)
	db.Unscoped().Model(&models.ItemGroup{}).Count(&groupCount)
	assert.Equal(t, int64(1), projectCount, "only the unrelated project remains")
	assert.Equal(t, int64(1), itemCount)
	assert.Equal(t, int64(0), groupCount)
}

func TestItemRepository_FindByPathAndProjectID_IgnoresCase(t *testing.T) {
	db := setupTestDBWithProjects()
	itemRepo := NewItemRepository(db)
	seedSubtree(db)

	item, err := itemRepo.FindByPathAndProjectID("/Q/README", "q")

	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.Equal(t, "itm", item.ID)
}
