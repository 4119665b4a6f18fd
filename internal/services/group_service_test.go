package services

import (
	"Launchbox/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(group *models.ItemGroup) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockGroupRepository) FindByID(id string) (*models.ItemGroup, error) {
	args := m.Called(id)
	group, ok := args.Get(0).(*models.ItemGroup)
	if !ok {
		return nil, args.Error(1)
	}
	return group, args.Error(1)
}

func (m *MockGroupRepository) FindAll() ([]models.ItemGroup, error) {
	args := m.Called()
	return args.Get(0).([]models.ItemGroup), args.Error(1)
}

func (m *MockGroupRepository) Update(group *models.ItemGroup) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockGroupRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockGroupRepository) FindByProjectID(projectID string) ([]models.ItemGroup, error) {
	args := m.Called(projectID)
	return args.Get(0).([]models.ItemGroup), args.Error(1)
}

func (m *MockGroupRepository) FindByIDAndProjectID(id, projectID string) (*models.ItemGroup, error) {
	args := m.Called(id, projectID)
	group, ok := args.Get(0).(*models.ItemGroup)
	if !ok {
		return nil, args.Error(1)
	}
	return group, args.Error(1)
}

func itemGroup(id, projectID, name string, orderIndex int) models.ItemGroup {
	return models.ItemGroup{
		BaseModel:  models.BaseModel{ID: id},
		ProjectID:  projectID,
		Name:       name,
		OrderIndex: orderIndex,
	}
}

func TestGroupService_GetGroups_SynthesizesAllFirstWithCounts(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewGroupService(mockGroupRepo, mockItemRepo)

	mockGroupRepo.On("FindByProjectID", "p1").Return([]models.ItemGroup{
		itemGroup("g1", "p1", "Docs", 0),
		itemGroup("g2", "p1", "Tools", 1),
	}, nil)
	mockItemRepo.On("FindByProjectID", "p1").Return([]models.LauncherItem{
		launcherItem("i1", "p1", "One", "/one", 0, "g1"),
		launcherItem("i2", "p1", "Two", "/two", 1, "g1", "g2"),
		launcherItem("i3", "p1", "Three", "/three", 2),
	}, nil)

	groups, err := service.GetGroups("p1")

	assert.NoError(t, err)
	assert.Len(t, groups, 3)
	assert.Equal(t, models.GroupAll, groups[0].ID)
	assert.Equal(t, 3, groups[0].ItemCount)
	assert.Equal(t, 2, groups[1].ItemCount)
	assert.Equal(t, 1, groups[2].ItemCount)
}

func TestGroupService_CreateGroup_RejectsReservedName(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewGroupService(mockGroupRepo, mockItemRepo)

	for _, name := range []string{"all", "All", "ALL"} {
		group, err := service.CreateGroup("p1", name)

		assert.ErrorIs(t, err, ErrReservedGroup)
		assert.Nil(t, group)
	}
	mockGroupRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGroupService_RenameGroup_RejectsReservedName(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewGroupService(mockGroupRepo, mockItemRepo)

	group, err := service.RenameGroup("p1", "g1", "All")

	assert.ErrorIs(t, err, ErrReservedGroup)
	assert.Nil(t, group)
	mockGroupRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestGroupService_CreateGroup_AppendsAfterStoredGroups(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewGroupService(mockGroupRepo, mockItemRepo)

	mockGroupRepo.On("FindByProjectID", "p1").Return([]models.ItemGroup{
		itemGroup("g1", "p1", "Docs", 0),
	}, nil)
	mockGroupRepo.On("Create", mock.AnythingOfType("*models.ItemGroup")).Return(nil)

	group, err := service.CreateGroup("p1", "Tools")

	assert.NoError(t, err)
	assert.Equal(t, 1, group.OrderIndex)
	assert.NotEmpty(t, group.ID)
	mockGroupRepo.AssertExpectations(t)
}

func TestGroupService_DeleteGroup_StripsMembershipAndRenumbers(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewGroupService(mockGroupRepo, mockItemRepo)

	victim := itemGroup("g1", "p1", "Docs", 0)
	mockGroupRepo.On("FindByIDAndProjectID", "g1", "p1").Return(&victim, nil)
	mockGroupRepo.On("Delete", "g1").Return(nil)
	mockItemRepo.On("FindByProjectID", "p1").Return([]models.LauncherItem{
		launcherItem("i1", "p1", "One", "/one", 0, "g1", "g2"),
		launcherItem("i2", "p1", "Two", "/two", 1),
	}, nil)

	var stripped *models.LauncherItem
	mockItemRepo.On("Update", mock.AnythingOfType("*models.LauncherItem")).Run(func(args mock.Arguments) {
		stripped = args.Get(0).(*models.LauncherItem)
	}).Return(nil)

	mockGroupRepo.On("FindByProjectID", "p1").Return([]models.ItemGroup{
		itemGroup("g2", "p1", "Tools", 1),
	}, nil)
	mockGroupRepo.On("Update", mock.AnythingOfType("*models.ItemGroup")).Return(nil)

	err := service.DeleteGroup("p1", "g1")

	assert.NoError(t, err)
	assert.NotNil(t, stripped)
	assert.Equal(t, []string{"g2"}, stripped.GroupIDs)
	mockGroupRepo.AssertCalled(t, "Delete", "g1")
}

func TestGroupService_DeleteGroup_RejectsVirtualAll(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewGroupService(mockGroupRepo, mockItemRepo)

	err := service.DeleteGroup("p1", models.GroupAll)

	assert.ErrorIs(t, err, ErrReservedGroup)
	mockGroupRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestGroupService_MoveGroup_VirtualAllIsPinned(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewGroupService(mockGroupRepo, mockItemRepo)

	err := service.MoveGroup("p1", models.GroupAll, "down")

	assert.NoError(t, err)
	mockGroupRepo.AssertNotCalled(t, "FindByProjectID", mock.Anything)
}

func TestGroupService_MoveGroup_LastDownIsNoOp(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewGroupService(mockGroupRepo, mockItemRepo)

	mockGroupRepo.On("FindByProjectID", "p1").Return([]models.ItemGroup{
		itemGroup("g1", "p1", "Docs", 0),
		itemGroup("g2", "p1", "Tools", 1),
	}, nil)

	err := service.MoveGroup("p1", "g2", "down")

	assert.NoError(t, err)
	mockGroupRepo.AssertNotCalled(t, "Update", mock.Anything)
}
