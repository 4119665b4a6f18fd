package handlers

import (
	"Launchbox/internal/dto"
	"Launchbox/internal/services"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockViewService struct {
	mock.Mock
}

func (m *MockViewService) Resolve(sel services.Selection, query string) ([]dto.ItemViewDTO, error) {
	args := m.Called(sel, query)
	views, ok := args.Get(0).([]dto.ItemViewDTO)
	if !ok {
		return nil, args.Error(1)
	}
	return views, args.Error(1)
}

func viewApp(mockService *MockViewService) *fiber.App {
	app := fiber.New()
	app.Get("/view", NewViewHandler(mockService).ResolveView)
	return app
}

func TestViewHandler_SmartTakesPrecedence(t *testing.T) {
	mockService := new(MockViewService)
	app := viewApp(mockService)

	mockService.On("Resolve",
		services.Selection{Kind: services.SelectionSmart, Smart: "today"}, "").
		Return([]dto.ItemViewDTO{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/view?smart=today&project=p1", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestViewHandler_ProjectWithGroup(t *testing.T) {
	mockService := new(MockViewService)
	app := viewApp(mockService)

	mockService.On("Resolve",
		services.Selection{Kind: services.SelectionGroup, ProjectID: "p1", GroupID: "g1"}, "readme").
		Return([]dto.ItemViewDTO{{Name: "Readme"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/view?project=p1&group=g1&q=readme", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestViewHandler_NoSelectionIsGlobal(t *testing.T) {
	mockService := new(MockViewService)
	app := viewApp(mockService)

	mockService.On("Resolve",
		services.Selection{Kind: services.SelectionNone}, "").
		Return([]dto.ItemViewDTO{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/view", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestViewHandler_NilResultRendersEmptyArray(t *testing.T) {
	mockService := new(MockViewService)
	app := viewApp(mockService)

	mockService.On("Resolve", mock.Anything, mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/view?folder=ghost", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var views []dto.ItemViewDTO
	assert.NoError(t, json.Unmarshal(body, &views))
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
