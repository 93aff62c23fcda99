package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikhil748/munch-admin-portal/models"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Categories []models.MenuCategory
	ListErr    error
	CreateErr  error
	UpdateErr  error
	DeleteErr  error

	LastSaved         *models.MenuCategory
	LastUpdatedID     string
	LastUpdatedFields map[string]any
	LastDeletedID     string
	listCalls         int
}

func (m *MockCategoryRepo) GetAllCategories() ([]models.MenuCategory, error) {
	m.listCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) CreateCategory(cat *models.MenuCategory) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.LastSaved = cat
	m.Categories = append(m.Categories, *cat)
	return nil
}

func (m *MockCategoryRepo) UpdateCategory(id string, fields map[string]any) error {
	m.LastUpdatedID = id
	m.LastUpdatedFields = fields
	return m.UpdateErr
}

func (m *MockCategoryRepo) DeleteCategory(id string) error {
	m.LastDeletedID = id
	return m.DeleteErr
}

// --- Tests: GET /api/admin/categories ---

func TestHandleList(t *testing.T) {
	testCases := []struct {
		name               string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success includes inactive categories",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					Categories: []models.MenuCategory{
						{ID: "c1", Name: "Cakes", DisplayOrder: 1, IsActive: true},
						{ID: "c2", Name: "Seasonal", DisplayOrder: 2, IsActive: false},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ListResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp.Categories, 2)
				assert.Equal(t, "Cakes", resp.Categories[0].Name)
				assert.False(t, resp.Categories[1].IsActive)
			},
		},
		{
			name: "Success with empty list",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{Categories: []models.MenuCategory{}}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ListResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp.Categories, 0)
			},
		},
		{
			name: "Repository error",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{ListErr: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "failed to fetch categories", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := tc.mockRepoSetup()
			handler := NewCategoryHandler(mockRepo)
			req := httptest.NewRequest("GET", "/api/admin/categories", nil)
			rec := httptest.NewRecorder()

			handler.HandleList(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

// --- Tests: POST /api/admin/categories ---

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:        "Success returns refreshed list",
			requestBody: `{"name":"Cakes","description":"Fresh bakes","display_order":2}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp MutationResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "Category created successfully", resp.Message)
				assert.Len(t, resp.Categories, 1)
				assert.Equal(t, "Cakes", resp.Categories[0].Name)
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.NotNil(t, repo.LastSaved)
				assert.Equal(t, "Cakes", repo.LastSaved.Name)
				assert.Equal(t, "Fresh bakes", repo.LastSaved.Description)
				assert.Equal(t, 2, repo.LastSaved.DisplayOrder)
				assert.True(t, repo.LastSaved.IsActive, "is_active should default to true")
				assert.Equal(t, 1, repo.listCalls, "mutation must be followed by a re-list")
			},
		},
		{
			name:        "Display order accepted as string",
			requestBody: `{"name":"Cakes","display_order":"7"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusCreated,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Equal(t, 7, repo.LastSaved.DisplayOrder)
			},
		},
		{
			name:        "Unparsable display order coerces to zero",
			requestBody: `{"name":"Cakes","display_order":"abc"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusCreated,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Equal(t, 0, repo.LastSaved.DisplayOrder)
			},
		},
		{
			name:        "Invalid JSON body",
			requestBody: `{invalid json`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastSaved, "CreateCategory should not be called with invalid JSON")
			},
		},
		{
			name:        "Missing name is rejected before the store is touched",
			requestBody: `{"description":"No name"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "Missing category name", errResp["error"])
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastSaved)
				assert.Equal(t, 0, repo.listCalls)
			},
		},
		{
			name:        "Repository error on create",
			requestBody: `{"name":"Cakes"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{CreateErr: errors.New("insert failed")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "Failed to create category", errResp["error"])
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Equal(t, 0, repo.listCalls, "no re-list after a failed mutation")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := tc.mockRepoSetup()
			handler := NewCategoryHandler(mockRepo)
			req := httptest.NewRequest("POST", "/api/admin/categories", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.HandleCreate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}

// --- Tests: PATCH /api/admin/categories/{id} ---

func TestHandleUpdate(t *testing.T) {
	testCases := []struct {
		name               string
		id                 string
		requestBody        string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:        "Partial update only touches supplied fields",
			id:          "c1",
			requestBody: `{"name":"Pastries","is_active":false}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusOK,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Equal(t, "c1", repo.LastUpdatedID)
				assert.Equal(t, map[string]any{"name": "Pastries", "is_active": false}, repo.LastUpdatedFields)
				assert.Equal(t, 1, repo.listCalls)
			},
		},
		{
			name:        "Display order string coerces",
			id:          "c1",
			requestBody: `{"display_order":"3"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusOK,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Equal(t, map[string]any{"display_order": 3}, repo.LastUpdatedFields)
			},
		},
		{
			name:        "Empty name rejected",
			id:          "c1",
			requestBody: `{"name":""}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Empty(t, repo.LastUpdatedID)
			},
		},
		{
			name:        "Empty body rejected",
			id:          "c1",
			requestBody: `{}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Empty(t, repo.LastUpdatedID)
			},
		},
		{
			name:        "Unknown id yields 404",
			id:          "missing",
			requestBody: `{"name":"Pastries"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{UpdateErr: models.ErrCategoryNotFound}
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:        "Repository error on update",
			id:          "c1",
			requestBody: `{"name":"Pastries"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{UpdateErr: errors.New("update failed")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Equal(t, 0, repo.listCalls, "no re-list after a failed mutation")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := tc.mockRepoSetup()
			handler := NewCategoryHandler(mockRepo)
			req := httptest.NewRequest("PATCH", "/api/admin/categories/"+tc.id, strings.NewReader(tc.requestBody))
			req.SetPathValue("id", tc.id)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.HandleUpdate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}

// --- Tests: DELETE /api/admin/categories/{id} ---

func TestHandleDelete(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		id                 string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name: "Success with confirmation",
			url:  "/api/admin/categories/c1?confirm=true",
			id:   "c1",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusOK,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Equal(t, "c1", repo.LastDeletedID)
				assert.Equal(t, 1, repo.listCalls)
			},
		},
		{
			name: "Missing confirmation aborts with no side effects",
			url:  "/api/admin/categories/c1",
			id:   "c1",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Empty(t, repo.LastDeletedID, "DeleteCategory should not be called without confirmation")
			},
		},
		{
			name: "Unknown id yields 404",
			url:  "/api/admin/categories/missing?confirm=true",
			id:   "missing",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{DeleteErr: models.ErrCategoryNotFound}
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "Repository error on delete",
			url:  "/api/admin/categories/c1?confirm=true",
			id:   "c1",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{DeleteErr: errors.New("delete failed")}
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := tc.mockRepoSetup()
			handler := NewCategoryHandler(mockRepo)
			req := httptest.NewRequest("DELETE", tc.url, nil)
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			handler.HandleDelete(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}
