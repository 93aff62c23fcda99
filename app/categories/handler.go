package categories

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikhil748/munch-admin-portal/app/api"
	"github.com/nikhil748/munch-admin-portal/models"
)

type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type ListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type MutationResponse struct {
	Message    string             `json:"message"`
	Categories []CategoryResponse `json:"categories"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.MenuCategory, error)
	CreateCategory(category *models.MenuCategory) error
	UpdateCategory(id string, fields map[string]any) error
	DeleteCategory(id string) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	api.WriteJSON(w, http.StatusOK, ListResponse{Categories: toResponses(categories)})
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		DisplayOrder any    `json:"display_order"`
		IsActive     *bool  `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" {
		api.WriteError(w, http.StatusBadRequest, "Missing category name")
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	category := &models.MenuCategory{
		Name:         input.Name,
		Description:  input.Description,
		DisplayOrder: api.ParseOrder(input.DisplayOrder),
		IsActive:     active,
	}

	if err := h.repo.CreateCategory(category); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondWithList(w, http.StatusCreated, "Category created successfully")
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var input struct {
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		DisplayOrder any     `json:"display_order"`
		IsActive     *bool   `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fields := map[string]any{}
	if input.Name != nil {
		if *input.Name == "" {
			api.WriteError(w, http.StatusBadRequest, "Category name cannot be empty")
			return
		}
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.DisplayOrder != nil {
		fields["display_order"] = api.ParseOrder(input.DisplayOrder)
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	if len(fields) == 0 {
		api.WriteError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.repo.UpdateCategory(id, fields); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	h.respondWithList(w, http.StatusOK, "Category updated successfully")
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	// Deletion is irreversible, so the client must confirm explicitly.
	if r.URL.Query().Get("confirm") != "true" {
		api.WriteError(w, http.StatusBadRequest, "Deletion requires confirmation")
		return
	}

	id := r.PathValue("id")

	if err := h.repo.DeleteCategory(id); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	h.respondWithList(w, http.StatusOK, "Category deleted successfully")
}

// respondWithList re-reads the collection after a successful mutation so
// the client always receives the store's view rather than patching its
// own copy.
func (h *CategoryHandler) respondWithList(w http.ResponseWriter, status int, message string) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	api.WriteJSON(w, status, MutationResponse{
		Message:    message,
		Categories: toResponses(categories),
	})
}

func toResponses(categories []models.MenuCategory) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			DisplayOrder: c.DisplayOrder,
			IsActive:     c.IsActive,
		}
	}
	return out
}
