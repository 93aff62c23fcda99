package products

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikhil748/munch-admin-portal/app/api"
	"github.com/nikhil748/munch-admin-portal/models"
)

type ProductResponse struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"category_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url,omitempty"`
	IsAvailable  bool    `json:"is_available"`
	DisplayOrder int     `json:"display_order"`
}

type ListResponse struct {
	Products []ProductResponse `json:"products"`
}

type MutationResponse struct {
	Message  string            `json:"message"`
	Products []ProductResponse `json:"products"`
}

type ProductProvider interface {
	GetAllProducts() ([]models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id string, fields map[string]any) error
	DeleteProduct(id string) error
}

type ProductHandler struct {
	repo ProductProvider
}

func NewProductHandler(r ProductProvider) *ProductHandler {
	return &ProductHandler{repo: r}
}

func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAllProducts()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	api.WriteJSON(w, http.StatusOK, ListResponse{Products: toResponses(products)})
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CategoryID   string `json:"category_id"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		Price        any    `json:"price"`
		ImageURL     string `json:"image_url"`
		DisplayOrder any    `json:"display_order"`
		IsAvailable  *bool  `json:"is_available"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" {
		api.WriteError(w, http.StatusBadRequest, "Missing product name")
		return
	}

	price := api.ParseAmount(input.Price)
	if price.IsNegative() {
		api.WriteError(w, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	product := &models.Product{
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        price,
		ImageURL:     input.ImageURL,
		IsAvailable:  available,
		DisplayOrder: api.ParseOrder(input.DisplayOrder),
	}

	if err := h.repo.CreateProduct(product); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	h.respondWithList(w, http.StatusCreated, "Product created successfully")
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var input struct {
		CategoryID   *string `json:"category_id"`
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		Price        any     `json:"price"`
		ImageURL     *string `json:"image_url"`
		DisplayOrder any     `json:"display_order"`
		IsAvailable  *bool   `json:"is_available"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fields := map[string]any{}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.Name != nil {
		if *input.Name == "" {
			api.WriteError(w, http.StatusBadRequest, "Product name cannot be empty")
			return
		}
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		price := api.ParseAmount(input.Price)
		if price.IsNegative() {
			api.WriteError(w, http.StatusBadRequest, "Price cannot be negative")
			return
		}
		fields["price"] = price
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}
	if input.DisplayOrder != nil {
		fields["display_order"] = api.ParseOrder(input.DisplayOrder)
	}
	if input.IsAvailable != nil {
		fields["is_available"] = *input.IsAvailable
	}

	if len(fields) == 0 {
		api.WriteError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.repo.UpdateProduct(id, fields); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	h.respondWithList(w, http.StatusOK, "Product updated successfully")
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	// Deletion is irreversible, so the client must confirm explicitly.
	if r.URL.Query().Get("confirm") != "true" {
		api.WriteError(w, http.StatusBadRequest, "Deletion requires confirmation")
		return
	}

	id := r.PathValue("id")

	if err := h.repo.DeleteProduct(id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	h.respondWithList(w, http.StatusOK, "Product deleted successfully")
}

// respondWithList re-reads the collection after a successful mutation so
// the client always receives the store's view rather than patching its
// own copy.
func (h *ProductHandler) respondWithList(w http.ResponseWriter, status int, message string) {
	products, err := h.repo.GetAllProducts()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	api.WriteJSON(w, status, MutationResponse{
		Message:  message,
		Products: toResponses(products),
	})
}

func toResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductResponse{
			ID:           p.ID,
			CategoryID:   p.CategoryID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price.InexactFloat64(),
			ImageURL:     p.ImageURL,
			IsAvailable:  p.IsAvailable,
			DisplayOrder: p.DisplayOrder,
		}
	}
	return out
}
