package menu

import (
	"net/http"

	"github.com/nikhil748/munch-admin-portal/app/api"
	"github.com/nikhil748/munch-admin-portal/models"
)

type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url,omitempty"`
	DisplayOrder int     `json:"display_order"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Products    []Product `json:"products"`
}

type Response struct {
	Categories []Category `json:"categories"`
}

type CategoryProvider interface {
	GetActiveCategories() ([]models.MenuCategory, error)
}

type ProductProvider interface {
	GetAvailableProducts() ([]models.Product, error)
}

type MenuHandler struct {
	categories CategoryProvider
	products   ProductProvider
}

func NewMenuHandler(c CategoryProvider, p ProductProvider) *MenuHandler {
	return &MenuHandler{
		categories: c,
		products:   p,
	}
}

// HandleGet serves the public menu: active categories in display order,
// each carrying its available products. If either read fails the whole
// menu fails; a partially joined menu is never served.
func (h *MenuHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetActiveCategories()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to load menu")
		return
	}

	products, err := h.products.GetAvailableProducts()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to load menu")
		return
	}

	api.WriteJSON(w, http.StatusOK, Response{Categories: buildMenu(categories, products)})
}

// buildMenu groups products under their owning category. Products are
// already ordered by the store, so appending preserves their order
// within each category. Products referencing a missing or inactive
// category are dropped.
func buildMenu(categories []models.MenuCategory, products []models.Product) []Category {
	byCategory := make(map[string][]Product, len(categories))
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], Product{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price.InexactFloat64(),
			ImageURL:     p.ImageURL,
			DisplayOrder: p.DisplayOrder,
		})
	}

	menu := make([]Category, len(categories))
	for i, c := range categories {
		items := byCategory[c.ID]
		if items == nil {
			items = []Product{}
		}
		menu[i] = Category{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Products:    items,
		}
	}
	return menu
}
