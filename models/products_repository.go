package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetAllProducts returns every product for admin listings, ordered by
// display position with creation order as the tie-break.
func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Order("display_order ASC, created_at ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetAvailableProducts returns only the products shown on the public menu.
func (r *ProductsRepository) GetAvailableProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Where("is_available = ?", true).
		Order("display_order ASC, created_at ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) CreateProduct(product *Product) error {
	return r.db.Create(product).Error
}

func (r *ProductsRepository) UpdateProduct(id string, fields map[string]any) error {
	res := r.db.Model(&Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductsRepository) DeleteProduct(id string) error {
	res := r.db.Where("id = ?", id).Delete(&Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
