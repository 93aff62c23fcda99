package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// GetAllCategories returns every category for admin listings, active or
// not, ordered by display position. Ties on display_order keep creation
// order so re-listing is stable.
func (r *CategoriesRepository) GetAllCategories() ([]MenuCategory, error) {
	var categories []MenuCategory
	if err := r.db.
		Order("display_order ASC, created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetActiveCategories returns only the categories shown on the public menu.
func (r *CategoriesRepository) GetActiveCategories() ([]MenuCategory, error) {
	var categories []MenuCategory
	if err := r.db.
		Where("is_active = ?", true).
		Order("display_order ASC, created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) CreateCategory(category *MenuCategory) error {
	return r.db.Create(category).Error
}

// UpdateCategory applies a partial update. Only the supplied columns are
// touched.
func (r *CategoriesRepository) UpdateCategory(id string, fields map[string]any) error {
	res := r.db.Model(&MenuCategory{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoriesRepository) DeleteCategory(id string) error {
	res := r.db.Where("id = ?", id).Delete(&MenuCategory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
