package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ecomdash/product-dashboard/internal/models"
	"github.com/ecomdash/product-dashboard/internal/util"
)

// searchScope filters by case-insensitive substring match against name OR
// description. LOWER(...) LIKE keeps the behaviour identical on Postgres
// and sqlite.
func searchScope(search string) func(*gorm.DB) *gorm.DB {
	term := "%" + strings.ToLower(search) + "%"
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
}

// ListProducts returns one page plus the total count of rows matching the
// filter. Canonical order is id DESC (newest first by insertion order).
func (r *GormRepo) ListProducts(ctx context.Context, page, limit int, search string) ([]models.Product, int64, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if search != "" {
		q = q.Scopes(searchScope(search))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]models.Product, 0, limit)
	if err := q.Order("id DESC").Offset(util.Offset(page, limit)).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *GormRepo) ProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

// UpdateProduct overwrites every mutable field of an existing row.
func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, fields models.Product) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	prod.Name = fields.Name
	prod.Description = fields.Description
	prod.Price = fields.Price
	prod.StockQuantity = fields.StockQuantity
	prod.ImageURL = fields.ImageURL

	if err := r.DB.WithContext(ctx).Save(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// DeleteProduct removes the row physically. A second delete of the same id
// reports ErrNotFound, deletion is not idempotent by observation.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// AllProducts loads every row newest-first for the CSV export.
func (r *GormRepo) AllProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
