package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ecomdash/product-dashboard/internal/logging"
	"github.com/ecomdash/product-dashboard/internal/models"
	"github.com/ecomdash/product-dashboard/internal/repo"
	"github.com/ecomdash/product-dashboard/internal/transport"
	"github.com/ecomdash/product-dashboard/internal/util"
	"github.com/ecomdash/product-dashboard/internal/validate"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer EventPublisher
	Index    ProductIndex
}

func NewCatalogService(r *repo.GormRepo, producer EventPublisher, index ProductIndex) *CatalogService {
	return &CatalogService{Repo: r, Producer: producer, Index: index}
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", TopicProductEvents, "error", err)
	}
}

func (s *CatalogService) mirrorIndex(ctx context.Context, p *models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Error("es_index_error", "productID", p.ID, "error", err)
	}
}

func (s *CatalogService) mirrorDelete(ctx context.Context, id uint) {
	if s.Index == nil {
		return
	}
	if err := s.Index.DeleteProduct(ctx, id); err != nil {
		logging.FromContext(ctx).Error("es_delete_error", "productID", id, "error", err)
	}
}

// ListProducts returns one page and the pagination envelope. total counts
// every row matching the filter, len(items) never exceeds limit.
func (s *CatalogService) ListProducts(ctx context.Context, page, limit int, search string) (*transport.ProductListResponse, error) {
	items, total, err := s.Repo.ListProducts(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}

	return &transport.ProductListResponse{
		Products: items,
		Pagination: transport.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: util.TotalPages(total, limit),
		},
	}, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.ProductByID(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	prod := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}
	if err := s.Repo.CreateProduct(ctx, &prod); err != nil {
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(prod.ID), map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	})
	s.mirrorIndex(ctx, &prod)

	return &prod, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	prod, err := s.Repo.UpdateProduct(ctx, id, models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(prod.ID), map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})
	s.mirrorIndex(ctx, prod)

	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	s.mirrorDelete(ctx, id)

	return nil
}
