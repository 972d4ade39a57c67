package service

import (
	"context"

	"github.com/ecomdash/product-dashboard/internal/models"
)

// EventPublisher is satisfied by mykafka.Producer. A nil publisher disables
// events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

// ProductIndex is satisfied by es.Indexer. A nil index disables mirroring.
type ProductIndex interface {
	IndexProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

const (
	TopicProductEvents = "product_events"
	TopicUserEvents    = "user_events"
)
