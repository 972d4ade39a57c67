package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ecomdash/product-dashboard/internal/models"
	"github.com/ecomdash/product-dashboard/internal/repo"
)

type publishedEvent struct {
	Topic string
	Key   string
	Event map[string]any
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	f.events = append(f.events, publishedEvent{Topic: topic, Key: key, Event: event.(map[string]any)})
	return nil
}

type fakeIndex struct {
	indexed []uint
	deleted []uint
}

func (f *fakeIndex) IndexProduct(_ context.Context, p *models.Product) error {
	f.indexed = append(f.indexed, p.ID)
	return nil
}

func (f *fakeIndex) DeleteProduct(_ context.Context, id uint) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	return repo.New(db)
}
