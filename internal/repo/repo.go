// Package repo holds the gorm-backed persistence layer. Each call is a
// single statement; the store's own atomicity is the only transactional
// guarantee relied upon.
package repo

import "gorm.io/gorm"

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
