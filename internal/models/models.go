package models

import "errors"

// Sentinel errors shared by the repo and service layers. The HTTP error
// handler maps them to status codes in one place.
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"not null"                 json:"username"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null;default:user"    json:"role"`
}

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"not null"                 json:"name"`
	Description   string  `json:"description"`
	Price         float64 `gorm:"not null"                 json:"price"`
	StockQuantity int     `gorm:"not null"                 json:"stock_quantity"`
	ImageURL      string  `json:"image_url"`
}
