package transport

import "github.com/ecomdash/product-dashboard/internal/models"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProductRequest is the full field set: updates overwrite every mutable
// field, there are no partial-patch semantics.
type ProductRequest struct {
	Name          string  `json:"name"           validate:"required,min=2,max=100"`
	Description   string  `json:"description"    validate:"max=1000"`
	Price         float64 `json:"price"          validate:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	ImageURL      string  `json:"image_url"      validate:"omitempty,url"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type ProductListResponse struct {
	Products   []models.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
