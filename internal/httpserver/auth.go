package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomdash/product-dashboard/internal/logging"
	authmw "github.com/ecomdash/product-dashboard/internal/middleware/auth"
	"github.com/ecomdash/product-dashboard/internal/service"
	"github.com/ecomdash/product-dashboard/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		return err
	}

	l.Info("register_success", "userID", user.ID)
	return c.JSON(http.StatusCreated, transport.NewUserResponse(user))
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, user, err := h.Svc.Login(ctx, req)
	if err != nil {
		return err
	}

	l.Info("login_success", "userID", user.ID)
	return c.JSON(http.StatusOK, transport.LoginResponse{
		Token: token,
		User:  transport.NewUserResponse(user),
	})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	id, ok := authmw.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing user context")
	}

	user, err := h.Svc.CurrentUser(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.NewUserResponse(user))
}
