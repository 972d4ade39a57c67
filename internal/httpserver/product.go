package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ecomdash/product-dashboard/internal/logging"
	"github.com/ecomdash/product-dashboard/internal/models"
	"github.com/ecomdash/product-dashboard/internal/service"
	"github.com/ecomdash/product-dashboard/internal/transport"
	"github.com/ecomdash/product-dashboard/internal/util"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

// paramID parses the :id segment. A non-numeric id cannot name a row, so it
// reports the same ErrNotFound a missing row would.
func paramID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, models.ErrNotFound
	}
	return uint(id), nil
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	page := util.ParseIntDefault(c.QueryParam("page"), util.DefaultPage)
	limit := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultLimit)
	search := c.QueryParam("search")

	resp, err := h.Svc.ListProducts(ctx, page, limit, search)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c)
	if err != nil {
		return err
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		return err
	}

	l.Info("create_product_success", "productID", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		return err
	}

	l.Info("update_product_success", "productID", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return err
	}

	l.Info("delete_product_success", "productID", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Product deleted successfully"})
}

func (h *CatalogHTTP) ExportProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.export")

	csv, err := h.Svc.ExportCSV(ctx)
	if err != nil {
		return err
	}

	l.Info("export_products_success", "bytes", len(csv))
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=products.csv")
	return c.Blob(http.StatusOK, "text/csv", []byte(csv))
}
