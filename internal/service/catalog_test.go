package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecomdash/product-dashboard/internal/models"
	"github.com/ecomdash/product-dashboard/internal/transport"
)

func validProduct() transport.ProductRequest {
	return transport.ProductRequest{
		Name:          "Widget",
		Description:   "a widget",
		Price:         9.99,
		StockQuantity: 5,
	}
}

func TestCreateProduct(t *testing.T) {
	pub := &fakePublisher{}
	idx := &fakeIndex{}
	svc := NewCatalogService(newTestRepo(t), pub, idx)

	prod, err := svc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)
	require.NotZero(t, prod.ID)
	require.Equal(t, "Widget", prod.Name)
	require.Equal(t, 9.99, prod.Price)
	require.Equal(t, 5, prod.StockQuantity)

	require.Len(t, pub.events, 1)
	require.Equal(t, TopicProductEvents, pub.events[0].Topic)
	require.Equal(t, "product_created", pub.events[0].Event["type"])
	require.Equal(t, prod.ID, pub.events[0].Event["productID"])

	require.Equal(t, []uint{prod.ID}, idx.indexed)

	// Round trip: the stored record matches the response.
	got, err := svc.GetProduct(context.Background(), prod.ID)
	require.NoError(t, err)
	require.Equal(t, prod.Name, got.Name)
	require.Equal(t, prod.Price, got.Price)
	require.Equal(t, prod.StockQuantity, got.StockQuantity)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), nil, nil)

	cases := []struct {
		name string
		mod  func(*transport.ProductRequest)
	}{
		{"name too short", func(r *transport.ProductRequest) { r.Name = "x" }},
		{"name missing", func(r *transport.ProductRequest) { r.Name = "" }},
		{"price zero", func(r *transport.ProductRequest) { r.Price = 0 }},
		{"price negative", func(r *transport.ProductRequest) { r.Price = -1 }},
		{"stock negative", func(r *transport.ProductRequest) { r.StockQuantity = -1 }},
		{"bad image url", func(r *transport.ProductRequest) { r.ImageURL = "not a url" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validProduct()
			tc.mod(&req)
			_, err := svc.CreateProduct(context.Background(), req)
			require.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewCatalogService(newTestRepo(t), pub, nil)

	prod, err := svc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), prod.ID, transport.ProductRequest{
		Name:          "Widget v2",
		Description:   "",
		Price:         19.99,
		StockQuantity: 0,
		ImageURL:      "https://example.com/w.png",
	})
	require.NoError(t, err)
	require.Equal(t, prod.ID, updated.ID)
	require.Equal(t, "Widget v2", updated.Name)
	// Full overwrite: every mutable field takes the supplied value.
	require.Equal(t, "", updated.Description)
	require.Equal(t, 0, updated.StockQuantity)

	require.Equal(t, "product_updated", pub.events[len(pub.events)-1].Event["type"])
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), nil, nil)
	_, err := svc.UpdateProduct(context.Background(), 999, validProduct())
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	pub := &fakePublisher{}
	idx := &fakeIndex{}
	svc := NewCatalogService(newTestRepo(t), pub, idx)

	prod, err := svc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), prod.ID))
	require.Equal(t, []uint{prod.ID}, idx.deleted)
	require.Equal(t, "product_deleted", pub.events[len(pub.events)-1].Event["type"])

	_, err = svc.GetProduct(context.Background(), prod.ID)
	require.ErrorIs(t, err, models.ErrNotFound)

	err = svc.DeleteProduct(context.Background(), prod.ID)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestListProductsPaginationEnvelope(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), nil, nil)

	for i := 1; i <= 5; i++ {
		req := validProduct()
		req.Name = fmt.Sprintf("Product %d", i)
		_, err := svc.CreateProduct(context.Background(), req)
		require.NoError(t, err)
	}

	resp, err := svc.ListProducts(context.Background(), 2, 2, "")
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)
	require.Equal(t, 2, resp.Pagination.Page)
	require.Equal(t, 2, resp.Pagination.Limit)
	require.EqualValues(t, 5, resp.Pagination.Total)
	require.Equal(t, 3, resp.Pagination.TotalPages)

	// Newest first: page 2 of size 2 holds products 3 and 2.
	require.Equal(t, "Product 3", resp.Products[0].Name)
	require.Equal(t, "Product 2", resp.Products[1].Name)
}

func TestListProductsSearchSingleMatch(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), nil, nil)

	names := []string{"Alpha Keyboard", "Beta Mouse", "Gamma Monitor"}
	for _, n := range names {
		req := validProduct()
		req.Name = n
		_, err := svc.CreateProduct(context.Background(), req)
		require.NoError(t, err)
	}

	resp, err := svc.ListProducts(context.Background(), 1, 10, "MOUSE")
	require.NoError(t, err)
	require.EqualValues(t, 1, resp.Pagination.Total)
	require.Len(t, resp.Products, 1)
	require.Equal(t, "Beta Mouse", resp.Products[0].Name)
}
