package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/ecomdash/product-dashboard/internal/models"
)

// csvQuote double-quotes a text field and doubles internal quotes. Text
// columns are always quoted, numeric columns never are, so encoding/csv
// (which quotes only when forced) cannot produce this layout.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportCSV renders every product as CSV with the fixed header
// ID,Name,Description,Price,Stock Quantity,Image URL. An empty store fails
// with ErrNotFound so the handler can answer 404.
func (s *CatalogService) ExportCSV(ctx context.Context) (string, error) {
	products, err := s.Repo.AllProducts(ctx)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", models.ErrNotFound
	}

	var b strings.Builder
	b.WriteString("ID,Name,Description,Price,Stock Quantity,Image URL")
	for _, p := range products {
		b.WriteByte('\n')
		b.WriteString(strconv.FormatUint(uint64(p.ID), 10))
		b.WriteByte(',')
		b.WriteString(csvQuote(p.Name))
		b.WriteByte(',')
		b.WriteString(csvQuote(p.Description))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Price, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.StockQuantity))
		b.WriteByte(',')
		b.WriteString(csvQuote(p.ImageURL))
	}
	return b.String(), nil
}
