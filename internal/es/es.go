// Package es mirrors product writes into an Elasticsearch index. The mirror
// is best-effort: the relational store stays the source of truth and index
// failures never surface to API callers.
package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"

	"github.com/ecomdash/product-dashboard/internal/models"
)

const productIndex = "products"

type Indexer struct {
	client *elasticsearch.Client
}

func NewIndexer(url, user, password string) (*Indexer, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("es: create client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("es: info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("es: info: %s: %s", res.Status(), body)
	}

	return &Indexer{client: client}, nil
}

func (i *Indexer) IndexProduct(ctx context.Context, p *models.Product) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("es: marshal product: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: strconv.FormatUint(uint64(p.ID), 10),
		Body:       bytes.NewReader(doc),
	}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("es: index product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("es: index product: %s", res.Status())
	}
	return nil
}

func (i *Indexer) DeleteProduct(ctx context.Context, id uint) error {
	req := esapi.DeleteRequest{
		Index:      productIndex,
		DocumentID: strconv.FormatUint(uint64(id), 10),
	}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("es: delete product: %w", err)
	}
	defer res.Body.Close()
	// 404 from the index just means the mirror never saw the row.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es: delete product: %s", res.Status())
	}
	return nil
}
