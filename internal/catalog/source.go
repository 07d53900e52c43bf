// Package catalog fetches the storefront product catalogue and tracks the
// state of the last fetch.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/exclusive-store/server/internal/model"
)

// Source loads the full product catalogue.
type Source interface {
	FetchAll(ctx context.Context) (model.ProductList, error)
}

// HTTPSource reads the catalogue from a JSON endpoint. The body is either an
// array of products or an object with a "products" array.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{url: url, client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSource) FetchAll(ctx context.Context) (model.ProductList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalogue request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalogue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalogue: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalogue body: %w", err)
	}
	return decodeProducts(body)
}

func decodeProducts(body []byte) (model.ProductList, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Products model.ProductList `json:"products"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("decode catalogue: %w", err)
		}
		return nonNil(wrapped.Products), nil
	}

	var list model.ProductList
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	return nonNil(list), nil
}

func nonNil(list model.ProductList) model.ProductList {
	if list == nil {
		return model.ProductList{}
	}
	return list
}

// StaticSource serves a fixed catalogue.
type StaticSource struct {
	products model.ProductList
}

func NewStaticSource(products model.ProductList) *StaticSource {
	return &StaticSource{products: products}
}

func (s *StaticSource) FetchAll(ctx context.Context) (model.ProductList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.products.Clone(), nil
}

var (
	_ Source = (*HTTPSource)(nil)
	_ Source = (*StaticSource)(nil)
)
