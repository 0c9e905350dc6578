package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/repticare/storefront/internal/http/dto"
)

type CatalogClient struct{ c *Client }

func NewCatalogClient(c *Client) *CatalogClient { return &CatalogClient{c: c} }

func (cc *CatalogClient) ListProducts(ctx context.Context, rawQuery string, headers http.Header) (*http.Response, error) {
	return cc.c.Do(ctx, http.MethodGet, "/api/products", rawQuery, nil, headers)
}

func (cc *CatalogClient) GetProduct(ctx context.Context, id, rawQuery string, headers http.Header) (*http.Response, error) {
	return cc.c.Do(ctx, http.MethodGet, "/api/products/"+id, rawQuery, nil, headers)
}

// FetchProduct decodes the product shape the cart depends on. Non-200 from
// the backend surfaces as an error with the upstream status.
func (cc *CatalogClient) FetchProduct(ctx context.Context, id string) (dto.Product, error) {
	resp, err := cc.c.Do(ctx, http.MethodGet, "/api/products/"+id, "", nil, http.Header{})
	if err != nil {
		return dto.Product{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dto.Product{}, fmt.Errorf("%w: status %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var p dto.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return dto.Product{}, fmt.Errorf("decode product %s: %w", id, err)
	}
	return p, nil
}
