package clients

import (
	"context"
	"net/http"
)

// CareClient fronts the healthcare-location endpoints.
type CareClient struct{ c *Client }

func NewCareClient(c *Client) *CareClient { return &CareClient{c: c} }

func (cc *CareClient) ListLocations(ctx context.Context, rawQuery string, headers http.Header) (*http.Response, error) {
	return cc.c.Do(ctx, http.MethodGet, "/api/care-locations", rawQuery, nil, headers)
}

func (cc *CareClient) GetLocation(ctx context.Context, id, rawQuery string, headers http.Header) (*http.Response, error) {
	return cc.c.Do(ctx, http.MethodGet, "/api/care-locations/"+id, rawQuery, nil, headers)
}
