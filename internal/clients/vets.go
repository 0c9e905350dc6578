package clients

import (
	"context"
	"net/http"
)

type VetsClient struct{ c *Client }

func NewVetsClient(c *Client) *VetsClient { return &VetsClient{c: c} }

func (vc *VetsClient) ListVeterinarians(ctx context.Context, rawQuery string, headers http.Header) (*http.Response, error) {
	return vc.c.Do(ctx, http.MethodGet, "/api/veterinarians", rawQuery, nil, headers)
}

func (vc *VetsClient) GetVeterinarian(ctx context.Context, id, rawQuery string, headers http.Header) (*http.Response, error) {
	return vc.c.Do(ctx, http.MethodGet, "/api/veterinarians/"+id, rawQuery, nil, headers)
}
