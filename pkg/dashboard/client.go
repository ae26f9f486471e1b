package dashboard

import (
	"context"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// Client fetches the dashboard counters.
type Client struct {
	api *apiclient.Client
}

func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

func (c *Client) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := apiclient.Get[models.DashboardStats](ctx, c.api, "/api/v1/dashboard/stats")
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Health checks backend liveness. Unauthenticated.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	health, err := apiclient.Get[models.HealthStatus](ctx, c.api, "/health")
	if err != nil {
		return nil, err
	}
	return &health, nil
}
