package admin

import (
	"context"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// Client covers the admin panel: user management and organization/LLM
// settings. Updates are partial; the backend merges non-zero fields.
type Client struct {
	api *apiclient.Client
}

func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	return apiclient.Get[[]models.User](ctx, c.api, "/api/v1/admin/users")
}

func (c *Client) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	created, err := apiclient.Post[models.User](ctx, c.api, "/api/v1/admin/users", user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, patch *models.User) (*models.User, error) {
	updated, err := apiclient.Put[models.User](ctx, c.api, "/api/v1/admin/users/"+id, patch)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := apiclient.Delete[struct{}](ctx, c.api, "/api/v1/admin/users/"+id)
	return err
}

func (c *Client) GetOrgSettings(ctx context.Context) (*models.OrganizationSettings, error) {
	settings, err := apiclient.Get[models.OrganizationSettings](
		ctx, c.api, "/api/v1/admin/settings/organization")
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) UpdateOrgSettings(ctx context.Context, patch *models.OrganizationSettings) (*models.OrganizationSettings, error) {
	settings, err := apiclient.Put[models.OrganizationSettings](
		ctx, c.api, "/api/v1/admin/settings/organization", patch)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) GetLLMSettings(ctx context.Context) (*models.LLMSettings, error) {
	settings, err := apiclient.Get[models.LLMSettings](ctx, c.api, "/api/v1/admin/settings/llm")
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) UpdateLLMSettings(ctx context.Context, patch *models.LLMSettings) (*models.LLMSettings, error) {
	settings, err := apiclient.Put[models.LLMSettings](ctx, c.api, "/api/v1/admin/settings/llm", patch)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
