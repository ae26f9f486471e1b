package documents

import (
	"context"
	"io"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// Client manages the knowledge-base document list.
type Client struct {
	api *apiclient.Client
}

func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

func (c *Client) List(ctx context.Context) ([]models.DocumentItem, error) {
	return apiclient.Get[[]models.DocumentItem](ctx, c.api, "/api/v1/documents")
}

func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (*models.DocumentUploadResult, error) {
	result, err := apiclient.UploadFile[models.DocumentUploadResult](
		ctx, c.api, "/api/v1/documents/upload", filename, content)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
