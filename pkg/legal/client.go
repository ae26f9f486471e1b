package legal

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

const (
	ProviderDeepSeek = "deepseek"
	ProviderGigaChat = "gigachat"
)

// QuickQuestions are the canned prompts offered by the consultant view.
var QuickQuestions = []string{
	"Как рассчитать неустойку за просрочку платежа?",
	"Правомерно ли отключение отопления?",
	"Как оформить акт о заливе квартиры?",
	"Сроки устранения аварийных ситуаций",
}

// Client is the legal consultant orchestrator: one query, one response.
// Each result replaces the previous one in full; sources keep the order the
// backend returned them in.
type Client struct {
	api      *apiclient.Client
	validate *validator.Validate
}

func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api, validate: validator.New()}
}

// Search queries the legal knowledge base.
func (c *Client) Search(ctx context.Context, query string) (*models.LegalSearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.ErrEmptyQuery
	}
	result, err := apiclient.Post[models.LegalSearchResult](
		ctx, c.api, "/api/v1/legal/search", models.LegalSearchRequest{Query: query})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Ask runs a RAG consultation against the chosen provider. An empty or
// whitespace-only query is rejected before any network call.
func (c *Client) Ask(ctx context.Context, query, provider string) (*models.LegalSearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.ErrEmptyQuery
	}
	req := models.LegalAskRequest{Query: query, Provider: provider}
	if err := c.validate.Struct(req); err != nil {
		return nil, models.NewValidationError("provider", "must be deepseek or gigachat")
	}
	result, err := apiclient.Post[models.LegalSearchResult](ctx, c.api, "/api/v1/legal/ask", req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
