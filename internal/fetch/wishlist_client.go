package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"

	"sentwatch/internal/models"
	"sentwatch/internal/providers"
	"sentwatch/internal/structures"
)

const defaultFetchTimeout = 15 * time.Second

// WishlistFetcherInterface fetches the entire public wishlist collection.
// One call per run, shared across all profiles; its failure is fatal for
// the run.
type WishlistFetcherInterface interface {
	FetchDocuments(ctx context.Context) ([]models.WishlistDocument, error)
}

type WishlistClient struct {
	http   *resty.Client
	url    string
	logger providers.Logger
}

func NewWishlistClient(conf *structures.Config, logger providers.Logger) WishlistFetcherInterface {
	timeout := conf.Endpoints.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &WishlistClient{
		http:   resty.New().SetTimeout(timeout),
		url:    conf.Endpoints.WishlistURL,
		logger: logger,
	}
}

type wishlistResponse struct {
	Documents []models.WishlistDocument `json:"documents"`
}

func (c *WishlistClient) FetchDocuments(ctx context.Context) ([]models.WishlistDocument, error) {
	c.logger.Debugf(providers.TypeFetch, "Fetching wishlist collection from %s", c.url)

	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("wishlist request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("wishlist request returned status %d", resp.StatusCode())
	}

	var payload wishlistResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("wishlist response is not valid JSON: %w", err)
	}

	c.logger.Debugf(providers.TypeFetch, "Fetched %d wishlist documents", len(payload.Documents))
	return payload.Documents, nil
}
