package fetch

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"

	"sentwatch/internal/models"
	"sentwatch/internal/providers"
	"sentwatch/internal/structures"
)

// LeaderboardClientInterface queries the leaderboard cloud function for
// one profile. Best-effort: callers treat an error as an absent facet.
type LeaderboardClientInterface interface {
	Fetch(ctx context.Context, uid string) (*models.APIFacet, error)
}

type LeaderboardClient struct {
	http   *resty.Client
	url    string
	logger providers.Logger
}

func NewLeaderboardClient(conf *structures.Config, logger providers.Logger) LeaderboardClientInterface {
	timeout := conf.Endpoints.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &LeaderboardClient{
		http:   resty.New().SetTimeout(timeout),
		url:    conf.Endpoints.LeaderboardURL,
		logger: logger,
	}
}

type leaderboardRequest struct {
	Data struct {
		UID string `json:"uid"`
	} `json:"data"`
}

type leaderboardResponse struct {
	Result struct {
		Place      *int     `json:"place"`
		AmountAway *float64 `json:"amountAway"`
	} `json:"result"`
}

func (c *LeaderboardClient) Fetch(ctx context.Context, uid string) (*models.APIFacet, error) {
	var req leaderboardRequest
	req.Data.UID = uid

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(c.url)
	if err != nil {
		return nil, fmt.Errorf("leaderboard request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("leaderboard request returned status %d", resp.StatusCode())
	}

	var payload leaderboardResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("leaderboard response is not valid JSON: %w", err)
	}

	return &models.APIFacet{
		Position:   payload.Result.Place,
		AmountAway: payload.Result.AmountAway,
	}, nil
}
