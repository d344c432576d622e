package fetch

import (
	"context"
	"fmt"
	"regexp"

	"github.com/go-resty/resty/v2"

	"sentwatch/internal/providers"
	"sentwatch/internal/structures"
)

// UIDResolverInterface resolves a profile's opaque user id from its
// public page when the config does not pin one.
type UIDResolverInterface interface {
	Resolve(ctx context.Context, username string) (string, error)
}

// The og:image meta tag embeds the owner's uid in its storage path; the
// path separator may arrive percent-encoded.
var uidPattern = regexp.MustCompile(`public_users(?:/|%2F)([a-zA-Z0-9]+)(?:/|%2F)`)

type UIDResolver struct {
	http    *resty.Client
	baseURL string
	cache   providers.CacheProviderInterface
	logger  providers.Logger
}

func NewUIDResolver(conf *structures.Config, cache providers.CacheProviderInterface, logger providers.Logger) UIDResolverInterface {
	timeout := conf.Endpoints.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &UIDResolver{
		http:    resty.New().SetTimeout(timeout),
		baseURL: conf.Endpoints.ProfileBaseURL,
		cache:   cache,
		logger:  logger,
	}
}

func (r *UIDResolver) Resolve(ctx context.Context, username string) (string, error) {
	cacheKey := "uid:" + username
	if cached, ok := r.cache.Get(cacheKey); ok {
		return string(cached), nil
	}

	url := r.baseURL + "/" + username
	resp, err := r.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("profile page request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("profile page returned status %d", resp.StatusCode())
	}

	match := uidPattern.FindSubmatch(resp.Body())
	if match == nil {
		return "", fmt.Errorf("no uid found on profile page for %s", username)
	}

	uid := string(match[1])
	r.cache.SetForever(cacheKey, []byte(uid))
	r.logger.Infof(providers.TypeFetch, "Resolved uid for %s: %s", username, uid)
	return uid, nil
}
