package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"sentwatch/internal/fetch"
	"sentwatch/internal/models"
	"sentwatch/internal/notify"
	"sentwatch/internal/providers"
	ifaces "sentwatch/internal/state/interfaces"
	"sentwatch/internal/structures"
)

// WatchServiceInterface runs one full watch cycle: shared fetch, then
// per-profile capture, normalization, change detection, event delivery
// and persistence. Profiles are processed strictly sequentially.
type WatchServiceInterface interface {
	RunOnce(ctx context.Context) error
	Runs() int64
	Errors() int64
	LastRun() time.Time
}

type WatchService struct {
	conf        *structures.Config
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
	normalizer  NormalizerServiceInterface
	builder     SnapshotServiceInterface
	events      EventServiceInterface
	store       ifaces.StoreInterface
	history     ifaces.HistoryInterface
	wishlist    fetch.WishlistFetcherInterface
	leaderboard fetch.LeaderboardClientInterface
	console     fetch.ConsoleCapturerInterface
	uids        fetch.UIDResolverInterface
	notifier    notify.NotifierInterface
	loc         *time.Location

	runs    atomic.Int64
	errors  atomic.Int64
	lastRun atomic.Time
}

func NewWatchService(
	conf *structures.Config,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	normalizer NormalizerServiceInterface,
	builder SnapshotServiceInterface,
	events EventServiceInterface,
	store ifaces.StoreInterface,
	history ifaces.HistoryInterface,
	wishlist fetch.WishlistFetcherInterface,
	leaderboard fetch.LeaderboardClientInterface,
	console fetch.ConsoleCapturerInterface,
	uids fetch.UIDResolverInterface,
	notifier notify.NotifierInterface,
) WatchServiceInterface {
	loc, err := time.LoadLocation(conf.Watch.Timezone)
	if err != nil || conf.Watch.Timezone == "" {
		loc = time.UTC
	}
	return &WatchService{
		conf:        conf,
		logger:      logger,
		metrics:     metrics,
		normalizer:  normalizer,
		builder:     builder,
		events:      events,
		store:       store,
		history:     history,
		wishlist:    wishlist,
		leaderboard: leaderboard,
		console:     console,
		uids:        uids,
		notifier:    notifier,
		loc:         loc,
	}
}

// RunOnce executes one watch cycle. The shared wishlist fetch is the
// only fatal failure: nothing is written before it succeeds. Everything
// per-profile fails soft.
func (ws *WatchService) RunOnce(ctx context.Context) error {
	ws.metrics.IncRunsTotal()
	ws.logger.Infof(providers.TypeWatch, "Starting watch cycle")

	docs, err := ws.wishlist.FetchDocuments(ctx)
	if err != nil {
		ws.errors.Inc()
		ws.metrics.IncRunFailures()
		return fmt.Errorf("shared wishlist fetch failed: %w", err)
	}

	changed := make(map[string]*models.Snapshot)
	for i := range ws.conf.Profiles {
		ws.processProfile(ctx, &ws.conf.Profiles[i], docs, changed)
	}

	if len(changed) > 0 {
		start := time.Now()
		path, err := ws.history.Append(time.Now().In(ws.loc), changed)
		if err != nil {
			ws.logger.Errorf(providers.TypeWatch, "History append failed: %s", err)
		} else {
			ws.metrics.ObservePersistenceDuration(time.Since(start))
			ws.logger.Infof(providers.TypeWatch, "History entry written to %s", path)
		}
	}

	ws.runs.Inc()
	ws.lastRun.Store(time.Now())
	ws.logger.Infof(providers.TypeWatch, "Watch cycle complete, %d profile(s) changed", len(changed))
	return nil
}

func (ws *WatchService) processProfile(ctx context.Context, profile *structures.Profile, docs []models.WishlistDocument, changed map[string]*models.Snapshot) {
	uid := profile.UID
	if uid == "" {
		resolved, err := ws.uids.Resolve(ctx, profile.Username)
		if err != nil {
			ws.logger.Warnf(providers.TypeWatch, "Skipping %s, uid resolution failed: %s", profile.Username, err)
			ws.metrics.IncFetchFailures("uid")
			return
		}
		uid = resolved
	}

	wishlist := ws.normalizer.ProjectWishlist(docs, uid, profile.Items)

	var api *models.APIFacet
	if facet, err := ws.leaderboard.Fetch(ctx, uid); err != nil {
		ws.logger.Warnf(providers.TypeWatch, "Leaderboard fetch failed for %s: %s", profile.Username, err)
		ws.metrics.IncFetchFailures("leaderboard")
	} else {
		api = facet
	}

	var frags ConsoleFragments
	if ws.conf.Capture.Enabled {
		pageURL := ws.conf.Endpoints.ProfileBaseURL + "/" + profile.Username
		lines, err := ws.console.CaptureLines(ctx, pageURL, profile.DetailView)
		if err != nil {
			ws.logger.Warnf(providers.TypeWatch, "Console capture failed for %s: %s", profile.Username, err)
			ws.metrics.IncFetchFailures("console")
		} else {
			frags = ws.normalizer.NormalizeConsole(lines)
		}
	}

	curr := ws.builder.Build(wishlist, frags, api)
	prev := ws.store.Read(profile.Username)

	if prev.Equal(curr) {
		ws.logger.Debugf(providers.TypeWatch, "No change for %s", profile.Username)
		return
	}
	ws.metrics.IncChangesTotal(profile.Username)
	ws.logger.Infof(providers.TypeWatch, "Change detected for %s", profile.Username)

	now := time.Now().In(ws.loc)
	for _, ev := range ws.events.Derive(profile, prev, curr) {
		ws.metrics.IncEventsTotal(string(ev.Kind))
		msg := ev.Message(now)
		if ws.notifier.Send(msg) {
			ws.logger.Infof(providers.TypeNotify, "Delivered %s event for %s", ev.Kind, profile.Username)
		} else {
			ws.metrics.IncNotifyFailures()
			ws.logger.Errorf(providers.TypeNotify, "Failed to deliver %s event for %s", ev.Kind, profile.Username)
		}
	}

	start := time.Now()
	if err := ws.store.Write(profile.Username, curr); err != nil {
		ws.logger.Errorf(providers.TypeWatch, "Persisting snapshot for %s failed: %s", profile.Username, err)
		return
	}
	ws.metrics.ObservePersistenceDuration(time.Since(start))
	changed[profile.Username] = curr
}

func (ws *WatchService) Runs() int64 {
	return ws.runs.Load()
}

func (ws *WatchService) Errors() int64 {
	return ws.errors.Load()
}

func (ws *WatchService) LastRun() time.Time {
	return ws.lastRun.Load()
}
