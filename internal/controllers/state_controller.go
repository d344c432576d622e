package controllers

import (
	json "github.com/goccy/go-json"
	"net/http"
	"sentwatch/internal/providers"
	ifaces "sentwatch/internal/state/interfaces"
	"sentwatch/internal/structures"
)

// StateController exposes the last persisted snapshots read-only over
// HTTP. Responses are cached for one watch cycle.
type StateController struct {
	logger providers.Logger
	conf   *structures.Config
	store  ifaces.StoreInterface
	cache  providers.CacheProviderInterface
}

func NewStateController(logger providers.Logger, conf *structures.Config, store ifaces.StoreInterface, cache providers.CacheProviderInterface) *StateController {
	return &StateController{
		logger: logger,
		conf:   conf,
		store:  store,
		cache:  cache,
	}
}

func (sc *StateController) hasProfile(username string) bool {
	for i := range sc.conf.Profiles {
		if sc.conf.Profiles[i].Username == username {
			return true
		}
	}
	return false
}

func (sc *StateController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := sc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (sc *StateController) GetState(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("profile")
	if username == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !sc.hasProfile(username) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	sc.serveFromCacheOrCompute(w, "state:"+username, func() (any, error) {
		return sc.store.Read(username), nil
	})
}

func (sc *StateController) GetProfiles(w http.ResponseWriter, r *http.Request) {
	sc.serveFromCacheOrCompute(w, "profiles", func() (any, error) {
		usernames := make([]string, 0, len(sc.conf.Profiles))
		for i := range sc.conf.Profiles {
			usernames = append(usernames, sc.conf.Profiles[i].Username)
		}
		return usernames, nil
	})
}
