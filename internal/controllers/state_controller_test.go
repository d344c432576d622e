package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentwatch/internal/models"
	"sentwatch/internal/structures"
	"sentwatch/internal/testutil"
)

func newStateController(profiles ...string) (*StateController, *testutil.MockStore, *testutil.MockCache) {
	conf := &structures.Config{}
	for _, p := range profiles {
		conf.Profiles = append(conf.Profiles, structures.Profile{Username: p})
	}
	store := testutil.NewMockStore()
	cache := testutil.NewMockCache()
	return NewStateController(&testutil.MockLogger{}, conf, store, cache), store, cache
}

func TestGetState_MissingParam(t *testing.T) {
	sc, _, _ := newStateController("alice")

	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	rr := httptest.NewRecorder()
	sc.GetState(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetState_UnknownProfile(t *testing.T) {
	sc, _, _ := newStateController("alice")

	req := httptest.NewRequest(http.MethodGet, "/state?profile=mallory", nil)
	rr := httptest.NewRecorder()
	sc.GetState(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetState_ReturnsSnapshot(t *testing.T) {
	sc, store, _ := newStateController("alice")
	snap := models.NewSnapshot()
	snap.Wishlist["Camera"] = models.WishlistEntry{Funded: 60}
	store.Snapshots["alice"] = snap

	req := httptest.NewRequest(http.MethodGet, "/state?profile=alice", nil)
	rr := httptest.NewRecorder()
	sc.GetState(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 60.0, got.FundedAmount("Camera"))
}

func TestGetState_SecondRequestServedFromCache(t *testing.T) {
	sc, store, cache := newStateController("alice")
	store.Snapshots["alice"] = models.NewSnapshot()

	req := httptest.NewRequest(http.MethodGet, "/state?profile=alice", nil)
	rr := httptest.NewRecorder()
	sc.GetState(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	_, cached := cache.Get("state:alice")
	require.True(t, cached)

	// Poison the cached body to prove the second hit bypasses the store.
	cache.Set("state:alice", []byte(`{"poisoned":true}`))
	rr2 := httptest.NewRecorder()
	sc.GetState(rr2, req)
	assert.Equal(t, http.StatusOK, rr2.Code)
	assert.JSONEq(t, `{"poisoned":true}`, rr2.Body.String())
}

func TestGetProfiles_ListsConfiguredUsernames(t *testing.T) {
	sc, _, _ := newStateController("alice", "bob")

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	rr := httptest.NewRecorder()
	sc.GetProfiles(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, []string{"alice", "bob"}, got)
}
