package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentwatch/internal/structures"
	"sentwatch/internal/testutil"
)

func leaderboardConf(url string) *structures.Config {
	return &structures.Config{
		Endpoints: structures.EndpointsConfig{LeaderboardURL: url},
	}
}

func TestLeaderboardClient_Fetch(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"result": {"place": 19, "amountAway": 12.5}}`))
	}))
	defer srv.Close()

	c := NewLeaderboardClient(leaderboardConf(srv.URL), &testutil.MockLogger{})
	facet, err := c.Fetch(context.Background(), "uid1")
	require.NoError(t, err)

	assert.JSONEq(t, `{"data":{"uid":"uid1"}}`, string(body))
	require.NotNil(t, facet.Position)
	assert.Equal(t, 19, *facet.Position)
	require.NotNil(t, facet.AmountAway)
	assert.Equal(t, 12.5, *facet.AmountAway)
}

func TestLeaderboardClient_PartialResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": {"place": 7}}`))
	}))
	defer srv.Close()

	c := NewLeaderboardClient(leaderboardConf(srv.URL), &testutil.MockLogger{})
	facet, err := c.Fetch(context.Background(), "uid1")
	require.NoError(t, err)
	require.NotNil(t, facet.Position)
	assert.Equal(t, 7, *facet.Position)
	assert.Nil(t, facet.AmountAway)
}

func TestLeaderboardClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewLeaderboardClient(leaderboardConf(srv.URL), &testutil.MockLogger{})
	_, err := c.Fetch(context.Background(), "uid1")
	assert.Error(t, err)
}
