package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentwatch/internal/structures"
	"sentwatch/internal/testutil"
)

func wishlistConf(url string) *structures.Config {
	return &structures.Config{
		Endpoints: structures.EndpointsConfig{WishlistURL: url},
	}
}

func TestWishlistClient_FetchDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"documents": [
				{
					"name": "projects/x/documents/wishlist_items/abc",
					"fields": {
						"owner": {"stringValue": "uid1"},
						"title": {"stringValue": "Camera"},
						"funded": {"doubleValue": 60.5}
					}
				},
				{
					"name": "projects/x/documents/wishlist_items/def",
					"fields": {
						"owner": {"stringValue": "uid1"},
						"title": {"stringValue": "Mic"},
						"funded": {"integerValue": "150"}
					}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewWishlistClient(wishlistConf(srv.URL), &testutil.MockLogger{})
	docs, err := c.FetchDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "uid1", docs[0].Owner())
	assert.Equal(t, "Camera", docs[0].Title())
	funded, ok := docs[0].FundedValue()
	require.True(t, ok)
	assert.Equal(t, 60.5, funded)

	funded, ok = docs[1].FundedValue()
	require.True(t, ok)
	assert.Equal(t, 150.0, funded)
}

func TestWishlistClient_EmptyCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewWishlistClient(wishlistConf(srv.URL), &testutil.MockLogger{})
	docs, err := c.FetchDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestWishlistClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewWishlistClient(wishlistConf(srv.URL), &testutil.MockLogger{})
	_, err := c.FetchDocuments(context.Background())
	assert.Error(t, err)
}

func TestWishlistClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	c := NewWishlistClient(wishlistConf(srv.URL), &testutil.MockLogger{})
	_, err := c.FetchDocuments(context.Background())
	assert.Error(t, err)
}
