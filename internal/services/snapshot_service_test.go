package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentwatch/internal/models"
)

func TestBuild_AllFragmentsAbsent(t *testing.T) {
	ss := NewSnapshotService()
	snap := ss.Build(nil, ConsoleFragments{}, nil)

	require.NotNil(t, snap)
	assert.NotNil(t, snap.Wishlist)
	assert.NotNil(t, snap.Detailed)
	assert.NotNil(t, snap.RecentSends)
	assert.True(t, snap.Equal(models.NewSnapshot()))
}

func TestBuild_MergesAllFacets(t *testing.T) {
	ss := NewSnapshotService()

	score := 150.0
	pos := 19
	snap := ss.Build(
		map[string]models.WishlistEntry{"Camera": {Funded: 60}},
		ConsoleFragments{
			Simple:      models.SimpleFacet{Position: "19th", Score: &score},
			Detailed:    map[string]interface{}{"place": "19th"},
			RecentSends: []models.RecentSend{{Sender: "anon", Amount: "$5.00"}},
		},
		&models.APIFacet{Position: &pos},
	)

	assert.Equal(t, 60.0, snap.FundedAmount("Camera"))
	assert.Equal(t, "19th", snap.Simple.Position)
	assert.Equal(t, "19th", snap.Detailed["place"])
	require.Len(t, snap.RecentSends, 1)
	require.NotNil(t, snap.API.Position)
	assert.Equal(t, 19, *snap.API.Position)
}
