package services

import "sentwatch/internal/models"

// SnapshotServiceInterface assembles one canonical snapshot per profile
// from normalized fragments. Pure aggregation: no network, no I/O.
type SnapshotServiceInterface interface {
	Build(wishlist map[string]models.WishlistEntry, frags ConsoleFragments, api *models.APIFacet) *models.Snapshot
}

type SnapshotService struct{}

func NewSnapshotService() SnapshotServiceInterface {
	return &SnapshotService{}
}

// Build merges the wishlist projection, console fragments and the
// leaderboard API result. Absent facets become empty values, never
// missing keys, so snapshot equality stays well-defined.
func (ss *SnapshotService) Build(wishlist map[string]models.WishlistEntry, frags ConsoleFragments, api *models.APIFacet) *models.Snapshot {
	snap := models.NewSnapshot()
	if wishlist != nil {
		snap.Wishlist = wishlist
	}
	snap.Simple = frags.Simple
	if frags.Detailed != nil {
		snap.Detailed = frags.Detailed
	}
	if frags.RecentSends != nil {
		snap.RecentSends = frags.RecentSends
	}
	if api != nil {
		snap.API = *api
	}
	snap.Normalize()
	return snap
}
