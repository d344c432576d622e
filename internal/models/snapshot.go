package models

import "reflect"

// WishlistEntry holds the cumulative funded amount for one wishlist item.
// The map key in Snapshot.Wishlist is the item title.
type WishlistEntry struct {
	Funded float64 `json:"funded"`
}

// RecentSend is one entry of the profile page's recent-sends feed.
// Amount keeps the formatted currency string as emitted by the page.
type RecentSend struct {
	Sender string `json:"sender"`
	Amount string `json:"amount"`
}

// SimpleFacet is the leaderboard standing scraped from standalone console
// lines: an ordinal position string ("19th") and a numeric score. Either
// may be absent independently.
type SimpleFacet struct {
	Position string   `json:"position,omitempty"`
	Score    *float64 `json:"score,omitempty"`
}

// APIFacet is the leaderboard standing reported by the leaderboard cloud
// function. Absent fields stay nil when the call fails or omits them.
type APIFacet struct {
	Position   *int     `json:"position,omitempty"`
	AmountAway *float64 `json:"amount_away,omitempty"`
}

// Snapshot is one profile's comparable state for a single run. The three
// leaderboard facets are redundant parallel channels from an unreliable
// upstream and are kept side by side, never reconciled.
type Snapshot struct {
	Wishlist    map[string]WishlistEntry `json:"wishlist"`
	Simple      SimpleFacet              `json:"simple"`
	Detailed    map[string]interface{}   `json:"detailed"`
	API         APIFacet                 `json:"api"`
	RecentSends []RecentSend             `json:"recent_sends"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Wishlist:    make(map[string]WishlistEntry),
		Detailed:    make(map[string]interface{}),
		RecentSends: make([]RecentSend, 0),
	}
}

// Normalize replaces nil collections with empty ones so that structural
// equality is well-defined regardless of how the snapshot was produced
// (built fresh, decoded from disk, or zero-valued on first run).
func (s *Snapshot) Normalize() {
	if s.Wishlist == nil {
		s.Wishlist = make(map[string]WishlistEntry)
	}
	if s.Detailed == nil {
		s.Detailed = make(map[string]interface{})
	}
	if s.RecentSends == nil {
		s.RecentSends = make([]RecentSend, 0)
	}
}

// Equal reports deep structural equality across all fields, including
// recent-sends order. Decimals are compared exactly; any observable
// difference counts as a change.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if other == nil {
		return false
	}
	s.Normalize()
	other.Normalize()
	return reflect.DeepEqual(s, other)
}

// FundedAmount returns the funded value for an item, zero when absent.
func (s *Snapshot) FundedAmount(item string) float64 {
	if e, ok := s.Wishlist[item]; ok {
		return e.Funded
	}
	return 0
}
