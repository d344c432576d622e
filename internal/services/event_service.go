package services

import (
	"math"
	"sort"

	"sentwatch/internal/models"
	"sentwatch/internal/structures"
)

// EventServiceInterface derives discrete events from the delta between
// two snapshots. Pure: no clock, no I/O; milestone counts are recomputed
// from the two absolute values each run, so a run that skipped several
// thresholds emits one event per multiple crossed.
type EventServiceInterface interface {
	Derive(profile *structures.Profile, prev, curr *models.Snapshot) []models.Event
}

type EventService struct{}

func NewEventService() EventServiceInterface {
	return &EventService{}
}

func (es *EventService) Derive(profile *structures.Profile, prev, curr *models.Snapshot) []models.Event {
	var events []models.Event

	wishlistIncreased := false
	for _, item := range wishlistItems(prev, curr) {
		prevFunded := prev.FundedAmount(item)
		currFunded := curr.FundedAmount(item)
		if currFunded <= prevFunded {
			// Decreases are treated as new values, never as events.
			continue
		}
		wishlistIncreased = true

		threshold := profile.ThresholdFor(item)
		if threshold <= 0 {
			continue
		}
		crossed := int(math.Floor(currFunded/threshold)) - int(math.Floor(prevFunded/threshold))
		for i := 0; i < crossed; i++ {
			events = append(events, models.Event{
				Kind:     models.EventMilestone,
				Profile:  profile.Username,
				Item:     item,
				Amount:   currFunded - prevFunded,
				Template: profile.Templates.Milestone,
			})
		}
	}

	if prev.Simple.Position != "" && curr.Simple.Position != "" &&
		prev.Simple.Position != curr.Simple.Position {
		events = append(events, models.Event{
			Kind:     models.EventRankChanged,
			Profile:  profile.Username,
			Position: curr.Simple.Position,
			Template: profile.Templates.Rank,
		})
	}

	// A score increase with no wishlist increase in the same run is an
	// unattributed tip; wishlist deltas take priority otherwise.
	if !wishlistIncreased &&
		prev.Simple.Score != nil && curr.Simple.Score != nil &&
		*curr.Simple.Score > *prev.Simple.Score {
		events = append(events, models.Event{
			Kind:     models.EventTip,
			Profile:  profile.Username,
			Score:    *curr.Simple.Score,
			Template: profile.Templates.Tip,
		})
	}

	return events
}

// wishlistItems returns the union of item titles across both snapshots,
// sorted for deterministic event order.
func wishlistItems(prev, curr *models.Snapshot) []string {
	set := make(map[string]struct{}, len(curr.Wishlist))
	for title := range prev.Wishlist {
		set[title] = struct{}{}
	}
	for title := range curr.Wishlist {
		set[title] = struct{}{}
	}
	items := make([]string, 0, len(set))
	for title := range set {
		items = append(items, title)
	}
	sort.Strings(items)
	return items
}
