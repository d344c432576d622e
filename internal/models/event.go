package models

import (
	"strconv"
	"strings"
	"time"
)

type EventKind string

const (
	EventMilestone   EventKind = "milestone"
	EventRankChanged EventKind = "rank_changed"
	EventTip         EventKind = "tip"
)

// Default message templates, used when a profile configures none.
const (
	defaultMilestoneTemplate = "{username}'s '{title}' goal received ${amount}! at {time} EST"
	defaultRankTemplate      = "{username} moved to {position} on the leaderboard at {time} EST"
	defaultTipTemplate       = "{username} also received a random tip! at {time} EST"
)

// Event is one discrete notification-worthy observation derived from the
// delta between two snapshots.
type Event struct {
	Kind     EventKind
	Profile  string
	Item     string
	Amount   float64
	Position string
	Score    float64
	Template string
}

// Message renders the event through its template. Supported placeholders:
// {username}, {title}, {amount}, {position}, {score}, {time}. The caller
// passes now already converted to the configured timezone.
func (e *Event) Message(now time.Time) string {
	tpl := e.Template
	if tpl == "" {
		switch e.Kind {
		case EventMilestone:
			tpl = defaultMilestoneTemplate
		case EventRankChanged:
			tpl = defaultRankTemplate
		default:
			tpl = defaultTipTemplate
		}
	}

	r := strings.NewReplacer(
		"{username}", e.Profile,
		"{title}", e.Item,
		"{amount}", strconv.FormatFloat(e.Amount, 'f', 2, 64),
		"{position}", e.Position,
		"{score}", strconv.FormatFloat(e.Score, 'f', 2, 64),
		"{time}", now.Format("3:04 PM"),
	)
	return r.Replace(tpl)
}
