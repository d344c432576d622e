package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sentwatch/internal/jstext"
	"sentwatch/internal/models"
	"sentwatch/internal/providers"
)

// Console line markers, matched in order of specificity.
const (
	recentSendsMarker = "recentSends:"
	leaderboardMarker = "fetchLeaderboard response:"
)

var ordinalLine = regexp.MustCompile(`^\d+(?:st|nd|rd|th)$`)

// ConsoleFragments holds whatever the console capture yielded for one
// profile. Absent pieces stay zero/empty; the snapshot builder turns
// them into well-defined empty fields.
type ConsoleFragments struct {
	Simple      models.SimpleFacet
	Detailed    map[string]interface{}
	RecentSends []models.RecentSend
}

// NormalizerServiceInterface converts the two heterogeneous inputs — the
// structured wishlist document collection and the unstructured console
// line stream — into canonical per-profile fragments. It never raises
// past its boundary: malformed items are skipped and logged.
type NormalizerServiceInterface interface {
	ProjectWishlist(docs []models.WishlistDocument, uid string, items []string) map[string]models.WishlistEntry
	NormalizeConsole(lines []string) ConsoleFragments
}

type NormalizerService struct {
	logger providers.Logger
}

func NewNormalizerService(logger providers.Logger) NormalizerServiceInterface {
	return &NormalizerService{logger: logger}
}

// ProjectWishlist filters the shared document collection to one
// profile's uid and projects it to title -> funded. When items is
// non-empty the projection is restricted to those titles, each
// initialized to zero so that an upstream removal reads as a change.
// Documents missing a title or amount are skipped, never fatal.
func (ns *NormalizerService) ProjectWishlist(docs []models.WishlistDocument, uid string, items []string) map[string]models.WishlistEntry {
	wishlist := make(map[string]models.WishlistEntry, len(items))
	tracked := make(map[string]struct{}, len(items))
	for _, item := range items {
		tracked[item] = struct{}{}
		wishlist[item] = models.WishlistEntry{}
	}

	for i := range docs {
		doc := &docs[i]
		if doc.Owner() != uid {
			continue
		}
		title := doc.Title()
		if title == "" {
			ns.logger.Warnf(providers.TypeWatch, "Skipping wishlist document without title (%s)", doc.Name)
			continue
		}
		if len(tracked) > 0 {
			if _, ok := tracked[title]; !ok {
				continue
			}
		}
		funded, ok := doc.FundedValue()
		if !ok {
			ns.logger.Warnf(providers.TypeWatch, "Skipping wishlist item %q without funded amount", title)
			continue
		}
		wishlist[title] = models.WishlistEntry{Funded: funded}
	}
	return wishlist
}

// NormalizeConsole classifies raw console lines. Within one capture the
// last position/score line wins for its category; unrecognized lines are
// ignored and a malformed payload only loses its own category.
func (ns *NormalizerService) NormalizeConsole(lines []string) ConsoleFragments {
	var frags ConsoleFragments

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, recentSendsMarker):
			payload := strings.TrimSpace(strings.TrimPrefix(line, recentSendsMarker))
			sends, err := parseRecentSends(payload)
			if err != nil {
				ns.logger.Warnf(providers.TypeWatch, "Unparsable recent-sends payload: %s", err)
				continue
			}
			frags.RecentSends = sends

		case strings.HasPrefix(line, leaderboardMarker):
			payload := strings.TrimSpace(strings.TrimPrefix(line, leaderboardMarker))
			detailed := make(map[string]interface{})
			if err := jstext.Decode(payload, &detailed); err != nil {
				ns.logger.Warnf(providers.TypeWatch, "Unparsable leaderboard payload: %s", err)
				continue
			}
			frags.Detailed = detailed

		case ordinalLine.MatchString(line):
			frags.Simple.Position = line

		default:
			if v, err := strconv.ParseFloat(line, 64); err == nil && v >= 0 {
				score := v
				frags.Simple.Score = &score
			}
		}
	}
	return frags
}

type rawSend struct {
	SenderName           string  `json:"senderName"`
	SenderCurrencySymbol string  `json:"senderCurrencySymbol"`
	Amount               float64 `json:"amount"`
}

// parseRecentSends decodes the loosely JS-like recent-sends payload.
// The page logs either a bare array or an object wrapping one.
func parseRecentSends(payload string) ([]models.RecentSend, error) {
	var raw []rawSend
	if err := jstext.Decode(payload, &raw); err != nil {
		var wrapped struct {
			Sends []rawSend `json:"sends"`
		}
		if err2 := jstext.Decode(payload, &wrapped); err2 != nil {
			return nil, err
		}
		raw = wrapped.Sends
	}

	sends := make([]models.RecentSend, 0, len(raw))
	for _, s := range raw {
		symbol := s.SenderCurrencySymbol
		if symbol == "" {
			symbol = "$"
		}
		sends = append(sends, models.RecentSend{
			Sender: s.SenderName,
			Amount: fmt.Sprintf("%s%.2f", symbol, s.Amount),
		})
	}
	return sends, nil
}
