package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentwatch/internal/models"
	"sentwatch/internal/testutil"
)

func doc(owner, title string, funded *models.NumberField) models.WishlistDocument {
	return models.WishlistDocument{
		Name: "projects/x/documents/wishlist_items/" + title,
		Fields: models.WishlistFields{
			Owner:  models.StringField{StringValue: owner},
			Title:  models.StringField{StringValue: title},
			Funded: funded,
		},
	}
}

func double(v float64) *models.NumberField {
	return &models.NumberField{DoubleValue: &v}
}

func integer(v string) *models.NumberField {
	return &models.NumberField{IntegerValue: &v}
}

func TestProjectWishlist_FiltersByOwner(t *testing.T) {
	ns := NewNormalizerService(&testutil.MockLogger{})
	docs := []models.WishlistDocument{
		doc("uid1", "Camera", double(10)),
		doc("uid2", "Camera", double(99)),
	}
	wl := ns.ProjectWishlist(docs, "uid1", nil)
	require.Len(t, wl, 1)
	assert.Equal(t, 10.0, wl["Camera"].Funded)
}

func TestProjectWishlist_TrackedItemsZeroInitialized(t *testing.T) {
	// A tracked item absent upstream must still appear with zero funding,
	// so its removal reads as a change against the previous baseline.
	ns := NewNormalizerService(&testutil.MockLogger{})
	wl := ns.ProjectWishlist(nil, "uid1", []string{"Camera", "Mic"})
	require.Len(t, wl, 2)
	assert.Equal(t, 0.0, wl["Camera"].Funded)
	assert.Equal(t, 0.0, wl["Mic"].Funded)
}

func TestProjectWishlist_UntrackedTitlesIgnored(t *testing.T) {
	ns := NewNormalizerService(&testutil.MockLogger{})
	docs := []models.WishlistDocument{
		doc("uid1", "Camera", double(10)),
		doc("uid1", "Surprise", double(5)),
	}
	wl := ns.ProjectWishlist(docs, "uid1", []string{"Camera"})
	require.Len(t, wl, 1)
	assert.Equal(t, 10.0, wl["Camera"].Funded)
}

func TestProjectWishlist_IntegerCoercion(t *testing.T) {
	ns := NewNormalizerService(&testutil.MockLogger{})
	docs := []models.WishlistDocument{
		doc("uid1", "Camera", integer("150")),
		doc("uid1", "Mic", double(75.5)),
	}
	wl := ns.ProjectWishlist(docs, "uid1", nil)
	assert.Equal(t, 150.0, wl["Camera"].Funded)
	assert.Equal(t, 75.5, wl["Mic"].Funded)
}

func TestProjectWishlist_MalformedDocsSkipped(t *testing.T) {
	logger := &testutil.MockLogger{}
	ns := NewNormalizerService(logger)
	bad := integer("not-a-number")
	docs := []models.WishlistDocument{
		doc("uid1", "", double(10)),       // no title
		doc("uid1", "Camera", nil),        // no amount
		doc("uid1", "Mic", bad),           // unparsable amount
		doc("uid1", "Lens", double(20.5)), // fine
	}
	wl := ns.ProjectWishlist(docs, "uid1", nil)
	require.Len(t, wl, 1)
	assert.Equal(t, 20.5, wl["Lens"].Funded)
	assert.Equal(t, 3, logger.CountByLevel("warn"))
}

func TestNormalizeConsole_ClassifiesLines(t *testing.T) {
	ns := NewNormalizerService(&testutil.MockLogger{})
	frags := ns.NormalizeConsole([]string{
		"some unrelated log line",
		"19th",
		"150.5",
		`fetchLeaderboard response: {place: 19th, amountAway: 12.5}`,
		`recentSends: [{senderName: anon, senderCurrencySymbol: $, amount: 5}]`,
	})

	assert.Equal(t, "19th", frags.Simple.Position)
	require.NotNil(t, frags.Simple.Score)
	assert.Equal(t, 150.5, *frags.Simple.Score)

	assert.Equal(t, "19th", frags.Detailed["place"])
	assert.Equal(t, 12.5, frags.Detailed["amountAway"])

	require.Len(t, frags.RecentSends, 1)
	assert.Equal(t, "anon", frags.RecentSends[0].Sender)
	assert.Equal(t, "$5.00", frags.RecentSends[0].Amount)
}

func TestNormalizeConsole_LastLineWinsPerCategory(t *testing.T) {
	ns := NewNormalizerService(&testutil.MockLogger{})
	frags := ns.NormalizeConsole([]string{"100", "19th", "250", "18th"})

	assert.Equal(t, "18th", frags.Simple.Position)
	require.NotNil(t, frags.Simple.Score)
	assert.Equal(t, 250.0, *frags.Simple.Score)
}

func TestNormalizeConsole_MalformedPayloadLosesOnlyItsCategory(t *testing.T) {
	logger := &testutil.MockLogger{}
	ns := NewNormalizerService(logger)
	frags := ns.NormalizeConsole([]string{
		`fetchLeaderboard response: {{{broken`,
		"7th",
	})

	assert.Equal(t, "7th", frags.Simple.Position)
	assert.Empty(t, frags.Detailed)
	assert.Equal(t, 1, logger.CountByLevel("warn"))
}

func TestNormalizeConsole_NegativeNumberIgnored(t *testing.T) {
	ns := NewNormalizerService(&testutil.MockLogger{})
	frags := ns.NormalizeConsole([]string{"-5"})
	assert.Nil(t, frags.Simple.Score)
}

func TestParseRecentSends_WrappedObject(t *testing.T) {
	sends, err := parseRecentSends(`{sends: [{senderName: kind_stranger, amount: 20}]}`)
	require.NoError(t, err)
	require.Len(t, sends, 1)
	assert.Equal(t, "kind_stranger", sends[0].Sender)
	assert.Equal(t, "$20.00", sends[0].Amount)
}
