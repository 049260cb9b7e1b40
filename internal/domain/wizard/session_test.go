//go:build unit

package wizard_test

import (
	"encoding/json"
	"testing"
	"time"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceList(t *testing.T) sponsorship.PriceList {
	t.Helper()
	pl, err := sponsorship.NewPriceList(5000, 8000, 1000, 2000, "USD")
	require.NoError(t, err)
	return pl
}

func TestQuoteDraft(t *testing.T) {
	calc := sponsorship.NewDefaultPriceCalculator()

	t.Run("series with a paid episode and one priority", func(t *testing.T) {
		ledger := sponsorship.EligibilitySnapshot{Episodes: map[sponsorship.EpisodeKey]sponsorship.Eligibility{
			key(1, 2): sponsorship.NewEligibility(true, false),
		}}
		s := apply(t, seriesState(t, ledger),
			wizard.AllAvailableSelected{},
			wizard.Next{},
			wizard.PriorityToggled{Key: &sponsorship.EpisodeKey{Season: 1, Episode: 2}},
		)
		d, _ := wizard.DraftOf(s)

		q := wizard.QuoteDraft(calc, priceList(t), d)
		assert.Equal(t, int64(2000), q.Subtotal.Cents())
		assert.Equal(t, int64(2000), q.PriorityTotal.Cents())
		assert.Equal(t, int64(4000), q.Total.Cents())

		items := wizard.LineItems(d, q)
		require.Len(t, items, 3)
		assert.Equal(t, int64(0), items[1].UnitPrice.Cents())
		assert.True(t, items[1].WantsPriority)
		assert.Equal(t, 2, items[1].Episode.Episode)
	})

	t.Run("blocked episode contributes nothing", func(t *testing.T) {
		d := wizard.Draft{
			Content:  show,
			Selected: []wizard.Selection{{Episode: sponsorship.EpisodeRef{Season: 1, Episode: 1}, WantsPriority: true}},
			Ledger: sponsorship.EligibilitySnapshot{Episodes: map[sponsorship.EpisodeKey]sponsorship.Eligibility{
				key(1, 1): sponsorship.NewEligibility(true, true),
			}},
		}
		assert.True(t, d.Blocked())
		assert.True(t, wizard.QuoteDraft(calc, priceList(t), d).Total.IsZero())
	})

	t.Run("long movie with priority", func(t *testing.T) {
		d := wizard.Draft{Content: matrix, MoviePriority: true}
		q := wizard.QuoteDraft(calc, priceList(t), d)
		assert.Equal(t, int64(10000), q.Total.Cents())
		items := wizard.LineItems(d, q)
		require.Len(t, items, 1)
		assert.Nil(t, items[0].Episode)
	})
}

func TestSession_JSON(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sess := wizard.NewSession("alice", priceList(t), "DM me on discord", now)

	ledger := sponsorship.EligibilitySnapshot{Episodes: map[sponsorship.EpisodeKey]sponsorship.Eligibility{
		key(1, 2): sponsorship.NewEligibility(true, false),
	}}
	for _, ev := range []wizard.Event{
		wizard.QuerySubmitted{Query: "show"},
		wizard.ResultsReceived{Seq: 1, Results: []sponsorship.ContentRef{show}},
		wizard.ContentChosen{Content: show, Seasons: []int{1}, Episodes: episodes(1, 3), Ledger: ledger},
		wizard.EpisodeToggled{Key: key(1, 2)},
		wizard.Next{},
	} {
		require.NoError(t, sess.Apply(ev, now.Add(time.Minute)))
	}
	assert.Equal(t, int64(6), sess.Version)

	raw, err := json.Marshal(sess)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"kind":"priority_option"`)
	assert.Contains(t, string(raw), `"S1E2"`)

	var got wizard.Session
	require.NoError(t, json.Unmarshal(raw, &got))
	if diff := cmp.Diff(*sess, got, cmpopts.EquateEmpty(), cmp.AllowUnexported(sponsorship.Money{})); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}

	t.Run("failed transition leaves the session alone", func(t *testing.T) {
		before := got.Version
		require.Error(t, got.Apply(wizard.OrderSubmitted{}, now))
		assert.Equal(t, before, got.Version)
	})
}
