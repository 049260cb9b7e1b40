//go:build unit

package wizard_test

import (
	"testing"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	matrix = sponsorship.ContentRef{ID: 603, Title: "The Matrix", MediaType: sponsorship.MediaTypeMovie, RuntimeMinutes: ptr.Of(136)}
	show   = sponsorship.ContentRef{ID: 1399, Title: "Show", MediaType: sponsorship.MediaTypeSeries}
)

func episodes(season, n int) []sponsorship.EpisodeRef {
	out := make([]sponsorship.EpisodeRef, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, sponsorship.EpisodeRef{Season: season, Episode: i})
	}
	return out
}

func key(season, episode int) sponsorship.EpisodeKey {
	return sponsorship.EpisodeKey{Season: season, Episode: episode}
}

// apply runs events in order and fails the test on the first error.
func apply(t *testing.T, s wizard.State, events ...wizard.Event) wizard.State {
	t.Helper()
	for _, ev := range events {
		next, err := wizard.Transition(s, ev)
		require.NoError(t, err, "%T", ev)
		s = next
	}
	return s
}

func searchedState(t *testing.T) wizard.State {
	return apply(t, wizard.NewSearching(),
		wizard.QuerySubmitted{Query: "matrix"},
		wizard.ResultsReceived{Seq: 1, Results: []sponsorship.ContentRef{matrix, show}},
	)
}

func seriesState(t *testing.T, ledger sponsorship.EligibilitySnapshot) wizard.State {
	return apply(t, searchedState(t), wizard.ContentChosen{
		Content:  show,
		Seasons:  []int{2, 1},
		Episodes: episodes(1, 3),
		Ledger:   ledger,
	})
}

func TestSearching(t *testing.T) {
	t.Run("query bumps the sequence and results land", func(t *testing.T) {
		s := searchedState(t)
		st, ok := s.(wizard.Searching)
		require.True(t, ok)
		assert.Equal(t, int64(1), st.Search.Seq)
		assert.False(t, st.Search.Loading)
		assert.Len(t, st.Search.Results, 2)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		s := wizard.NewSearching()
		next, err := wizard.Transition(s, wizard.QuerySubmitted{Query: "  "})
		require.ErrorIs(t, err, wizard.ErrEmptyQuery)
		assert.Equal(t, s, next)
	})

	t.Run("stale results are discarded", func(t *testing.T) {
		s := apply(t, wizard.NewSearching(),
			wizard.QuerySubmitted{Query: "mat"},
			wizard.QuerySubmitted{Query: "matrix"},
			wizard.ResultsReceived{Seq: 1, Results: []sponsorship.ContentRef{show}},
		)
		st := s.(wizard.Searching)
		assert.True(t, st.Search.Loading)
		assert.Empty(t, st.Search.Results)

		s = apply(t, s, wizard.ResultsReceived{Seq: 2, Results: []sponsorship.ContentRef{matrix}})
		assert.Equal(t, []sponsorship.ContentRef{matrix}, s.(wizard.Searching).Search.Results)
	})

	t.Run("results after leaving the search step are ignored", func(t *testing.T) {
		s := apply(t, searchedState(t), wizard.QuerySubmitted{Query: "other"})
		s = apply(t, s, wizard.ContentChosen{Content: matrix})
		before := s
		s = apply(t, s, wizard.ResultsReceived{Seq: 2, Results: []sponsorship.ContentRef{show}})
		assert.Equal(t, before, s)
	})

	t.Run("lookup failure leaves a retryable notice", func(t *testing.T) {
		s := apply(t, searchedState(t),
			wizard.QuerySubmitted{Query: "again"},
			wizard.ResultsReceived{Seq: 2, Failed: true},
		)
		st := s.(wizard.Searching)
		assert.NotEmpty(t, st.Search.Notice)
		assert.False(t, st.Search.Loading)
		assert.Len(t, st.Search.Results, 2)

		s = apply(t, s, wizard.QuerySubmitted{Query: "again"})
		assert.Empty(t, s.(wizard.Searching).Search.Notice)
	})

	t.Run("movie goes straight to priority", func(t *testing.T) {
		s := apply(t, searchedState(t), wizard.ContentChosen{Content: matrix})
		st, ok := s.(wizard.PriorityOption)
		require.True(t, ok)
		assert.False(t, st.Blocked)
	})

	t.Run("series goes to unit selection on its first season", func(t *testing.T) {
		s := seriesState(t, sponsorship.EligibilitySnapshot{})
		st, ok := s.(wizard.SelectingUnits)
		require.True(t, ok)
		assert.Equal(t, []int{1, 2}, st.Draft.Seasons)
		assert.Equal(t, 1, st.Draft.ViewedSeason)
		assert.Len(t, st.Draft.Episodes[1], 3)
	})

	t.Run("next is not offered", func(t *testing.T) {
		_, err := wizard.Transition(wizard.NewSearching(), wizard.Next{})
		require.ErrorIs(t, err, wizard.ErrInvalidTransition)
	})
}

func TestSelectingUnits(t *testing.T) {
	ledger := sponsorship.EligibilitySnapshot{Episodes: map[sponsorship.EpisodeKey]sponsorship.Eligibility{
		key(1, 2): sponsorship.NewEligibility(true, false),
		key(1, 3): sponsorship.NewEligibility(true, true),
	}}

	t.Run("blocked episode cannot be selected", func(t *testing.T) {
		s := seriesState(t, ledger)
		next, err := wizard.Transition(s, wizard.EpisodeToggled{Key: key(1, 3)})
		require.ErrorIs(t, err, wizard.ErrUnitBlocked)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, s, next)
	})

	t.Run("toggle selects and deselects", func(t *testing.T) {
		s := apply(t, seriesState(t, ledger),
			wizard.EpisodeToggled{Key: key(1, 2)},
			wizard.EpisodeToggled{Key: key(1, 1)},
		)
		d, _ := wizard.DraftOf(s)
		assert.Equal(t, []sponsorship.EpisodeKey{key(1, 1), key(1, 2)}, d.SelectedKeys())

		s = apply(t, s, wizard.EpisodeToggled{Key: key(1, 1)})
		d, _ = wizard.DraftOf(s)
		assert.Equal(t, []sponsorship.EpisodeKey{key(1, 2)}, d.SelectedKeys())
	})

	t.Run("unknown episode", func(t *testing.T) {
		_, err := wizard.Transition(seriesState(t, ledger), wizard.EpisodeToggled{Key: key(2, 1)})
		require.ErrorIs(t, err, wizard.ErrUnknownEpisode)
	})

	t.Run("select all skips blocked and merges other seasons", func(t *testing.T) {
		s := apply(t, seriesState(t, ledger),
			wizard.SeasonLoaded{Season: 2, Episodes: episodes(2, 2)},
			wizard.EpisodeToggled{Key: key(2, 2)},
			wizard.SeasonLoaded{Season: 1, Episodes: episodes(1, 3)},
			wizard.AllAvailableSelected{},
			wizard.AllAvailableSelected{},
		)
		d, _ := wizard.DraftOf(s)
		assert.Equal(t, []sponsorship.EpisodeKey{key(1, 1), key(1, 2), key(2, 2)}, d.SelectedKeys())
	})

	t.Run("season outside the series", func(t *testing.T) {
		_, err := wizard.Transition(seriesState(t, ledger), wizard.SeasonLoaded{Season: 9})
		require.ErrorIs(t, err, wizard.ErrUnknownSeason)
	})

	t.Run("next needs a selection", func(t *testing.T) {
		s := seriesState(t, ledger)
		next, err := wizard.Transition(s, wizard.Next{})
		require.ErrorIs(t, err, wizard.ErrNoEpisodesSelected)
		assert.Equal(t, wizard.KindSelectingUnits, next.Kind())
	})

	t.Run("back returns to the search results", func(t *testing.T) {
		s := apply(t, seriesState(t, ledger), wizard.Back{})
		st, ok := s.(wizard.Searching)
		require.True(t, ok)
		assert.Len(t, st.Search.Results, 2)
	})
}

func TestPriorityOption(t *testing.T) {
	t.Run("blocked movie halts", func(t *testing.T) {
		ledger := sponsorship.EligibilitySnapshot{Movie: sponsorship.NewEligibility(true, true)}
		s := apply(t, searchedState(t), wizard.ContentChosen{Content: matrix, Ledger: ledger})
		require.True(t, s.(wizard.PriorityOption).Blocked)

		_, err := wizard.Transition(s, wizard.Next{})
		require.ErrorIs(t, err, wizard.ErrContentBlocked)
		_, err = wizard.Transition(s, wizard.PriorityToggled{})
		require.ErrorIs(t, err, wizard.ErrContentBlocked)

		s = apply(t, s, wizard.Restart{})
		assert.Equal(t, wizard.KindSearching, s.Kind())
	})

	t.Run("movie priority toggles", func(t *testing.T) {
		s := apply(t, searchedState(t), wizard.ContentChosen{Content: matrix}, wizard.PriorityToggled{})
		d, _ := wizard.DraftOf(s)
		assert.True(t, d.MoviePriority)
	})

	t.Run("episode priority toggles per unit", func(t *testing.T) {
		s := apply(t, seriesState(t, sponsorship.EligibilitySnapshot{}),
			wizard.AllAvailableSelected{},
			wizard.Next{},
			wizard.PriorityToggled{Key: ptr.Of(key(1, 2))},
		)
		d, _ := wizard.DraftOf(s)
		assert.Equal(t, []bool{false, true, false}, []bool{d.Selected[0].WantsPriority, d.Selected[1].WantsPriority, d.Selected[2].WantsPriority})

		_, err := wizard.Transition(s, wizard.PriorityToggled{Key: ptr.Of(key(2, 1))})
		require.ErrorIs(t, err, wizard.ErrUnknownEpisode)
	})

	t.Run("back keeps the selection", func(t *testing.T) {
		s := apply(t, seriesState(t, sponsorship.EligibilitySnapshot{}),
			wizard.EpisodeToggled{Key: key(1, 1)},
			wizard.Next{},
			wizard.Back{},
		)
		d, _ := wizard.DraftOf(s)
		assert.Equal(t, wizard.KindSelectingUnits, s.Kind())
		assert.Equal(t, []sponsorship.EpisodeKey{key(1, 1)}, d.SelectedKeys())
	})
}

func TestBuyerInfoAndSummary(t *testing.T) {
	atBuyer := func(t *testing.T) wizard.State {
		return apply(t, searchedState(t), wizard.ContentChosen{Content: matrix}, wizard.Next{})
	}

	t.Run("empty buyer name stays on buyer info", func(t *testing.T) {
		s := apply(t, atBuyer(t), wizard.BuyerInfoEntered{Buyer: wizard.BuyerForm{ContactPlatform: "discord", ContactValue: "bob#1"}})
		next, err := wizard.Transition(s, wizard.Next{})
		require.ErrorIs(t, err, wizard.ErrBuyerNameRequired)
		assert.Equal(t, wizard.KindBuyerInfo, next.Kind())
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("contact value is required", func(t *testing.T) {
		s := apply(t, atBuyer(t), wizard.BuyerInfoEntered{Buyer: wizard.BuyerForm{Name: "Bob", ContactPlatform: "discord"}})
		_, err := wizard.Transition(s, wizard.Next{})
		require.ErrorIs(t, err, wizard.ErrContactValueRequired)
	})

	t.Run("full path to confirmation and back navigation keeps input", func(t *testing.T) {
		buyer := wizard.BuyerForm{Name: "Bob", ContactPlatform: "discord", ContactValue: "bob#1"}
		s := apply(t, atBuyer(t),
			wizard.BuyerInfoEntered{Buyer: buyer},
			wizard.Next{},
			wizard.MessageEntered{Message: " hello "},
			wizard.Back{},
			wizard.Next{},
		)
		d, _ := wizard.DraftOf(s)
		assert.Equal(t, wizard.KindSummary, s.Kind())
		assert.Equal(t, buyer, d.Buyer)
		assert.Equal(t, "hello", d.Message)

		s = apply(t, s, wizard.OrderSubmitted{OrderCode: "ABCD1234", Total: sponsorship.NewMoney(8000)})
		c, ok := s.(wizard.Confirmed)
		require.True(t, ok)
		assert.Equal(t, "ABCD1234", c.OrderCode)

		_, err := wizard.Transition(s, wizard.Back{})
		require.ErrorIs(t, err, wizard.ErrInvalidTransition)

		for _, ev := range []wizard.Event{wizard.Cancel{}, wizard.Restart{}} {
			next, err := wizard.Transition(s, ev)
			require.ErrorIs(t, err, wizard.ErrInvalidTransition, "%T", ev)
			assert.Equal(t, wizard.KindConfirmed, next.Kind())
		}
	})
}

func TestCancelAndRestart(t *testing.T) {
	s := apply(t, searchedState(t), wizard.ContentChosen{Content: matrix}, wizard.PriorityToggled{})

	restarted := apply(t, s, wizard.Restart{})
	assert.Equal(t, wizard.Search{Query: "matrix", Seq: 1, Results: []sponsorship.ContentRef{matrix, show}}, wizard.SearchOf(restarted))

	cancelled := apply(t, s, wizard.Cancel{})
	if diff := cmp.Diff(wizard.Searching{Search: wizard.Search{Seq: 2}}, cancelled, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("cancel mismatch (-want +got):\n%s", diff)
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	s := apply(t, seriesState(t, sponsorship.EligibilitySnapshot{}), wizard.EpisodeToggled{Key: key(1, 1)})
	before, _ := wizard.DraftOf(s)
	snapshot := append([]wizard.Selection(nil), before.Selected...)

	_ = apply(t, s, wizard.EpisodeToggled{Key: key(1, 2)}, wizard.AllAvailableSelected{})

	after, _ := wizard.DraftOf(s)
	assert.Equal(t, snapshot, after.Selected)
}
