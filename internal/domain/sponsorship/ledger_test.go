//go:build unit

package sponsorship_test

import (
	"encoding/json"
	"testing"
	"time"

	"creator-sponsorship/internal/domain/sponsorship"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	series = sponsorship.ContentRef{ID: 1399, Title: "Series", MediaType: sponsorship.MediaTypeSeries}
	movie  = sponsorship.ContentRef{ID: 603, Title: "Movie", MediaType: sponsorship.MediaTypeMovie}
	t0     = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
)

func episodeLine(season, episode int, priority bool) sponsorship.MergeLine {
	return sponsorship.MergeLine{
		Content:       series,
		Episode:       &sponsorship.EpisodeRef{Season: season, Episode: episode},
		WantsPriority: priority,
	}
}

func newEntry(t *testing.T, content sponsorship.ContentRef) *sponsorship.LedgerEntry {
	t.Helper()
	e, err := sponsorship.NewLedgerEntry("alice", content, t0)
	require.NoError(t, err)
	return e
}

func TestEligibility(t *testing.T) {
	t.Run("absent entry blocks nothing", func(t *testing.T) {
		var e *sponsorship.LedgerEntry
		assert.Equal(t, sponsorship.Eligibility{}, e.MovieEligibility())
		assert.Equal(t, sponsorship.Eligibility{}, e.EpisodeEligibility(sponsorship.EpisodeKey{Season: 1, Episode: 1}))
		assert.Empty(t, e.Snapshot().Episodes)
	})

	t.Run("movie flags", func(t *testing.T) {
		cases := []struct {
			paid, priority bool
			want           sponsorship.Eligibility
		}{
			{false, false, sponsorship.Eligibility{}},
			{true, false, sponsorship.Eligibility{AlreadyPaid: true}},
			{false, true, sponsorship.Eligibility{AlreadyPriority: true}},
			{true, true, sponsorship.Eligibility{Blocked: true, AlreadyPaid: true, AlreadyPriority: true}},
		}
		for _, c := range cases {
			e := sponsorship.ReconstructLedgerEntry("alice", movie, c.paid, c.priority, sponsorship.PriorityNormal, "", nil, 1, t0)
			assert.Equal(t, c.want, e.MovieEligibility())
		}
	})

	t.Run("episode record decides, absent record is open", func(t *testing.T) {
		e := sponsorship.ReconstructLedgerEntry("alice", series, true, true, sponsorship.PriorityHigh, "", []sponsorship.EpisodeRecord{
			{Season: 1, Episode: 1, IsPaid: true, IsPriority: true},
			{Season: 1, Episode: 2, IsPaid: true},
		}, 3, t0)

		assert.True(t, e.EpisodeEligibility(sponsorship.EpisodeKey{Season: 1, Episode: 1}).Blocked)
		assert.Equal(t, sponsorship.Eligibility{AlreadyPaid: true}, e.EpisodeEligibility(sponsorship.EpisodeKey{Season: 1, Episode: 2}))
		assert.Equal(t, sponsorship.Eligibility{}, e.EpisodeEligibility(sponsorship.EpisodeKey{Season: 1, Episode: 3}))

		snap := e.Snapshot()
		assert.True(t, snap.AnyBlocked(sponsorship.MediaTypeSeries, []sponsorship.EpisodeKey{{Season: 1, Episode: 1}}))
		assert.False(t, snap.AnyBlocked(sponsorship.MediaTypeSeries, []sponsorship.EpisodeKey{{Season: 1, Episode: 2}, {Season: 2, Episode: 1}}))
	})

	t.Run("snapshot survives JSON", func(t *testing.T) {
		e := sponsorship.ReconstructLedgerEntry("alice", series, true, false, sponsorship.PriorityNormal, "", []sponsorship.EpisodeRecord{
			{Season: 2, Episode: 10, IsPaid: true, IsPriority: true},
		}, 1, t0)
		b, err := json.Marshal(e.Snapshot())
		require.NoError(t, err)
		assert.Contains(t, string(b), `"S2E10"`)

		var got sponsorship.EligibilitySnapshot
		require.NoError(t, json.Unmarshal(b, &got))
		assert.True(t, got.ForEpisode(sponsorship.EpisodeKey{Season: 2, Episode: 10}).Blocked)
	})
}

func TestMerge_Series(t *testing.T) {
	t.Run("inserts new episodes with the sponsor name", func(t *testing.T) {
		e := newEntry(t, series)
		changed, err := e.Merge([]sponsorship.MergeLine{episodeLine(1, 2, false), episodeLine(1, 1, true)}, "Bob", t0)
		require.NoError(t, err)
		assert.True(t, changed)

		want := []sponsorship.EpisodeRecord{
			{Season: 1, Episode: 1, IsPaid: true, IsPriority: true, SponsorName: "Bob"},
			{Season: 1, Episode: 2, IsPaid: true, SponsorName: "Bob"},
		}
		if diff := cmp.Diff(want, e.Episodes()); diff != "" {
			t.Errorf("episodes mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, sponsorship.PriorityHigh, e.Priority())
		assert.True(t, e.IsPaid())
	})

	t.Run("existing episode keeps its sponsor and ORs priority", func(t *testing.T) {
		e := sponsorship.ReconstructLedgerEntry("alice", series, true, false, sponsorship.PriorityNormal, "", []sponsorship.EpisodeRecord{
			{Season: 1, Episode: 2, IsPaid: true, SponsorName: "Carol"},
		}, 1, t0)

		_, err := e.Merge([]sponsorship.MergeLine{episodeLine(1, 2, true)}, "Bob", t0)
		require.NoError(t, err)

		got := e.Episodes()
		require.Len(t, got, 1)
		assert.Equal(t, "Carol", got[0].SponsorName)
		assert.True(t, got[0].IsPriority)
		assert.Equal(t, sponsorship.PriorityHigh, e.Priority())
	})

	t.Run("never clears a true priority", func(t *testing.T) {
		e := sponsorship.ReconstructLedgerEntry("alice", series, true, true, sponsorship.PriorityHigh, "", []sponsorship.EpisodeRecord{
			{Season: 1, Episode: 1, IsPaid: true, IsPriority: true, SponsorName: "Carol"},
		}, 1, t0)

		changed, err := e.Merge([]sponsorship.MergeLine{episodeLine(1, 1, false)}, "Bob", t0.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.True(t, e.Episodes()[0].IsPriority)
		assert.Equal(t, t0, e.UpdatedAt())
	})

	t.Run("without any priority the summary stays normal", func(t *testing.T) {
		e := newEntry(t, series)
		_, err := e.Merge([]sponsorship.MergeLine{episodeLine(3, 1, false)}, "Bob", t0)
		require.NoError(t, err)
		assert.Equal(t, sponsorship.PriorityNormal, e.Priority())
		assert.False(t, e.IsPriority())
	})
}

func TestMerge_Movie(t *testing.T) {
	line := sponsorship.MergeLine{Content: movie, WantsPriority: true}

	e := newEntry(t, movie)
	_, err := e.Merge([]sponsorship.MergeLine{line}, "Bob", t0)
	require.NoError(t, err)
	assert.True(t, e.IsPaid())
	assert.True(t, e.IsPriority())
	assert.Equal(t, "Bob", e.SponsorName())
	assert.True(t, e.MovieEligibility().Blocked)

	t.Run("later sponsor does not replace the first", func(t *testing.T) {
		_, err := e.Merge([]sponsorship.MergeLine{{Content: movie}}, "Dave", t0)
		require.NoError(t, err)
		assert.Equal(t, "Bob", e.SponsorName())
		assert.True(t, e.IsPriority())
	})
}

func TestMerge_IdempotentAndMonotonic(t *testing.T) {
	lines := []sponsorship.MergeLine{episodeLine(1, 1, false), episodeLine(1, 2, true), episodeLine(2, 1, false)}

	once := newEntry(t, series)
	_, err := once.Merge(lines, "Bob", t0)
	require.NoError(t, err)

	twice := newEntry(t, series)
	_, err = twice.Merge(lines, "Bob", t0)
	require.NoError(t, err)
	changed, err := twice.Merge(lines, "Bob", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, changed)

	if diff := cmp.Diff(once, twice, cmp.AllowUnexported(sponsorship.LedgerEntry{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("second merge changed the entry (-once +twice):\n%s", diff)
	}

	for _, rec := range twice.Episodes() {
		assert.True(t, rec.IsPaid, rec.Key().String())
	}
}

func TestMerge_RejectsForeignContent(t *testing.T) {
	e := newEntry(t, movie)
	_, err := e.Merge([]sponsorship.MergeLine{episodeLine(1, 1, false)}, "Bob", t0)
	require.ErrorIs(t, err, sponsorship.ErrContentMismatch)
}

func TestGroupByContent(t *testing.T) {
	groups := sponsorship.GroupByContent([]sponsorship.MergeLine{
		episodeLine(1, 1, false),
		{Content: movie},
		episodeLine(1, 2, false),
	})
	require.Len(t, groups, 2)
	assert.Equal(t, series.ID, groups[0].Content.ID)
	assert.Len(t, groups[0].Lines, 2)
	assert.Equal(t, movie.ID, groups[1].Content.ID)
}

func TestParseEpisodeKey(t *testing.T) {
	k, err := sponsorship.ParseEpisodeKey("S3E12")
	require.NoError(t, err)
	assert.Equal(t, sponsorship.EpisodeKey{Season: 3, Episode: 12}, k)

	for _, bad := range []string{"", "S1", "E1", "S1E0", "S1E2x", "s1e2"} {
		_, err := sponsorship.ParseEpisodeKey(bad)
		assert.Error(t, err, bad)
	}
}
