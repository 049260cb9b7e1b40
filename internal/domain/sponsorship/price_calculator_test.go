//go:build unit

package sponsorship_test

import (
	"testing"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceList(t *testing.T) sponsorship.PriceList {
	t.Helper()
	pl, err := sponsorship.NewPriceList(5000, 8000, 1000, 2000, "USD")
	require.NoError(t, err)
	return pl
}

func TestQuoteMovie(t *testing.T) {
	calc := sponsorship.NewDefaultPriceCalculator()
	pl := priceList(t)

	tests := []struct {
		name          string
		runtime       *int
		elig          sponsorship.Eligibility
		wantsPriority bool
		wantSubtotal  int64
		wantPriority  int64
	}{
		{name: "short movie without priority", runtime: ptr.Of(95), wantSubtotal: 5000},
		{name: "short movie with priority", runtime: ptr.Of(95), wantsPriority: true, wantSubtotal: 5000, wantPriority: 2000},
		{name: "exactly 120 minutes is short", runtime: ptr.Of(120), wantSubtotal: 5000},
		{name: "121 minutes is long", runtime: ptr.Of(121), wantSubtotal: 8000},
		{name: "missing runtime defaults to 90", runtime: nil, wantSubtotal: 5000},
		{name: "zero runtime defaults to 90", runtime: ptr.Of(0), wantSubtotal: 5000},
		{
			name:          "already paid movie only pays priority",
			runtime:       ptr.Of(150),
			elig:          sponsorship.NewEligibility(true, false),
			wantsPriority: true,
			wantPriority:  2000,
		},
		{
			name:          "blocked movie quotes zero",
			runtime:       ptr.Of(95),
			elig:          sponsorship.NewEligibility(true, true),
			wantsPriority: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := sponsorship.ContentRef{ID: 1, Title: "Movie", MediaType: sponsorship.MediaTypeMovie, RuntimeMinutes: tt.runtime}
			q := calc.QuoteMovie(pl, content, tt.elig, tt.wantsPriority)

			require.Len(t, q.Lines, 1)
			assert.Equal(t, tt.wantSubtotal, q.Subtotal.Cents())
			assert.Equal(t, tt.wantPriority, q.PriorityTotal.Cents())
			assert.Equal(t, tt.wantSubtotal+tt.wantPriority, q.Total.Cents())
		})
	}
}

func TestQuoteMovie_Examples(t *testing.T) {
	calc := sponsorship.NewDefaultPriceCalculator()
	pl := sponsorship.PriceList{
		MoviePriceShort: sponsorship.NewMoney(5000),
		PriorityPrice:   sponsorship.NewMoney(2000),
	}
	movie := sponsorship.ContentRef{ID: 7, MediaType: sponsorship.MediaTypeMovie, RuntimeMinutes: ptr.Of(95)}

	t.Run("not sponsored, no priority totals 50", func(t *testing.T) {
		q := calc.QuoteMovie(pl, movie, sponsorship.Eligibility{}, false)
		assert.Equal(t, "50.00", q.Total.String())
	})

	t.Run("not sponsored, with priority totals 70", func(t *testing.T) {
		q := calc.QuoteMovie(pl, movie, sponsorship.Eligibility{}, true)
		assert.Equal(t, "70.00", q.Total.String())
	})

	t.Run("missing long price is treated as zero", func(t *testing.T) {
		long := movie
		long.RuntimeMinutes = ptr.Of(180)
		q := calc.QuoteMovie(pl, long, sponsorship.Eligibility{}, false)
		assert.True(t, q.Total.IsZero())
	})
}

func TestQuoteEpisodes(t *testing.T) {
	calc := sponsorship.NewDefaultPriceCalculator()
	pl := sponsorship.PriceList{
		EpisodePrice:  sponsorship.NewMoney(1000),
		PriorityPrice: sponsorship.NewMoney(2000),
	}

	t.Run("paid episode with priority only pays priority", func(t *testing.T) {
		q := calc.QuoteEpisodes(pl, []sponsorship.EpisodeSelection{
			{Episode: sponsorship.EpisodeRef{Season: 1, Episode: 1}},
			{Episode: sponsorship.EpisodeRef{Season: 1, Episode: 2}, Eligibility: sponsorship.NewEligibility(true, false), WantsPriority: true},
			{Episode: sponsorship.EpisodeRef{Season: 1, Episode: 3}},
		})

		assert.Equal(t, int64(2000), q.Subtotal.Cents())
		assert.Equal(t, int64(2000), q.PriorityTotal.Cents())
		assert.Equal(t, int64(4000), q.Total.Cents())
		require.Len(t, q.Lines, 3)
		assert.True(t, q.Lines[1].AlreadyPaid)
		assert.True(t, q.Lines[1].Base.IsZero())
	})

	t.Run("priority is charged per episode", func(t *testing.T) {
		q := calc.QuoteEpisodes(pl, []sponsorship.EpisodeSelection{
			{Episode: sponsorship.EpisodeRef{Season: 1, Episode: 1}, WantsPriority: true},
			{Episode: sponsorship.EpisodeRef{Season: 1, Episode: 2}, WantsPriority: true},
		})
		assert.Equal(t, int64(4000), q.PriorityTotal.Cents())
	})

	t.Run("blocked episode contributes nothing", func(t *testing.T) {
		q := calc.QuoteEpisodes(pl, []sponsorship.EpisodeSelection{
			{Episode: sponsorship.EpisodeRef{Season: 2, Episode: 5}, Eligibility: sponsorship.NewEligibility(true, true), WantsPriority: true},
		})
		assert.True(t, q.Total.IsZero())
		assert.True(t, q.Lines[0].Blocked)
	})

	t.Run("no selections is an empty quote", func(t *testing.T) {
		q := calc.QuoteEpisodes(pl, nil)
		assert.Empty(t, q.Lines)
		assert.True(t, q.Total.IsZero())
	})
}

func TestNewPriceList_RejectsNegative(t *testing.T) {
	_, err := sponsorship.NewPriceList(100, -1, 0, 0, "USD")
	require.ErrorIs(t, err, sponsorship.ErrNegativeAmount)
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "0.00", sponsorship.NewMoney(0).String())
	assert.Equal(t, "12.05", sponsorship.NewMoney(1205).String())
	assert.Equal(t, "-3.10", sponsorship.NewMoney(-310).String())
}
