//go:build unit || e2e

package builder

import (
	"time"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/usecase/commands"

	"github.com/google/uuid"
)

// SessionBuilder produces wizard sessions in a given step for handler tests.
type SessionBuilder struct {
	ID      uuid.UUID
	Creator string
	State   wizard.State
	Quote   *sponsorship.Quote
	Now     time.Time
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:      uuid.New(),
		Creator: "alice",
		State:   wizard.NewSearching(),
		Now:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func DefaultPriceList() sponsorship.PriceList {
	pl, err := sponsorship.NewPriceList(5000, 8000, 1000, 2000, "USD")
	if err != nil {
		panic(err)
	}
	return pl
}

func (b *SessionBuilder) WithState(st wizard.State) *SessionBuilder {
	b.State = st
	return b
}

func (b *SessionBuilder) WithQuote(q sponsorship.Quote) *SessionBuilder {
	b.Quote = &q
	return b
}

// AtSearchResults puts the session at the search step with results.
func (b *SessionBuilder) AtSearchResults(query string, results ...sponsorship.ContentRef) *SessionBuilder {
	b.State = wizard.Searching{Search: wizard.Search{Query: query, Seq: 1, Results: results}}
	return b
}

// AtSeries puts the session at episode selection for a series.
func (b *SessionBuilder) AtSeries(content sponsorship.ContentRef, season int, eps []sponsorship.EpisodeRef, selected ...sponsorship.EpisodeRef) *SessionBuilder {
	draft := wizard.Draft{
		Content:      content,
		Seasons:      []int{season},
		ViewedSeason: season,
		Episodes:     map[int][]sponsorship.EpisodeRef{season: eps},
	}
	for _, ep := range selected {
		draft.Selected = append(draft.Selected, wizard.Selection{Episode: ep})
	}
	b.State = wizard.SelectingUnits{Draft: draft}
	return b
}

func (b *SessionBuilder) AtConfirmed(content sponsorship.ContentRef, code string, total int64) *SessionBuilder {
	b.State = wizard.Confirmed{
		Draft:     wizard.Draft{Content: content},
		OrderCode: code,
		Total:     sponsorship.NewMoney(total),
	}
	return b
}

func (b *SessionBuilder) BuildDomain() *wizard.Session {
	return &wizard.Session{
		ID:                  b.ID,
		CreatorUsername:     b.Creator,
		PriceList:           DefaultPriceList(),
		ContactInstructions: "Pay via the link on my profile",
		State:               b.State,
		Version:             1,
		CreatedAt:           b.Now,
		UpdatedAt:           b.Now,
	}
}

func (b *SessionBuilder) BuildView() *commands.SessionView {
	return &commands.SessionView{Session: b.BuildDomain(), Quote: b.Quote}
}
