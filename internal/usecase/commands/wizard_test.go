//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/pkg/clock"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/pkg/ptr"
	"creator-sponsorship/internal/usecase/commands"
	"creator-sponsorship/internal/usecase/queries"
	"creator-sponsorship/internal/usecase/shared"
	"creator-sponsorship/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var (
	shortMovie = sponsorship.ContentRef{ID: 603, Title: "The Matrix", MediaType: sponsorship.MediaTypeMovie, RuntimeMinutes: ptr.Of(95)}
	longMovie  = sponsorship.ContentRef{ID: 604, Title: "The Matrix Reloaded", MediaType: sponsorship.MediaTypeMovie, RuntimeMinutes: ptr.Of(138)}
	series     = sponsorship.ContentRef{ID: 1399, Title: "Matrix Chronicles", MediaType: sponsorship.MediaTypeSeries}
)

func ep(season, episode int) sponsorship.EpisodeKey {
	return sponsorship.EpisodeKey{Season: season, Episode: episode}
}

type codeSeq struct{ n int }

func (c *codeSeq) Generate() (order.Code, error) {
	c.n++
	return order.ParseCode(fmt.Sprintf("ORD%05d", c.n))
}

// env wires the real use cases over in-memory stores.
type env struct {
	uow      *fake.UoW
	store    *fake.SessionStore
	catalog  *fake.Catalog
	clock    *clock.MockClock
	orders   commands.OrderCommands
	wizard   commands.WizardCommands
	creators commands.CreatorCommands
}

func newEnv() *env {
	e := &env{
		uow:     fake.NewUoW(),
		store:   fake.NewSessionStore(),
		catalog: fake.NewCatalog(),
		clock:   clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	e.catalog.AddMovie(shortMovie).AddMovie(longMovie).AddSeries(series, map[int]int{1: 3, 2: 2})

	pl, _ := sponsorship.NewPriceList(5000, 8000, 1000, 2000, "USD")
	e.uow.PutCreator(shared.CreatorProfileSnapshot{Username: "alice", PriceList: pl, ContactInstructions: "DM me on discord", UpdatedAt: e.clock.Now()})

	calc := sponsorship.NewDefaultPriceCalculator()
	factory := order.NewFactory(e.clock, &codeSeq{})
	orderQueries := queries.NewOrderQueries(e.uow)
	e.orders = commands.NewOrderUseCase(e.uow, factory, calc, commands.NewReconciler(e.clock), orderQueries, e.clock, time.Hour)
	e.wizard = commands.NewWizardUseCase(e.uow, e.store, e.catalog, e.orders, calc, e.clock)
	e.creators = commands.NewCreatorUseCase(e.uow, queries.NewCreatorQueries(e.uow), e.clock)
	return e
}

type WizardCommandsTestSuite struct {
	suite.Suite
	ctx context.Context
	env *env
}

func (s *WizardCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.env = newEnv()
}

func TestWizardCommandsSuite(t *testing.T) {
	suite.Run(t, new(WizardCommandsTestSuite))
}

func (s *WizardCommandsTestSuite) start() uuid.UUID {
	v, err := s.env.wizard.Start(s.ctx, "alice")
	s.Require().NoError(err)
	return v.Session.ID
}

func (s *WizardCommandsTestSuite) must(v *commands.SessionView, err error) *commands.SessionView {
	s.T().Helper()
	s.Require().NoError(err)
	return v
}

func (s *WizardCommandsTestSuite) buyer() wizard.BuyerForm {
	return wizard.BuyerForm{Name: "Bob", ContactPlatform: "discord", ContactValue: "bob#1234"}
}

// toSummary walks a movie session through to the summary step.
func (s *WizardCommandsTestSuite) toSummary(id uuid.UUID, content sponsorship.ContentRef, priority bool) *commands.SessionView {
	s.must(s.env.wizard.Search(s.ctx, id, "matrix"))
	s.must(s.env.wizard.Choose(s.ctx, id, content.ID))
	if priority {
		s.must(s.env.wizard.TogglePriority(s.ctx, id, nil))
	}
	s.must(s.env.wizard.Next(s.ctx, id))
	s.must(s.env.wizard.SetBuyer(s.ctx, id, s.buyer()))
	return s.must(s.env.wizard.Next(s.ctx, id))
}

func (s *WizardCommandsTestSuite) TestStart() {
	s.Run("success: session begins searching with the creator price list", func() {
		v := s.must(s.env.wizard.Start(s.ctx, "alice"))
		s.Equal(wizard.KindSearching, v.Session.State.Kind())
		s.Equal("alice", v.Session.CreatorUsername)
		s.Equal(int64(5000), v.Session.PriceList.MoviePriceShort.Cents())
		s.Nil(v.Quote)
	})

	s.Run("error: unknown creator", func() {
		_, err := s.env.wizard.Start(s.ctx, "nobody")
		s.ErrorIs(err, commands.ErrCreatorNotFound)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: unknown session", func() {
		_, err := s.env.wizard.Get(s.ctx, uuid.New())
		s.ErrorIs(err, shared.ErrSessionNotFound)
	})
}

func (s *WizardCommandsTestSuite) TestSearch() {
	s.Run("success: results are stored on the session", func() {
		id := s.start()
		v := s.must(s.env.wizard.Search(s.ctx, id, "matrix"))
		search := wizard.SearchOf(v.Session.State)
		s.Len(search.Results, 3)
		s.False(search.Loading)
		s.Empty(search.Notice)
	})

	s.Run("success: lookup failure becomes a notice", func() {
		id := s.start()
		s.env.catalog.Err = fake.ErrCatalogDown
		defer func() { s.env.catalog.Err = nil }()

		v := s.must(s.env.wizard.Search(s.ctx, id, "matrix"))
		search := wizard.SearchOf(v.Session.State)
		s.Empty(search.Results)
		s.NotEmpty(search.Notice)
		s.False(search.Loading)
	})

	s.Run("error: empty query", func() {
		id := s.start()
		_, err := s.env.wizard.Search(s.ctx, id, "   ")
		s.ErrorIs(err, wizard.ErrEmptyQuery)
	})
}

func (s *WizardCommandsTestSuite) TestChoose() {
	s.Run("error: content must come from the results", func() {
		id := s.start()
		s.must(s.env.wizard.Search(s.ctx, id, "reloaded"))
		_, err := s.env.wizard.Choose(s.ctx, id, shortMovie.ID)
		s.ErrorIs(err, commands.ErrContentNotInResults)
	})

	s.Run("error: details lookup failure", func() {
		id := s.start()
		s.must(s.env.wizard.Search(s.ctx, id, "matrix"))
		s.env.catalog.Err = fake.ErrCatalogDown
		defer func() { s.env.catalog.Err = nil }()

		_, err := s.env.wizard.Choose(s.ctx, id, shortMovie.ID)
		s.ErrorIs(err, commands.ErrLookupFailed)
		s.True(errs.Is(err, errs.ErrUpstream))

		got := s.must(s.env.wizard.Get(s.ctx, id))
		s.Equal(wizard.KindSearching, got.Session.State.Kind())
	})

	s.Run("success: series loads the first season", func() {
		id := s.start()
		s.must(s.env.wizard.Search(s.ctx, id, "chronicles"))
		v := s.must(s.env.wizard.Choose(s.ctx, id, series.ID))

		st, ok := v.Session.State.(wizard.SelectingUnits)
		s.Require().True(ok)
		s.Equal([]int{1, 2}, st.Draft.Seasons)
		s.Equal(1, st.Draft.ViewedSeason)
		s.Len(st.Draft.Episodes[1], 3)
	})

	s.Run("success: fully sponsored movie is blocked", func() {
		s.env.uow.PutLedger(sponsorship.ReconstructLedgerEntry("alice", shortMovie, true, true, sponsorship.PriorityHigh, "Carol", nil, 1, s.env.clock.Now()))
		id := s.start()
		s.must(s.env.wizard.Search(s.ctx, id, "matrix"))
		v := s.must(s.env.wizard.Choose(s.ctx, id, shortMovie.ID))

		st, ok := v.Session.State.(wizard.PriorityOption)
		s.Require().True(ok)
		s.True(st.Blocked)
		_, err := s.env.wizard.Next(s.ctx, id)
		s.ErrorIs(err, wizard.ErrContentBlocked)
	})
}

func (s *WizardCommandsTestSuite) TestViewSeason() {
	id := s.start()
	s.must(s.env.wizard.Search(s.ctx, id, "chronicles"))
	s.must(s.env.wizard.Choose(s.ctx, id, series.ID))
	before := s.env.catalog.Calls("GetSeasonEpisodes")

	s.Run("success: uncached season is fetched", func() {
		v := s.must(s.env.wizard.ViewSeason(s.ctx, id, 2))
		st := v.Session.State.(wizard.SelectingUnits)
		s.Equal(2, st.Draft.ViewedSeason)
		s.Len(st.Draft.Episodes[2], 2)
		s.Equal(before+1, s.env.catalog.Calls("GetSeasonEpisodes"))
	})

	s.Run("success: cached season is not fetched again", func() {
		s.must(s.env.wizard.ViewSeason(s.ctx, id, 1))
		s.must(s.env.wizard.ViewSeason(s.ctx, id, 2))
		s.Equal(before+1, s.env.catalog.Calls("GetSeasonEpisodes"))
	})

	s.Run("error: unknown season", func() {
		_, err := s.env.wizard.ViewSeason(s.ctx, id, 7)
		s.ErrorIs(err, wizard.ErrUnknownSeason)
	})
}

func (s *WizardCommandsTestSuite) TestMovieOrder() {
	tests := []struct {
		name      string
		content   sponsorship.ContentRef
		priority  bool
		wantTotal int64
	}{
		{name: "short movie", content: shortMovie, wantTotal: 5000},
		{name: "short movie with priority", content: shortMovie, priority: true, wantTotal: 7000},
		{name: "long movie", content: longMovie, wantTotal: 8000},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			id := s.start()
			summary := s.toSummary(id, tt.content, tt.priority)
			s.Require().NotNil(summary.Quote)
			s.Equal(tt.wantTotal, summary.Quote.Total.Cents())

			res, err := s.env.wizard.Submit(s.ctx, id)
			s.Require().NoError(err)
			s.False(res.IsReplayed)
			s.Equal(tt.wantTotal, res.Order.TotalCents)
			s.Equal(string(order.StatusPending), res.Order.Status)
			s.Equal("USD", res.Order.Currency)

			st, ok := res.View.Session.State.(wizard.Confirmed)
			s.Require().True(ok)
			s.Equal(res.Order.Code, st.OrderCode)

			s.Len(s.env.uow.Orders(), 1)
			s.Len(s.env.uow.Events(), 1)
			s.Len(s.env.uow.Jobs(), 1)
			// placing an order never touches the ledger
			s.Nil(s.env.uow.Ledger("alice", tt.content.ID))
		})
	}
}

func (s *WizardCommandsTestSuite) TestSeriesOrder() {
	s.env.uow.PutLedger(sponsorship.ReconstructLedgerEntry("alice", series, false, false, sponsorship.PriorityNormal, "",
		[]sponsorship.EpisodeRecord{{Season: 1, Episode: 2, IsPaid: true, SponsorName: "Carol"}}, 1, s.env.clock.Now()))

	id := s.start()
	s.must(s.env.wizard.Search(s.ctx, id, "chronicles"))
	s.must(s.env.wizard.Choose(s.ctx, id, series.ID))
	s.must(s.env.wizard.SelectAllAvailable(s.ctx, id))
	v := s.must(s.env.wizard.Next(s.ctx, id))
	s.Equal(wizard.KindPriorityOption, v.Session.State.Kind())

	s.must(s.env.wizard.TogglePriority(s.ctx, id, ptr.Of(ep(1, 2))))
	s.must(s.env.wizard.Next(s.ctx, id))
	s.must(s.env.wizard.SetBuyer(s.ctx, id, s.buyer()))
	v = s.must(s.env.wizard.Next(s.ctx, id))

	// two unpaid episodes at 1000 plus priority on the paid one
	s.Require().NotNil(v.Quote)
	s.Equal(int64(2000), v.Quote.Subtotal.Cents())
	s.Equal(int64(2000), v.Quote.PriorityTotal.Cents())
	s.Equal(int64(4000), v.Quote.Total.Cents())

	res, err := s.env.wizard.Submit(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(int64(4000), res.Order.TotalCents)
	s.Len(res.Order.Items, 3)
}

func (s *WizardCommandsTestSuite) TestSubmit() {
	s.Run("error: empty buyer name keeps the session on buyer info", func() {
		id := s.start()
		s.must(s.env.wizard.Search(s.ctx, id, "matrix"))
		s.must(s.env.wizard.Choose(s.ctx, id, shortMovie.ID))
		s.must(s.env.wizard.Next(s.ctx, id))
		s.must(s.env.wizard.SetBuyer(s.ctx, id, wizard.BuyerForm{Name: "  ", ContactPlatform: "discord", ContactValue: "bob"}))

		_, err := s.env.wizard.Next(s.ctx, id)
		s.ErrorIs(err, wizard.ErrBuyerNameRequired)

		_, err = s.env.wizard.Submit(s.ctx, id)
		s.ErrorIs(err, commands.ErrNotAtSummary)

		got := s.must(s.env.wizard.Get(s.ctx, id))
		s.Equal(wizard.KindBuyerInfo, got.Session.State.Kind())
		s.Empty(s.env.uow.Orders())
		s.Nil(s.env.uow.Ledger("alice", shortMovie.ID))
	})

	s.Run("success: resubmission replays the first order", func() {
		s.SetupTest()
		id := s.start()
		s.toSummary(id, shortMovie, false)

		first, err := s.env.wizard.Submit(s.ctx, id)
		s.Require().NoError(err)
		second, err := s.env.wizard.Submit(s.ctx, id)
		s.Require().NoError(err)

		s.True(second.IsReplayed)
		s.Equal(first.Order.ID, second.Order.ID)
		s.Len(s.env.uow.Orders(), 1)
		s.Len(s.env.uow.Jobs(), 1)
	})

	s.Run("error: unit sponsored meanwhile rolls back the order", func() {
		s.SetupTest()
		id := s.start()
		s.toSummary(id, shortMovie, false)
		s.env.uow.PutLedger(sponsorship.ReconstructLedgerEntry("alice", shortMovie, true, true, sponsorship.PriorityHigh, "Carol", nil, 1, s.env.clock.Now()))

		_, err := s.env.wizard.Submit(s.ctx, id)
		s.ErrorIs(err, wizard.ErrUnitBlocked)
		s.True(errs.Is(err, errs.ErrConflict))

		s.Empty(s.env.uow.Orders())
		s.Empty(s.env.uow.Events())
		s.Empty(s.env.uow.Jobs())
		got := s.must(s.env.wizard.Get(s.ctx, id))
		s.Equal(wizard.KindSummary, got.Session.State.Kind())
	})

	s.Run("success: paid since selection is requoted at zero", func() {
		s.SetupTest()
		id := s.start()
		s.toSummary(id, shortMovie, true)
		s.env.uow.PutLedger(sponsorship.ReconstructLedgerEntry("alice", shortMovie, true, false, sponsorship.PriorityNormal, "Carol", nil, 1, s.env.clock.Now()))

		res, err := s.env.wizard.Submit(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(int64(2000), res.Order.TotalCents)
	})
}

func (s *WizardCommandsTestSuite) TestCancelAndRestart() {
	id := s.start()
	s.must(s.env.wizard.Search(s.ctx, id, "matrix"))
	s.must(s.env.wizard.Choose(s.ctx, id, shortMovie.ID))

	v := s.must(s.env.wizard.Restart(s.ctx, id))
	st, ok := v.Session.State.(wizard.Searching)
	s.Require().True(ok)
	s.Equal("matrix", st.Search.Query)
	s.NotEmpty(st.Search.Results)

	s.must(s.env.wizard.Choose(s.ctx, id, shortMovie.ID))
	v = s.must(s.env.wizard.Cancel(s.ctx, id))
	st, ok = v.Session.State.(wizard.Searching)
	s.Require().True(ok)
	s.Empty(st.Search.Results)
	s.Empty(s.env.uow.Orders())
}

func (s *WizardCommandsTestSuite) TestConfirmedSessionIsClosed() {
	id := s.start()
	s.toSummary(id, shortMovie, false)
	first, err := s.env.wizard.Submit(s.ctx, id)
	s.Require().NoError(err)

	s.Run("restart is rejected once the order is placed", func() {
		_, err := s.env.wizard.Restart(s.ctx, id)
		s.Require().ErrorIs(err, wizard.ErrInvalidTransition)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("cancel closes the session", func() {
		v := s.must(s.env.wizard.Cancel(s.ctx, id))
		st, ok := v.Session.State.(wizard.Confirmed)
		s.Require().True(ok)
		s.Equal(first.Order.Code, st.OrderCode)

		_, err := s.env.wizard.Get(s.ctx, id)
		s.Require().ErrorIs(err, shared.ErrSessionNotFound)
		_, err = s.env.wizard.Submit(s.ctx, id)
		s.Require().ErrorIs(err, shared.ErrSessionNotFound)
	})

	s.Run("the next order goes through a new session", func() {
		next := s.start()
		s.toSummary(next, longMovie, true)
		second, err := s.env.wizard.Submit(s.ctx, next)
		s.Require().NoError(err)

		s.False(second.IsReplayed)
		s.NotEqual(first.Order.Code, second.Order.Code)
		s.Equal(int64(10000), second.Order.TotalCents)
		s.Len(s.env.uow.Orders(), 2)
		s.Len(s.env.uow.Events(), 2)
		s.Len(s.env.uow.Jobs(), 2)
	})
}
