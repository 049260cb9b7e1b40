package commands

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/pkg/clock"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/uuid"
)

// WizardCommands drives one buyer session. Catalog calls happen between two
// session updates, never while a session update is in flight.
type WizardCommands interface {
	Start(ctx context.Context, creatorUsername string) (*SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Search(ctx context.Context, id uuid.UUID, query string) (*SessionView, error)
	Choose(ctx context.Context, id uuid.UUID, contentID int64) (*SessionView, error)
	ViewSeason(ctx context.Context, id uuid.UUID, season int) (*SessionView, error)
	ToggleEpisode(ctx context.Context, id uuid.UUID, key sponsorship.EpisodeKey) (*SessionView, error)
	SelectAllAvailable(ctx context.Context, id uuid.UUID) (*SessionView, error)
	TogglePriority(ctx context.Context, id uuid.UUID, key *sponsorship.EpisodeKey) (*SessionView, error)
	SetBuyer(ctx context.Context, id uuid.UUID, form wizard.BuyerForm) (*SessionView, error)
	SetMessage(ctx context.Context, id uuid.UUID, message string) (*SessionView, error)
	Next(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Back(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Restart(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error)
}

type wizardUseCaseImpl struct {
	uow     shared.UnitOfWork
	store   shared.SessionStore
	catalog shared.CatalogLookup
	orders  OrderCommands
	calc    sponsorship.PriceCalculator
	clock   clock.Clock
	logger  *slog.Logger
}

func NewWizardUseCase(
	uow shared.UnitOfWork,
	store shared.SessionStore,
	catalog shared.CatalogLookup,
	orders OrderCommands,
	calc sponsorship.PriceCalculator,
	clk clock.Clock,
) WizardCommands {
	return &wizardUseCaseImpl{
		uow:     uow,
		store:   store,
		catalog: catalog,
		orders:  orders,
		calc:    calc,
		clock:   clk,
		logger:  slog.With("component", "wizard"),
	}
}

func (uc *wizardUseCaseImpl) Start(ctx context.Context, creatorUsername string) (*SessionView, error) {
	profile, err := uc.uow.CommandReads().CreatorProfile(ctx, strings.TrimSpace(creatorUsername))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, err
	}

	s := wizard.NewSession(profile.Username, profile.PriceList, profile.ContactInstructions, uc.clock.Now())
	if err := uc.store.Create(ctx, s); err != nil {
		return nil, err
	}
	return uc.view(s), nil
}

func (uc *wizardUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.view(s), nil
}

// Search never fails on a lookup error: the failure is shown as a notice and
// the buyer can retry.
func (uc *wizardUseCaseImpl) Search(ctx context.Context, id uuid.UUID, query string) (*SessionView, error) {
	s, err := uc.store.Update(ctx, id, func(s *wizard.Session) error {
		return s.Apply(wizard.QuerySubmitted{Query: query}, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	search := wizard.SearchOf(s.State)

	results, lerr := uc.catalog.Search(ctx, search.Query)
	if lerr != nil {
		uc.logger.Warn("catalog search failed", "session_id", id, "query", search.Query, "error", lerr)
	}
	return uc.apply(ctx, id, wizard.ResultsReceived{Seq: search.Seq, Results: results, Failed: lerr != nil})
}

func (uc *wizardUseCaseImpl) Choose(ctx context.Context, id uuid.UUID, contentID int64) (*SessionView, error) {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	st, ok := s.State.(wizard.Searching)
	if !ok {
		return nil, wizard.ErrInvalidTransition
	}
	i := slices.IndexFunc(st.Search.Results, func(c sponsorship.ContentRef) bool { return c.ID == contentID })
	if i < 0 {
		return nil, ErrContentNotInResults
	}
	picked := st.Search.Results[i]

	details, err := uc.catalog.GetDetails(ctx, picked.ID, picked.MediaType)
	if err != nil {
		uc.logger.Warn("catalog details failed", "session_id", id, "content_id", picked.ID, "error", err)
		return nil, ErrLookupFailed
	}
	content := mergeContent(picked, details.Content)

	var episodes []sponsorship.EpisodeRef
	if !content.IsMovie() && len(details.Seasons) > 0 {
		first := slices.Min(details.Seasons)
		episodes, err = uc.catalog.GetSeasonEpisodes(ctx, content.ID, first)
		if err != nil {
			uc.logger.Warn("catalog season failed", "session_id", id, "content_id", content.ID, "season", first, "error", err)
			return nil, ErrLookupFailed
		}
	}

	entry, err := uc.uow.CommandReads().LedgerEntry(ctx, s.CreatorUsername, content.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return uc.apply(ctx, id, wizard.ContentChosen{
		Content:  content,
		Seasons:  details.Seasons,
		Episodes: episodes,
		Ledger:   entry.Snapshot(),
	})
}

// mergeContent prefers the detailed record but keeps search fields it lacks.
func mergeContent(picked, detailed sponsorship.ContentRef) sponsorship.ContentRef {
	out := detailed
	out.ID = picked.ID
	out.MediaType = picked.MediaType
	if out.Title == "" {
		out.Title = picked.Title
	}
	if out.PosterRef == "" {
		out.PosterRef = picked.PosterRef
	}
	if out.RuntimeMinutes == nil {
		out.RuntimeMinutes = picked.RuntimeMinutes
	}
	return out
}

func (uc *wizardUseCaseImpl) ViewSeason(ctx context.Context, id uuid.UUID, season int) (*SessionView, error) {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	st, ok := s.State.(wizard.SelectingUnits)
	if !ok {
		return nil, wizard.ErrInvalidTransition
	}
	if !slices.Contains(st.Draft.Seasons, season) {
		return nil, wizard.ErrUnknownSeason
	}

	episodes, cached := st.Draft.Episodes[season]
	if !cached {
		episodes, err = uc.catalog.GetSeasonEpisodes(ctx, st.Draft.Content.ID, season)
		if err != nil {
			uc.logger.Warn("catalog season failed", "session_id", id, "content_id", st.Draft.Content.ID, "season", season, "error", err)
			return nil, ErrLookupFailed
		}
	}
	return uc.apply(ctx, id, wizard.SeasonLoaded{Season: season, Episodes: episodes})
}

func (uc *wizardUseCaseImpl) ToggleEpisode(ctx context.Context, id uuid.UUID, key sponsorship.EpisodeKey) (*SessionView, error) {
	return uc.apply(ctx, id, wizard.EpisodeToggled{Key: key})
}

func (uc *wizardUseCaseImpl) SelectAllAvailable(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	return uc.apply(ctx, id, wizard.AllAvailableSelected{})
}

func (uc *wizardUseCaseImpl) TogglePriority(ctx context.Context, id uuid.UUID, key *sponsorship.EpisodeKey) (*SessionView, error) {
	return uc.apply(ctx, id, wizard.PriorityToggled{Key: key})
}

func (uc *wizardUseCaseImpl) SetBuyer(ctx context.Context, id uuid.UUID, form wizard.BuyerForm) (*SessionView, error) {
	return uc.apply(ctx, id, wizard.BuyerInfoEntered{Buyer: form})
}

func (uc *wizardUseCaseImpl) SetMessage(ctx context.Context, id uuid.UUID, message string) (*SessionView, error) {
	return uc.apply(ctx, id, wizard.MessageEntered{Message: message})
}

func (uc *wizardUseCaseImpl) Next(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	return uc.apply(ctx, id, wizard.Next{})
}

func (uc *wizardUseCaseImpl) Back(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	return uc.apply(ctx, id, wizard.Back{})
}

func (uc *wizardUseCaseImpl) Restart(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	return uc.apply(ctx, id, wizard.Restart{})
}

// Cancel resets an open session to the search step. A confirmed session is
// closed instead, so the next order starts from a fresh session.
func (uc *wizardUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.State.Kind() == wizard.KindConfirmed {
		if err := uc.store.Delete(ctx, id); err != nil {
			return nil, err
		}
		return uc.view(s), nil
	}
	return uc.apply(ctx, id, wizard.Cancel{})
}

func (uc *wizardUseCaseImpl) Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error) {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var draft wizard.Draft
	switch st := s.State.(type) {
	case wizard.Summary:
		draft = st.Draft
	case wizard.Confirmed:
		// resubmission replays the stored order
		draft = st.Draft
	default:
		return nil, ErrNotAtSummary
	}

	res, err := uc.orders.Submit(ctx, SubmitOrderInput{
		SessionID:       s.ID,
		CreatorUsername: s.CreatorUsername,
		PriceList:       s.PriceList,
		Draft:           draft,
	})
	if err != nil {
		return nil, err
	}

	confirmed := wizard.OrderSubmitted{OrderCode: res.Order.Code, Total: sponsorship.NewMoney(res.Order.TotalCents)}
	s, err = uc.store.Update(ctx, id, func(s *wizard.Session) error {
		if s.State.Kind() == wizard.KindConfirmed {
			return nil
		}
		return s.Apply(confirmed, uc.clock.Now())
	})
	if err != nil {
		uc.logger.Error("order placed but session not confirmed", "session_id", id, "order_code", res.Order.Code, "error", err)
		return nil, err
	}

	return &SubmitResult{View: uc.view(s), Order: res.Order, IsReplayed: res.IsReplayed}, nil
}

func (uc *wizardUseCaseImpl) apply(ctx context.Context, id uuid.UUID, ev wizard.Event) (*SessionView, error) {
	s, err := uc.store.Update(ctx, id, func(s *wizard.Session) error {
		return s.Apply(ev, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return uc.view(s), nil
}

func (uc *wizardUseCaseImpl) view(s *wizard.Session) *SessionView {
	v := &SessionView{Session: s}
	if d, ok := wizard.DraftOf(s.State); ok {
		q := wizard.QuoteDraft(uc.calc, s.PriceList, d)
		v.Quote = &q
	}
	return v
}
