package response

import (
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/pkg/money"
	"creator-sponsorship/internal/usecase/commands"
	"creator-sponsorship/internal/usecase/queries"

	"golang.org/x/text/language"
)

type ContentResponse struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	MediaType      string `json:"media_type"`
	PosterRef      string `json:"poster_ref,omitempty"`
	RuntimeMinutes *int   `json:"runtime_minutes,omitempty"`
}

func fromContent(c sponsorship.ContentRef) ContentResponse {
	return ContentResponse{
		ID:             c.ID,
		Title:          c.Title,
		MediaType:      string(c.MediaType),
		PosterRef:      c.PosterRef,
		RuntimeMinutes: c.RuntimeMinutes,
	}
}

type SearchResponse struct {
	Query   string            `json:"query"`
	Seq     int64             `json:"seq"`
	Results []ContentResponse `json:"results"`
	Notice  string            `json:"notice,omitempty"`
	Loading bool              `json:"loading"`
}

type EpisodeResponse struct {
	Season          int    `json:"season"`
	Episode         int    `json:"episode"`
	Name            string `json:"name,omitempty"`
	Selected        bool   `json:"selected"`
	WantsPriority   bool   `json:"wants_priority"`
	Blocked         bool   `json:"blocked"`
	AlreadyPaid     bool   `json:"already_paid"`
	AlreadyPriority bool   `json:"already_priority"`
}

type BuyerResponse struct {
	Name            string `json:"name"`
	ContactPlatform string `json:"contact_platform"`
	ContactValue    string `json:"contact_value"`
	Email           string `json:"email,omitempty"`
}

type DraftResponse struct {
	Content       ContentResponse   `json:"content"`
	Seasons       []int             `json:"seasons,omitempty"`
	ViewedSeason  int               `json:"viewed_season,omitempty"`
	Episodes      []EpisodeResponse `json:"episodes,omitempty"`
	Selected      []EpisodeResponse `json:"selected,omitempty"`
	MoviePriority bool              `json:"movie_priority"`
	MovieStatus   *EpisodeResponse  `json:"movie_status,omitempty"`
	Buyer         BuyerResponse     `json:"buyer"`
	Message       string            `json:"message,omitempty"`
}

type QuoteLineResponse struct {
	Season          *int   `json:"season,omitempty"`
	Episode         *int   `json:"episode,omitempty"`
	BaseCents       int64  `json:"base_cents"`
	PriorityCents   int64  `json:"priority_cents"`
	AlreadyPaid     bool   `json:"already_paid"`
	Blocked         bool   `json:"blocked"`
	WantsPriority   bool   `json:"wants_priority"`
	BaseDisplay     string `json:"base_display"`
	PriorityDisplay string `json:"priority_display"`
}

type QuoteResponse struct {
	Lines              []QuoteLineResponse `json:"lines"`
	SubtotalCents      int64               `json:"subtotal_cents"`
	PriorityTotalCents int64               `json:"priority_total_cents"`
	TotalCents         int64               `json:"total_cents"`
	Currency           string              `json:"currency"`
	TotalDisplay       string              `json:"total_display"`
}

type PriceListSummary struct {
	MoviePriceShort string `json:"movie_price_short"`
	MoviePriceLong  string `json:"movie_price_long"`
	EpisodePrice    string `json:"episode_price"`
	PriorityPrice   string `json:"priority_price"`
	Currency        string `json:"currency"`
}

type SessionResponse struct {
	ID                  string           `json:"id"`
	CreatorUsername     string           `json:"creator_username"`
	Step                string           `json:"step"`
	Version             int64            `json:"version"`
	PriceList           PriceListSummary `json:"price_list"`
	Search              SearchResponse   `json:"search"`
	Draft               *DraftResponse   `json:"draft,omitempty"`
	Blocked             bool             `json:"blocked,omitempty"`
	Quote               *QuoteResponse   `json:"quote,omitempty"`
	OrderCode           string           `json:"order_code,omitempty"`
	TotalDisplay        string           `json:"total_display,omitempty"`
	ContactInstructions string           `json:"contact_instructions,omitempty"`
	UpdatedAt           int64            `json:"updated_at"`
}

type SubmitResponse struct {
	Session    *SessionResponse `json:"session"`
	Order      *OrderResponse   `json:"order,omitempty"`
	IsReplayed bool             `json:"is_replayed"`
}

func display(m sponsorship.Money, currency string) string {
	return money.Format(m.Cents(), currency, language.English)
}

func FromSessionView(v *commands.SessionView) *SessionResponse {
	s := v.Session
	pl := s.PriceList
	res := &SessionResponse{
		ID:              s.ID.String(),
		CreatorUsername: s.CreatorUsername,
		Step:            string(s.State.Kind()),
		Version:         s.Version,
		PriceList: PriceListSummary{
			MoviePriceShort: display(pl.MoviePriceShort, pl.Currency),
			MoviePriceLong:  display(pl.MoviePriceLong, pl.Currency),
			EpisodePrice:    display(pl.EpisodePrice, pl.Currency),
			PriorityPrice:   display(pl.PriorityPrice, pl.Currency),
			Currency:        pl.Currency,
		},
		Search:    fromSearch(wizard.SearchOf(s.State)),
		UpdatedAt: s.UpdatedAt.Unix(),
	}

	if d, ok := wizard.DraftOf(s.State); ok {
		res.Draft = fromDraft(d)
	}
	switch st := s.State.(type) {
	case wizard.PriorityOption:
		res.Blocked = st.Blocked
	case wizard.Confirmed:
		res.OrderCode = st.OrderCode
		res.TotalDisplay = display(st.Total, pl.Currency)
		res.ContactInstructions = s.ContactInstructions
	}
	if v.Quote != nil {
		res.Quote = FromQuote(v.Quote, pl.Currency)
	}
	return res
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	res := &SubmitResponse{
		Session:    FromSessionView(r.View),
		IsReplayed: r.IsReplayed,
	}
	if r.Order != nil {
		res.Order = FromOrderView(r.Order)
	}
	return res
}

func FromQuote(q *sponsorship.Quote, currency string) *QuoteResponse {
	res := &QuoteResponse{
		Lines:              make([]QuoteLineResponse, 0, len(q.Lines)),
		SubtotalCents:      q.Subtotal.Cents(),
		PriorityTotalCents: q.PriorityTotal.Cents(),
		TotalCents:         q.Total.Cents(),
		Currency:           currency,
		TotalDisplay:       display(q.Total, currency),
	}
	for _, l := range q.Lines {
		line := QuoteLineResponse{
			BaseCents:       l.Base.Cents(),
			PriorityCents:   l.Priority.Cents(),
			AlreadyPaid:     l.AlreadyPaid,
			Blocked:         l.Blocked,
			WantsPriority:   l.WantsPriority,
			BaseDisplay:     display(l.Base, currency),
			PriorityDisplay: display(l.Priority, currency),
		}
		if l.Episode != nil {
			season, episode := l.Episode.Season, l.Episode.Episode
			line.Season, line.Episode = &season, &episode
		}
		res.Lines = append(res.Lines, line)
	}
	return res
}

func fromSearch(s wizard.Search) SearchResponse {
	res := SearchResponse{
		Query:   s.Query,
		Seq:     s.Seq,
		Results: make([]ContentResponse, 0, len(s.Results)),
		Notice:  s.Notice,
		Loading: s.Loading,
	}
	for _, r := range s.Results {
		res.Results = append(res.Results, fromContent(r))
	}
	return res
}

func fromDraft(d wizard.Draft) *DraftResponse {
	res := &DraftResponse{
		Content:       fromContent(d.Content),
		Seasons:       d.Seasons,
		ViewedSeason:  d.ViewedSeason,
		MoviePriority: d.MoviePriority,
		Buyer: BuyerResponse{
			Name:            d.Buyer.Name,
			ContactPlatform: d.Buyer.ContactPlatform,
			ContactValue:    d.Buyer.ContactValue,
			Email:           d.Buyer.Email,
		},
		Message: d.Message,
	}

	if d.Content.IsMovie() {
		res.MovieStatus = &EpisodeResponse{
			Selected:        true,
			WantsPriority:   d.MoviePriority,
			Blocked:         d.Ledger.Movie.Blocked,
			AlreadyPaid:     d.Ledger.Movie.AlreadyPaid,
			AlreadyPriority: d.Ledger.Movie.AlreadyPriority,
		}
		return res
	}

	selected := make(map[sponsorship.EpisodeKey]wizard.Selection, len(d.Selected))
	for _, s := range d.Selected {
		selected[s.Episode.Key()] = s
		res.Selected = append(res.Selected, episodeResponse(d, s.Episode, selected))
	}
	for _, ep := range d.Episodes[d.ViewedSeason] {
		res.Episodes = append(res.Episodes, episodeResponse(d, ep, selected))
	}
	return res
}

func episodeResponse(d wizard.Draft, ep sponsorship.EpisodeRef, selected map[sponsorship.EpisodeKey]wizard.Selection) EpisodeResponse {
	el := d.Ledger.ForEpisode(ep.Key())
	sel, isSelected := selected[ep.Key()]
	return EpisodeResponse{
		Season:          ep.Season,
		Episode:         ep.Episode,
		Name:            ep.Name,
		Selected:        isSelected,
		WantsPriority:   isSelected && sel.WantsPriority,
		Blocked:         el.Blocked,
		AlreadyPaid:     el.AlreadyPaid,
		AlreadyPriority: el.AlreadyPriority,
	}
}
