package wizard

import (
	"slices"
	"strings"

	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
)

// Transition applies ev to s. On error the returned state is s itself, so a
// failed step never loses input.
func Transition(s State, ev Event) (State, error) {
	if s == nil {
		s = NewSearching()
	}

	switch e := ev.(type) {
	case Cancel:
		if _, ok := s.(Confirmed); ok {
			return s, ErrInvalidTransition
		}
		// bump the sequence so responses to an abandoned query are dropped
		return Searching{Search: Search{Seq: s.search().Seq + 1}}, nil
	case Restart:
		// a placed order ends the session
		if _, ok := s.(Confirmed); ok {
			return s, ErrInvalidTransition
		}
		prev := s.search()
		prev.Notice = ""
		return Searching{Search: prev}, nil
	case ResultsReceived:
		return onResults(s, e), nil
	}

	var (
		next State
		err  error
	)
	switch st := s.(type) {
	case Searching:
		next, err = fromSearching(st, ev)
	case SelectingUnits:
		next, err = fromSelectingUnits(st, ev)
	case PriorityOption:
		next, err = fromPriorityOption(st, ev)
	case BuyerInfo:
		next, err = fromBuyerInfo(st, ev)
	case Summary:
		next, err = fromSummary(st, ev)
	default:
		err = ErrInvalidTransition
	}
	if err != nil {
		return s, err
	}
	return next, nil
}

// onResults ignores responses that no longer match the active query.
func onResults(s State, e ResultsReceived) State {
	st, ok := s.(Searching)
	if !ok || e.Seq != st.Search.Seq {
		return s
	}
	st.Search.Loading = false
	st.Search.Notice = ""
	switch {
	case e.Failed:
		st.Search.Notice = noticeSearchFailed
	case len(e.Results) == 0:
		st.Search.Results = nil
		st.Search.Notice = noticeNoResults
	default:
		st.Search.Results = slices.Clone(e.Results)
	}
	return st
}

func fromSearching(st Searching, ev Event) (State, error) {
	switch e := ev.(type) {
	case QuerySubmitted:
		q := strings.TrimSpace(e.Query)
		if q == "" {
			return nil, ErrEmptyQuery
		}
		st.Search = Search{
			Query:   q,
			Seq:     st.Search.Seq + 1,
			Results: slices.Clone(st.Search.Results),
			Loading: true,
		}
		return st, nil
	case ContentChosen:
		return chooseContent(st.Search, e)
	default:
		return nil, ErrInvalidTransition
	}
}

func chooseContent(search Search, e ContentChosen) (State, error) {
	if !e.Content.MediaType.IsValid() {
		return nil, ErrInvalidContent
	}
	search.Loading = false
	search.Notice = ""
	d := Draft{Content: e.Content, Ledger: e.Ledger}

	if e.Content.IsMovie() {
		return PriorityOption{Search: search, Draft: d, Blocked: e.Ledger.Movie.Blocked}, nil
	}

	d.Seasons = slices.Clone(e.Seasons)
	slices.Sort(d.Seasons)
	d.Episodes = make(map[int][]sponsorship.EpisodeRef)
	if len(d.Seasons) > 0 {
		d.ViewedSeason = d.Seasons[0]
		d.Episodes[d.ViewedSeason] = sortedEpisodes(e.Episodes)
	}
	return SelectingUnits{Search: search, Draft: d}, nil
}

func fromSelectingUnits(st SelectingUnits, ev Event) (State, error) {
	d := st.Draft.clone()

	switch e := ev.(type) {
	case SeasonLoaded:
		if !d.hasSeason(e.Season) {
			return nil, ErrUnknownSeason
		}
		if d.Episodes == nil {
			d.Episodes = make(map[int][]sponsorship.EpisodeRef)
		}
		d.Episodes[e.Season] = sortedEpisodes(e.Episodes)
		d.ViewedSeason = e.Season
	case EpisodeToggled:
		if i := d.selectedIndex(e.Key); i >= 0 {
			d.Selected = slices.Delete(d.Selected, i, i+1)
			break
		}
		ep, ok := d.findEpisode(e.Key)
		if !ok {
			return nil, ErrUnknownEpisode
		}
		if d.Ledger.ForEpisode(e.Key).Blocked {
			return nil, ErrUnitBlocked
		}
		d.Selected = append(d.Selected, Selection{Episode: ep})
		d.sortSelected()
	case AllAvailableSelected:
		for _, ep := range d.Episodes[d.ViewedSeason] {
			if d.Ledger.ForEpisode(ep.Key()).Blocked || d.selectedIndex(ep.Key()) >= 0 {
				continue
			}
			d.Selected = append(d.Selected, Selection{Episode: ep})
		}
		d.sortSelected()
	case Next:
		if len(d.Selected) == 0 {
			return nil, ErrNoEpisodesSelected
		}
		if d.Ledger.AnyBlocked(d.Content.MediaType, d.SelectedKeys()) {
			return nil, ErrUnitBlocked
		}
		return PriorityOption{Search: st.Search, Draft: d}, nil
	case Back:
		return Searching{Search: st.Search}, nil
	default:
		return nil, ErrInvalidTransition
	}

	st.Draft = d
	return st, nil
}

func fromPriorityOption(st PriorityOption, ev Event) (State, error) {
	d := st.Draft.clone()

	switch e := ev.(type) {
	case PriorityToggled:
		if st.Blocked {
			return nil, ErrContentBlocked
		}
		if d.Content.IsMovie() {
			if e.Key != nil {
				return nil, ErrUnknownEpisode
			}
			d.MoviePriority = !d.MoviePriority
			break
		}
		if e.Key == nil {
			return nil, ErrUnknownEpisode
		}
		i := d.selectedIndex(*e.Key)
		if i < 0 {
			return nil, ErrUnknownEpisode
		}
		d.Selected[i].WantsPriority = !d.Selected[i].WantsPriority
	case Next:
		if st.Blocked {
			return nil, ErrContentBlocked
		}
		return BuyerInfo{Search: st.Search, Draft: d}, nil
	case Back:
		if d.Content.IsMovie() {
			return Searching{Search: st.Search}, nil
		}
		return SelectingUnits{Search: st.Search, Draft: d}, nil
	default:
		return nil, ErrInvalidTransition
	}

	st.Draft = d
	return st, nil
}

func fromBuyerInfo(st BuyerInfo, ev Event) (State, error) {
	d := st.Draft.clone()

	switch e := ev.(type) {
	case BuyerInfoEntered:
		d.Buyer = e.Buyer
	case Next:
		b := d.Buyer
		if _, err := order.NewBuyerInfo(b.Name, b.ContactPlatform, b.ContactValue, b.Email); err != nil {
			return nil, err
		}
		return Summary{Search: st.Search, Draft: d}, nil
	case Back:
		return PriorityOption{Search: st.Search, Draft: d}, nil
	default:
		return nil, ErrInvalidTransition
	}

	st.Draft = d
	return st, nil
}

func fromSummary(st Summary, ev Event) (State, error) {
	d := st.Draft.clone()

	switch e := ev.(type) {
	case MessageEntered:
		msg, err := order.NormalizeMessage(e.Message)
		if err != nil {
			return nil, err
		}
		d.Message = msg
	case OrderSubmitted:
		return Confirmed{Search: st.Search, Draft: d, OrderCode: e.OrderCode, Total: e.Total}, nil
	case Back:
		return BuyerInfo{Search: st.Search, Draft: d}, nil
	default:
		return nil, ErrInvalidTransition
	}

	st.Draft = d
	return st, nil
}

func sortedEpisodes(eps []sponsorship.EpisodeRef) []sponsorship.EpisodeRef {
	out := slices.Clone(eps)
	sponsorship.SortEpisodes(out)
	return out
}
