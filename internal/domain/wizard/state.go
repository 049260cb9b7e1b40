package wizard

import (
	"slices"

	"creator-sponsorship/internal/domain/sponsorship"
)

type Kind string

const (
	KindSearching      Kind = "searching"
	KindSelectingUnits Kind = "selecting_units"
	KindPriorityOption Kind = "priority_option"
	KindBuyerInfo      Kind = "buyer_info"
	KindSummary        Kind = "summary"
	KindConfirmed      Kind = "confirmed"
)

// State is one step of the order wizard. Each variant carries only the data
// that is valid at that step.
type State interface {
	Kind() Kind
	search() Search
}

// Search is the query box and its latest results. Seq grows with every query so
// a late response for an earlier query can be recognised and dropped.
type Search struct {
	Query   string                   `json:"query"`
	Seq     int64                    `json:"seq"`
	Results []sponsorship.ContentRef `json:"results,omitempty"`
	Notice  string                   `json:"notice,omitempty"`
	Loading bool                     `json:"loading"`
}

type Selection struct {
	Episode       sponsorship.EpisodeRef `json:"episode"`
	WantsPriority bool                   `json:"wantsPriority"`
}

// BuyerForm is the raw buyer input. It is validated when leaving BuyerInfo.
type BuyerForm struct {
	Name            string `json:"name"`
	ContactPlatform string `json:"contactPlatform"`
	ContactValue    string `json:"contactValue"`
	Email           string `json:"email,omitempty"`
}

// Draft accumulates everything the buyer has picked for one content item.
type Draft struct {
	Content       sponsorship.ContentRef           `json:"content"`
	Seasons       []int                            `json:"seasons,omitempty"`
	ViewedSeason  int                              `json:"viewedSeason,omitempty"`
	Episodes      map[int][]sponsorship.EpisodeRef `json:"episodes,omitempty"`
	Ledger        sponsorship.EligibilitySnapshot  `json:"ledger"`
	Selected      []Selection                      `json:"selected,omitempty"`
	MoviePriority bool                             `json:"moviePriority"`
	Buyer         BuyerForm                        `json:"buyer"`
	Message       string                           `json:"message,omitempty"`
}

func (d Draft) clone() Draft {
	out := d
	out.Seasons = slices.Clone(d.Seasons)
	out.Selected = slices.Clone(d.Selected)
	if d.Episodes != nil {
		out.Episodes = make(map[int][]sponsorship.EpisodeRef, len(d.Episodes))
		for s, eps := range d.Episodes {
			out.Episodes[s] = slices.Clone(eps)
		}
	}
	return out
}

func (d Draft) selectedIndex(key sponsorship.EpisodeKey) int {
	return slices.IndexFunc(d.Selected, func(s Selection) bool {
		return s.Episode.Key() == key
	})
}

func (d Draft) findEpisode(key sponsorship.EpisodeKey) (sponsorship.EpisodeRef, bool) {
	for _, ep := range d.Episodes[key.Season] {
		if ep.Key() == key {
			return ep, true
		}
	}
	return sponsorship.EpisodeRef{}, false
}

func (d Draft) hasSeason(season int) bool {
	return slices.Contains(d.Seasons, season)
}

func (d *Draft) sortSelected() {
	slices.SortStableFunc(d.Selected, func(a, b Selection) int {
		ka, kb := a.Episode.Key(), b.Episode.Key()
		switch {
		case ka.Less(kb):
			return -1
		case kb.Less(ka):
			return 1
		default:
			return 0
		}
	})
}

// SelectedKeys lists the units the draft would order.
func (d Draft) SelectedKeys() []sponsorship.EpisodeKey {
	keys := make([]sponsorship.EpisodeKey, 0, len(d.Selected))
	for _, s := range d.Selected {
		keys = append(keys, s.Episode.Key())
	}
	return keys
}

type Searching struct {
	Search Search `json:"search"`
}

type SelectingUnits struct {
	Search Search `json:"search"`
	Draft  Draft  `json:"draft"`
}

// PriorityOption is a dead end when Blocked is set: only Back, Restart and Cancel apply.
type PriorityOption struct {
	Search  Search `json:"search"`
	Draft   Draft  `json:"draft"`
	Blocked bool   `json:"blocked"`
}

type BuyerInfo struct {
	Search Search `json:"search"`
	Draft  Draft  `json:"draft"`
}

type Summary struct {
	Search Search `json:"search"`
	Draft  Draft  `json:"draft"`
}

type Confirmed struct {
	Search    Search            `json:"search"`
	Draft     Draft             `json:"draft"`
	OrderCode string            `json:"orderCode"`
	Total     sponsorship.Money `json:"total"`
}

func (Searching) Kind() Kind      { return KindSearching }
func (SelectingUnits) Kind() Kind { return KindSelectingUnits }
func (PriorityOption) Kind() Kind { return KindPriorityOption }
func (BuyerInfo) Kind() Kind      { return KindBuyerInfo }
func (Summary) Kind() Kind        { return KindSummary }
func (Confirmed) Kind() Kind      { return KindConfirmed }

func (s Searching) search() Search      { return s.Search }
func (s SelectingUnits) search() Search { return s.Search }
func (s PriorityOption) search() Search { return s.Search }
func (s BuyerInfo) search() Search      { return s.Search }
func (s Summary) search() Search        { return s.Search }
func (s Confirmed) search() Search      { return s.Search }

// DraftOf returns the draft carried by s, if any.
func DraftOf(s State) (Draft, bool) {
	switch v := s.(type) {
	case SelectingUnits:
		return v.Draft, true
	case PriorityOption:
		return v.Draft, true
	case BuyerInfo:
		return v.Draft, true
	case Summary:
		return v.Draft, true
	case Confirmed:
		return v.Draft, true
	default:
		return Draft{}, false
	}
}

// SearchOf returns the search carried by s.
func SearchOf(s State) Search {
	if s == nil {
		return Search{}
	}
	return s.search()
}

func NewSearching() Searching {
	return Searching{}
}
