package wizard

import "creator-sponsorship/internal/domain/sponsorship"

type Event interface {
	isEvent()
}

// QuerySubmitted starts a catalog search and bumps the query sequence.
type QuerySubmitted struct {
	Query string
}

// ResultsReceived delivers the answer to the query numbered Seq.
type ResultsReceived struct {
	Seq     int64
	Results []sponsorship.ContentRef
	Failed  bool
}

// ContentChosen carries the details fetched for the picked search result.
// Episodes holds the first season of a series.
type ContentChosen struct {
	Content  sponsorship.ContentRef
	Seasons  []int
	Episodes []sponsorship.EpisodeRef
	Ledger   sponsorship.EligibilitySnapshot
}

type SeasonLoaded struct {
	Season   int
	Episodes []sponsorship.EpisodeRef
}

type EpisodeToggled struct {
	Key sponsorship.EpisodeKey
}

// AllAvailableSelected adds every non-blocked episode of the viewed season.
type AllAvailableSelected struct{}

// PriorityToggled flips the movie priority when Key is nil, else the priority of one selected episode.
type PriorityToggled struct {
	Key *sponsorship.EpisodeKey
}

type BuyerInfoEntered struct {
	Buyer BuyerForm
}

type MessageEntered struct {
	Message string
}

type Next struct{}

type Back struct{}

// Restart returns to the search step keeping the query and its results.
type Restart struct{}

// Cancel discards everything.
type Cancel struct{}

type OrderSubmitted struct {
	OrderCode string
	Total     sponsorship.Money
}

func (QuerySubmitted) isEvent()       {}
func (ResultsReceived) isEvent()      {}
func (ContentChosen) isEvent()        {}
func (SeasonLoaded) isEvent()         {}
func (EpisodeToggled) isEvent()       {}
func (AllAvailableSelected) isEvent() {}
func (PriorityToggled) isEvent()      {}
func (BuyerInfoEntered) isEvent()     {}
func (MessageEntered) isEvent()       {}
func (Next) isEvent()                 {}
func (Back) isEvent()                 {}
func (Restart) isEvent()              {}
func (Cancel) isEvent()               {}
func (OrderSubmitted) isEvent()       {}
