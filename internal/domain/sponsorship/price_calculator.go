package sponsorship

type PriceCalculator interface {
	QuoteMovie(pl PriceList, content ContentRef, elig Eligibility, wantsPriority bool) Quote
	QuoteEpisodes(pl PriceList, selections []EpisodeSelection) Quote
}

type EpisodeSelection struct {
	Episode       EpisodeRef
	Eligibility   Eligibility
	WantsPriority bool
}

// QuoteLine prices one unit. Episode is nil for a movie.
type QuoteLine struct {
	Episode       *EpisodeRef `json:"episode,omitempty"`
	Base          Money       `json:"base"`
	Priority      Money       `json:"priority"`
	AlreadyPaid   bool        `json:"alreadyPaid"`
	Blocked       bool        `json:"blocked"`
	WantsPriority bool        `json:"wantsPriority"`
}

type Quote struct {
	Lines         []QuoteLine `json:"lines"`
	Subtotal      Money       `json:"subtotal"`
	PriorityTotal Money       `json:"priorityTotal"`
	Total         Money       `json:"total"`
}

func (q *Quote) add(line QuoteLine) {
	q.Lines = append(q.Lines, line)
	q.Subtotal = q.Subtotal.Add(line.Base)
	q.PriorityTotal = q.PriorityTotal.Add(line.Priority)
	q.Total = q.Subtotal.Add(q.PriorityTotal)
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// QuoteMovie charges nothing for the base when the movie is already paid.
// A blocked movie quotes zero.
func (pc *DefaultPriceCalculator) QuoteMovie(pl PriceList, content ContentRef, elig Eligibility, wantsPriority bool) Quote {
	var q Quote
	line := QuoteLine{
		AlreadyPaid:   elig.AlreadyPaid,
		Blocked:       elig.Blocked,
		WantsPriority: wantsPriority,
	}
	if !elig.Blocked {
		if !elig.AlreadyPaid {
			line.Base = pl.MoviePrice(content)
		}
		if wantsPriority {
			line.Priority = pl.PriorityPrice
		}
	}
	q.add(line)
	return q
}

// QuoteEpisodes bills the episode price for every selected episode that is not
// yet paid and the priority price for every episode that asks for it, paid or not.
func (pc *DefaultPriceCalculator) QuoteEpisodes(pl PriceList, selections []EpisodeSelection) Quote {
	q := Quote{Lines: make([]QuoteLine, 0, len(selections))}
	for _, sel := range selections {
		ep := sel.Episode
		line := QuoteLine{
			Episode:       &ep,
			AlreadyPaid:   sel.Eligibility.AlreadyPaid,
			Blocked:       sel.Eligibility.Blocked,
			WantsPriority: sel.WantsPriority,
		}
		if !sel.Eligibility.Blocked {
			if !sel.Eligibility.AlreadyPaid {
				line.Base = pl.EpisodePrice
			}
			if sel.WantsPriority {
				line.Priority = pl.PriorityPrice
			}
		}
		q.add(line)
	}
	return q
}
