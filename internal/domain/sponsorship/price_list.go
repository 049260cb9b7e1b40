package sponsorship

// PriceList is the creator's rate card. A zero field prices its unit at zero.
type PriceList struct {
	MoviePriceShort Money  `json:"moviePriceShort"`
	MoviePriceLong  Money  `json:"moviePriceLong"`
	EpisodePrice    Money  `json:"episodePrice"`
	PriorityPrice   Money  `json:"priorityPrice"`
	Currency        string `json:"currency"`
}

func NewPriceList(movieShort, movieLong, episode, priority int64, currency string) (PriceList, error) {
	amounts := make([]Money, 0, 4)
	for _, c := range []int64{movieShort, movieLong, episode, priority} {
		m, err := NewMoneyFromCents(c)
		if err != nil {
			return PriceList{}, err
		}
		amounts = append(amounts, m)
	}
	return PriceList{
		MoviePriceShort: amounts[0],
		MoviePriceLong:  amounts[1],
		EpisodePrice:    amounts[2],
		PriorityPrice:   amounts[3],
		Currency:        currency,
	}, nil
}

func (p PriceList) MoviePrice(c ContentRef) Money {
	if c.IsLongMovie() {
		return p.MoviePriceLong
	}
	return p.MoviePriceShort
}
