package wizard

import (
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
)

// QuoteDraft prices the draft's current selection against its ledger snapshot.
func QuoteDraft(calc sponsorship.PriceCalculator, pl sponsorship.PriceList, d Draft) sponsorship.Quote {
	if d.Content.IsMovie() {
		return calc.QuoteMovie(pl, d.Content, d.Ledger.Movie, d.MoviePriority)
	}
	sels := make([]sponsorship.EpisodeSelection, 0, len(d.Selected))
	for _, s := range d.Selected {
		sels = append(sels, sponsorship.EpisodeSelection{
			Episode:       s.Episode,
			Eligibility:   d.Ledger.ForEpisode(s.Episode.Key()),
			WantsPriority: s.WantsPriority,
		})
	}
	return calc.QuoteEpisodes(pl, sels)
}

// LineItems stamps every quoted unit with its price. Lines are in quote order.
func LineItems(d Draft, q sponsorship.Quote) []order.LineItem {
	items := make([]order.LineItem, 0, len(q.Lines))
	for _, l := range q.Lines {
		item := order.LineItem{
			Content:       d.Content,
			UnitPrice:     l.Base,
			PriorityPrice: l.Priority,
			WantsPriority: l.WantsPriority,
		}
		if l.Episode != nil {
			ep := *l.Episode
			item.Episode = &ep
		}
		items = append(items, item)
	}
	return items
}

// WithLedger refreshes the eligibility snapshot, typically right before submission.
func (d Draft) WithLedger(snap sponsorship.EligibilitySnapshot) Draft {
	out := d.clone()
	out.Ledger = snap
	return out
}

// Blocked reports whether any unit the draft would order is blocked.
func (d Draft) Blocked() bool {
	return d.Ledger.AnyBlocked(d.Content.MediaType, d.SelectedKeys())
}
