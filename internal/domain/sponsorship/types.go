package sponsorship

type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
)

func (m MediaType) String() string {
	return string(m)
}

func (m MediaType) IsValid() bool {
	switch m {
	case MediaTypeMovie, MediaTypeSeries:
		return true
	default:
		return false
	}
}

// Priority is the catalogue summary flag for a ledger entry.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func (p Priority) String() string {
	return string(p)
}
