package sponsorship

// Eligibility is the purchasability of one unit against the ledger.
type Eligibility struct {
	Blocked         bool `json:"blocked"`
	AlreadyPaid     bool `json:"alreadyPaid"`
	AlreadyPriority bool `json:"alreadyPriority"`
}

// NewEligibility applies the blocking rule: a unit already paid and prioritized cannot be ordered again.
func NewEligibility(isPaid, isPriority bool) Eligibility {
	return Eligibility{
		Blocked:         isPaid && isPriority,
		AlreadyPaid:     isPaid,
		AlreadyPriority: isPriority,
	}
}

// EligibilitySnapshot is the ledger state of one content item as seen by the wizard.
// Episodes missing from the map are neither paid nor blocked.
type EligibilitySnapshot struct {
	Movie    Eligibility                `json:"movie"`
	Episodes map[EpisodeKey]Eligibility `json:"episodes,omitempty"`
}

func (s EligibilitySnapshot) ForEpisode(key EpisodeKey) Eligibility {
	return s.Episodes[key]
}

// AnyBlocked reports whether any of the given units is blocked.
func (s EligibilitySnapshot) AnyBlocked(mediaType MediaType, keys []EpisodeKey) bool {
	if mediaType == MediaTypeMovie {
		return s.Movie.Blocked
	}
	for _, k := range keys {
		if s.ForEpisode(k).Blocked {
			return true
		}
	}
	return false
}
