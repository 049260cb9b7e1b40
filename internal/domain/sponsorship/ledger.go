package sponsorship

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrEmptyCreator    = errors.New("creator username is required")
	ErrInvalidContent  = errors.New("content id must be positive")
	ErrInvalidMedia    = errors.New("invalid media type")
	ErrContentMismatch = errors.New("merge line belongs to a different content item")
)

type EpisodeRecord struct {
	Season      int    `json:"season"`
	Episode     int    `json:"episode"`
	IsPaid      bool   `json:"isPaid"`
	IsPriority  bool   `json:"isPriority"`
	SponsorName string `json:"sponsorName,omitempty"`
}

func (r EpisodeRecord) Key() EpisodeKey {
	return EpisodeKey{Season: r.Season, Episode: r.Episode}
}

// LedgerEntry is the sponsorship state of one content item in a creator's catalogue.
// For series the top-level flags only summarize the per-episode records.
type LedgerEntry struct {
	creatorUsername string
	content         ContentRef
	isPaid          bool
	isPriority      bool
	priority        Priority
	sponsorName     string
	episodes        []EpisodeRecord
	version         int64
	updatedAt       time.Time
}

func NewLedgerEntry(creatorUsername string, content ContentRef, now time.Time) (*LedgerEntry, error) {
	creatorUsername = strings.TrimSpace(creatorUsername)
	if creatorUsername == "" {
		return nil, ErrEmptyCreator
	}
	if content.ID <= 0 {
		return nil, ErrInvalidContent
	}
	if !content.MediaType.IsValid() {
		return nil, ErrInvalidMedia
	}
	return &LedgerEntry{
		creatorUsername: creatorUsername,
		content:         content,
		priority:        PriorityNormal,
		updatedAt:       now,
	}, nil
}

// ReconstructLedgerEntry rebuilds an entry from storage without validation.
func ReconstructLedgerEntry(
	creatorUsername string,
	content ContentRef,
	isPaid, isPriority bool,
	priority Priority,
	sponsorName string,
	episodes []EpisodeRecord,
	version int64,
	updatedAt time.Time,
) *LedgerEntry {
	return &LedgerEntry{
		creatorUsername: creatorUsername,
		content:         content,
		isPaid:          isPaid,
		isPriority:      isPriority,
		priority:        priority,
		sponsorName:     sponsorName,
		episodes:        episodes,
		version:         version,
		updatedAt:       updatedAt,
	}
}

func (e *LedgerEntry) CreatorUsername() string { return e.creatorUsername }
func (e *LedgerEntry) Content() ContentRef     { return e.content }
func (e *LedgerEntry) ContentID() int64        { return e.content.ID }
func (e *LedgerEntry) MediaType() MediaType    { return e.content.MediaType }
func (e *LedgerEntry) IsPaid() bool            { return e.isPaid }
func (e *LedgerEntry) IsPriority() bool        { return e.isPriority }
func (e *LedgerEntry) Priority() Priority      { return e.priority }
func (e *LedgerEntry) SponsorName() string     { return e.sponsorName }
func (e *LedgerEntry) Version() int64          { return e.version }
func (e *LedgerEntry) UpdatedAt() time.Time    { return e.updatedAt }

func (e *LedgerEntry) Episodes() []EpisodeRecord {
	out := make([]EpisodeRecord, len(e.episodes))
	copy(out, e.episodes)
	return out
}

// MovieEligibility is safe to call on a nil entry.
func (e *LedgerEntry) MovieEligibility() Eligibility {
	if e == nil {
		return Eligibility{}
	}
	return NewEligibility(e.isPaid, e.isPriority)
}

// EpisodeEligibility is safe to call on a nil entry.
func (e *LedgerEntry) EpisodeEligibility(key EpisodeKey) Eligibility {
	if e == nil {
		return Eligibility{}
	}
	if rec, ok := e.findEpisode(key); ok {
		return NewEligibility(rec.IsPaid, rec.IsPriority)
	}
	return Eligibility{}
}

// Snapshot is safe to call on a nil entry.
func (e *LedgerEntry) Snapshot() EligibilitySnapshot {
	if e == nil {
		return EligibilitySnapshot{}
	}
	snap := EligibilitySnapshot{Movie: e.MovieEligibility()}
	if len(e.episodes) > 0 {
		snap.Episodes = make(map[EpisodeKey]Eligibility, len(e.episodes))
		for _, rec := range e.episodes {
			snap.Episodes[rec.Key()] = NewEligibility(rec.IsPaid, rec.IsPriority)
		}
	}
	return snap
}

func (e *LedgerEntry) findEpisode(key EpisodeKey) (EpisodeRecord, bool) {
	i := e.indexOf(key)
	if i < 0 {
		return EpisodeRecord{}, false
	}
	return e.episodes[i], true
}

func (e *LedgerEntry) indexOf(key EpisodeKey) int {
	for i, rec := range e.episodes {
		if rec.Key() == key {
			return i
		}
	}
	return -1
}

func (e *LedgerEntry) sortEpisodes() {
	sort.SliceStable(e.episodes, func(i, j int) bool {
		return e.episodes[i].Key().Less(e.episodes[j].Key())
	})
}
