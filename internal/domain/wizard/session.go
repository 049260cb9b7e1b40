package wizard

import (
	"encoding/json"
	"fmt"
	"time"

	"creator-sponsorship/internal/domain/sponsorship"

	"github.com/google/uuid"
)

// Session is one buyer's pass through the wizard for one creator.
type Session struct {
	ID                  uuid.UUID
	CreatorUsername     string
	PriceList           sponsorship.PriceList
	ContactInstructions string
	State               State
	Version             int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewSession(creatorUsername string, pl sponsorship.PriceList, contactInstructions string, now time.Time) *Session {
	return &Session{
		ID:                  uuid.New(),
		CreatorUsername:     creatorUsername,
		PriceList:           pl,
		ContactInstructions: contactInstructions,
		State:               NewSearching(),
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// Apply runs one transition. The session is untouched when it fails.
func (s *Session) Apply(ev Event, now time.Time) error {
	next, err := Transition(s.State, ev)
	if err != nil {
		return err
	}
	s.State = next
	s.Version++
	s.UpdatedAt = now
	return nil
}

type sessionJSON struct {
	ID                  uuid.UUID             `json:"id"`
	CreatorUsername     string                `json:"creatorUsername"`
	PriceList           sponsorship.PriceList `json:"priceList"`
	ContactInstructions string                `json:"contactInstructions,omitempty"`
	Kind                Kind                  `json:"kind"`
	State               json.RawMessage       `json:"state"`
	Version             int64                 `json:"version"`
	CreatedAt           time.Time             `json:"createdAt"`
	UpdatedAt           time.Time             `json:"updatedAt"`
}

func (s Session) MarshalJSON() ([]byte, error) {
	st := s.State
	if st == nil {
		st = NewSearching()
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sessionJSON{
		ID:                  s.ID,
		CreatorUsername:     s.CreatorUsername,
		PriceList:           s.PriceList,
		ContactInstructions: s.ContactInstructions,
		Kind:                st.Kind(),
		State:               raw,
		Version:             s.Version,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	})
}

func (s *Session) UnmarshalJSON(b []byte) error {
	var raw sessionJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	st, err := decodeState(raw.Kind, raw.State)
	if err != nil {
		return err
	}
	*s = Session{
		ID:                  raw.ID,
		CreatorUsername:     raw.CreatorUsername,
		PriceList:           raw.PriceList,
		ContactInstructions: raw.ContactInstructions,
		State:               st,
		Version:             raw.Version,
		CreatedAt:           raw.CreatedAt,
		UpdatedAt:           raw.UpdatedAt,
	}
	return nil
}

func decodeState(kind Kind, raw json.RawMessage) (State, error) {
	switch kind {
	case KindSearching:
		return decodeInto[Searching](raw)
	case KindSelectingUnits:
		return decodeInto[SelectingUnits](raw)
	case KindPriorityOption:
		return decodeInto[PriorityOption](raw)
	case KindBuyerInfo:
		return decodeInto[BuyerInfo](raw)
	case KindSummary:
		return decodeInto[Summary](raw)
	case KindConfirmed:
		return decodeInto[Confirmed](raw)
	default:
		return nil, fmt.Errorf("unknown wizard state kind %q", kind)
	}
}

func decodeInto[T State](raw json.RawMessage) (State, error) {
	var v T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
	}
	return v, nil
}
