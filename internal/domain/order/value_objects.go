package order

import (
	"net/mail"
	"strings"

	"creator-sponsorship/internal/domain/sponsorship"
)

const (
	MaxBuyerNameLength = 100
	MaxContactLength   = 200
	MaxMessageLength   = 2000
)

type BuyerInfo struct {
	name            string
	contactPlatform ContactPlatform
	contactValue    string
	email           string
}

// NewBuyerInfo trims every field; name and contact value must be non-empty.
func NewBuyerInfo(name, platform, contactValue, email string) (BuyerInfo, error) {
	name = strings.TrimSpace(name)
	contactValue = strings.TrimSpace(contactValue)
	email = strings.TrimSpace(email)

	if name == "" {
		return BuyerInfo{}, ErrBuyerNameRequired
	}
	if len(name) > MaxBuyerNameLength {
		return BuyerInfo{}, ErrBuyerNameTooLong
	}
	p, err := ParseContactPlatform(platform)
	if err != nil {
		return BuyerInfo{}, err
	}
	if contactValue == "" {
		return BuyerInfo{}, ErrContactValueRequired
	}
	if len(contactValue) > MaxContactLength {
		return BuyerInfo{}, ErrContactValueTooLong
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return BuyerInfo{}, ErrInvalidEmail
		}
	}
	return BuyerInfo{name: name, contactPlatform: p, contactValue: contactValue, email: email}, nil
}

func ReconstructBuyerInfo(name string, platform ContactPlatform, contactValue, email string) BuyerInfo {
	return BuyerInfo{name: name, contactPlatform: platform, contactValue: contactValue, email: email}
}

func (b BuyerInfo) Name() string                     { return b.name }
func (b BuyerInfo) ContactPlatform() ContactPlatform { return b.contactPlatform }
func (b BuyerInfo) ContactValue() string             { return b.contactValue }
func (b BuyerInfo) Email() string                    { return b.email }

// LineItem is one purchased unit. Prices are stamped at submission and never recomputed.
type LineItem struct {
	Content       sponsorship.ContentRef  `json:"content"`
	Episode       *sponsorship.EpisodeRef `json:"episode,omitempty"`
	UnitPrice     sponsorship.Money       `json:"unitPrice"`
	PriorityPrice sponsorship.Money       `json:"priorityPrice"`
	WantsPriority bool                    `json:"wantsPriority"`
}

func (li LineItem) MediaType() sponsorship.MediaType {
	return li.Content.MediaType
}

func (li LineItem) Total() sponsorship.Money {
	return li.UnitPrice.Add(li.PriorityPrice)
}

func NormalizeMessage(msg string) (string, error) {
	msg = strings.TrimSpace(msg)
	if len(msg) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return msg, nil
}
