package order

import "strings"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes pending -> paid -> completed and pending -> cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPaid || next == StatusCancelled
	case StatusPaid:
		return next == StatusCompleted
	default:
		return false
	}
}

type ContactPlatform string

const (
	ContactInstagram ContactPlatform = "instagram"
	ContactTikTok    ContactPlatform = "tiktok"
	ContactTwitter   ContactPlatform = "twitter"
	ContactDiscord   ContactPlatform = "discord"
	ContactTelegram  ContactPlatform = "telegram"
	ContactWhatsApp  ContactPlatform = "whatsapp"
	ContactEmail     ContactPlatform = "email"
	ContactOther     ContactPlatform = "other"
)

func ParseContactPlatform(s string) (ContactPlatform, error) {
	p := ContactPlatform(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidContactPlatform
	}
	return p, nil
}

func (p ContactPlatform) IsValid() bool {
	switch p {
	case ContactInstagram, ContactTikTok, ContactTwitter, ContactDiscord,
		ContactTelegram, ContactWhatsApp, ContactEmail, ContactOther:
		return true
	default:
		return false
	}
}
