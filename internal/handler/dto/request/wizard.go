package request

import (
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
)

type SearchRequest struct {
	Query string `json:"query" binding:"required,max=200"`
}

type SelectContentRequest struct {
	ContentID int64 `json:"content_id" binding:"required,gt=0"`
}

type ToggleEpisodeRequest struct {
	Season  int `json:"season" binding:"required,gt=0"`
	Episode int `json:"episode" binding:"required,gt=0"`
}

func (r *ToggleEpisodeRequest) Key() sponsorship.EpisodeKey {
	return sponsorship.EpisodeKey{Season: r.Season, Episode: r.Episode}
}

// TogglePriorityRequest targets the movie when both fields are omitted.
type TogglePriorityRequest struct {
	Season  *int `json:"season" binding:"omitempty,gt=0,required_with=Episode"`
	Episode *int `json:"episode" binding:"omitempty,gt=0,required_with=Season"`
}

func (r *TogglePriorityRequest) Key() *sponsorship.EpisodeKey {
	if r.Season == nil || r.Episode == nil {
		return nil
	}
	return &sponsorship.EpisodeKey{Season: *r.Season, Episode: *r.Episode}
}

// BuyerRequest is checked by the wizard itself when leaving the buyer step,
// so only size limits are enforced here.
type BuyerRequest struct {
	Name            string `json:"name" binding:"max=200"`
	ContactPlatform string `json:"contact_platform" binding:"max=32"`
	ContactValue    string `json:"contact_value" binding:"max=500"`
	Email           string `json:"email" binding:"max=320"`
}

func (r *BuyerRequest) ToForm() wizard.BuyerForm {
	return wizard.BuyerForm{
		Name:            r.Name,
		ContactPlatform: r.ContactPlatform,
		ContactValue:    r.ContactValue,
		Email:           r.Email,
	}
}

type MessageRequest struct {
	Message string `json:"message" binding:"max=4000"`
}
