package wizard

import (
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/pkg/errs"
)

var (
	ErrInvalidTransition  = errs.Conflict("action is not available at this step")
	ErrEmptyQuery         = errs.Validation("search query is required")
	ErrInvalidContent     = errs.Validation("content must be a movie or a series")
	ErrUnknownSeason      = errs.Validation("season does not belong to this series")
	ErrUnknownEpisode     = errs.Validation("episode is not available for selection")
	ErrNoEpisodesSelected = errs.Validation("select at least one episode")
	ErrUnitBlocked        = errs.Conflict("unit is already fully sponsored")
	ErrContentBlocked     = errs.Conflict("content is already fully sponsored")

	ErrBuyerNameRequired      = order.ErrBuyerNameRequired
	ErrContactValueRequired   = order.ErrContactValueRequired
	ErrInvalidContactPlatform = order.ErrInvalidContactPlatform
	ErrMessageTooLong         = order.ErrMessageTooLong
)

const (
	noticeNoResults    = "No results found."
	noticeSearchFailed = "Search is unavailable right now, please try again."
)
