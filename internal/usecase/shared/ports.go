package shared

import (
	"context"
	"time"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errs.NotFound("wizard session not found")
	// ErrTxRetryable marks errors the UnitOfWork answers by running the
	// transaction again, such as losing a race to create a row.
	ErrTxRetryable = errs.New("transaction can be retried")
)

// ContentDetails is the full catalog record of one work. Seasons is empty for movies.
type ContentDetails struct {
	Content sponsorship.ContentRef
	Seasons []int
}

// CatalogLookup is the external content search service.
type CatalogLookup interface {
	Search(ctx context.Context, query string) ([]sponsorship.ContentRef, error)
	GetDetails(ctx context.Context, id int64, mediaType sponsorship.MediaType) (*ContentDetails, error)
	GetSeasonEpisodes(ctx context.Context, id int64, season int) ([]sponsorship.EpisodeRef, error)
}

// SessionStore keeps in-progress wizard sessions. Update applies fn atomically
// and does not persist the session when fn fails.
type SessionStore interface {
	Create(ctx context.Context, s *wizard.Session) error
	Get(ctx context.Context, id uuid.UUID) (*wizard.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(s *wizard.Session) error) (*wizard.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Publisher delivers outbox messages to the broker.
type Publisher interface {
	Publish(ctx context.Context, kind, topic string, payload []byte, at time.Time) error
}
