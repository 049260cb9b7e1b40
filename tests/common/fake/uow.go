//go:build unit

// Package fake holds in-memory stand-ins for the persistence and catalog ports.
package fake

import (
	"context"
	"maps"
	"sync"
	"time"

	"creator-sponsorship/internal/domain/notification"
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/uuid"
)

type ledgerKey struct {
	creator   string
	contentID int64
}

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type state struct {
	orders        map[uuid.UUID]*order.Order
	ledger        map[ledgerKey]*sponsorship.LedgerEntry
	events        map[uuid.UUID]*notification.Event
	jobs          []Job
	idempotency   map[uuid.UUID]shared.IdempotencyRecord
	creators      map[string]shared.CreatorProfileSnapshot
	ledgerSaves   int
	orderVersions map[uuid.UUID]int64
}

func (s *state) clone() *state {
	return &state{
		orders:        maps.Clone(s.orders),
		ledger:        maps.Clone(s.ledger),
		events:        maps.Clone(s.events),
		jobs:          append([]Job(nil), s.jobs...),
		idempotency:   maps.Clone(s.idempotency),
		creators:      maps.Clone(s.creators),
		ledgerSaves:   s.ledgerSaves,
		orderVersions: maps.Clone(s.orderVersions),
	}
}

// UoW is an in-memory shared.UnitOfWork. A failed Within rolls back every
// write and, like the Postgres one, runs again on shared.ErrTxRetryable.
type UoW struct {
	mu sync.Mutex
	st *state
	// committed by a competing transaction at the next first insert of its key
	rival    *sponsorship.LedgerEntry
	attempts int
}

func NewUoW() *UoW {
	return &UoW{st: &state{
		orders:        map[uuid.UUID]*order.Order{},
		ledger:        map[ledgerKey]*sponsorship.LedgerEntry{},
		events:        map[uuid.UUID]*notification.Event{},
		idempotency:   map[uuid.UUID]shared.IdempotencyRecord{},
		creators:      map[string]shared.CreatorProfileSnapshot{},
		orderVersions: map[uuid.UUID]int64{},
	}}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	const maxRetries = 3
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		u.attempts++
		work := u.st.clone()
		if err = fn(ctx, &tx{st: work, uow: u}); err == nil {
			u.st = work
			return nil
		}
		if !errs.Is(err, shared.ErrTxRetryable) {
			return err
		}
	}
	return err
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) CommandReads() shared.CommandReads {
	u.mu.Lock()
	defer u.mu.Unlock()
	return &reads{st: u.st}
}

// Seeding and inspection helpers

func (u *UoW) PutCreator(p shared.CreatorProfileSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.creators[p.Username] = p
}

func (u *UoW) PutLedger(e *sponsorship.LedgerEntry) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.ledger[ledgerKey{e.CreatorUsername(), e.ContentID()}] = cloneEntry(e)
}

func (u *UoW) Ledger(creator string, contentID int64) *sponsorship.LedgerEntry {
	u.mu.Lock()
	defer u.mu.Unlock()
	e := u.st.ledger[ledgerKey{creator, contentID}]
	if e == nil {
		return nil
	}
	return cloneEntry(e)
}

// RaceLedgerInsert makes the next transaction that creates the ledger row of
// e lose to e, as when two orders for the same content are paid at once.
func (u *UoW) RaceLedgerInsert(e *sponsorship.LedgerEntry) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rival = cloneEntry(e)
}

// Attempts counts transaction runs, retries included.
func (u *UoW) Attempts() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.attempts
}

func (u *UoW) LedgerSaves() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.ledgerSaves
}

func (u *UoW) Orders() []*order.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*order.Order, 0, len(u.st.orders))
	for _, o := range u.st.orders {
		out = append(out, cloneOrder(o, u.st.orderVersions[o.ID()]))
	}
	return out
}

func (u *UoW) Order(id uuid.UUID) *order.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	o := u.st.orders[id]
	if o == nil {
		return nil
	}
	return cloneOrder(o, u.st.orderVersions[id])
}

func (u *UoW) Events() []*notification.Event {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]*notification.Event(nil), valuesOf(u.st.events)...)
}

func (u *UoW) Jobs() []Job {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]Job(nil), u.st.jobs...)
}

func (u *UoW) Creator(username string) (shared.CreatorProfileSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.st.creators[username]
	return p, ok
}

func valuesOf[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func cloneEntry(e *sponsorship.LedgerEntry) *sponsorship.LedgerEntry {
	return sponsorship.ReconstructLedgerEntry(e.CreatorUsername(), e.Content(), e.IsPaid(), e.IsPriority(), e.Priority(), e.SponsorName(), e.Episodes(), e.Version(), e.UpdatedAt())
}

func cloneOrder(o *order.Order, version int64) *order.Order {
	return order.ReconstructOrder(o.ID(), o.Code(), o.CreatorUsername(), o.Items(), o.Buyer(), o.Message(),
		o.Subtotal(), o.PriorityTotal(), o.Total(), o.Currency(), o.Status(), o.CreatedAt(), o.PaidAt(), version)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type tx struct {
	st  *state
	uow *UoW
}

func (t *tx) Orders() shared.OrderRepository               { return orderRepo{t.st} }
func (t *tx) Ledger() shared.LedgerRepository              { return ledgerRepo{t.st, t.uow} }
func (t *tx) Notifications() shared.NotificationRepository { return notificationRepo{t.st} }
func (t *tx) Idempotency() shared.IdempotencyRepository    { return idempotencyRepo{t.st} }
func (t *tx) Creators() shared.CreatorRepository           { return creatorRepo{t.st} }
func (t *tx) Reads() shared.CommandReads                   { return &reads{st: t.st} }
func (t *tx) DB() db.DBTX                                  { return nil }

type orderRepo struct{ st *state }

func (r orderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) error {
	r.st.orders[o.ID()] = cloneOrder(o, o.Version())
	r.st.orderVersions[o.ID()] = o.Version()
	return nil
}

func (r orderRepo) FindForUpdate(_ context.Context, _ db.DBTX, creator string, id uuid.UUID) (*order.Order, error) {
	o, ok := r.st.orders[id]
	if !ok || o.CreatorUsername() != creator {
		return nil, notFound("order not found")
	}
	return cloneOrder(o, r.st.orderVersions[id]), nil
}

func (r orderRepo) UpdateStatus(_ context.Context, _ db.DBTX, o *order.Order, expectedVersion int64) error {
	if r.st.orderVersions[o.ID()] != expectedVersion {
		return infra.WrapRepoErr("order version mismatch", nil, infra.KindConflict)
	}
	r.st.orders[o.ID()] = cloneOrder(o, expectedVersion+1)
	r.st.orderVersions[o.ID()] = expectedVersion + 1
	return nil
}

type ledgerRepo struct {
	st  *state
	uow *UoW
}

func (r ledgerRepo) FindForUpdate(_ context.Context, _ db.DBTX, creator string, contentID int64) (*sponsorship.LedgerEntry, error) {
	e := r.st.ledger[ledgerKey{creator, contentID}]
	if e == nil {
		return nil, nil
	}
	return cloneEntry(e), nil
}

func (r ledgerRepo) Save(_ context.Context, _ db.DBTX, e *sponsorship.LedgerEntry) error {
	k := ledgerKey{e.CreatorUsername(), e.ContentID()}
	cur, exists := r.st.ledger[k]
	if rival := r.uow.rival; !exists && rival != nil && (ledgerKey{rival.CreatorUsername(), rival.ContentID()}) == k {
		// Within holds the lock, so the committed state can be written directly
		r.uow.rival = nil
		r.uow.st.ledger[k] = rival
		return infra.WrapRepoErr("ledger entry created concurrently", nil, infra.KindConflict)
	}
	switch {
	case !exists && e.Version() != 0:
		return infra.WrapRepoErr("ledger entry vanished", nil, infra.KindConflict)
	case exists && cur.Version() != e.Version():
		return infra.WrapRepoErr("ledger version mismatch", nil, infra.KindConflict)
	}
	r.st.ledger[k] = sponsorship.ReconstructLedgerEntry(e.CreatorUsername(), e.Content(), e.IsPaid(), e.IsPriority(), e.Priority(), e.SponsorName(), e.Episodes(), e.Version()+1, e.UpdatedAt())
	r.st.ledgerSaves++
	return nil
}

type notificationRepo struct{ st *state }

func (r notificationRepo) CreateEvent(_ context.Context, _ db.DBTX, ev *notification.Event) error {
	r.st.events[ev.ID()] = ev
	return nil
}

func (r notificationRepo) UpdateRead(_ context.Context, _ db.DBTX, ev *notification.Event) error {
	if _, ok := r.st.events[ev.ID()]; !ok {
		return notFound("notification not found")
	}
	r.st.events[ev.ID()] = ev
	return nil
}

func (r notificationRepo) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.st.jobs = append(r.st.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

type idempotencyRepo struct{ st *state }

func (r idempotencyRepo) TryInsert(_ context.Context, _ db.DBTX, key uuid.UUID, scope, _ string, requestHash string, expiresAt time.Time) (bool, error) {
	if _, ok := r.st.idempotency[key]; ok {
		return false, nil
	}
	r.st.idempotency[key] = shared.IdempotencyRecord{
		Key:         key,
		Scope:       scope,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotencyRepo) UpdateStatusCompleted(_ context.Context, _ db.DBTX, key uuid.UUID, scope, _ string, orderID uuid.UUID) error {
	rec, ok := r.st.idempotency[key]
	if !ok || rec.Scope != scope {
		return notFound("idempotency key not found")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultOrderID = &orderID
	r.st.idempotency[key] = rec
	return nil
}

type creatorRepo struct{ st *state }

func (r creatorRepo) UpsertProfile(_ context.Context, _ db.DBTX, p shared.CreatorProfileSnapshot) error {
	r.st.creators[p.Username] = p
	return nil
}

type reads struct{ st *state }

func (r *reads) LedgerEntry(_ context.Context, creator string, contentID int64) (*sponsorship.LedgerEntry, error) {
	e := r.st.ledger[ledgerKey{creator, contentID}]
	if e == nil {
		return nil, nil
	}
	return cloneEntry(e), nil
}

func (r *reads) OrderByID(_ context.Context, creator string, id uuid.UUID) (*order.Order, error) {
	o, ok := r.st.orders[id]
	if !ok || o.CreatorUsername() != creator {
		return nil, notFound("order not found")
	}
	return cloneOrder(o, r.st.orderVersions[id]), nil
}

func (r *reads) CreatorProfile(_ context.Context, creator string) (*shared.CreatorProfileSnapshot, error) {
	p, ok := r.st.creators[creator]
	if !ok {
		return nil, notFound("creator not found")
	}
	return &p, nil
}

func (r *reads) NotificationByID(_ context.Context, creator string, id uuid.UUID) (*notification.Event, error) {
	ev, ok := r.st.events[id]
	if !ok || ev.CreatorUsername() != creator {
		return nil, notFound("notification not found")
	}
	return notification.ReconstructEvent(ev.ID(), ev.CreatorUsername(), ev.Type(), ev.OrderCode(), ev.Message(), ev.BuyerName(), ev.CreatedAt(), ev.Read()), nil
}

func (r *reads) IdempotencyByKey(_ context.Context, key uuid.UUID, scope string) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idempotency[key]
	if !ok || rec.Scope != scope {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}
