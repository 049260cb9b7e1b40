//go:build unit

package fake

import (
	"context"
	"slices"
	"time"

	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/infra/converter"
	"creator-sponsorship/internal/usecase/queries"

	"github.com/google/uuid"
)

// The UoW doubles as a queries.OrderReadStore over the committed state.
var _ queries.OrderReadStore = (*UoW)(nil)

func (u *UoW) FindByID(_ context.Context, creator string, id uuid.UUID) (*queries.OrderView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	o, ok := u.st.orders[id]
	if !ok || o.CreatorUsername() != creator {
		return nil, notFound("order not found")
	}
	return converter.OrderToView(o), nil
}

func (u *UoW) FindByCode(_ context.Context, creator, code string) (*queries.OrderView, error) {
	for _, o := range u.sortedOrders(creator, nil) {
		if o.Code().String() == code {
			return converter.OrderToView(o), nil
		}
	}
	return nil, notFound("order not found")
}

func (u *UoW) FindFirstPage(_ context.Context, creator string, status *string, limit int32) ([]*queries.OrderListItem, error) {
	return u.page(u.sortedOrders(creator, status), limit), nil
}

func (u *UoW) FindKeyset(_ context.Context, creator string, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	all := u.sortedOrders(creator, status)
	rest := all[:0:0]
	for _, o := range all {
		if o.CreatedAt().Before(lastCreatedAt) || (o.CreatedAt().Equal(lastCreatedAt) && o.ID().String() < lastID.String()) {
			rest = append(rest, o)
		}
	}
	return u.page(rest, limit), nil
}

func (u *UoW) page(orders []*order.Order, limit int32) []*queries.OrderListItem {
	if int(limit) < len(orders) {
		orders = orders[:limit]
	}
	out := make([]*queries.OrderListItem, 0, len(orders))
	for _, o := range orders {
		out = append(out, converter.OrderToListItem(o))
	}
	return out
}

// sortedOrders lists newest first, ties broken by id descending.
func (u *UoW) sortedOrders(creator string, status *string) []*order.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []*order.Order
	for _, o := range u.st.orders {
		if o.CreatorUsername() != creator {
			continue
		}
		if status != nil && string(o.Status()) != *status {
			continue
		}
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b *order.Order) int {
		if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
			return c
		}
		return compareStrings(b.ID().String(), a.ID().String())
	})
	return out
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
