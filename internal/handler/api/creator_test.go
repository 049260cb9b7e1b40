//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/handler/api"
	resdto "creator-sponsorship/internal/handler/dto/response"
	"creator-sponsorship/internal/handler/middleware"
	"creator-sponsorship/internal/usecase/commands"
	"creator-sponsorship/internal/usecase/queries"
	"creator-sponsorship/tests/common/builder"
	"creator-sponsorship/tests/common/httptest"
	commandsmock "creator-sponsorship/tests/mock/commands"
	queriesmock "creator-sponsorship/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CreatorHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	orderCmds         *commandsmock.MockOrderCommands
	notificationCmds  *commandsmock.MockNotificationCommands
	creatorCmds       *commandsmock.MockCreatorCommands
	orderQueries      *queriesmock.MockOrderQueries
	ledgerQueries     *queriesmock.MockLedgerQueries
	notificationQuery *queriesmock.MockNotificationQueries
	creatorQueries    *queriesmock.MockCreatorQueries
}

func (s *CreatorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.orderCmds = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.notificationCmds = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.creatorCmds = commandsmock.NewMockCreatorCommands(s.mockCtrl)
	s.orderQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.ledgerQueries = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.notificationQuery = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.creatorQueries = queriesmock.NewMockCreatorQueries(s.mockCtrl)

	h := api.NewCreatorHandler(s.orderCmds, s.notificationCmds, s.creatorCmds,
		s.orderQueries, s.ledgerQueries, s.notificationQuery, s.creatorQueries)

	g := s.router.Group("/creators/:username", middleware.RequireCreatorUsername())
	g.GET("/orders", h.ListOrders)
	g.GET("/orders/code/:code", h.GetOrderByCode)
	g.GET("/orders/:orderId", h.GetOrder)
	g.PATCH("/orders/:orderId/status", h.UpdateOrderStatus)
	g.GET("/ledger", h.ListLedger)
	g.GET("/ledger/:contentId", h.GetLedgerEntry)
	g.GET("/notifications", h.ListNotifications)
	g.POST("/notifications/:id/read", h.MarkNotificationRead)
	g.GET("/price-list", h.GetPriceList)
	g.PUT("/price-list", h.UpdatePriceList)
}

func (s *CreatorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCreatorHandlerSuite(t *testing.T) {
	suite.Run(t, new(CreatorHandlerTestSuite))
}

// ================================================================================
// Orders
// ================================================================================

func (s *CreatorHandlerTestSuite) TestListOrders() {
	items := []*queries.OrderListItem{builder.NewOrderBuilder().BuildListItem()}

	s.Run("success: status filter and cursor are forwarded", func() {
		status := "paid"
		s.orderQueries.EXPECT().
			List(gomock.Any(), "alice", queries.OrderFilters{Status: &status}, &queries.Cursor{After: "abc"}, 5).
			Return(items, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/orders?status=paid&after=abc&limit=5", nil)

		var res resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Items, 1)
		s.Equal("next", res.NextCursor)
		s.Equal(items[0].ID.String(), res.Items[0].ID)
		s.Equal(items[0].CreatedAt.Unix(), res.Items[0].CreatedAt)
		s.Contains(res.Items[0].TotalDisplay, "80.00")
	})

	s.Run("invalid cursor: returns 422", func() {
		s.orderQueries.EXPECT().List(gomock.Any(), "alice", gomock.Any(), gomock.Any(), queries.DefaultListLimit).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/orders?after=zzz", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "invalid cursor")
	})

	s.Run("invalid username: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/-bad!/orders", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid creator username")
	})
}

func (s *CreatorHandlerTestSuite) TestGetOrder() {
	view := builder.NewOrderBuilder().BuildView()

	s.Run("by id", func() {
		s.orderQueries.EXPECT().GetByID(gomock.Any(), "alice", view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/orders/"+view.ID.String(), nil)

		var res resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.Code, res.Code)
		s.Require().Len(res.Items, 1)
		s.Equal(int64(603), res.Items[0].ContentID)
		s.Nil(res.PaidAt)
	})

	s.Run("by code", func() {
		s.orderQueries.EXPECT().GetByCode(gomock.Any(), "alice", "ABCD1234").Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/orders/code/ABCD1234", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.orderQueries.EXPECT().GetByID(gomock.Any(), "alice", id).Return(nil, queries.ErrOrderNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/orders/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/orders/123", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order id")
	})
}

func (s *CreatorHandlerTestSuite) TestUpdateOrderStatus() {
	view := builder.NewOrderBuilder().BuildView()
	url := "/creators/alice/orders/" + view.ID.String() + "/status"

	s.Run("paid", func() {
		paidAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		paid := *view
		paid.Status = string(order.StatusPaid)
		paid.PaidAt = &paidAt
		s.orderCmds.EXPECT().
			UpdateStatus(gomock.Any(), "alice", view.ID, commands.UpdateStatusInput{Status: order.StatusPaid}).
			Return(&paid, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "paid"})

		var res resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("paid", res.Status)
		s.Require().NotNil(res.PaidAt)
		s.Equal(paidAt.Unix(), *res.PaidAt)
	})

	tests := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "illegal transition", err: order.ErrInvalidStatusTransition, expectCode: http.StatusConflict},
		{name: "unknown status", err: order.ErrInvalidStatus, expectCode: http.StatusUnprocessableEntity},
		{name: "concurrent update", err: commands.ErrOrderVersionConflict, expectCode: http.StatusConflict},
		{name: "database failure", err: errors.New("boom"), expectCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.orderCmds.EXPECT().UpdateStatus(gomock.Any(), "alice", view.ID, gomock.Any()).Return(nil, tt.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "paid"})
			httptest.AssertErrorResponse(s.T(), rec, tt.expectCode, "")
		})
	}

	s.Run("missing status: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// Ledger
// ================================================================================

func (s *CreatorHandlerTestSuite) TestLedger() {
	entry := &queries.LedgerEntryView{
		ContentID: 1399,
		Title:     "Matrix Chronicles",
		MediaType: "series",
		Priority:  "normal",
		Episodes: []queries.LedgerEpisodeView{
			{Season: 1, Episode: 1, IsPaid: true, SponsorName: "Bob"},
		},
		UpdatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	s.Run("list", func() {
		s.ledgerQueries.EXPECT().List(gomock.Any(), "alice").Return([]*queries.LedgerEntryView{entry}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/ledger", nil)

		var res []resdto.LedgerEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal(entry.UpdatedAt.Unix(), res[0].UpdatedAt)
		s.Require().Len(res[0].Episodes, 1)
		s.Equal("Bob", res[0].Episodes[0].SponsorName)
	})

	s.Run("get", func() {
		s.ledgerQueries.EXPECT().Get(gomock.Any(), "alice", int64(1399)).Return(entry, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/ledger/1399", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("bad content id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/ledger/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid content id")
	})
}

// ================================================================================
// Notifications
// ================================================================================

func (s *CreatorHandlerTestSuite) TestNotifications() {
	n := &queries.NotificationView{
		ID:        uuid.New(),
		Type:      "new_order",
		OrderCode: "ABCD1234",
		Message:   "New order from Bob",
		BuyerName: "Bob",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	s.Run("list unread", func() {
		s.notificationQuery.EXPECT().List(gomock.Any(), "alice", true, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return([]*queries.NotificationView{n}, nil, nil).Times(1)
		s.notificationQuery.EXPECT().UnreadCount(gomock.Any(), "alice").Return(int64(1), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/notifications?unread=true", nil)

		var res resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(int64(1), res.UnreadCount)
		s.Require().Len(res.Items, 1)
		s.Equal(n.ID.String(), res.Items[0].ID)
		s.Empty(res.NextCursor)
	})

	s.Run("mark read", func() {
		s.notificationCmds.EXPECT().MarkRead(gomock.Any(), "alice", n.ID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/creators/alice/notifications/"+n.ID.String()+"/read", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("mark read of another creator's notification", func() {
		s.notificationCmds.EXPECT().MarkRead(gomock.Any(), "alice", n.ID).Return(commands.ErrNotificationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/creators/alice/notifications/"+n.ID.String()+"/read", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "notification not found")
	})
}

// ================================================================================
// Price list
// ================================================================================

func (s *CreatorHandlerTestSuite) TestPriceList() {
	view := &queries.PriceListView{
		CreatorUsername:      "alice",
		MoviePriceShortCents: 5000,
		MoviePriceLongCents:  8000,
		EpisodePriceCents:    1000,
		PriorityPriceCents:   2000,
		Currency:             "USD",
		UpdatedAt:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	s.Run("get", func() {
		s.creatorQueries.EXPECT().GetPriceList(gomock.Any(), "alice").Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/creators/alice/price-list", nil)

		var res resdto.PriceListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(int64(8000), res.MoviePriceLongCents)
		s.Contains(res.EpisodePrice, "10.00")
	})

	s.Run("partial update", func() {
		s.creatorCmds.EXPECT().UpdatePriceList(gomock.Any(), "alice", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, in commands.UpdatePriceListInput) (*queries.PriceListView, error) {
				assert.Nil(s.T(), in.MoviePriceShortCents)
				if assert.NotNil(s.T(), in.EpisodePriceCents) {
					assert.Equal(s.T(), int64(1500), *in.EpisodePriceCents)
				}
				return view, nil
			}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/creators/alice/price-list", map[string]any{"episode_price_cents": 1500})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("negative price: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/creators/alice/price-list", map[string]any{"priority_price_cents": -1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// Health
// ================================================================================

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("all dependencies up", func(t *testing.T) {
		r := gin.New()
		h := api.NewHealthHandler(api.HealthCheck{Name: "postgres", Probe: func(context.Context) error { return nil }})
		r.GET("/health", h.Check)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"postgres":"ok"`)
	})

	t.Run("dependency down", func(t *testing.T) {
		r := gin.New()
		h := api.NewHealthHandler(
			api.HealthCheck{Name: "postgres", Probe: func(context.Context) error { return nil }},
			api.HealthCheck{Name: "redis", Probe: func(context.Context) error { return errors.New("connection refused") }},
		)
		r.GET("/health", h.Check)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "connection refused")
	})
}
