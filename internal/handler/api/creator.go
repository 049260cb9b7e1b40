package api

import (
	"log/slog"
	"net/http"
	"strconv"

	reqdto "creator-sponsorship/internal/handler/dto/request"
	resdto "creator-sponsorship/internal/handler/dto/response"
	"creator-sponsorship/internal/handler/httperr"
	"creator-sponsorship/internal/usecase/commands"
	"creator-sponsorship/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatorHandler serves the creator dashboard: orders, ledger, notifications
// and the price list. All routes are scoped by the :username path segment.
type CreatorHandler struct {
	orderCmds        commands.OrderCommands
	notificationCmds commands.NotificationCommands
	creatorCmds      commands.CreatorCommands
	orders           queries.OrderQueries
	ledger           queries.LedgerQueries
	notifications    queries.NotificationQueries
	creators         queries.CreatorQueries
}

func NewCreatorHandler(
	orderCmds commands.OrderCommands,
	notificationCmds commands.NotificationCommands,
	creatorCmds commands.CreatorCommands,
	orders queries.OrderQueries,
	ledger queries.LedgerQueries,
	notifications queries.NotificationQueries,
	creators queries.CreatorQueries,
) *CreatorHandler {
	return &CreatorHandler{
		orderCmds:        orderCmds,
		notificationCmds: notificationCmds,
		creatorCmds:      creatorCmds,
		orders:           orders,
		ledger:           ledger,
		notifications:    notifications,
		creators:         creators,
	}
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func parseOrderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary List orders
// @Description List a creator's orders, newest first, with keyset pagination
// @Tags orders
// @Produce json
// @Param username path string true "Creator username"
// @Param status query string false "pending, paid, completed or cancelled"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 422 {object} map[string]string
// @Router /api/creators/{username}/orders [get]
func (h *CreatorHandler) ListOrders(c *gin.Context) {
	var filters queries.OrderFilters
	if v := c.Query("status"); v != "" {
		filters.Status = &v
	}
	cursor, limit := pageParams(c)

	items, next, err := h.orders.List(c.Request.Context(), c.Param("username"), filters, cursor, limit)
	if err != nil {
		slog.Error("list orders failed", "creator", c.Param("username"), "error", err)
		httperr.Abort(c, err, nil)
		return
	}
	resp := resdto.OrderListResponse{Items: resdto.FromOrderList(items)}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Param username path string true "Creator username"
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /api/creators/{username}/orders/{orderId} [get]
func (h *CreatorHandler) GetOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	view, err := h.orders.GetByID(c.Request.Context(), c.Param("username"), id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Get order by code
// @Description Look up the most recent order with the 8 character code shown to the buyer
// @Tags orders
// @Produce json
// @Param username path string true "Creator username"
// @Param code path string true "Order code"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/creators/{username}/orders/code/{code} [get]
func (h *CreatorHandler) GetOrderByCode(c *gin.Context) {
	view, err := h.orders.GetByCode(c.Request.Context(), c.Param("username"), c.Param("code"))
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Update order status
// @Description Move an order through pending, paid, completed or cancelled. Paying folds it into the ledger.
// @Tags orders
// @Accept json
// @Produce json
// @Param username path string true "Creator username"
// @Param orderId path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/creators/{username}/orders/{orderId}/status [patch]
func (h *CreatorHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.orderCmds.UpdateStatus(c.Request.Context(), c.Param("username"), id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List ledger
// @Description Sponsorship state of every content item the creator has been paid for
// @Tags ledger
// @Produce json
// @Param username path string true "Creator username"
// @Success 200 {array} resdto.LedgerEntryResponse
// @Router /api/creators/{username}/ledger [get]
func (h *CreatorHandler) ListLedger(c *gin.Context) {
	entries, err := h.ledger.List(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerEntries(entries))
}

// @Summary Get ledger entry
// @Tags ledger
// @Produce json
// @Param username path string true "Creator username"
// @Param contentId path int true "Catalog content ID"
// @Success 200 {object} resdto.LedgerEntryResponse
// @Failure 404 {object} map[string]string
// @Router /api/creators/{username}/ledger/{contentId} [get]
func (h *CreatorHandler) GetLedgerEntry(c *gin.Context) {
	contentID, err := strconv.ParseInt(c.Param("contentId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid content id", nil)
		return
	}
	entry, err := h.ledger.Get(c.Request.Context(), c.Param("username"), contentID)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerEntry(entry))
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param username path string true "Creator username"
// @Param unread query bool false "Only unread notifications"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.NotificationListResponse
// @Router /api/creators/{username}/notifications [get]
func (h *CreatorHandler) ListNotifications(c *gin.Context) {
	creator := c.Param("username")
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	cursor, limit := pageParams(c)

	items, next, err := h.notifications.List(c.Request.Context(), creator, unreadOnly, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	unread, err := h.notifications.UnreadCount(c.Request.Context(), creator)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	resp := resdto.NotificationListResponse{Items: resdto.FromNotifications(items), UnreadCount: unread}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Mark notification read
// @Tags notifications
// @Param username path string true "Creator username"
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/creators/{username}/notifications/{id}/read [post]
func (h *CreatorHandler) MarkNotificationRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification id", nil)
		return
	}
	if err := h.notificationCmds.MarkRead(c.Request.Context(), c.Param("username"), id); err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get price list
// @Tags creators
// @Produce json
// @Param username path string true "Creator username"
// @Success 200 {object} resdto.PriceListResponse
// @Failure 404 {object} map[string]string
// @Router /api/creators/{username}/price-list [get]
func (h *CreatorHandler) GetPriceList(c *gin.Context) {
	view, err := h.creators.GetPriceList(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceListView(view))
}

// @Summary Update price list
// @Description Create or partially update the creator's prices and contact instructions
// @Tags creators
// @Accept json
// @Produce json
// @Param username path string true "Creator username"
// @Param request body reqdto.UpdatePriceListRequest true "Price list"
// @Success 200 {object} resdto.PriceListResponse
// @Failure 422 {object} map[string]string
// @Router /api/creators/{username}/price-list [put]
func (h *CreatorHandler) UpdatePriceList(c *gin.Context) {
	var req reqdto.UpdatePriceListRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.creatorCmds.UpdatePriceList(c.Request.Context(), c.Param("username"), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceListView(view))
}
