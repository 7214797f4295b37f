// Order HTTP handlers.
//
// This file exposes REST endpoints for delivery orders:
//   - POST /api/orders        (place an order)
//   - GET  /api/orders        (list, paginated, ETag support)
//   - GET  /api/orders/{id}   (fetch one order by public id)
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/form"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/utils"
)

//
// DTOs
//

// FlexString accepts either a JSON string or a JSON number. Browsers post
// the quantity as a string while scripted clients often send a number.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("must be a string or a number")
	}
	*f = FlexString(n.String())
	return nil
}

// OrderRequest is the JSON payload posted by the order form.
type OrderRequest struct {
	Name         string     `json:"name" example:"Ravi Kumar"`
	Mobile       string     `json:"mobile" example:"9876543210"`
	Email        string     `json:"email" example:"ravi@example.com"`
	Address      string     `json:"address" example:"12 Lake Road, Hyderabad"`
	ProductType  string     `json:"productType" example:"20L Water Jar"`
	Quantity     FlexString `json:"quantity" swaggertype:"string" example:"2"`
	DeliveryTime string     `json:"deliveryTime" example:"Morning (8 AM - 12 PM)"`
	DeliveryDate string     `json:"deliveryDate" example:"2025-04-01"`
	Notes        string     `json:"notes" example:"Ring the bell twice"`
}

func (r OrderRequest) submission() form.OrderSubmission {
	return form.OrderSubmission{
		Name:         r.Name,
		Mobile:       r.Mobile,
		Email:        r.Email,
		Address:      r.Address,
		ProductType:  r.ProductType,
		Quantity:     string(r.Quantity),
		DeliveryTime: r.DeliveryTime,
		DeliveryDate: r.DeliveryDate,
		Notes:        r.Notes,
	}
}

// CreateOrderResponse acknowledges a placed order.
type CreateOrderResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Order placed successfully"`
	OrderID string `json:"order_id" example:"AQB-00000001"`
}

// OrderResource is the API representation of a stored order.
type OrderResource struct {
	domain.Order
	ID      uint   `json:"id" example:"1"`
	OrderID string `json:"order_id" example:"AQB-00000001"`
}

func toResource(o domain.Order) OrderResource {
	return OrderResource{Order: o, ID: o.ID, OrderID: o.PublicID()}
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListOrdersResponse wraps a page of orders and pagination information.
type ListOrdersResponse struct {
	Orders     []OrderResource `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params.
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// CreateOrder godoc
// @ID          createOrder
// @Summary     Place a delivery order
// @Description Validates the order form payload, stores a pending order and notifies the admin mailbox.
// @Tags        Orders
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.OrderRequest  true  "Order payload"
//
// @Success     201  {object}  handlers.CreateOrderResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing field or invalid quantity"
// @Failure     429  {object}  handlers.ErrorResponse  "Too many requests"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /api/orders [post]
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	o, err := h.orders.Place(c.Request.Context(), req.submission())
	if err != nil {
		failService(c, err, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, CreateOrderResponse{
		Success: true,
		Message: "Order placed successfully",
		OrderID: o.PublicID(),
	})
}

// ListOrders godoc
// @ID          listOrders
// @Summary     List orders (paginated)
// @Description Returns a page of orders, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Orders
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"orders:3:1712345678\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListOrdersResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /api/orders [get]
func (h *Handlers) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if v, err := h.orders.Version(ctx); err == nil {
		etag := fmt.Sprintf(`W/"orders:%s"`, v)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, total, err := h.orders.ListPage(ctx, page, pageSize)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}

	out := make([]OrderResource, 0, len(items))
	for _, o := range items {
		out = append(out, toResource(o))
	}
	totalPages := utils.TotalPages(total, pageSize)
	ok(c, http.StatusOK, ListOrdersResponse{
		Orders: out,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetOrder godoc
// @ID          getOrder
// @Summary     Fetch an order
// @Description Returns one order by its public id.
// @Tags        Orders
// @Produce     json
//
// @Param       id  path  string  true  "Public order id"  example(AQB-00000001)
//
// @Success     200  {object} handlers.OrderResource
// @Failure     404  {object} handlers.ErrorResponse "Order not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /api/orders/{id} [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	id := strings.ToUpper(strings.TrimSpace(c.Param("id")))
	o, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, toResource(*o))
}
