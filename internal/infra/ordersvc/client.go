// Package ordersvc talks to the external order/billing ledger. Bookings
// reference orders by opaque order_ref; only stay extensions create orders
// from this side, and a created extension order is voided if the local
// transaction fails to commit.
package ordersvc

import (
	"context"
	"fmt"

	"hostelops/internal/pkg/config"
	"hostelops/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

var (
	ErrOrderRequestFailed = errs.New("order service request failed")
	ErrOrderRejected      = errs.New("order service rejected the request")
)

type ExtensionOrderRequest struct {
	BookingID     string `json:"booking_id"`
	BranchID      string `json:"branch_id"`
	RoomID        string `json:"room_id"`
	ParentOrder   string `json:"parent_order_ref"`
	ExtraDuration int32  `json:"extra_duration"`
	DurationUnit  string `json:"duration_unit"`
	UnitCostCents int64  `json:"unit_cost_cents"`
}

type ExtensionOrderResponse struct {
	OrderRef string `json:"order_ref"`
	Status   string `json:"status"`
}

type Client interface {
	CreateExtensionOrder(ctx context.Context, req ExtensionOrderRequest) (string, error)
	VoidOrder(ctx context.Context, orderRef string) error
}

type restClient struct {
	http *resty.Client
}

func NewClient(cfg config.OrderServiceConfig) Client {
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		http.SetHeader("X-Api-Key", cfg.APIKey)
	}
	return &restClient{http: http}
}

func (c *restClient) CreateExtensionOrder(ctx context.Context, req ExtensionOrderRequest) (string, error) {
	var result ExtensionOrderResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/orders/extensions")
	if err != nil {
		return "", errs.Mark(err, ErrOrderRequestFailed)
	}
	if resp.IsError() {
		return "", errs.Mark(
			fmt.Errorf("create extension order: status %d", resp.StatusCode()),
			ErrOrderRejected,
		)
	}
	if result.OrderRef == "" {
		return "", errs.Mark(fmt.Errorf("create extension order: empty order_ref"), ErrOrderRejected)
	}
	return result.OrderRef, nil
}

func (c *restClient) VoidOrder(ctx context.Context, orderRef string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/api/orders/%s/void", orderRef))
	if err != nil {
		return errs.Mark(err, ErrOrderRequestFailed)
	}
	if resp.IsError() {
		return errs.Mark(
			fmt.Errorf("void order %s: status %d", orderRef, resp.StatusCode()),
			ErrOrderRejected,
		)
	}
	return nil
}
