package ordertags

import (
	"context"
	"fmt"

	"github.com/warebridge/warebridge/internal/orders"
)

// Service assigns and removes tags on orders by rewriting the order's
// tags array through the generic order-update endpoint.
type Service struct {
	orders *orders.Client
}

// NewService wires the order client.
func NewService(orderClient *orders.Client) *Service {
	return &Service{orders: orderClient}
}

// Assign adds tag to the order. The reconciliation pair is mutually
// exclusive: assigning one removes the other when present, so an order
// never carries both "Đã đối soát" and "Chưa đối soát".
func (s *Service) Assign(ctx context.Context, orderID, tag string) (orders.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return orders.Order{}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	tags := make([]string, 0, len(order.Tags)+1)
	for _, existing := range order.Tags {
		if existing == tag {
			// Already assigned; nothing to write.
			return order, nil
		}
		if excludes(tag, existing) {
			continue
		}
		tags = append(tags, existing)
	}
	tags = append(tags, tag)

	return s.orders.Update(ctx, orderID, map[string]any{"tags": tags})
}

// Remove deletes tag from the order; removing an absent tag is a no-op.
func (s *Service) Remove(ctx context.Context, orderID, tag string) (orders.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return orders.Order{}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	tags := make([]string, 0, len(order.Tags))
	found := false
	for _, existing := range order.Tags {
		if existing == tag {
			found = true
			continue
		}
		tags = append(tags, existing)
	}
	if !found {
		return order, nil
	}

	return s.orders.Update(ctx, orderID, map[string]any{"tags": tags})
}

// DeleteTag is intentionally a no-op: the catalog is compiled in and
// per-order assignments are removed via Remove. Kept so the dashboard's
// delete dialog has an endpoint to call.
func (s *Service) DeleteTag(ctx context.Context, tagID string) error {
	return nil
}

func excludes(a, b string) bool {
	return (a == TagReconciled && b == TagNotReconciled) ||
		(a == TagNotReconciled && b == TagReconciled)
}
