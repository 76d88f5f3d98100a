package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/ent/salesevent"
	"github.com/leadflowhq/leadflow/pkg/models"
)

// SalesService persists billing-platform webhooks. The (source,
// event_kind, order_id) unique index makes webhook redelivery a no-op.
type SalesService struct {
	client *ent.Client
}

// NewSalesService creates a new SalesService
func NewSalesService(client *ent.Client) *SalesService {
	return &SalesService{client: client}
}

// Record persists a billing event. Returns (event, true) on first
// delivery and (existing event, false) on redelivery.
func (s *SalesService) Record(httpCtx context.Context, source string, evt *models.BillingEvent, contactID string) (*ent.SalesEvent, bool, error) {
	if evt.Kind == "" {
		return nil, false, NewValidationError("event", "required")
	}
	if evt.OrderID == "" {
		return nil, false, NewValidationError("order_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.SalesEvent.Create().
		SetID(uuid.New().String()).
		SetSource(source).
		SetEventKind(evt.Kind).
		SetOrderID(evt.OrderID).
		SetValue(evt.Value).
		SetRawPayload(evt.RawPayload)
	if evt.BuyerEmail != "" {
		builder.SetBuyerEmail(evt.BuyerEmail)
	}
	if evt.BuyerPhone != "" {
		builder.SetBuyerPhone(evt.BuyerPhone)
	}
	if evt.ProductID != "" {
		builder.SetProductID(evt.ProductID)
	}
	if contactID != "" {
		builder.SetContactID(contactID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.SalesEvent.Query().
				Where(
					salesevent.SourceEQ(source),
					salesevent.EventKindEQ(evt.Kind),
					salesevent.OrderIDEQ(evt.OrderID),
				).
				Only(ctx)
			if qerr != nil {
				return nil, false, fmt.Errorf("failed to load existing sales event: %w", qerr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to record sales event: %w", err)
	}
	return created, true, nil
}

// TotalsSince aggregates approved sales recorded since the cutoff:
// count and summed value.
func (s *SalesService) TotalsSince(ctx context.Context, since time.Time) (int, float64, error) {
	query := s.client.SalesEvent.Query().
		Where(
			salesevent.EventKindEQ("sale.approved"),
			salesevent.CreatedAtGTE(since),
		)

	count, err := query.Clone().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count sales: %w", err)
	}
	if count == 0 {
		return 0, 0, nil
	}

	total, err := query.Aggregate(ent.Sum(salesevent.FieldValue)).Float64(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum sales: %w", err)
	}
	return count, total, nil
}

// ListSales retrieves sales events with filtering, newest first
func (s *SalesService) ListSales(ctx context.Context, filters models.SalesFilters) (*models.SalesListResponse, error) {
	query := s.client.SalesEvent.Query()
	if filters.Kind != "" {
		query = query.Where(salesevent.EventKindEQ(filters.Kind))
	}
	if filters.ContactID != "" {
		query = query.Where(salesevent.ContactIDEQ(filters.ContactID))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sales events: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	events, err := query.
		Order(ent.Desc(salesevent.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales events: %w", err)
	}

	return &models.SalesListResponse{
		Events:     events,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}
