package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LikeMeter records like activity against the global meter provider.
type LikeMeter struct {
	counter metric.Int64Counter
}

// NewLikeMeter constructs the carta.likes counter instrument.
func NewLikeMeter() (*LikeMeter, error) {
	meter := otel.Meter(instrumentationName)
	counter, err := meter.Int64Counter("carta.likes",
		metric.WithDescription("Number of like activations recorded"),
	)
	if err != nil {
		return nil, err
	}
	return &LikeMeter{counter: counter}, nil
}

// Record counts one like activation for the given derived item id.
func (m *LikeMeter) Record(ctx context.Context, itemID string) {
	if m == nil || m.counter == nil {
		return
	}
	m.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("item_id", itemID)))
}
