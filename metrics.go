package auth

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// metrics holds the coarse packet counters. Failure counts are totals only:
// no digest labels on the verify path, no byte positions, no timing detail,
// so the instrument stream leaks nothing about why a tag mismatched.
type metrics struct {
	generated metric.Int64Counter
	verified  metric.Int64Counter
	failures  metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	generated, err := meter.Int64Counter("auth.packets_generated",
		metric.WithDescription("Control packets tagged for transmission."))
	if err != nil {
		return nil, err
	}

	verified, err := meter.Int64Counter("auth.packets_verified",
		metric.WithDescription("Inbound control packets checked against their tag."))
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("auth.verify_failures",
		metric.WithDescription("Inbound control packets that failed tag verification."))
	if err != nil {
		return nil, err
	}

	return &metrics{generated: generated, verified: verified, failures: failures}, nil
}

// packetGenerated records one generated packet. Safe on a nil receiver.
func (m *metrics) packetGenerated() {
	if m == nil {
		return
	}
	m.generated.Add(context.Background(), 1)
}

// packetVerified records one verification attempt and its outcome.
// Safe on a nil receiver.
func (m *metrics) packetVerified(ok bool) {
	if m == nil {
		return
	}
	m.verified.Add(context.Background(), 1)
	if !ok {
		m.failures.Add(context.Background(), 1)
	}
}
