// Package auth implements packet-level message authentication for a VPN
// control channel. It computes and verifies a keyed-hash tag over control
// packets so that tampering or forgery is detected before a packet is
// trusted.
//
// The entry point is a Factory, which maps a negotiated digest identifier
// to a Context. A Context is bound to one algorithm and is safe to share
// across connections that negotiated it; an Instance additionally binds a
// SecretKey and is the object the packet I/O layer drives, one per
// connection. Alternative cryptographic backends implement Factory behind
// the same interface.
//
// This package does not generate or rotate keys, does not implement any
// hash algorithm itself, and provides integrity only, not confidentiality.
package auth

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this library to the tracer provider.
const tracerName = "github.com/rbaliyan/packet-auth"

// Instance is a Context bound to a specific key. It carries mutable hashing
// state and must be driven from a single logical thread; use one Instance
// per connection.
type Instance interface {
	// Init binds key material. Calling Init again rebinds, though a rekey
	// is normally expressed by constructing a new Instance. Fails with
	// ErrKeySize if the key is shorter than the digest requires; on failure
	// no key is bound.
	Init(key *SecretKey) error

	// OutputSize returns the tag length in bytes, or 0 before Init.
	OutputSize() int

	// Sum computes the one-shot keyed hash of in.
	Sum(in []byte) ([]byte, error)

	// GeneratePacket writes the tag into the Tag region of a
	// self-constructed packet. A layout violation is a local bug and is
	// surfaced as ErrLayout; callers should treat it as fatal.
	GeneratePacket(data []byte, lay Layout) error

	// VerifyPacket recomputes the tag over a peer-supplied packet and
	// compares it in constant time. All failure modes, layout violations
	// included, return false. On false the caller must drop the packet.
	VerifyPacket(data []byte, lay Layout) bool
}

// Context binds an authentication backend to a negotiated digest,
// independent of any key. It is immutable and safe to share across
// connections that negotiated the same algorithm.
type Context interface {
	// Digest returns the bound digest identifier.
	Digest() Digest

	// Size returns the digest's output size, available before any Instance
	// exists so callers can size wire buffers during negotiation.
	Size() int

	// NewInstance returns a fresh, unkeyed Instance for this digest.
	NewInstance() Instance
}

// Factory maps a digest identifier to a Context, hiding the concrete
// cryptographic backend from negotiation code.
type Factory interface {
	// NewContext resolves a digest through the legal-use filter and binds
	// it. Fails with ErrUnsupportedDigest or ErrUnknownDigest before any
	// key material is touched.
	NewContext(ctx context.Context, digest Digest) (Context, error)
}

// Option configures a StdFactory.
type Option func(*StdFactory)

// WithMeter enables coarse packet counters on Instances produced through
// the factory. Counts carry no per-byte or timing detail.
func WithMeter(m metric.Meter) Option {
	return func(f *StdFactory) {
		f.meter = m
	}
}

// WithTracerProvider traces Context construction (the negotiation path).
// Per-packet operations are never traced.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(f *StdFactory) {
		f.tracer = tp.Tracer(tracerName)
	}
}

// StdFactory is the standard backend, built on the Go HMAC implementation
// and the x/crypto digest families. It is safe for concurrent use.
type StdFactory struct {
	meter   metric.Meter
	tracer  trace.Tracer
	metrics *metrics
}

// Compile-time interface checks.
var (
	_ Factory  = (*StdFactory)(nil)
	_ Context  = (*stdContext)(nil)
	_ Instance = (*stdInstance)(nil)
)

// NewFactory creates the standard backend factory.
func NewFactory(opts ...Option) (*StdFactory, error) {
	f := &StdFactory{}
	for _, opt := range opts {
		opt(f)
	}

	if f.tracer == nil {
		f.tracer = otel.Tracer(tracerName)
	}

	if f.meter != nil {
		m, err := newMetrics(f.meter)
		if err != nil {
			return nil, err
		}
		f.metrics = m
	}

	return f, nil
}

// NewContext resolves digest through the legal-use filter and returns a
// Context bound to it.
func (f *StdFactory) NewContext(ctx context.Context, digest Digest) (Context, error) {
	ctx, span := f.tracer.Start(ctx, "auth.NewContext",
		trace.WithAttributes(attribute.String("auth.digest", digest.String())))
	defer span.End()

	d, err := LegalForPacketAuth(digest)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	info, err := Lookup(d)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &stdContext{digest: d, info: info, metrics: f.metrics}, nil
}

type stdContext struct {
	digest  Digest
	info    DigestInfo
	metrics *metrics
}

func (c *stdContext) Digest() Digest { return c.digest }

func (c *stdContext) Size() int { return c.info.Size }

func (c *stdContext) NewInstance() Instance {
	return &stdInstance{digest: c.digest, metrics: c.metrics}
}

type stdInstance struct {
	digest  Digest
	engine  engine
	metrics *metrics
}

func (i *stdInstance) Init(key *SecretKey) error {
	return i.engine.bind(i.digest, key)
}

func (i *stdInstance) OutputSize() int {
	return i.engine.outputSize()
}

func (i *stdInstance) Sum(in []byte) ([]byte, error) {
	if !i.engine.keyed() {
		return nil, ErrKeyNotSet
	}
	// The engine's sum aliases its scratch buffer; hand out a copy.
	tag := i.engine.sum(in)
	out := make([]byte, len(tag))
	copy(out, tag)
	return out, nil
}

func (i *stdInstance) GeneratePacket(data []byte, lay Layout) error {
	if err := i.engine.generate(data, lay); err != nil {
		return err
	}
	i.metrics.packetGenerated()
	return nil
}

func (i *stdInstance) VerifyPacket(data []byte, lay Layout) bool {
	ok := i.engine.verify(data, lay)
	i.metrics.packetVerified(ok)
	return ok
}
