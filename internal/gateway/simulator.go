// Package gateway simulates a remote banking API: injected latency, a
// configurable random failure probability, and in-memory server-side state
// that successful operations mutate. Snapshots cross the boundary as deep
// copies in both directions, so callers can never alias server state.
package gateway

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aurorabank/lumen/internal/model"
)

// Reference simulation behavior.
const (
	DefaultLatency     = 450 * time.Millisecond
	DefaultFailureRate = 0.12
)

// Error codes carried on model.GatewayError.
const (
	CodeUnavailable         = "gateway/unavailable"
	CodeNotSupported        = "gateway/not-supported"
	CodeTransferInvalid     = "gateway/transfer-invalid"
	CodeNotificationMissing = "gateway/notification-missing"
)

// Simulator is an in-memory stand-in for the banking backend. Its state has
// an explicit lifecycle: New seeds it, Reset restores the seed. All methods
// are safe for concurrent use.
type Simulator struct {
	latency     time.Duration
	failureRate float64
	now         func() time.Time
	newID       func() string
	logger      *zap.Logger

	mu    sync.Mutex
	rng   *rand.Rand
	seed  model.Snapshot
	state model.Snapshot
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLatency sets the simulated network delay for every call.
func WithLatency(d time.Duration) Option {
	return func(s *Simulator) { s.latency = d }
}

// WithFailureRate sets the probability in [0, 1] that an operation fails
// with CodeUnavailable. Use 0 or 1 in tests to force a branch.
func WithFailureRate(p float64) Option {
	return func(s *Simulator) { s.failureRate = p }
}

// WithRand sets the randomness source behind failure injection.
func WithRand(src rand.Source) Option {
	return func(s *Simulator) { s.rng = rand.New(src) }
}

// WithClock sets the time source for generated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// WithIDGenerator sets the generator for activity, notification, and
// response IDs.
func WithIDGenerator(gen func() string) Option {
	return func(s *Simulator) { s.newID = gen }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulator) { s.logger = logger }
}

// WithSeed replaces the reference dataset used by New and Reset.
func WithSeed(snapshot model.Snapshot) Option {
	return func(s *Simulator) { s.seed = snapshot.Clone() }
}

// New creates a Simulator seeded with the reference dataset.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		latency:     DefaultLatency,
		failureRate: DefaultFailureRate,
		now:         time.Now,
		newID:       uuid.NewString,
		logger:      zap.NewNop(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		seed:        defaultSnapshot(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.seed.Clone()
	s.state.SyncUnread()
	return s
}

// FetchSnapshot returns a deep copy of the current server-side state after
// the simulated delay. It never fails on its own; only context cancellation
// can interrupt it.
func (s *Simulator) FetchSnapshot(ctx context.Context) (model.Snapshot, error) {
	if err := s.wait(ctx); err != nil {
		return model.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SyncUnread()
	s.logger.Debug("snapshot fetched",
		zap.Int("accounts", len(s.state.Accounts)),
		zap.Int("unread", s.state.User.Notifications))
	return s.state.Clone(), nil
}

// PerformOperation applies one banking operation to server-side state after
// the simulated delay. Business-rule violations fail deterministically before
// the random unavailability gate; on success the returned result carries the
// receipt and a fresh snapshot copy.
func (s *Simulator) PerformOperation(ctx context.Context, payload model.OperationPayload) (*model.OperationResult, error) {
	if payload == nil || !payload.OperationKind().Valid() {
		return nil, &model.GatewayError{Code: CodeNotSupported, Message: "Operación no soportada"}
	}
	kind := payload.OperationKind()

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req := payload.Wire()
	if err := s.validate(payload, &req); err != nil {
		s.logger.Debug("operation rejected", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}

	if s.rng.Float64() < s.failureRate {
		s.logger.Debug("operation failed by injection", zap.String("kind", string(kind)))
		return nil, &model.GatewayError{
			Code:    CodeUnavailable,
			Message: "No pudimos completar la operación. Intenta nuevamente.",
			Details: &req,
		}
	}

	message := s.apply(payload)
	s.state.SyncUnread()
	s.logger.Debug("operation applied", zap.String("kind", string(kind)))

	return &model.OperationResult{
		Response: model.OperationResponse{
			ID:          s.newID(),
			Status:      model.StatusSuccess,
			Message:     message,
			ProcessedAt: s.now(),
			Details:     req,
		},
		Snapshot: s.state.Clone(),
	}, nil
}

// Reset restores server-side state to the seed dataset.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.seed.Clone()
	s.state.SyncUnread()
	s.logger.Debug("state reset")
}

// Kinds lists the supported operation kinds.
func (s *Simulator) Kinds() []model.OperationKind {
	return model.OperationKinds()
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
