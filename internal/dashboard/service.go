// Package dashboard owns the client-visible banking state: the last known
// snapshot, the loading/error slots for snapshot retrieval, and a single-slot
// state machine tracking the most recent operation's lifecycle.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/aurorabank/lumen/internal/model"
)

// ErrOperationPending is returned by Execute while another operation is in
// flight. The slot holds one operation at a time; callers are expected to
// disable triggering UI while the slot is pending.
var ErrOperationPending = errors.New("an operation is already in flight")

const genericOperationError = "Ocurrió un problema inesperado al ejecutar la operación."

// Gateway is the backend port the service drives. Implemented by
// gateway.Simulator; tests substitute fakes.
type Gateway interface {
	FetchSnapshot(ctx context.Context) (model.Snapshot, error)
	PerformOperation(ctx context.Context, payload model.OperationPayload) (*model.OperationResult, error)
}

// OperationStatus is the lifecycle phase of the operation slot.
type OperationStatus string

const (
	StatusIdle    OperationStatus = "idle"
	StatusPending OperationStatus = "pending"
	StatusSuccess OperationStatus = "success"
	StatusError   OperationStatus = "error"
)

// OperationState is the single-slot record of the most recent operation.
// Kind is set for every status except idle; Message only for success/error.
type OperationState struct {
	Status  OperationStatus
	Kind    model.OperationKind
	Message string
}

// State is everything the presentation layer reads. Snapshot is nil before
// the first successful refresh and must be treated as immutable.
type State struct {
	Snapshot  *model.Snapshot
	Loading   bool
	LoadError string
	Operation OperationState
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithChangeListener registers a callback invoked after every state
// transition, outside the service's lock. This is how toasts and modals
// learn about settlements without polling.
func WithChangeListener(fn func(State)) Option {
	return func(s *Service) { s.onChange = fn }
}

// Service is the dashboard orchestration core. All methods are safe for
// concurrent use; Refresh and Execute block until the gateway settles.
type Service struct {
	gw       Gateway
	logger   *zap.Logger
	onChange func(State)

	mu       sync.Mutex
	snapshot *model.Snapshot
	loading  bool
	loadErr  string
	op       OperationState
	opSeq    uint64
}

// NewService creates a Service over the given gateway.
func NewService(gw Gateway, opts ...Option) *Service {
	s := &Service{
		gw:     gw,
		logger: zap.NewNop(),
		op:     OperationState{Status: StatusIdle},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh fetches a fresh snapshot. While the fetch is in flight Loading is
// true and LoadError is cleared. On failure the previous snapshot stays
// visible alongside the error message: stale data beats a blank screen.
func (s *Service) Refresh(ctx context.Context) error {
	s.update(func() {
		s.loading = true
		s.loadErr = ""
	})

	snap, err := s.gw.FetchSnapshot(ctx)
	if err != nil {
		s.logger.Warn("snapshot fetch failed", zap.Error(err))
		s.update(func() {
			s.loading = false
			s.loadErr = err.Error()
		})
		return fmt.Errorf("fetching snapshot: %w", err)
	}

	s.update(func() {
		s.loading = false
		s.snapshot = &snap
	})
	return nil
}

// Execute runs one operation through the gateway. The pending transition is
// visible to concurrent readers before the gateway call is issued, so
// presentation can disable controls immediately. Gateway failures never
// escape: they settle into the error variant of the slot, and the returned
// state is the settled slot. A second call while one is pending is rejected
// with ErrOperationPending, leaving the in-flight record untouched.
func (s *Service) Execute(ctx context.Context, payload model.OperationPayload) (OperationState, error) {
	if payload == nil {
		return s.Operation(), fmt.Errorf("executing operation: nil payload")
	}
	kind := payload.OperationKind()

	s.mu.Lock()
	if s.op.Status == StatusPending {
		current := s.op
		s.mu.Unlock()
		return current, ErrOperationPending
	}
	s.opSeq++
	seq := s.opSeq
	s.op = OperationState{Status: StatusPending, Kind: kind}
	s.notifyAndUnlock()

	result, err := s.gw.PerformOperation(ctx, payload)

	s.mu.Lock()
	if seq != s.opSeq || s.op.Status != StatusPending {
		// The slot was reset or re-armed while this call was in flight;
		// discard the stale settlement.
		current := s.op
		s.mu.Unlock()
		s.logger.Debug("stale settlement discarded", zap.String("kind", string(kind)))
		return current, nil
	}
	if err != nil {
		s.op = OperationState{Status: StatusError, Kind: kind, Message: failureMessage(err)}
		s.logger.Warn("operation failed", zap.String("kind", string(kind)), zap.Error(err))
	} else {
		s.snapshot = &result.Snapshot
		s.op = OperationState{Status: StatusSuccess, Kind: kind, Message: result.Response.Message}
	}
	settled := s.op
	s.notifyAndUnlock()
	return settled, nil
}

// ResetOperation unconditionally returns the operation slot to idle. Used to
// dismiss feedback and to clear stale success/error state when a modal
// closes. If an operation is still in flight its settlement is discarded.
func (s *Service) ResetOperation() {
	s.update(func() {
		s.op = OperationState{Status: StatusIdle}
	})
}

// State returns the full dashboard state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Snapshot returns the last known snapshot, or nil before the first load.
func (s *Service) Snapshot() *model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Loading reports whether a snapshot fetch is in flight.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LoadError returns the last snapshot-fetch failure, or "".
func (s *Service) LoadError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Operation returns the current operation slot.
func (s *Service) Operation() OperationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.op
}

func (s *Service) stateLocked() State {
	return State{
		Snapshot:  s.snapshot,
		Loading:   s.loading,
		LoadError: s.loadErr,
		Operation: s.op,
	}
}

// update applies a mutation under the lock and notifies the listener after
// releasing it.
func (s *Service) update(mutate func()) {
	s.mu.Lock()
	mutate()
	s.notifyAndUnlock()
}

// notifyAndUnlock snapshots the state, releases the lock, and invokes the
// change listener. Must be called with the lock held.
func (s *Service) notifyAndUnlock() {
	st := s.stateLocked()
	listener := s.onChange
	s.mu.Unlock()
	if listener != nil {
		listener(st)
	}
}

// failureMessage extracts the user-facing message from a gateway rejection,
// falling back to a generic one when the error carries none.
func failureMessage(err error) string {
	var gerr *model.GatewayError
	if errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}
	return genericOperationError
}
