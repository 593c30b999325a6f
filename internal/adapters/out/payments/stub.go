package payments

import (
	"context"
	"sync"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/core/ports"
)

// StubProvider is an in-memory PaymentProvider for local development and
// tests. Sessions never settle on their own; tests flip them with Settle.
type StubProvider struct {
	mu      sync.Mutex
	settled map[string]bool
}

// NewStubProvider creates an empty stub provider.
func NewStubProvider() *StubProvider {
	return &StubProvider{settled: make(map[string]bool)}
}

// CreateCheckoutSession hands back a deterministic fake URL for the job.
func (s *StubProvider) CreateCheckoutSession(
	_ context.Context,
	jobID kernel.UUID,
	_ float64,
	_ string,
) (ports.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.settled[jobID.String()]; !ok {
		s.settled[jobID.String()] = false
	}

	return ports.CheckoutSession{URL: "https://pay.stub.local/sessions/" + jobID.String()}, nil
}

// SessionSettled reports the stubbed settlement state for the job.
func (s *StubProvider) SessionSettled(_ context.Context, jobID kernel.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled[jobID.String()], nil
}

// Settle marks the job's session as paid.
func (s *StubProvider) Settle(jobID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settled[jobID.String()] = true
}
