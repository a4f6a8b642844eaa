package repository

import (
	"context"
	"sync"

	"shakepos/internal/model"

	"github.com/shopspring/decimal"
)

// LedgerStore holds the append-only sales log and running total for each
// register session. Sessions are independent; within one session Append and
// Reset are critical sections so that two in-flight requests for the same
// cookie cannot lose updates.
type LedgerStore interface {
	// Snapshot returns a read-only copy of the session's ledger. A session
	// that has never committed yields an empty snapshot with a zero total.
	Snapshot(ctx context.Context, sessionID string) (model.LedgerSnapshot, error)
	// Append adds lines in order to the end of the log and increments the
	// running total by their sum. Strictly append: no dedup, no re-sort.
	Append(ctx context.Context, sessionID string, lines []model.LineItem) error
	// Reset clears the log and zeroes the total. Idempotent.
	Reset(ctx context.Context, sessionID string) error
}

// ─── In-memory implementation ────────────────────────────────────────────────

type sessionLedger struct {
	mu         sync.Mutex
	entries    []model.LineItem
	totalSales decimal.Decimal
}

type memoryLedgerStore struct {
	mu      sync.Mutex
	ledgers map[string]*sessionLedger
}

// NewMemoryLedgerStore keeps session ledgers in process memory. State lives
// only for the process lifetime, which matches the single-stand model.
func NewMemoryLedgerStore() LedgerStore {
	return &memoryLedgerStore{ledgers: make(map[string]*sessionLedger)}
}

func (s *memoryLedgerStore) ledger(sessionID string) *sessionLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ledgers[sessionID]
	if !ok {
		l = &sessionLedger{totalSales: decimal.Zero}
		s.ledgers[sessionID] = l
	}
	return l
}

func (s *memoryLedgerStore) Snapshot(_ context.Context, sessionID string) (model.LedgerSnapshot, error) {
	l := s.ledger(sessionID)
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := make([]model.LineItem, len(l.entries))
	copy(entries, l.entries)
	return model.LedgerSnapshot{Entries: entries, TotalSales: l.totalSales}, nil
}

func (s *memoryLedgerStore) Append(_ context.Context, sessionID string, lines []model.LineItem) error {
	l := s.ledger(sessionID)
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range lines {
		l.entries = append(l.entries, line)
		l.totalSales = l.totalSales.Add(line.LineTotal)
	}
	return nil
}

func (s *memoryLedgerStore) Reset(_ context.Context, sessionID string) error {
	l := s.ledger(sessionID)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.totalSales = decimal.Zero
	return nil
}
