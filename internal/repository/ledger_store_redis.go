package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"shakepos/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// redisLedgerStore serializes each session's snapshot as JSON under one key
// with a sliding TTL, so ledgers survive process restarts for the life of the
// session cookie. Read-modify-write per session runs under a local mutex —
// sufficient for the single-instance deployment this register targets.
type redisLedgerStore struct {
	rdb *redis.Client
	ttl time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRedisLedgerStore(rdb *redis.Client, ttl time.Duration) LedgerStore {
	return &redisLedgerStore{rdb: rdb, ttl: ttl, locks: make(map[string]*sync.Mutex)}
}

func ledgerKey(sessionID string) string { return "ledger:" + sessionID }

func (s *redisLedgerStore) lock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

func (s *redisLedgerStore) load(ctx context.Context, sessionID string) (model.LedgerSnapshot, error) {
	snap := model.LedgerSnapshot{TotalSales: decimal.Zero}
	raw, err := s.rdb.Get(ctx, ledgerKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return snap, nil
		}
		return snap, err
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return model.LedgerSnapshot{TotalSales: decimal.Zero}, err
	}
	return snap, nil
}

func (s *redisLedgerStore) save(ctx context.Context, sessionID string, snap model.LedgerSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, ledgerKey(sessionID), raw, s.ttl).Err()
}

func (s *redisLedgerStore) Snapshot(ctx context.Context, sessionID string) (model.LedgerSnapshot, error) {
	return s.load(ctx, sessionID)
}

func (s *redisLedgerStore) Append(ctx context.Context, sessionID string, lines []model.LineItem) error {
	l := s.lock(sessionID)
	l.Lock()
	defer l.Unlock()

	snap, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		snap.Entries = append(snap.Entries, line)
		snap.TotalSales = snap.TotalSales.Add(line.LineTotal)
	}
	return s.save(ctx, sessionID, snap)
}

func (s *redisLedgerStore) Reset(ctx context.Context, sessionID string) error {
	l := s.lock(sessionID)
	l.Lock()
	defer l.Unlock()
	// Deleting the key and writing an empty snapshot are equivalent; delete
	// keeps Redis clean for abandoned sessions.
	return s.rdb.Del(ctx, ledgerKey(sessionID)).Err()
}
