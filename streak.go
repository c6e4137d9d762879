package main

import (
	"strconv"
	"sync"
	"time"
)

// StreakStore is the injected key-value store backing the streak record.
// Production uses the per-session file store; tests substitute memoryStore.
type StreakStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// localDateKey formats a device-local calendar date. Streak bookkeeping runs
// on local dates while word selection runs on UTC; the asymmetry is kept on
// purpose to match the product's observed behaviour.
func localDateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// updateStreak applies the day-over-day streak rule and persists the result.
// Solving on consecutive local days extends the streak, re-solving the same
// day leaves it unchanged, and any gap resets it to 1. Returns the new count.
func updateStreak(store StreakStore, now time.Time) int {
	today := localDateKey(now)
	yesterday := localDateKey(now.AddDate(0, 0, -1))

	lastPlayed, _ := store.Get(StreakKeyLastPlayed)
	stored := 0
	if v, ok := store.Get(StreakKeyCount); ok {
		if n, err := strconv.Atoi(v); err == nil {
			stored = n
		}
	}

	var newStreak int
	switch lastPlayed {
	case yesterday:
		newStreak = stored + 1
	case today:
		newStreak = stored // already credited today
	default:
		newStreak = 1
	}
	if newStreak < 1 {
		newStreak = 1
	}

	if err := store.Set(StreakKeyLastPlayed, today); err != nil {
		logWarn("Failed to persist last-played date: %v", err)
	}
	if err := store.Set(StreakKeyCount, strconv.Itoa(newStreak)); err != nil {
		logWarn("Failed to persist streak count: %v", err)
	}
	return newStreak
}

// currentStreak reads the streak count without mutating the record, for the
// page header. A record last touched before yesterday reads as 0: the run
// is already broken even though the stored count has not been reset yet.
func currentStreak(store StreakStore, now time.Time) int {
	lastPlayed, ok := store.Get(StreakKeyLastPlayed)
	if !ok {
		return 0
	}
	if lastPlayed != localDateKey(now) && lastPlayed != localDateKey(now.AddDate(0, 0, -1)) {
		return 0
	}
	v, ok := store.Get(StreakKeyCount)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// memoryStore is an in-memory StreakStore, used in tests and as the fallback
// when the data directory is not writable.
type memoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *memoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
