package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fileStreakStore persists one session's streak record as a small JSON file
// of plain string keys, the server-side stand-in for browser local storage.
// A single reader/writer per session means plain read-then-write is enough.
type fileStreakStore struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// streakStore returns the streak record store for a session. Invalid session
// IDs and a disabled data directory fall back to a throwaway in-memory store
// so the guess path never fails on persistence.
func (app *App) streakStore(sessionID string) StreakStore {
	if app.StreakDir == "" || sessionID == "" || len(sessionID) < 10 {
		logWarn("Using in-memory streak store for session: %q", sessionID)
		return newMemoryStore()
	}
	return newFileStreakStore(app.StreakDir, sessionID)
}

// newFileStreakStore opens the record file for a session, starting from an
// empty record if the file is missing or corrupted.
func newFileStreakStore(dir, sessionID string) *fileStreakStore {
	s := &fileStreakStore{
		path:   filepath.Join(dir, sessionID+".json"),
		values: make(map[string]string),
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logWarn("Failed to read streak record %s: %v", s.path, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		logWarn("Streak record %s is corrupted, starting fresh: %v", s.path, err)
		s.values = make(map[string]string)
	}
	return s
}

func (s *fileStreakStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set updates the key and rewrites the whole record file.
func (s *fileStreakStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// cleanupOldStreakRecords removes record files not touched within maxAge.
// A record idle that long describes a streak that is already broken, so
// deleting it only reclaims disk space.
func cleanupOldStreakRecords(dir string, maxAge time.Duration) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logWarn("Failed to read streak directory %s: %v", dir, err)
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logWarn("Failed to stat streak record %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().Before(cutoff) {
			recordFile := filepath.Join(dir, entry.Name())
			if err := os.Remove(recordFile); err != nil {
				logWarn("Failed to remove old streak record %s: %v", recordFile, err)
			} else {
				removed++
			}
		}
	}

	if removed > 0 {
		logInfo("Streak cleanup removed %d record%s older than %v", removed, plural(removed), maxAge)
	}
	return nil
}
