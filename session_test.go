package main

import (
	"testing"
	"time"
)

// TestCreateGuessSessionSetsStartTime checks the session clock starts on creation
func TestCreateGuessSessionSetsStartTime(t *testing.T) {
	app := newTestApp(t)
	before := time.Now()
	session := app.createGuessSession("test-session-start", "house")
	after := time.Now()
	defer session.stopTicker()

	if session.StartTime.Before(before) || session.StartTime.After(after) {
		t.Errorf("StartTime = %v, want between %v and %v", session.StartTime, before, after)
	}
	if session.EndTime != nil {
		t.Error("EndTime set on a fresh session")
	}
}

// TestGetGuessSessionReturnsCached checks the same session is reused while
// the daily word is unchanged
func TestGetGuessSessionReturnsCached(t *testing.T) {
	app := newTestApp(t)
	sessionID := "test-session-cached"
	created := app.createGuessSession(sessionID, "house")
	defer created.stopTicker()

	got := app.getGuessSession(sessionID, "house")
	if got != created {
		t.Error("getGuessSession returned a new session for the same word")
	}
}

// TestGetGuessSessionRollsOver checks a stale session is replaced when the
// daily word changes
func TestGetGuessSessionRollsOver(t *testing.T) {
	app := newTestApp(t)
	sessionID := "test-session-rollover"
	stale := app.createGuessSession(sessionID, "house")
	stale.AttemptCount = 4

	fresh := app.getGuessSession(sessionID, "mango")
	defer fresh.stopTicker()

	if fresh == stale {
		t.Fatal("session not replaced after daily word rollover")
	}
	if fresh.TargetWord != "mango" || fresh.AttemptCount != 0 {
		t.Errorf("rolled-over session = %+v, want fresh state for new word", fresh)
	}
}

// TestStopTickerIdempotent checks stopping twice does not panic
func TestStopTickerIdempotent(t *testing.T) {
	session := &GuessSession{TargetWord: "house", StartTime: time.Now()}
	session.startTicker()
	session.stopTicker()
	session.stopTicker()
}

// TestDropSessionStopsTicker checks dropped sessions are removed from the map
func TestDropSessionStopsTicker(t *testing.T) {
	app := newTestApp(t)
	sessionID := "test-session-dropped"
	app.createGuessSession(sessionID, "house")

	app.dropSession(sessionID)

	app.SessionMutex.RLock()
	_, exists := app.Sessions[sessionID]
	app.SessionMutex.RUnlock()
	if exists {
		t.Error("session still present after dropSession")
	}
}
