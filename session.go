package main

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateSession retrieves the session ID from the cookie or issues a new
// one. The cookie is long-lived because the streak record hangs off it.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || len(sessionID) < 10 {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", app.IsProduction, true)
		logInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

// getGuessSession returns the live GuessSession for a session ID, creating
// one for today's word when none exists. A session left over from a previous
// UTC day is replaced, so the puzzle rolls over without a restart.
func (app *App) getGuessSession(sessionID, targetWord string) *GuessSession {
	app.SessionMutex.RLock()
	session, exists := app.Sessions[sessionID]
	app.SessionMutex.RUnlock()
	if exists && session.TargetWord == targetWord {
		app.SessionMutex.Lock()
		session.LastAccessTime = time.Now()
		app.SessionMutex.Unlock()
		return session
	}
	if exists {
		logInfo("Daily word rolled over for session %s, starting fresh puzzle", sessionID)
		session.stopTicker()
	}
	return app.createGuessSession(sessionID, targetWord)
}

// createGuessSession starts a fresh session for today's word, records the
// start time, and kicks off the elapsed-time ticker.
func (app *App) createGuessSession(sessionID, targetWord string) *GuessSession {
	session := &GuessSession{
		TargetWord:     targetWord,
		StartTime:      time.Now(),
		LastAccessTime: time.Now(),
	}
	session.startTicker()

	app.SessionMutex.Lock()
	app.Sessions[sessionID] = session
	app.SessionMutex.Unlock()
	logInfo("New puzzle session %s started with word: %s", sessionID, targetWord)
	return session
}

// dropSession removes a session and stops its ticker.
func (app *App) dropSession(sessionID string) {
	app.SessionMutex.Lock()
	session, exists := app.Sessions[sessionID]
	delete(app.Sessions, sessionID)
	app.SessionMutex.Unlock()
	if exists {
		session.stopTicker()
	}
}

// startTicker begins the one-second elapsed-time tick. The tick only feeds
// the display; correctness never depends on it.
func (session *GuessSession) startTicker() {
	if session.ticker != nil {
		return
	}
	session.ticker = time.NewTicker(time.Second)
	session.tickerDone = make(chan struct{})
	go func() {
		for {
			select {
			case <-session.tickerDone:
				return
			case <-session.ticker.C:
				atomic.StoreInt64(&session.elapsed, int64(time.Since(session.StartTime).Seconds()))
			}
		}
	}()
}

// stopTicker cancels the tick permanently. Safe to call more than once.
func (session *GuessSession) stopTicker() {
	if session.ticker == nil {
		return
	}
	session.stopOnce.Do(func() {
		session.ticker.Stop()
		close(session.tickerDone)
	})
}

// displaySeconds returns the last elapsed value published by the ticker.
func (session *GuessSession) displaySeconds() int64 {
	return atomic.LoadInt64(&session.elapsed)
}
