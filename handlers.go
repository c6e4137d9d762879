package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// homeHandler renders the puzzle page for the current session. The word list
// was loaded at startup; the definition is re-fetched on every page load.
func (app *App) homeHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	word, err := selectDailyWord(app.WordList, time.Now())
	if err != nil {
		logWarn("No daily word available: %v", err)
		app.renderNoPuzzle(c)
		return
	}

	session := app.getGuessSession(sessionID, word)
	def := app.resolveDefinition(ctx, word)
	if def.Text == NoDefinitionFound {
		app.renderNoPuzzle(c)
		return
	}

	streak := currentStreak(app.streakStore(sessionID), time.Now())
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":      "Reverse Dictionary",
		"dateLabel":  time.Now().Format("January 2, 2006"),
		"definition": def.Text,
		"wordLength": len(session.TargetWord),
		"attempts":   session.AttemptCount,
		"result":     session.resultMessage(),
		"solved":     session.EndTime != nil,
		"streak":     streak,
		"streakUnit": "day" + plural(streak),
	})
}

// renderNoPuzzle shows the empty state used for both a filtered-out word
// list and a failed definition lookup.
func (app *App) renderNoPuzzle(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":     "Reverse Dictionary",
		"dateLabel": time.Now().Format("January 2, 2006"),
		"noPuzzle":  true,
		"message":   MessageNoPuzzle,
	})
}

// puzzleHandler reports the current session state as JSON. The page polls it
// once a second to refresh the elapsed-time display.
func (app *App) puzzleHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	word, err := selectDailyWord(app.WordList, time.Now())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"noPuzzle": true, "message": MessageNoPuzzle})
		return
	}

	session := app.getGuessSession(sessionID, word)
	streak := currentStreak(app.streakStore(sessionID), time.Now())
	c.JSON(http.StatusOK, app.puzzleState(session, streak))
}

// guessHandler evaluates a submitted guess and reports the outcome.
func (app *App) guessHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	word, err := selectDailyWord(app.WordList, time.Now())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": MessageNoPuzzle})
		return
	}

	guess := c.PostForm("guess")
	if guess == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorGuessEmpty})
		return
	}

	session := app.getGuessSession(sessionID, word)
	outcome := app.applyGuess(ctx, sessionID, session, guess)

	streak := currentStreak(app.streakStore(sessionID), time.Now())
	state := app.puzzleState(session, streak)
	if outcome == OutcomeIncomplete {
		// Not a full-length guess; report without counting an attempt.
		state["outcome"] = OutcomeIncomplete
		state["message"] = MessageKeepTyping
	}
	c.JSON(http.StatusOK, state)
}

// puzzleState assembles the JSON view of a session shared by the puzzle and
// guess endpoints.
func (app *App) puzzleState(session *GuessSession, streak int) gin.H {
	state := gin.H{
		"wordLength": len(session.TargetWord),
		"attempts":   session.AttemptCount,
		"outcome":    string(session.LastOutcome),
		"message":    session.resultMessage(),
		"elapsed":    session.displaySeconds(),
		"solved":     session.EndTime != nil,
		"streak":     streak,
	}
	if session.EndTime != nil {
		state["seconds"] = session.elapsedSeconds()
		state["share"] = session.shareText()
	}
	return state
}

// shareHandler returns the clipboard score text for a solved puzzle.
func (app *App) shareHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	app.SessionMutex.RLock()
	session, exists := app.Sessions[sessionID]
	app.SessionMutex.RUnlock()
	if !exists || session.EndTime == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorNotSolvedYet})
		return
	}
	c.String(http.StatusOK, session.shareText())
}

// newSessionHandler discards the current session and issues a fresh cookie,
// which also abandons the streak record tied to the old one.
func (app *App) newSessionHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	app.dropSession(sessionID)

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", app.IsProduction, true)
	newSessionID := uuid.NewString()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, newSessionID, int(app.CookieMaxAge.Seconds()), "/", "", app.IsProduction, true)
	logInfo("Reset session %s -> %s", sessionID, newSessionID)

	c.Redirect(http.StatusSeeOther, RouteHome)
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	_, err := selectDailyWord(app.WordList, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"words_loaded": len(app.WordList),
		"has_puzzle":   err == nil,
		"uptime":       formatUptime(uptime),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
