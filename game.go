package main

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// normalizeGuess trims whitespace and lowercases a guess for comparison.
func normalizeGuess(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// evaluateGuess classifies a candidate against the target word. A candidate
// shorter than the target is Incomplete and does not count as an attempt;
// the length guard runs on the raw input before normalization, matching the
// letter-by-letter input boxes that only submit a full row.
func evaluateGuess(candidate, target string) Outcome {
	if len(candidate) < len(target) {
		return OutcomeIncomplete
	}
	if normalizeGuess(candidate) == normalizeGuess(target) {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

// hintForAttempt picks the advisory hint shown after the given wrong attempt:
// the first two attempts reveal the first and second letter, the third shows
// the example-sentence placeholder, everything after is the generic message.
func hintForAttempt(attempt int, target string) string {
	switch {
	case attempt == 1 && len(target) >= 1:
		return fmt.Sprintf("Hint: the word starts with %q.", string(target[0]))
	case attempt == 2 && len(target) >= 2:
		return fmt.Sprintf("Hint: the second letter is %q.", string(target[1]))
	case attempt == 3:
		return MessageSentenceHint
	default:
		return MessageTryAgain
	}
}

// applyGuess runs the evaluator against the session and mutates it in place.
// Full-length guesses always bump AttemptCount. On the first Correct of the
// day the end time is recorded, the display ticker stops, and the streak
// record is updated; replaying a correct guess later the same day is
// harmless because the streak update is idempotent per calendar day.
func (app *App) applyGuess(ctx context.Context, sessionID string, session *GuessSession, candidate string) Outcome {
	reqID, _ := ctx.Value(requestIDKey).(string)

	outcome := evaluateGuess(candidate, session.TargetWord)
	if outcome == OutcomeIncomplete {
		return outcome
	}

	session.AttemptCount++
	session.LastOutcome = outcome
	session.LastAccessTime = time.Now()

	if outcome == OutcomeCorrect {
		if session.EndTime == nil {
			now := time.Now()
			session.EndTime = &now
			session.stopTicker()
		}
		streak := updateStreak(app.streakStore(sessionID), time.Now())
		if reqID != "" {
			logInfo("[request_id=%v] Session %s solved %q in %d attempt%s, streak %d", reqID, sessionID, session.TargetWord, session.AttemptCount, plural(session.AttemptCount), streak)
		} else {
			logInfo("Session %s solved %q in %d attempt%s, streak %d", sessionID, session.TargetWord, session.AttemptCount, plural(session.AttemptCount), streak)
		}
	}

	return outcome
}

// elapsedSeconds returns how long the session has been running, frozen at
// the end time once the puzzle is solved.
func (session *GuessSession) elapsedSeconds() float64 {
	if session.EndTime != nil {
		return session.EndTime.Sub(session.StartTime).Seconds()
	}
	return time.Since(session.StartTime).Seconds()
}

// resultMessage renders the outcome line shown under the input row.
func (session *GuessSession) resultMessage() string {
	switch session.LastOutcome {
	case OutcomeCorrect:
		return fmt.Sprintf("Correct! You solved it in %.3f seconds.", session.elapsedSeconds())
	case OutcomeIncorrect:
		return hintForAttempt(session.AttemptCount, session.TargetWord)
	case OutcomeIncomplete:
		return MessageKeepTyping
	default:
		return ""
	}
}

// shareText builds the clipboard score string for a solved puzzle.
func (session *GuessSession) shareText() string {
	return fmt.Sprintf("I solved the Reverse Dictionary puzzle in %.3f seconds and %d attempt%s! Can you beat me? %s",
		session.elapsedSeconds(), session.AttemptCount, plural(session.AttemptCount), ProductURL)
}
