package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
)

// ErrEmptyWordList means the filtered word pool has no entries, so no daily
// word can be selected. Surfaced to the player as "no puzzle today".
var ErrEmptyWordList = errors.New("word list is empty")

// filterWordList turns a newline-delimited raw source into the daily word
// pool: trimmed, lowercased, all-alphabetic words of 4 to 8 letters.
// The filter is deterministic so every client derives the same pool from the
// same source, which the day-seed scheme depends on.
func filterWordList(raw string) []string {
	lines := strings.Split(raw, "\n")
	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		w := strings.ToLower(strings.TrimSpace(line))
		if len(w) < MinWordLength || len(w) > MaxWordLength {
			return "", false
		}
		if !isLowerAlpha(w) {
			return "", false
		}
		return w, true
	})
}

// isLowerAlpha reports whether s consists only of ASCII letters a-z.
func isLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// daySeed returns the milliseconds since epoch at UTC midnight of the given
// day. Every player on the same UTC calendar date computes the same seed.
func daySeed(today time.Time) int64 {
	t := today.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).UnixMilli()
}

// selectDailyWord deterministically picks today's puzzle word: the day seed
// modulo the pool size. Pure function of the date and the word pool.
func selectDailyWord(wordList []string, today time.Time) (string, error) {
	if len(wordList) == 0 {
		return "", ErrEmptyWordList
	}
	index := daySeed(today) % int64(len(wordList))
	return wordList[index], nil
}

// fetchWordList downloads the raw word source and filters it into the pool.
// Called once at startup; the pool is immutable afterwards.
func (app *App) fetchWordList(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, app.WordListURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := app.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("word list fetch: unexpected status " + resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return filterWordList(string(raw)), nil
}
