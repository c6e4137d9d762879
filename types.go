package main

import (
	"sync"
	"time"
)

// DictionaryEntry is one lookup result from the dictionary API.
// The API returns an array of these, one per etymology.
type DictionaryEntry struct {
	Word     string    `json:"word"`
	Meanings []Meaning `json:"meanings"`
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single definition with an optional example sentence.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// ResolvedDefinition is the distilled lookup result shown to the player.
// Example is empty when the response carried no example sentence anywhere.
type ResolvedDefinition struct {
	Text    string `json:"text"`
	Example string `json:"example,omitempty"`
}

// Outcome classifies a submitted guess.
type Outcome string

// GuessSession tracks one player's progress on today's puzzle.
// It lives in memory only; the streak record is what gets persisted.
type GuessSession struct {
	TargetWord     string
	StartTime      time.Time
	EndTime        *time.Time // nil until the puzzle is solved
	AttemptCount   int
	LastOutcome    Outcome
	LastAccessTime time.Time

	ticker     *time.Ticker
	tickerDone chan struct{}
	stopOnce   sync.Once
	elapsed    int64 // whole seconds, published by the ticker
}
