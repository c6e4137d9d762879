package main

// Word pool constraints
const (
	MinWordLength = 4 // shortest word admitted into the daily pool
	MaxWordLength = 8 // longest word admitted into the daily pool
)

// Guess outcome constants
const (
	OutcomeCorrect    = "correct"
	OutcomeIncorrect  = "incorrect"
	OutcomeIncomplete = "incomplete"
)

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome       = "/"
	RoutePuzzle     = "/puzzle"
	RouteGuess      = "/guess"
	RouteNewSession = "/new-session"
	RouteShare      = "/share"
)

// Upstream defaults
const (
	DefaultWordListURL      = "https://raw.githubusercontent.com/first20hours/google-10000-english/refs/heads/master/google-10000-english-usa-no-swears-medium.txt"
	DefaultDictionaryAPIURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"
)

// Sentinel and message constants
const (
	NoDefinitionFound   = "No definition found."
	MessageNoPuzzle     = "No puzzle today! Go touch grass!"
	MessageKeepTyping   = "Keep typing."
	MessageTryAgain     = "Try again."
	MessageSentenceHint = "Hint: picture the word used in a sentence."
	ErrorNotSolvedYet   = "Puzzle not solved yet."
	ErrorGuessEmpty     = "No guess submitted."
)

// Share configuration
const (
	ProductURL = "https://reversedict.app"
)

// Persisted streak record keys, stored as plain strings.
const (
	StreakKeyLastPlayed = "lastPlayed"
	StreakKeyCount      = "streak"
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
