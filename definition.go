package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// partOfSpeechPriority is the fixed tier order used to pick the most relevant
// definition when a word has meanings under several parts of speech.
var partOfSpeechPriority = []string{
	"noun",
	"verb",
	"adjective",
	"adverb",
	"pronoun",
	"preposition",
	"conjunction",
	"interjection",
}

// getBestDefinition picks a single definition from the lookup response.
// It scans every entry per priority tier and returns the first definition
// whose meaning matches the tier. If no tier matches, it falls back to the
// first definition in document order. With no definitions anywhere it
// returns the sentinel text.
func getBestDefinition(entries []DictionaryEntry) string {
	for _, pos := range partOfSpeechPriority {
		for _, entry := range entries {
			for _, meaning := range entry.Meanings {
				if meaning.PartOfSpeech == pos && len(meaning.Definitions) > 0 {
					return meaning.Definitions[0].Definition
				}
			}
		}
	}

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			if len(meaning.Definitions) > 0 {
				return meaning.Definitions[0].Definition
			}
		}
	}

	return NoDefinitionFound
}

// getExampleSentence runs the same two-phase scan as getBestDefinition but
// collects the first non-empty example field. Returns "" when the response
// carries no example anywhere.
func getExampleSentence(entries []DictionaryEntry) string {
	for _, pos := range partOfSpeechPriority {
		for _, entry := range entries {
			for _, meaning := range entry.Meanings {
				if meaning.PartOfSpeech != pos {
					continue
				}
				for _, def := range meaning.Definitions {
					if def.Example != "" {
						return def.Example
					}
				}
			}
		}
	}

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				if def.Example != "" {
					return def.Example
				}
			}
		}
	}

	return ""
}

// resolveDefinition fetches dictionary entries for a word and extracts the
// best definition and an optional example. Every failure along the way
// (network, bad status, non-array body) collapses into the sentinel result;
// nothing propagates to the caller. Responses are not cached, so each page
// load re-fetches.
func (app *App) resolveDefinition(ctx context.Context, word string) ResolvedDefinition {
	sentinel := ResolvedDefinition{Text: NoDefinitionFound}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, app.DictionaryAPIURL+strings.ToLower(word), nil)
	if err != nil {
		logWarn("Failed to build dictionary request for %q: %v", word, err)
		return sentinel
	}
	resp, err := app.HTTPClient.Do(req)
	if err != nil {
		logWarn("Dictionary lookup failed for %q: %v", word, err)
		return sentinel
	}
	defer resp.Body.Close()

	// The API answers 404 with a JSON object; any non-array body decodes
	// with an error and falls through to the sentinel.
	var entries []DictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		logWarn("Malformed dictionary response for %q: %v", word, err)
		return sentinel
	}

	return ResolvedDefinition{
		Text:    getBestDefinition(entries),
		Example: getExampleSentence(entries),
	}
}
