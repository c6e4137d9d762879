package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func entryWith(meanings ...Meaning) DictionaryEntry {
	return DictionaryEntry{Word: "sample", Meanings: meanings}
}

func meaning(pos string, defs ...Definition) Meaning {
	return Meaning{PartOfSpeech: pos, Definitions: defs}
}

// TestGetBestDefinitionPriority checks the noun tier wins even when a verb
// meaning comes first in document order
func TestGetBestDefinitionPriority(t *testing.T) {
	entries := []DictionaryEntry{
		entryWith(
			meaning("verb", Definition{Definition: "to act"}),
			meaning("noun", Definition{Definition: "a thing"}),
		),
	}
	if got := getBestDefinition(entries); got != "a thing" {
		t.Errorf("getBestDefinition() = %q, want noun definition %q", got, "a thing")
	}
}

// TestGetBestDefinitionScansAllEntries checks the tier scan crosses entry
// boundaries before dropping to the next tier
func TestGetBestDefinitionScansAllEntries(t *testing.T) {
	entries := []DictionaryEntry{
		entryWith(meaning("adjective", Definition{Definition: "quick"})),
		entryWith(meaning("noun", Definition{Definition: "a thing"})),
	}
	if got := getBestDefinition(entries); got != "a thing" {
		t.Errorf("getBestDefinition() = %q, want second entry's noun %q", got, "a thing")
	}
}

// TestGetBestDefinitionLowTier checks a lone interjection meaning still wins
func TestGetBestDefinitionLowTier(t *testing.T) {
	entries := []DictionaryEntry{
		entryWith(meaning("interjection", Definition{Definition: "an exclamation"})),
	}
	if got := getBestDefinition(entries); got != "an exclamation" {
		t.Errorf("getBestDefinition() = %q, want %q", got, "an exclamation")
	}
}

// TestGetBestDefinitionFallback checks an unrecognised part of speech falls
// through to document order
func TestGetBestDefinitionFallback(t *testing.T) {
	entries := []DictionaryEntry{
		entryWith(meaning("article", Definition{Definition: "a determiner"})),
	}
	if got := getBestDefinition(entries); got != "a determiner" {
		t.Errorf("getBestDefinition() = %q, want fallback %q", got, "a determiner")
	}
}

// TestGetBestDefinitionSentinel checks empty and definition-free responses
func TestGetBestDefinitionSentinel(t *testing.T) {
	cases := [][]DictionaryEntry{
		nil,
		{},
		{entryWith()},
		{entryWith(meaning("noun"))},
	}
	for i, entries := range cases {
		if got := getBestDefinition(entries); got != NoDefinitionFound {
			t.Errorf("case %d: getBestDefinition() = %q, want sentinel", i, got)
		}
	}
}

// TestGetExampleSentence checks the two-phase example scan
func TestGetExampleSentence(t *testing.T) {
	tests := []struct {
		name    string
		entries []DictionaryEntry
		want    string
	}{
		{
			name:    "no example anywhere",
			entries: []DictionaryEntry{entryWith(meaning("noun", Definition{Definition: "a thing"}))},
			want:    "",
		},
		{
			name: "single example under low-priority tier",
			entries: []DictionaryEntry{
				entryWith(meaning("interjection", Definition{Definition: "wow", Example: "wow, that worked"})),
			},
			want: "wow, that worked",
		},
		{
			name: "noun example beats verb example",
			entries: []DictionaryEntry{
				entryWith(
					meaning("verb", Definition{Definition: "to act", Example: "she acts daily"}),
					meaning("noun", Definition{Definition: "a thing", Example: "what a thing"}),
				),
			},
			want: "what a thing",
		},
		{
			name: "later definition in matching meaning",
			entries: []DictionaryEntry{
				entryWith(meaning("noun",
					Definition{Definition: "a thing"},
					Definition{Definition: "another thing", Example: "the second one"},
				)),
			},
			want: "the second one",
		},
		{
			name: "unknown tier example via fallback",
			entries: []DictionaryEntry{
				entryWith(meaning("article", Definition{Definition: "a determiner", Example: "the cat"})),
			},
			want: "the cat",
		},
	}
	for _, tt := range tests {
		if got := getExampleSentence(tt.entries); got != tt.want {
			t.Errorf("%s: getExampleSentence() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// TestResolveDefinition checks the HTTP wrapper against a fake dictionary API
func TestResolveDefinition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"word":"house","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"a building for living in","example":"my house is small"}]}]}]`))
	}))
	defer srv.Close()

	app := &App{DictionaryAPIURL: srv.URL + "/", HTTPClient: srv.Client()}
	got := app.resolveDefinition(t.Context(), "HOUSE")
	if got.Text != "a building for living in" {
		t.Errorf("resolveDefinition() text = %q", got.Text)
	}
	if got.Example != "my house is small" {
		t.Errorf("resolveDefinition() example = %q", got.Example)
	}
}

// TestResolveDefinitionMalformed checks a non-array body yields the sentinel
func TestResolveDefinitionMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title":"No Definitions Found"}`))
	}))
	defer srv.Close()

	app := &App{DictionaryAPIURL: srv.URL + "/", HTTPClient: srv.Client()}
	got := app.resolveDefinition(t.Context(), "nonsense")
	if got.Text != NoDefinitionFound || got.Example != "" {
		t.Errorf("resolveDefinition() = %+v, want sentinel", got)
	}
}

// TestResolveDefinitionNetworkFailure checks a dead upstream yields the
// sentinel instead of an error
func TestResolveDefinitionNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	app := &App{DictionaryAPIURL: url + "/", HTTPClient: http.DefaultClient}
	got := app.resolveDefinition(t.Context(), "house")
	if got.Text != NoDefinitionFound {
		t.Errorf("resolveDefinition() text = %q, want sentinel", got.Text)
	}
}
