// Copyright (c) 2026 Anselm Long. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package autocorrect provides fast spelling correction with optional
// context-aware ranking of candidates.
package autocorrect

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

const defaultEditDistance = 2

// Spell provides access to functions for spelling correction
type Spell struct {
	// The max number of deletes that will be performed to each word in the
	// dictionary. Must not be changed once entries have been added.
	MaxEditDistance int

	deletes *deletesMap
	words   *wordsMap

	mu    sync.RWMutex
	model *LanguageModel
}

// WordData stores metadata about a word, for example its frequency.
type WordData map[string]interface{}

// Entry represents a word in the dictionary
type Entry struct {
	Word     string
	WordData WordData
}

// GetFrequency returns the frequency of a word, i.e. how many times it's been
// seen
func (w WordData) GetFrequency() int {
	if frequency, exists := w["frequency"]; exists {
		if freq, ok := frequency.(int); ok {
			return freq
		} else if freq, ok := frequency.(float64); ok {
			return int(freq)
		}
	}

	return -1
}

// New creates a new spell instance
func New() *Spell {
	s := new(Spell)
	s.MaxEditDistance = defaultEditDistance
	s.deletes = newDeletesMap()
	s.words = newWordsMap()
	return s
}

// SetLanguageModel attaches a trained language model to the speller. Lookups
// performed with a Context option use the model to rescale candidate scores.
// At most one model can be attached; passing nil detaches it.
func (s *Spell) SetLanguageModel(model *LanguageModel) {
	s.mu.Lock()
	s.model = model
	s.mu.Unlock()
}

func (s *Spell) languageModel() *LanguageModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

// AddEntry adds an entry to the dictionary. If the word already exists its
// data will be overwritten. Returns true if a new word was added, false
// otherwise. Will return an error if there was a problem adding a word, for
// example the dictionary entry must contain word data with a "frequency"
// field.
//
// The caller is expected to have lowercased the word; no normalization is
// performed here.
func (s *Spell) AddEntry(de Entry) (bool, error) {
	word := de.Word
	data := de.WordData

	if frequency := data.GetFrequency(); frequency < 0 {
		return false, errors.New("WordData must contain a non-negative frequency")
	}

	// If the word already exists, just update its data - we don't need to
	// recalculate the deletes as these should never change
	if _, exists := s.words.load(word); exists {
		s.words.store(word, data)
		return false, nil
	}

	s.words.store(word, data)

	// Index the word under its own hash as well as under every delete
	// variant, so lookups reach it both from longer and shorter inputs
	s.deletes.add(getStringHash(word), word)
	for _, variant := range generateDeletes(word, s.MaxEditDistance) {
		s.deletes.add(getStringHash(variant), word)
	}

	return true, nil
}

// GetEntry returns the Entry for word. If a word does not exist, nil will
// be returned
func (s *Spell) GetEntry(word string) *Entry {
	entry, exists := s.words.load(word)
	if exists {
		return &Entry{
			Word:     word,
			WordData: entry,
		}
	}
	return nil
}

// WordCount returns the number of words in the dictionary
func (s *Spell) WordCount() int {
	return s.words.count()
}

// generateDeletes returns every string reachable from word by deleting
// between 1 and maxDist characters, the word itself excluded. The expansion
// is breadth-first with a visited set, so strings reachable through several
// different deletion orders appear once.
func generateDeletes(word string, maxDist int) []string {
	var results []string

	seen := map[string]bool{word: true}

	type pending struct {
		word  string
		depth int
	}
	queue := []pending{{word, 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.depth >= maxDist {
			continue
		}

		wordLen := len([]rune(current.word))
		for i := 0; i < wordLen; i++ {
			child := removeChar(current.word, i)
			if !seen[child] {
				seen[child] = true
				results = append(results, child)
				queue = append(queue, pending{child, current.depth + 1})
			}
		}
	}

	return results
}

// Suggestion is used to represent a suggested word from a lookup.
type Suggestion struct {
	// The distance between this suggestion and the input word
	Distance int

	// Score orders suggestions of equal distance. It is the word frequency,
	// rescaled by the language model when a lookup context is supplied.
	Score float64

	Entry
}

// SuggestionList is a slice of Suggestion
type SuggestionList []Suggestion

// GetWords returns a string slice of words for the suggestions
func (s SuggestionList) GetWords() []string {
	words := make([]string, 0, len(s))
	for _, v := range s {
		words = append(words, v.Entry.Word)
	}
	return words
}

// String returns a string representation of the SuggestionList.
func (s SuggestionList) String() string {
	return "[" + strings.Join(s.GetWords(), ", ") + "]"
}

type lookupParams struct {
	context          []string
	distanceFunction func(string, string, int) int
	editDistance     int
	sortFunc         func(SuggestionList)
}

func (s *Spell) defaultLookupParams() *lookupParams {
	return &lookupParams{
		distanceFunction: DamerauLevenshtein,
		editDistance:     s.MaxEditDistance,
		sortFunc: func(results SuggestionList) {
			sort.Slice(results, func(i, j int) bool {
				s1 := results[i]
				s2 := results[j]

				if s1.Distance != s2.Distance {
					return s1.Distance < s2.Distance
				}

				return s1.Score > s2.Score
			})
		},
	}
}

// LookupOption is a function that controls how a Lookup is performed. An error
// will be returned if the LookupOption is invalid.
type LookupOption func(*lookupParams) error

// Context supplies the two words immediately preceding the input, in the
// order they appear in the text. When a language model is attached,
// candidate scores are multiplied by the model's conditional probability for
// the candidate given this context, favouring candidates that fit the
// surrounding text over candidates that are merely more common globally.
func Context(prevPrev, prev string) LookupOption {
	return func(lp *lookupParams) error {
		lp.context = []string{prevPrev, prev}
		return nil
	}
}

// DistanceFunc accepts a function, f(str1, str2, maxDist), which calculates
// the distance between two strings. It should return -1 if the distance
// between the strings is greater than maxDist.
func DistanceFunc(df func(string, string, int) int) LookupOption {
	return func(lp *lookupParams) error {
		lp.distanceFunction = df
		return nil
	}
}

// EditDistance allows the max edit distance to be set for the Lookup.
// Reducing the edit distance will improve lookup performance. Values larger
// than the speller's MaxEditDistance are capped at it, since the index only
// holds deletes up to that depth.
func EditDistance(dist int) LookupOption {
	return func(lp *lookupParams) error {
		if dist < 0 {
			return errors.New("edit distance must be 0 or higher")
		}

		lp.editDistance = dist
		return nil
	}
}

// SortFunc allows the sorting of the SuggestionList to be configured. By
// default, suggestions will be sorted by their edit distance, then their
// score.
func SortFunc(sf func(SuggestionList)) LookupOption {
	return func(lp *lookupParams) error {
		lp.sortFunc = sf
		return nil
	}
}

func (s *Spell) newSuggestion(input string, dist int) Suggestion {
	wordData, _ := s.words.load(input)

	return Suggestion{
		Distance: dist,
		Score:    float64(wordData.GetFrequency()),
		Entry: Entry{
			Word:     input,
			WordData: wordData,
		},
	}
}

// Lookup takes an input and returns suggestions from the dictionary for that
// word, ordered by edit distance ascending and score descending. The full
// candidate list within the edit distance bound is returned; callers apply
// their own acceptance threshold. An empty list means no word was within
// bound, which is an ordinary negative result rather than an error.
//
// Accepts zero or more LookupOption that can be used to configure how lookup
// occurs.
func (s *Spell) Lookup(input string, opts ...LookupOption) (SuggestionList, error) {
	lookupParams := s.defaultLookupParams()

	for _, opt := range opts {
		if err := opt(lookupParams); err != nil {
			return nil, err
		}
	}

	results := SuggestionList{}

	// Check for an exact match
	if _, exists := s.words.load(input); exists {
		results = append(results, s.newSuggestion(input, 0))
	}

	// An empty input can only match the empty word itself. Probing the
	// index with it would reach every word within the length bound.
	if input == "" {
		s.rescale(results, lookupParams)
		return results, nil
	}

	editDistance := min(lookupParams.editDistance, s.MaxEditDistance)

	// If edit distance is 0, just check if input is in the dictionary
	if editDistance == 0 {
		s.rescale(results, lookupParams)
		return results, nil
	}

	// Keep track of the suggestions we've already considered. The input is
	// seeded so the exact match above is not emitted twice.
	considered := map[string]bool{input: true}

	// The input itself is probed alongside its delete variants: dictionary
	// words reachable from the input by pure insertions share its hash key.
	candidates := append([]string{input}, generateDeletes(input, editDistance)...)

	for _, candidate := range candidates {
		suggestions, exists := s.deletes.load(getStringHash(candidate))
		if !exists {
			continue
		}

		for _, suggestion := range suggestions {
			if !addKey(considered, suggestion) {
				continue
			}

			// Verify with the true distance; hash collisions can place
			// unrelated words in a candidate's bucket
			dist := lookupParams.distanceFunction(input, suggestion, editDistance)
			if dist < 0 || dist > editDistance {
				continue
			}

			if _, exists := s.words.load(suggestion); !exists {
				continue
			}

			results = append(results, s.newSuggestion(suggestion, dist))
		}
	}

	s.rescale(results, lookupParams)
	lookupParams.sortFunc(results)

	return results, nil
}

// rescale multiplies each candidate's score by the attached language model's
// context probability. The integer frequency in the word data is left
// untouched; only the float score used for ranking changes, so a tiny
// probability can never truncate a frequency to zero.
func (s *Spell) rescale(results SuggestionList, lp *lookupParams) {
	if len(lp.context) != 2 {
		return
	}

	model := s.languageModel()
	if model == nil {
		return
	}

	prevPrev, prev := lp.context[0], lp.context[1]
	for i := range results {
		results[i].Score *= model.Probability(results[i].Word, prev, prevPrev)
	}
}

// Correction returns the best correction for word. The second return value
// is false when no suggestion is within bound or the top suggestion is the
// word itself.
func (s *Spell) Correction(word string, opts ...LookupOption) (string, bool) {
	suggestions, err := s.Lookup(word, opts...)
	if err != nil || len(suggestions) == 0 {
		return "", false
	}

	if best := suggestions[0].Word; best != word {
		return best, true
	}

	return "", false
}

type deletesMap struct {
	sync.RWMutex
	data map[uint32][]string
}

func newDeletesMap() *deletesMap {
	return &deletesMap{
		data: make(map[uint32][]string),
	}
}

func (dm *deletesMap) load(key uint32) ([]string, bool) {
	dm.RLock()
	value, exists := dm.data[key]
	dm.RUnlock()
	return value, exists
}

func (dm *deletesMap) add(key uint32, value string) {
	dm.Lock()
	dm.data[key] = append(dm.data[key], value)
	dm.Unlock()
}

type wordsMap struct {
	sync.RWMutex
	data map[string]WordData
}

func newWordsMap() *wordsMap {
	return &wordsMap{
		data: make(map[string]WordData),
	}
}

func (wm *wordsMap) load(key string) (WordData, bool) {
	wm.RLock()
	value, exists := wm.data[key]
	wm.RUnlock()
	return value, exists
}

func (wm *wordsMap) store(key string, value WordData) {
	wm.Lock()
	wm.data[key] = value
	wm.Unlock()
}

func (wm *wordsMap) count() int {
	wm.RLock()
	defer wm.RUnlock()
	return len(wm.data)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func addKey(hash map[string]bool, key string) bool {
	if _, exists := hash[key]; exists {
		return false
	}

	hash[key] = true

	return true
}

// FNV-1a hash implementation
func getStringHash(str string) uint32 {
	var h uint32 = 2166136261
	for _, c := range []byte(str) {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func removeChar(str string, index int) string {
	return substring(str, 0, index) + substring(str, index+1, len([]rune(str)))
}

func substring(s string, start int, end int) string {
	if start >= len([]rune(s)) {
		return ""
	}

	startStrIdx := 0
	i := 0

	for j := range s {
		if i == start {
			startStrIdx = j
		}
		if i == end {
			return s[startStrIdx:j]
		}
		i++
	}
	return s[startStrIdx:]
}
