// Copyright (c) 2026 Anselm Long. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package autocorrect

import (
	"strings"
	"sync"
)

// smoothingFloor is the probability assigned to words never seen during
// training.
const smoothingFloor = 1e-9

type bigram struct {
	w1, w2 string
}

type trigram struct {
	w1, w2, w3 string
}

// LanguageModel estimates how likely a word is given the two words that
// precede it, from unigram, bigram and trigram counts collected over a
// training corpus. Training is a single-writer phase; once it has completed
// the model is safe for unlimited concurrent readers.
type LanguageModel struct {
	mu       sync.RWMutex
	unigrams map[string]uint64
	bigrams  map[bigram]uint64
	trigrams map[trigram]uint64
	total    uint64
}

// NewLanguageModel creates an empty language model
func NewLanguageModel() *LanguageModel {
	return &LanguageModel{
		unigrams: make(map[string]uint64),
		bigrams:  make(map[bigram]uint64),
		trigrams: make(map[trigram]uint64),
	}
}

// Train adds a corpus of sentences to the model. Sentences are tokenized on
// whitespace and tokens are lowercased. Training is additive: repeated calls
// accumulate counts, suited to incremental corpus growth. To retrain from
// scratch, construct a fresh model instead.
func (m *LanguageModel) Train(sentences []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, sentence := range sentences {
		words := strings.Fields(strings.ToLower(sentence))

		for i, word := range words {
			m.unigrams[word]++
			m.total++

			if i > 0 {
				m.bigrams[bigram{words[i-1], word}]++
			}
			if i > 1 {
				m.trigrams[trigram{words[i-2], words[i-1], word}]++
			}
		}
	}
}

// TotalTokens returns the number of tokens seen during training
func (m *LanguageModel) TotalTokens() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.total
}

// Probability returns P(word | prevPrev, prev), the conditional probability
// of word following the two given words, estimated with three-level backoff:
// the trigram estimate when the trigram was observed, else the bigram
// estimate, else the unconditional unigram estimate, else a fixed smoothing
// constant. The result is always in (0, 1]: each ratio's denominator counts
// every occurrence its numerator counts, by construction.
//
// All three arguments must be lowercase, matching the tokens produced by
// Train; mixed-case arguments are treated as unseen.
func (m *LanguageModel) Probability(word, prev, prevPrev string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if triCount := m.trigrams[trigram{prevPrev, prev, word}]; triCount > 0 {
		if biCount := m.bigrams[bigram{prevPrev, prev}]; biCount > 0 {
			return float64(triCount) / float64(biCount)
		}
	}

	if biCount := m.bigrams[bigram{prev, word}]; biCount > 0 {
		if uniCount := m.unigrams[prev]; uniCount > 0 {
			return float64(biCount) / float64(uniCount)
		}
	}

	if uniCount := m.unigrams[word]; uniCount > 0 {
		return float64(uniCount) / float64(m.total)
	}

	return smoothingFloor
}
