// Copyright (c) 2026 Anselm Long. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package autocorrect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedModel() *LanguageModel {
	model := NewLanguageModel()
	model.Train([]string{
		"the quick brown fox",
		"the quick dog",
		"the lazy dog",
		"the fox jumps",
	})
	return model
}

func TestProbabilityTrigram(t *testing.T) {
	model := trainedModel()

	// count(the quick brown) / count(the quick)
	assert.InDelta(t, 0.5, model.Probability("brown", "quick", "the"), 1e-12)

	// count(the lazy dog) / count(the lazy)
	assert.InDelta(t, 1.0, model.Probability("dog", "lazy", "the"), 1e-12)
}

func TestProbabilityBigramBackoff(t *testing.T) {
	model := trainedModel()

	// The trigram (never, the, fox) was not observed, so the estimate backs
	// off to count(the fox) / count(the)
	assert.InDelta(t, 0.25, model.Probability("fox", "the", "never"), 1e-12)
}

func TestProbabilityUnigramBackoff(t *testing.T) {
	model := trainedModel()

	// Neither the trigram nor the bigram was observed: count(dog) / total
	assert.InDelta(t, 2.0/13.0, model.Probability("dog", "never", "seen"), 1e-12)
}

func TestProbabilityUnseenWord(t *testing.T) {
	model := trainedModel()
	assert.Equal(t, smoothingFloor, model.Probability("zebra", "the", "quick"))
}

func TestProbabilityRange(t *testing.T) {
	model := trainedModel()

	words := []string{"the", "quick", "brown", "fox", "dog", "lazy", "jumps", "zebra"}
	for _, word := range words {
		for _, prev := range words {
			for _, prevPrev := range words {
				p := model.Probability(word, prev, prevPrev)
				require.Greater(t, p, 0.0, "P(%s | %s, %s)", word, prevPrev, prev)
				require.LessOrEqual(t, p, 1.0, "P(%s | %s, %s)", word, prevPrev, prev)
			}
		}
	}
}

func TestTrainLowercasesTokens(t *testing.T) {
	model := NewLanguageModel()
	model.Train([]string{"The Quick FOX"})

	assert.InDelta(t, 1.0, model.Probability("fox", "quick", "the"), 1e-12)
}

func TestProbabilityExpectsLowercase(t *testing.T) {
	model := trainedModel()

	// Counts hold lowercased tokens only; mixed-case arguments are unseen
	assert.Equal(t, smoothingFloor, model.Probability("Brown", "quick", "the"))
}

func TestTrainAccumulates(t *testing.T) {
	model := NewLanguageModel()

	model.Train([]string{"the quick fox"})
	require.Equal(t, uint64(3), model.TotalTokens())
	p1 := model.Probability("fox", "the", "never")

	// Additional training shifts estimates rather than replacing them
	model.Train([]string{"the quick dog", "the quick dog"})
	require.Equal(t, uint64(9), model.TotalTokens())
	p2 := model.Probability("fox", "the", "never")

	assert.Less(t, p2, p1)
}

func TestLookupContextReranking(t *testing.T) {
	s := newWithWords(t, map[string]int{
		"fox": 10,
		"for": 1000,
	})

	model := NewLanguageModel()
	model.Train([]string{
		"the quick fox jumps over the lazy dog",
		"the quick fox runs",
	})
	s.SetLanguageModel(model)

	// "foe" is one edit from both candidates; without context the globally
	// more frequent word wins
	plain, err := s.Lookup("foe")
	require.NoError(t, err)
	require.Equal(t, []string{"for", "fox"}, plain.GetWords())

	// "fox" follows "the quick" in the corpus while "for" was never seen,
	// so context flips the order
	contextual, err := s.Lookup("foe", Context("the", "quick"))
	require.NoError(t, err)
	require.Equal(t, []string{"fox", "for"}, contextual.GetWords())

	assert.Equal(t, 1000, contextual[1].WordData.GetFrequency(),
		"base frequency must not be modified by rescaling")

	// The rescaled score of the contextual candidate stays above the score
	// of the out-of-context one
	assert.Greater(t, contextual[0].Score, contextual[1].Score)
}

func TestLookupContextWithoutModel(t *testing.T) {
	s := newWithWords(t, map[string]int{
		"fox": 10,
		"for": 1000,
	})

	// Context without an attached model leaves the frequency ranking alone
	suggestions, err := s.Lookup("foe", Context("the", "quick"))
	require.NoError(t, err)
	assert.Equal(t, []string{"for", "fox"}, suggestions.GetWords())
}
