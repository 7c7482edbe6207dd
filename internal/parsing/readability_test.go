package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadabilityScore_EmptyText(t *testing.T) {
	assert.Equal(t, 0.0, ReadabilityScore(""))
	assert.Equal(t, 0.0, ReadabilityScore("   \n\t "))
}

func TestReadabilityScore_PunctuationOnly(t *testing.T) {
	// One token but zero sentences after splitting on punctuation runs
	assert.Equal(t, 0.0, ReadabilityScore("...!!!"))
}

func TestReadabilityScore_ShortSentencesClampHigh(t *testing.T) {
	// 5 words over 2 sentences with short words pushes the raw score
	// above 100; it must clamp
	assert.Equal(t, 100.0, ReadabilityScore("Led a team. Delivered project."))
}

func TestReadabilityScore_LongWordsClampLow(t *testing.T) {
	// Average word length of 15+ chars drives the raw score negative
	assert.Equal(t, 0.0, ReadabilityScore("extraordinarily incomprehensible"))
}

func TestReadabilityScore_MidRange(t *testing.T) {
	// One sentence, 10 words of 9 chars each:
	// 206.835 - 1.015*10 - 84.6*(9/4.7) = 34.685
	text := strings.TrimSpace(strings.Repeat("abcdefghi ", 10))
	assert.InDelta(t, 34.685, ReadabilityScore(text), 0.001)
}

func TestReadabilityScore_Deterministic(t *testing.T) {
	text := "Developed backend services. Managed a team of five engineers. Improved deployment times."
	first := ReadabilityScore(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ReadabilityScore(text))
	}
}

func TestSentences(t *testing.T) {
	sentences := Sentences("First sentence. Second one! Third? ")
	assert.Equal(t, []string{"First sentence", "Second one", "Third"}, sentences)
}

func TestSentences_NoTerminalPunctuation(t *testing.T) {
	assert.Equal(t, []string{"no punctuation here"}, Sentences("no punctuation here"))
}

func TestComputeStatistics(t *testing.T) {
	text := "First paragraph with words. Still first.\n\nSecond paragraph here."
	stats := ComputeStatistics(text)

	assert.Equal(t, 9, stats.WordCount)
	assert.Equal(t, 3, stats.SentenceCount)
	assert.Equal(t, 2, stats.ParagraphCount)
	assert.Equal(t, len(text), stats.CharacterCount)
	assert.InDelta(t, 3.0, stats.AvgWordsPerSentence, 0.001)
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics("")
	assert.Equal(t, 0, stats.WordCount)
	assert.Equal(t, 0, stats.SentenceCount)
	assert.Equal(t, 0, stats.ParagraphCount)
	assert.Equal(t, 0.0, stats.AvgWordsPerSentence)
}
