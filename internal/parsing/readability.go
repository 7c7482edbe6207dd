package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Flesch Reading Ease approximation constants. Scores must stay reproducible
// across releases, so these are not tunable.
const (
	fleschBase          = 206.835
	sentenceLengthCoeff = 1.015
	wordLengthCoeff     = 84.6
	referenceWordLength = 4.7
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	paragraphBreak   = regexp.MustCompile(`\n\s*\n`)
)

// Sentences splits text on sentence-ending punctuation, returning only
// non-empty trimmed segments.
func Sentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// ReadabilityScore computes a Flesch-Reading-Ease-style score in [0,100].
// Text with no words or no sentences scores 0. The formula is deterministic:
//
//	206.835 - 1.015*avgWordsPerSentence - 84.6*(avgCharsPerWord/4.7)
//
// clamped to [0,100].
func ReadabilityScore(text string) float64 {
	words := strings.Fields(text)
	sentences := Sentences(text)
	if len(words) == 0 || len(sentences) == 0 {
		return 0
	}

	totalChars := 0
	for _, word := range words {
		totalChars += len(word)
	}

	avgWordsPerSentence := float64(len(words)) / float64(len(sentences))
	avgCharsPerWord := float64(totalChars) / float64(len(words))

	score := fleschBase - sentenceLengthCoeff*avgWordsPerSentence - wordLengthCoeff*(avgCharsPerWord/referenceWordLength)
	return clamp(score, 0, 100)
}

// ComputeStatistics derives word, sentence, and paragraph counts from raw
// text. Paragraph detection needs the raw (pre-normalization) text since
// normalization collapses blank lines.
func ComputeStatistics(text string) types.Statistics {
	words := strings.Fields(text)
	sentences := Sentences(text)

	paragraphs := 0
	for _, part := range paragraphBreak.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			paragraphs++
		}
	}

	stats := types.Statistics{
		WordCount:      len(words),
		SentenceCount:  len(sentences),
		ParagraphCount: paragraphs,
		CharacterCount: len(text),
	}
	if len(sentences) > 0 {
		stats.AvgWordsPerSentence = float64(len(words)) / float64(len(sentences))
	}
	return stats
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
