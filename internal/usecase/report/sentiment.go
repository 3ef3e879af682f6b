package report

import (
	"github.com/jonreiter/govader"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

// Polarity thresholds are fixed, with both boundaries exclusive: exactly 0.2
// or -0.2 is still Neutral.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// SentimentAnalyzer scores utterances with a lexical polarity model and
// buckets them into three categories. Every entry is scored, however short;
// the meaningfulness filter does not apply here.
type SentimentAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewSentimentAnalyzer constructs an analyzer with the default VADER
// lexicon.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// CategorizePolarity maps a polarity score in [-1, 1] to a category.
func CategorizePolarity(polarity float64) entities.SentimentCategory {
	switch {
	case polarity > positiveThreshold:
		return entities.SentimentPositive
	case polarity < negativeThreshold:
		return entities.SentimentNegative
	default:
		return entities.SentimentNeutral
	}
}

// Categorize scores one utterance.
func (a *SentimentAnalyzer) Categorize(text string) entities.SentimentCategory {
	return CategorizePolarity(a.analyzer.PolarityScores(text).Compound)
}

// Analyze scores every transcript entry and aggregates category counts.
func (a *SentimentAnalyzer) Analyze(entries []entities.TranscriptEntry) ([]entities.SentimentRecord, map[entities.SentimentCategory]int) {
	records := make([]entities.SentimentRecord, 0, len(entries))
	counts := map[entities.SentimentCategory]int{
		entities.SentimentPositive: 0,
		entities.SentimentNeutral:  0,
		entities.SentimentNegative: 0,
	}

	for _, e := range entries {
		category := a.Categorize(e.Content)
		counts[category]++
		records = append(records, entities.SentimentRecord{
			Speaker:  e.Speaker,
			Content:  e.Content,
			Category: category,
		})
	}
	return records, counts
}
