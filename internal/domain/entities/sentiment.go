package entities

// SentimentCategory is the three-way bucket an utterance's polarity falls
// into.
type SentimentCategory string

const (
	SentimentPositive SentimentCategory = "Positive"
	SentimentNeutral  SentimentCategory = "Neutral"
	SentimentNegative SentimentCategory = "Negative"
)

// SentimentRecord is the per-utterance result of sentiment analysis.
type SentimentRecord struct {
	Speaker  string
	Content  string
	Category SentimentCategory
}
