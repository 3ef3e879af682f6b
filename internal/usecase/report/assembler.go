package report

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/pkg/ai"
)

// Segment summarization instructions. The language hint follows the
// transcript: Vietnamese meetings get Vietnamese summaries.
const (
	instructionExecutiveSummary = "Provide a concise executive summary of this meeting transcript. If Vietnamese is used, please write it in Vietnamese."
	instructionKeyTakeaways     = "List the key takeaways from this meeting. Use Vietnamese if appropriate, otherwise use English."
	instructionIntervalSummary  = "Summarize the following conversation snippet. If Vietnamese is used, please write it in Vietnamese."
)

func speakerInstruction(speaker string) string {
	return fmt.Sprintf("Summarize the key points made by %s. If Vietnamese is used, please write it in Vietnamese.", speaker)
}

// ChartRenderer draws the sentiment pie chart to a PNG file.
type ChartRenderer interface {
	SentimentPie(counts map[entities.SentimentCategory]int, path string) error
}

// Assembler builds the format-agnostic section list for each report kind.
// Summarization calls are sequential, one per segment; a failed call
// degrades only its own section.
type Assembler struct {
	summarizer ai.Summarizer
	sentiment  *SentimentAnalyzer
	charts     ChartRenderer
	chartDir   string
	logger     *zap.Logger
}

// NewAssembler constructs a report assembler.
func NewAssembler(summarizer ai.Summarizer, sentiment *SentimentAnalyzer, charts ChartRenderer, chartDir string, logger *zap.Logger) *Assembler {
	return &Assembler{
		summarizer: summarizer,
		sentiment:  sentiment,
		charts:     charts,
		chartDir:   chartDir,
		logger:     logger,
	}
}

// sectionBody turns a summarization outcome into section text. Failures
// surface inline so the rest of the report still renders.
func (a *Assembler) sectionBody(label string, res entities.SummaryResult) string {
	if res.Ok() {
		return res.Text
	}
	if a.logger != nil {
		a.logger.Warn("report.summary.failed",
			zap.String("segment", label),
			zap.Error(res.Err),
		)
	}
	return fmt.Sprintf("Summary unavailable: %v", res.Err)
}

type speakerSummary struct {
	Speaker  string
	Duration int
	Body     string
}

// collectSpeakerSummaries summarizes each speaker's meaningful contributions
// in first-seen order, annotated with spoken duration.
func (a *Assembler) collectSpeakerSummaries(ctx context.Context, m *entities.Meeting) []speakerSummary {
	segments := BySpeaker(m.Transcript)
	summaries := make([]speakerSummary, 0, len(segments))
	for _, seg := range segments {
		res := a.summarizer.Summarize(ctx, seg.Text, speakerInstruction(seg.Speaker))
		summaries = append(summaries, speakerSummary{
			Speaker:  seg.Speaker,
			Duration: m.SpeakerDurations[seg.Speaker],
			Body:     a.sectionBody(seg.Speaker, res),
		})
	}
	return summaries
}

// BuildNormal assembles the standard meeting summary report: metadata,
// executive summary, key takeaways, then one sub-section per speaker.
func (a *Assembler) BuildNormal(ctx context.Context, m *entities.Meeting) entities.ReportDocument {
	full := WholeTranscript(m.Transcript)

	sections := []entities.Section{
		{
			Heading: "Executive Summary",
			Level:   2,
			Body:    a.sectionBody("executive summary", a.summarizer.Summarize(ctx, full, instructionExecutiveSummary)),
		},
		{
			Heading: "Key Takeaways",
			Level:   2,
			Body:    a.sectionBody("key takeaways", a.summarizer.Summarize(ctx, full, instructionKeyTakeaways)),
		},
		{Heading: "Speaker Summaries", Level: 2},
	}

	for _, sp := range a.collectSpeakerSummaries(ctx, m) {
		sections = append(sections, entities.Section{
			Heading: fmt.Sprintf("%s (%d seconds)", sp.Speaker, sp.Duration),
			Level:   3,
			Body:    sp.Body,
		})
	}

	return entities.ReportDocument{
		Title:    m.Title,
		Meta:     m.Meta(),
		Sections: sections,
	}
}

// BuildSentiment assembles the sentiment report: a pie chart of category
// counts followed by every utterance with its category. No summarization
// calls are made. The returned chart path is non-empty when a chart file
// was written; the caller owns its cleanup.
func (a *Assembler) BuildSentiment(m *entities.Meeting) (entities.ReportDocument, string) {
	records, counts := a.sentiment.Analyze(m.Transcript)

	chartPath := filepath.Join(a.chartDir, fmt.Sprintf("sentiment_pie_%s.png", uuid.NewString()))
	if err := a.charts.SentimentPie(counts, chartPath); err != nil {
		if a.logger != nil {
			a.logger.Warn("report.chart.failed", zap.Error(err))
		}
		chartPath = ""
	}

	var sections []entities.Section
	if chartPath != "" {
		sections = append(sections, entities.Section{ImagePath: chartPath})
	}
	for _, r := range records {
		sections = append(sections, entities.Section{
			Heading: fmt.Sprintf("%s (%s)", r.Speaker, r.Category),
			Level:   3,
			Body:    r.Content,
		})
	}

	return entities.ReportDocument{
		Title:    "Sentiment Analysis Report",
		Sections: sections,
	}, chartPath
}

// BuildSpeakerRanking assembles speaker summaries ordered by spoken
// duration, longest first. Ties keep first-appearance order.
func (a *Assembler) BuildSpeakerRanking(ctx context.Context, m *entities.Meeting) entities.ReportDocument {
	summaries := a.collectSpeakerSummaries(ctx, m)
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Duration > summaries[j].Duration
	})

	sections := make([]entities.Section, 0, len(summaries))
	for i, sp := range summaries {
		sections = append(sections, entities.Section{
			Heading: fmt.Sprintf("%d. %s", i+1, sp.Speaker),
			Level:   2,
			Body:    fmt.Sprintf("Speaking Time: %d seconds\n\nContribution Summary:\n%s", sp.Duration, sp.Body),
		})
	}

	return entities.ReportDocument{
		Title:    "Speaker Ranking Report",
		Sections: sections,
	}
}

// BuildInterval assembles per-window summaries in chronological order, or a
// single placeholder line when no window has content.
func (a *Assembler) BuildInterval(ctx context.Context, m *entities.Meeting, intervalMinutes int) entities.ReportDocument {
	doc := entities.ReportDocument{
		Title: fmt.Sprintf("Interval Report (%d-Minute Intervals)", intervalMinutes),
	}

	segments := ByInterval(m.Transcript, intervalMinutes)
	if len(segments) == 0 {
		doc.Sections = []entities.Section{{Body: "No conversations to report."}}
		return doc
	}

	for _, seg := range segments {
		res := a.summarizer.Summarize(ctx, seg.Text, instructionIntervalSummary)
		doc.Sections = append(doc.Sections, entities.Section{
			Heading: fmt.Sprintf("Interval: %s", seg.Label),
			Level:   2,
			Body:    a.sectionBody(seg.Label, res),
		})
	}
	return doc
}
