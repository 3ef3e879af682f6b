package report

import (
	"context"
	stdErrors "errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

// stubSummarizer returns a canned summary and records every call.
type stubSummarizer struct {
	calls int
	fail  bool
}

func (s *stubSummarizer) Summarize(_ context.Context, text, _ string) entities.SummaryResult {
	s.calls++
	if s.fail {
		return entities.SummaryResult{Err: stdErrors.New("summarizer unavailable")}
	}
	return entities.SummaryResult{Text: "summary of: " + text}
}

// stubChart writes an empty file, or fails when told to.
type stubChart struct {
	fail  bool
	calls int
}

func (s *stubChart) SentimentPie(_ map[entities.SentimentCategory]int, path string) error {
	s.calls++
	if s.fail {
		return stdErrors.New("chart failed")
	}
	return os.WriteFile(path, []byte("png"), 0o644)
}

func testMeeting() *entities.Meeting {
	base := time.Date(2024, 9, 29, 12, 20, 0, 0, time.UTC)
	return &entities.Meeting{
		Title:    "Project Sync",
		Convenor: "An",
		Start:    base,
		End:      base.Add(30 * time.Minute),
		Attendees: []string{
			"An", "Binh", "Chi",
		},
		SpeakerDurations: map[string]int{"An": 50, "Binh": 120, "Chi": 120},
		Transcript: []entities.TranscriptEntry{
			entry("An", "welcome everyone to the weekly project sync", base),
			entry("Binh", "the ingestion pipeline shipped ahead of schedule this week", base.Add(time.Minute)),
			entry("Chi", "design review feedback has been folded into the spec", base.Add(2*time.Minute)),
			entry("An", "ok", base.Add(3*time.Minute)),
		},
	}
}

func newTestAssembler(sum *stubSummarizer, ch *stubChart, dir string) *Assembler {
	return NewAssembler(sum, NewSentimentAnalyzer(), ch, dir, nil)
}

func TestBuildNormal_Sections(t *testing.T) {
	sum := &stubSummarizer{}
	a := newTestAssembler(sum, &stubChart{}, t.TempDir())

	doc := a.BuildNormal(context.Background(), testMeeting())

	if doc.Title != "Project Sync" {
		t.Fatalf("title = %q", doc.Title)
	}
	if doc.Meta == nil || doc.Meta.Convenor != "An" {
		t.Fatal("missing metadata block")
	}

	// Executive Summary, Key Takeaways, Speaker Summaries header, then one
	// sub-section per speaker with a meaningful entry.
	headings := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		headings = append(headings, s.Heading)
	}
	want := []string{
		"Executive Summary",
		"Key Takeaways",
		"Speaker Summaries",
		"An (50 seconds)",
		"Binh (120 seconds)",
		"Chi (120 seconds)",
	}
	if len(headings) != len(want) {
		t.Fatalf("headings = %v", headings)
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Fatalf("heading[%d] = %q, want %q", i, headings[i], want[i])
		}
	}

	// Whole transcript twice plus one call per speaker.
	if sum.calls != 5 {
		t.Fatalf("expected 5 summarization calls, got %d", sum.calls)
	}
	if !strings.HasPrefix(doc.Sections[0].Body, "summary of: ") {
		t.Fatalf("unexpected executive summary body: %q", doc.Sections[0].Body)
	}
}

func TestBuildNormal_FailSoft(t *testing.T) {
	a := newTestAssembler(&stubSummarizer{fail: true}, &stubChart{}, t.TempDir())

	doc := a.BuildNormal(context.Background(), testMeeting())

	if len(doc.Sections) != 6 {
		t.Fatalf("expected all sections despite failures, got %d", len(doc.Sections))
	}
	if !strings.HasPrefix(doc.Sections[0].Body, "Summary unavailable:") {
		t.Fatalf("expected inline failure text, got %q", doc.Sections[0].Body)
	}
}

func TestBuildSpeakerRanking_Order(t *testing.T) {
	a := newTestAssembler(&stubSummarizer{}, &stubChart{}, t.TempDir())

	doc := a.BuildSpeakerRanking(context.Background(), testMeeting())

	if doc.Title != "Speaker Ranking Report" {
		t.Fatalf("title = %q", doc.Title)
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("expected 3 ranked sections, got %d", len(doc.Sections))
	}

	// Durations are {An: 50, Binh: 120, Chi: 120}: the tie between Binh and
	// Chi keeps first-appearance order, An comes last.
	want := []string{"1. Binh", "2. Chi", "3. An"}
	for i, sec := range doc.Sections {
		if sec.Heading != want[i] {
			t.Fatalf("rank %d heading = %q, want %q", i, sec.Heading, want[i])
		}
	}

	if !strings.Contains(doc.Sections[0].Body, "Speaking Time: 120 seconds") {
		t.Fatalf("missing speaking time annotation: %q", doc.Sections[0].Body)
	}
	if !strings.Contains(doc.Sections[0].Body, "Contribution Summary:") {
		t.Fatalf("missing contribution summary label: %q", doc.Sections[0].Body)
	}
}

func TestBuildInterval_Sections(t *testing.T) {
	sum := &stubSummarizer{}
	a := newTestAssembler(sum, &stubChart{}, t.TempDir())

	doc := a.BuildInterval(context.Background(), testMeeting(), 5)

	if doc.Title != "Interval Report (5-Minute Intervals)" {
		t.Fatalf("title = %q", doc.Title)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 window section, got %d", len(doc.Sections))
	}
	if !strings.HasPrefix(doc.Sections[0].Heading, "Interval: ") {
		t.Fatalf("heading = %q", doc.Sections[0].Heading)
	}
	if sum.calls != 1 {
		t.Fatalf("expected one call per window, got %d", sum.calls)
	}
}

func TestBuildInterval_EmptyTranscript(t *testing.T) {
	sum := &stubSummarizer{}
	a := newTestAssembler(sum, &stubChart{}, t.TempDir())

	m := testMeeting()
	m.Transcript = nil
	doc := a.BuildInterval(context.Background(), m, 5)

	// Exactly the placeholder line, no heading, no summarization call.
	if len(doc.Sections) != 1 {
		t.Fatalf("expected single placeholder section, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Heading != "" {
		t.Fatalf("placeholder must not carry a heading, got %q", doc.Sections[0].Heading)
	}
	if doc.Sections[0].Body != "No conversations to report." {
		t.Fatalf("placeholder body = %q", doc.Sections[0].Body)
	}
	if sum.calls != 0 {
		t.Fatalf("expected no summarization calls, got %d", sum.calls)
	}
}

func TestBuildSentiment_NoSummarizationCalls(t *testing.T) {
	sum := &stubSummarizer{}
	ch := &stubChart{}
	a := newTestAssembler(sum, ch, t.TempDir())

	m := testMeeting()
	doc, chartPath := a.BuildSentiment(m)

	if doc.Title != "Sentiment Analysis Report" {
		t.Fatalf("title = %q", doc.Title)
	}
	if sum.calls != 0 {
		t.Fatalf("sentiment report must not summarize, got %d calls", sum.calls)
	}
	if ch.calls != 1 {
		t.Fatalf("expected one chart render, got %d", ch.calls)
	}
	if chartPath == "" {
		t.Fatal("expected a chart path")
	}
	if _, err := os.Stat(chartPath); err != nil {
		t.Fatalf("chart file missing: %v", err)
	}

	// Image section first, then one section per transcript entry.
	if doc.Sections[0].ImagePath != chartPath {
		t.Fatalf("first section image = %q, want %q", doc.Sections[0].ImagePath, chartPath)
	}
	if len(doc.Sections) != 1+len(m.Transcript) {
		t.Fatalf("expected %d sections, got %d", 1+len(m.Transcript), len(doc.Sections))
	}
	if !strings.HasPrefix(doc.Sections[1].Heading, "An (") {
		t.Fatalf("entry section heading = %q", doc.Sections[1].Heading)
	}
}

func TestBuildSentiment_ChartFailureDegrades(t *testing.T) {
	a := newTestAssembler(&stubSummarizer{}, &stubChart{fail: true}, t.TempDir())

	m := testMeeting()
	doc, chartPath := a.BuildSentiment(m)

	if chartPath != "" {
		t.Fatalf("expected empty chart path on failure, got %q", chartPath)
	}
	// Entry listing still renders without the image.
	if len(doc.Sections) != len(m.Transcript) {
		t.Fatalf("expected %d sections, got %d", len(m.Transcript), len(doc.Sections))
	}
	for _, sec := range doc.Sections {
		if sec.ImagePath != "" {
			t.Fatalf("unexpected image section: %+v", sec)
		}
	}
}
