package render

import (
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Project-Sync-Meeting", "Project-Sync-Meeting"},
		{"spaces kept", "Weekly Sync", "Weekly Sync"},
		{"unicode kept", "Cuộc họp đồng bộ dự án", "Cuộc họp đồng bộ dự án"},
		{"path separators", "a/b\\c", "a_b_c"},
		{"parent refs", "../../etc/passwd", "____etc_passwd"},
		{"reserved chars", `re:port*?"<>|`, "re_port______"},
		{"empty", "", "meeting"},
		{"dots collapse", "...", "_"},
		{"whitespace", "   ", "meeting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeTitle(tt.title)
			if got != tt.want {
				t.Fatalf("SanitizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
			if strings.ContainsAny(got, `/\`) {
				t.Fatalf("sanitized title still contains separators: %q", got)
			}
		})
	}
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		kind   entities.ReportKind
		format entities.OutputFormat
		want   string
	}{
		{entities.ReportKindNormal, entities.FormatPDF, "Sync_summary_report.pdf"},
		{entities.ReportKindSentiment, entities.FormatDOCX, "Sync_sentiment_report.docx"},
		{entities.ReportKindSpeakerRanking, entities.FormatPDF, "Sync_speaker_ranking_report.pdf"},
		{entities.ReportKindInterval, entities.FormatDOCX, "Sync_interval_report.docx"},
	}

	for _, tt := range tests {
		if got := OutputFilename("Sync", tt.kind, tt.format); got != tt.want {
			t.Fatalf("OutputFilename(%s, %s) = %q, want %q", tt.kind, tt.format, got, tt.want)
		}
	}
}
