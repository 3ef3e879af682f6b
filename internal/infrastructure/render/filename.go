package render

import (
	"strings"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

// reservedFilenameChars covers path separators plus the characters Windows
// refuses in file names.
const reservedFilenameChars = `/\:*?"<>|`

// SanitizeTitle reduces an untrusted meeting title to a safe file basename.
// Path separators and reserved characters become underscores, parent
// references are neutralized and an empty result falls back to "meeting".
func SanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	title = strings.ReplaceAll(title, "..", "_")

	var b strings.Builder
	for _, r := range title {
		if r < 0x20 || strings.ContainsRune(reservedFilenameChars, r) {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}

	out := strings.Trim(b.String(), ". ")
	if out == "" {
		return "meeting"
	}
	return out
}

// OutputFilename builds the deterministic report file name for a meeting
// title, report kind and output format.
func OutputFilename(title string, kind entities.ReportKind, format entities.OutputFormat) string {
	var suffix string
	switch kind {
	case entities.ReportKindSentiment:
		suffix = "sentiment_report"
	case entities.ReportKindSpeakerRanking:
		suffix = "speaker_ranking_report"
	case entities.ReportKindInterval:
		suffix = "interval_report"
	default:
		suffix = "summary_report"
	}

	return SanitizeTitle(title) + "_" + suffix + "." + strings.ToLower(string(format))
}
