package entities

import (
	"fmt"
	"strings"
)

// ReportKind selects which sections a report contains.
type ReportKind string

const (
	ReportKindNormal         ReportKind = "Normal"
	ReportKindSentiment      ReportKind = "Sentiment"
	ReportKindSpeakerRanking ReportKind = "SpeakerRanking"
	ReportKindInterval       ReportKind = "Interval"
)

// ParseReportKind normalizes a caller-supplied report type. Matching is
// case-insensitive so "normal", "NORMAL" and "speakerranking" all resolve.
func ParseReportKind(s string) (ReportKind, error) {
	for _, k := range []ReportKind{ReportKindNormal, ReportKindSentiment, ReportKindSpeakerRanking, ReportKindInterval} {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown report type %q", s)
}

// OutputFormat selects the document format a report is rendered into.
type OutputFormat string

const (
	FormatPDF  OutputFormat = "PDF"
	FormatDOCX OutputFormat = "DOCX"
)

// ParseOutputFormat normalizes a caller-supplied report format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToUpper(s) {
	case string(FormatPDF):
		return FormatPDF, nil
	case string(FormatDOCX):
		return FormatDOCX, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// MIMEType returns the Content-Type for the rendered document.
func (f OutputFormat) MIMEType() string {
	if f == FormatDOCX {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

// Section is one titled block of a report. Exactly one of Body or ImagePath
// is normally set. A Section with an empty Heading renders as plain body
// text without a heading line.
type Section struct {
	Heading   string
	Level     int // heading level, 2 or 3; 0 means default
	Body      string
	ImagePath string
}

// ReportDocument is the format-agnostic output of a report assembler,
// consumed by exactly one renderer and never reused across formats.
type ReportDocument struct {
	Title    string
	Meta     *MeetingMeta
	Sections []Section
}

// SummaryResult is the outcome of one summarization call. Err is set when
// the gateway failed or refused the input; Text is only meaningful when Err
// is nil. Callers branch on Err instead of sniffing the text for error
// prefixes.
type SummaryResult struct {
	Text string
	Err  error
}

// Ok reports whether the summarization produced usable text.
func (r SummaryResult) Ok() bool { return r.Err == nil }
