package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

// intervalLabelFormat renders window bounds like "12:20 PM", in the clock
// of the original timestamps. No timezone conversion happens anywhere.
const intervalLabelFormat = "03:04 PM"

// Segment is a named group of transcript content fed as one unit into
// summarization.
type Segment struct {
	Label string
	Text  string
}

// SpeakerSegment is one speaker's combined meaningful contributions.
type SpeakerSegment struct {
	Speaker string
	Text    string
}

// WholeTranscript concatenates all meaningful entries as "speaker: content",
// space-joined, in original order.
func WholeTranscript(entries []entities.TranscriptEntry) string {
	var parts []string
	for _, e := range entries {
		if IsMeaningful(e.Content) {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Speaker, e.Content))
		}
	}
	return strings.Join(parts, " ")
}

// BySpeaker groups meaningful entries by speaker name. Speakers appear in
// first-seen order and each speaker's entries keep their original order.
func BySpeaker(entries []entities.TranscriptEntry) []SpeakerSegment {
	var order []string
	contributions := make(map[string][]string)

	for _, e := range entries {
		if !IsMeaningful(e.Content) {
			continue
		}
		if _, seen := contributions[e.Speaker]; !seen {
			order = append(order, e.Speaker)
		}
		contributions[e.Speaker] = append(contributions[e.Speaker], e.Content)
	}

	segments := make([]SpeakerSegment, 0, len(order))
	for _, speaker := range order {
		segments = append(segments, SpeakerSegment{
			Speaker: speaker,
			Text:    strings.Join(contributions[speaker], " "),
		})
	}
	return segments
}

// ByInterval slices the transcript into fixed windows of the given size,
// starting at the first entry's timestamp. Windows are half-open
// [start, start+delta); windows with no entries are dropped. Entries are
// sorted by timestamp first (stable) so out-of-order input does not lose
// utterances to the windowing scan.
func ByInterval(entries []entities.TranscriptEntry, intervalMinutes int) []Segment {
	if len(entries) == 0 || intervalMinutes < 1 {
		return nil
	}

	sorted := make([]entities.TranscriptEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	delta := time.Duration(intervalMinutes) * time.Minute
	last := sorted[len(sorted)-1].Timestamp

	var segments []Segment
	for start := sorted[0].Timestamp; !start.After(last); start = start.Add(delta) {
		end := start.Add(delta)

		var parts []string
		for _, e := range sorted {
			if !e.Timestamp.Before(start) && e.Timestamp.Before(end) {
				parts = append(parts, fmt.Sprintf("%s: %s", e.Speaker, e.Content))
			}
		}
		if len(parts) == 0 {
			continue
		}

		segments = append(segments, Segment{
			Label: fmt.Sprintf("%s - %s", start.Format(intervalLabelFormat), end.Format(intervalLabelFormat)),
			Text:  strings.Join(parts, " "),
		})
	}
	return segments
}
