package entities

import "time"

// TranscriptEntry represents a single utterance in a meeting transcript.
// Entries keep the order they arrived in; the input is not guaranteed to be
// timestamp-sorted.
type TranscriptEntry struct {
	Speaker   string
	Content   string
	Timestamp time.Time
}

// Meeting holds everything about one meeting for the duration of a single
// report request. It is built from the request payload and discarded after
// the response is sent.
type Meeting struct {
	Title            string
	Convenor         string
	Start            time.Time
	End              time.Time
	Attendees        []string
	SpeakerDurations map[string]int // speaker name -> seconds spoken
	Transcript       []TranscriptEntry
}

// MeetingMeta is the metadata block rendered at the top of a Normal report.
type MeetingMeta struct {
	Convenor  string
	Start     time.Time
	End       time.Time
	Attendees []string
}

// Meta extracts the metadata block for rendering.
func (m *Meeting) Meta() *MeetingMeta {
	return &MeetingMeta{
		Convenor:  m.Convenor,
		Start:     m.Start,
		End:       m.End,
		Attendees: m.Attendees,
	}
}
