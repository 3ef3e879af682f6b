package report

import (
	"fmt"
	"time"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

// GenerateReportRequest is the POST /report body.
type GenerateReportRequest struct {
	MeetingData     *MeetingData `json:"meeting_data" validate:"required"`
	ReportType      string       `json:"report_type" validate:"required"`
	ReportFormat    string       `json:"report_format" validate:"required"`
	IntervalMinutes int          `json:"interval_minutes,omitempty"`
}

// MeetingData carries the meeting metadata and transcript. Field names match
// the capture extension's payload, hence the camelCase keys.
type MeetingData struct {
	MeetingTitle          string            `json:"meetingTitle" validate:"required"`
	MeetingStartTimeStamp string            `json:"meetingStartTimeStamp" validate:"required"`
	MeetingEndTimeStamp   string            `json:"meetingEndTimeStamp" validate:"required"`
	Convenor              string            `json:"convenor" validate:"required"`
	Attendees             []string          `json:"attendees"`
	TranscriptData        []TranscriptEntry `json:"transcriptData"`
	SpeakerDuration       map[string]int    `json:"speakerDuration"`
}

// TranscriptEntry is one utterance in the payload.
type TranscriptEntry struct {
	Name      string `json:"name"`
	Content   string `json:"content"`
	TimeStamp string `json:"timeStamp"`
}

// missingKeys lists required meeting_data keys absent from the payload. A
// present-but-empty array is valid (an empty transcript is a legal meeting);
// only a missing key is an error, so the checks are nil checks.
func (d *MeetingData) missingKeys() []string {
	var missing []string
	if d.Attendees == nil {
		missing = append(missing, "attendees")
	}
	if d.TranscriptData == nil {
		missing = append(missing, "transcriptData")
	}
	if d.SpeakerDuration == nil {
		missing = append(missing, "speakerDuration")
	}
	return missing
}

// ToMeeting validates the remaining keys and parses timestamps into a
// domain Meeting. Timestamps are taken as given; a trailing 'Z' means UTC
// offset zero and no timezone conversion happens.
func (d *MeetingData) ToMeeting() (*entities.Meeting, error) {
	if missing := d.missingKeys(); len(missing) > 0 {
		return nil, fmt.Errorf("missing required keys in meeting_data: %v", missing)
	}

	start, err := time.Parse(time.RFC3339, d.MeetingStartTimeStamp)
	if err != nil {
		return nil, fmt.Errorf("invalid meetingStartTimeStamp: %w", err)
	}
	end, err := time.Parse(time.RFC3339, d.MeetingEndTimeStamp)
	if err != nil {
		return nil, fmt.Errorf("invalid meetingEndTimeStamp: %w", err)
	}

	transcript := make([]entities.TranscriptEntry, 0, len(d.TranscriptData))
	for i, e := range d.TranscriptData {
		ts, err := time.Parse(time.RFC3339, e.TimeStamp)
		if err != nil {
			return nil, fmt.Errorf("invalid timeStamp in transcriptData[%d]: %w", i, err)
		}
		transcript = append(transcript, entities.TranscriptEntry{
			Speaker:   e.Name,
			Content:   e.Content,
			Timestamp: ts,
		})
	}

	return &entities.Meeting{
		Title:            d.MeetingTitle,
		Convenor:         d.Convenor,
		Start:            start,
		End:              end,
		Attendees:        d.Attendees,
		SpeakerDurations: d.SpeakerDuration,
		Transcript:       transcript,
	}, nil
}
