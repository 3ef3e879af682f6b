package report

import "strings"

// IsMeaningful reports whether an utterance carries enough content to feed
// into summarization. Short utterances and questions dilute segment
// summaries, so anything under 4 whitespace-delimited tokens or containing a
// "?" is excluded. Entries failing this check are still scored for
// sentiment.
func IsMeaningful(content string) bool {
	return len(strings.Fields(content)) >= 4 && !strings.Contains(content, "?")
}
