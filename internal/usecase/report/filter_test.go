package report

import "testing"

func TestIsMeaningful(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"three words", "we are done", false},
		{"exactly four words", "let us begin now", true},
		{"four words with question mark", "shall we begin now?", false},
		{"long question", "what do you all think about the new release schedule?", false},
		{"empty", "", false},
		{"whitespace only", "   \t ", false},
		{"question mark mid sentence", "the ? key is broken on my laptop today", false},
		{"long statement", "the deployment pipeline finished without any errors last night", true},
		{"extra whitespace still four tokens", "  one   two  three four  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMeaningful(tt.content); got != tt.want {
				t.Fatalf("IsMeaningful(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
