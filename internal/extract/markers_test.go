package extract

import "testing"

func TestBetweenMarkers(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start string
		end   string
		want  string
	}{
		{
			name:  "value between markers",
			text:  "Human Subject Assurance Number\nFWA00001234\n2. Are Vertebrate Animals Used?*",
			start: "Human Subject Assurance Number",
			end:   "2. Are Vertebrate Animals Used?*",
			want:  "FWA00001234",
		},
		{
			name:  "missing start marker",
			text:  "some text\nend marker",
			start: "start marker",
			end:   "end marker",
			want:  "",
		},
		{
			name:  "missing end marker",
			text:  "start marker\nsome text",
			start: "start marker",
			end:   "end marker",
			want:  "",
		},
		{
			name:  "end marker only counted after start",
			text:  "end marker\nstart marker\nvalue\nend marker",
			start: "start marker",
			end:   "end marker",
			want:  "value",
		},
		{
			name:  "adjacent markers yield empty value",
			text:  "start markerend marker",
			start: "start marker",
			end:   "end marker",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BetweenMarkers(tt.text, tt.start, tt.end); got != tt.want {
				t.Errorf("BetweenMarkers() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineAfter(t *testing.T) {
	text := "8. Consortium/Contractual Arrangements\nSubawardBudget.pdf\ntrailing"

	tests := []struct {
		name   string
		anchor string
		want   string
	}{
		{name: "line after anchor", anchor: "Consortium/Contractual", want: "SubawardBudget.pdf"},
		{name: "absent anchor", anchor: "Budget Justification", want: ""},
		{name: "anchor on final line", anchor: "trailing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineAfter(text, tt.anchor); got != tt.want {
				t.Errorf("LineAfter(%q) = %q, want %q", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestCountNonEmptyLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "mixed lines", text: "NCI\n\n  \nNIGMS\n", want: 2},
		{name: "empty text", text: "", want: 0},
		{name: "whitespace only", text: " \n\t\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountNonEmptyLines(tt.text); got != tt.want {
				t.Errorf("CountNonEmptyLines() = %d, want %d", got, tt.want)
			}
		})
	}
}
