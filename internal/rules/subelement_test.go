package rules

import (
	"strings"
	"testing"
)

func dataPlanParams() Params {
	return Params{
		Items: []string{
			"Element 1: Data Type",
			"Element 2: Related Tools, Software and/or Code",
			"Element 3: Standards",
		},
		Markers:   []string{"A.", "B.", "C."},
		RequireIn: []string{"Element 1"},
		ForbidIn:  []string{"Element 2", "Element 3"},
	}
}

func TestSubElementRule(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantFails int
		wantWords []string
	}{
		{
			name: "compliant plan",
			text: "Element 1: Data Type\nA. Types and amount\nB. Scientific data\nC. Metadata\n" +
				"Element 2: Related Tools, Software and/or Code\nprose only\n" +
				"Element 3: Standards\nprose only\n",
			wantFails: 0,
		},
		{
			name: "required sub-item missing",
			text: "Element 1: Data Type\nA. Types and amount\nC. Metadata\n" +
				"Element 2: Related Tools, Software and/or Code\nprose\n" +
				"Element 3: Standards\nprose\n",
			wantFails: 1,
			wantWords: []string{"Element 1", `"B."`, "not found"},
		},
		{
			name: "forbidden sub-item present",
			text: "Element 1: Data Type\nA. x\nB. y\nC. z\n" +
				"Element 2: Related Tools, Software and/or Code\nA. should not be here\n" +
				"Element 3: Standards\nprose\n",
			wantFails: 1,
			wantWords: []string{"Element 2", "not allowed"},
		},
		{
			name: "sub-items in a later block do not satisfy an earlier one",
			text: "Element 1: Data Type\nprose\n" +
				"Element 2: Related Tools, Software and/or Code\nA. a\nB. b\nC. c\n" +
				"Element 3: Standards\nprose\n",
			wantFails: 6, // three missing in element 1, three forbidden in element 2
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := mustRule(newSubElementRule, dataPlanParams())
			findings := rule.Evaluate(material(tt.text))
			if got := failureCount(findings); got != tt.wantFails {
				t.Fatalf("failures = %d, want %d: %+v", got, tt.wantFails, findings)
			}
			for _, word := range tt.wantWords {
				if !strings.Contains(findings[0].Message, word) {
					t.Errorf("message %q missing %q", findings[0].Message, word)
				}
			}
		})
	}
}

func TestSubElementRuleValidation(t *testing.T) {
	if _, err := newSubElementRule(Params{Markers: []string{"A."}}); err == nil {
		t.Error("expected error when items are missing")
	}
	if _, err := newSubElementRule(Params{Items: []string{"Element 1"}}); err == nil {
		t.Error("expected error when markers are missing")
	}
}
