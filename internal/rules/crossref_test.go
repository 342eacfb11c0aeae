package rules

import "testing"

func TestCrossReferenceRule(t *testing.T) {
	params := Params{
		Anchor: "8. Consortium/Contractual Arrangements",
		Suffix: ".pdf",
	}

	tests := []struct {
		name      string
		page      string
		wantFails int
	}{
		{
			name:      "attachment named",
			page:      "8. Consortium/Contractual Arrangements\nSubawardAgreement.pdf\n",
			wantFails: 0,
		},
		{
			name:      "following line is not an attachment",
			page:      "8. Consortium/Contractual Arrangements\nSee appendix for details\n",
			wantFails: 1,
		},
		{
			name:      "anchor on final line",
			page:      "other text\n8. Consortium/Contractual Arrangements",
			wantFails: 1,
		},
		{
			name:      "anchor absent",
			page:      "7. Bibliography and References Cited\n",
			wantFails: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := mustRule(newCrossReferenceRule, params)
			findings := rule.Evaluate(material(tt.page))
			if got := failureCount(findings); got != tt.wantFails {
				t.Errorf("failures = %d, want %d: %+v", got, tt.wantFails, findings)
			}
		})
	}
}

func TestCrossReferenceRuleValidation(t *testing.T) {
	if _, err := newCrossReferenceRule(Params{Suffix: ".pdf"}); err == nil {
		t.Error("expected error when anchor is missing")
	}
	if _, err := newCrossReferenceRule(Params{Anchor: "x"}); err == nil {
		t.Error("expected error when suffix is missing")
	}
}
