package profile

import "github.com/grantlint/grantlint/internal/rules"

// Builtin returns the built-in profile registered under name.
func Builtin(name string) (*Profile, bool) {
	switch name {
	case "nih-application":
		return nihApplication(), true
	case "nih-dmsp":
		return nihDMSP(), true
	case "nih-assignment":
		return nihAssignment(), true
	default:
		return nil, false
	}
}

// BuiltinNames lists the built-in profile names.
func BuiltinNames() []string {
	return []string{"nih-application", "nih-assignment", "nih-dmsp"}
}

// Checkbox selection in these forms is rendered as literal glyphs in the
// extracted text: a filled bullet before the selected label and an open
// circle before the other. The blocks below must match the extracted
// text verbatim.
const (
	humanYesBlock = "1. Are Human Subjects Involved?*\n●Yes\n❍No"
	humanNoBlock  = "1. Are Human Subjects Involved?*\n❍Yes\n●No"

	animalYesBlock = "2. Are Vertebrate Animals Used?*\n●Yes\n❍No"
	animalNoBlock  = "2. Are Vertebrate Animals Used?*\n❍Yes\n●No"
)

// Follow-up blocks that must be absent when "No" was selected. The empty
// follow-up template (open circles only) always renders, so the
// disallowed signal is a filled selection glyph inside the follow-up
// questions.
const (
	humanFollowUpBlock  = "If NO, is the IRB review Pending?\n●"
	animalFollowUpBlock = "Is the IACUC review Pending?\n●"
)

func nihApplication() *Profile {
	return &Profile{
		Name: "nih-application",
		Bindings: []Binding{
			{
				Section: "PROJECT SUMMARY",
				Name:    "Project Summary/Abstract",
				Rules: []rules.Config{{
					Rule: rules.RuleThreshold,
					Params: rules.Params{
						Mode:  rules.ModeLines,
						Max:   30,
						Label: "summary lines",
						StripPrefixes: []string{
							"PROJECT SUMMARY:",
							"Contact PD/PI:",
							"Project Summary/Abstract",
							"Page",
						},
					},
				}},
			},
			{
				Section: "PROJECT NARRATIVE",
				Name:    "Project Narrative",
				Rules: []rules.Config{{
					Rule: rules.RuleThreshold,
					Params: rules.Params{
						Mode:  rules.ModeSentences,
						Max:   3,
						Label: "narrative sentences",
						StripPrefixes: []string{
							"Contact PD/PI:",
							"Project Summary/Abstract",
							"Page",
						},
						StripLiterals: []string{"PROJECT NARRATIVE:", "NARRATIVE"},
					},
				}},
			},
			{
				Section: "R&R Other Project Information",
				Rules: []rules.Config{
					{
						Rule: rules.RuleConditional,
						Params: rules.Params{
							Label:          "human subject assurance number",
							YesBlock:       humanYesBlock,
							NoBlock:        humanNoBlock,
							ValueStart:     "Human Subject Assurance Number",
							ValueEnd:       "2. Are Vertebrate Animals Used?*",
							Placeholders:   []string{"None"},
							ForbiddenBlock: humanFollowUpBlock,
						},
					},
					{
						Rule: rules.RuleConditional,
						Params: rules.Params{
							Label:          "animal welfare assurance number",
							YesBlock:       animalYesBlock,
							NoBlock:        animalNoBlock,
							ValueStart:     "Animal Welfare Assurance Number",
							ValueEnd:       "3. Is proprietary/privileged information included in the application?*",
							Placeholders:   []string{"None"},
							ForbiddenBlock: animalFollowUpBlock,
						},
					},
				},
			},
			{
				Section: "Vertebrate Animals",
				Rules: []rules.Config{{
					Rule: rules.RulePresence,
					Params: rules.Params{
						Headers: []string{
							"1. Description of Procedures",
							"2. Justification for the conduct of the studies described and the use of animals",
							"3. Minimization of Pain and Distress",
							"4. Methods of Euthanasia",
						},
					},
				}},
			},
			{
				Section: "Research Strategy",
				Rules: []rules.Config{{
					Rule: rules.RuleSequence,
				}},
			},
			{
				Section: "SBIR STTR Information",
				Rules: []rules.Config{{
					Rule: rules.RuleFormat,
					Params: rules.Params{
						Anchor: "SBC Control ID:*",
						Format: `^\d{9}$`,
						Label:  "SBC Control ID",
					},
				}},
			},
			{
				Section: "Facilities & Other Resources",
				Rules: []rules.Config{{
					Rule: rules.RuleStyledPresence,
					Params: rules.Params{
						Literal: "Biohazard",
						Style:   "bold",
						Message: "Biohazards handling and disposal missing",
					},
				}},
			},
			{
				Section: "PHS Research Plan",
				Rules: []rules.Config{{
					Rule: rules.RuleCrossReference,
					Params: rules.Params{
						Anchor: "8. Consortium/Contractual Arrangements",
						Suffix: ".pdf",
					},
				}},
			},
		},
	}
}

// dmspElements is the required element list of a Data Management and
// Sharing Plan.
var dmspElements = []string{
	"Element 1: Data Type",
	"Element 2: Related Tools, Software and/or Code",
	"Element 3: Standards",
	"Element 4: Data Preservation, Access, and Associated Timelines",
	"Element 5: Access, Distribution, or Reuse Considerations",
	"Element 6: Oversight of Data Management and Sharing",
}

func nihDMSP() *Profile {
	return &Profile{
		Name: "nih-dmsp",
		Bindings: []Binding{
			{
				Name: "Data Management and Sharing Plan",
				Rules: []rules.Config{
					{
						Rule: rules.RuleExactlyOnce,
						Params: rules.Params{
							Items:        dmspElements,
							FamilyPrefix: "Element",
						},
					},
					{
						Rule: rules.RuleSubElements,
						Params: rules.Params{
							Items:     dmspElements,
							Markers:   []string{"A.", "B.", "C."},
							RequireIn: []string{"Element 1:", "Element 4:", "Element 5:"},
							ForbidIn:  []string{"Element 2:", "Element 3:", "Element 6:"},
						},
					},
				},
			},
		},
	}
}

func nihAssignment() *Profile {
	return &Profile{
		Name: "nih-assignment",
		Bindings: []Binding{
			{
				Name: "Assignment Request Form",
				Rules: []rules.Config{
					{
						Rule: rules.RuleThreshold,
						Params: rules.Params{
							Mode:        rules.ModeEntries,
							Min:         2,
							Label:       "awarding components",
							StartMarker: "Suggested Awarding Components:",
							EndMarker:   "Study Section Assignment Suggestions (optional)",
						},
					},
					{
						Rule: rules.RuleThreshold,
						Params: rules.Params{
							Mode:          rules.ModeEntries,
							Min:           1,
							Label:         "study sections",
							StartMarker:   "Suggested Study Sections:",
							EndMarker:     "Rationale for assignment suggestions (optional)",
							StripLiterals: []string{"Each entry is limited to 20 characters"},
						},
					},
				},
			},
		},
	}
}
