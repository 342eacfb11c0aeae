// Package report runs validation profiles against documents and
// assembles the findings into ordered reports.
package report

import (
	"fmt"

	"github.com/grantlint/grantlint/internal/document"
	"github.com/grantlint/grantlint/internal/extract"
	"github.com/grantlint/grantlint/internal/profile"
	"github.com/grantlint/grantlint/internal/rules"
	"github.com/grantlint/grantlint/internal/section"
)

// Report is the ordered outcome of one validation run. Findings appear
// in profile declaration order; the report is created fresh per run and
// never persisted.
type Report struct {
	Document string          `json:"document"`
	Profile  string          `json:"profile"`
	Findings []rules.Finding `json:"findings"`
}

// Failures returns the failing findings in report order.
func (r *Report) Failures() []rules.Finding {
	var failures []rules.Finding
	for _, f := range r.Findings {
		if f.Severity == rules.SeverityFail {
			failures = append(failures, f)
		}
	}
	return failures
}

// HasFailures reports whether any finding failed.
func (r *Report) HasFailures() bool {
	return len(r.Failures()) > 0
}

// Runner evaluates validation profiles against documents. A Runner holds
// no per-run state; a single Runner may serve many sequential runs.
type Runner struct {
	includePasses bool
}

// NewRunner creates a runner. When includePasses is set, rules that
// produce no findings contribute an explicit pass finding instead of
// staying silent.
func NewRunner(includePasses bool) *Runner {
	return &Runner{includePasses: includePasses}
}

// RunProfile evaluates every binding of the profile against the
// document. Bindings resolve independently: a section that is not found
// yields one informational finding and the remaining bindings still
// run. Only document adapter failures abort the run.
func (r *Runner) RunProfile(doc document.Document, prof *profile.Profile) (*Report, error) {
	return r.RunProfileNamed(doc, prof, "")
}

// RunProfileNamed is RunProfile with an explicit document name recorded
// in the report.
func (r *Runner) RunProfileNamed(doc document.Document, prof *profile.Profile, docName string) (*Report, error) {
	report := &Report{Document: docName, Profile: prof.Name}

	for _, binding := range prof.Bindings {
		findings, err := r.runBinding(doc, binding)
		if err != nil {
			return nil, err
		}
		report.Findings = append(report.Findings, findings...)
	}

	return report, nil
}

func (r *Runner) runBinding(doc document.Document, binding profile.Binding) ([]rules.Finding, error) {
	name := binding.DisplayName()

	material, notFound, err := r.resolveMaterial(doc, binding)
	if err != nil {
		return nil, err
	}

	var findings []rules.Finding
	if notFound != nil {
		return []rules.Finding{*notFound}, nil
	}
	if binding.Section != "" && section.CountMatches(doc.Outline(), binding.Section) > 1 {
		findings = append(findings, rules.Warn("section-locator", name, material.Range.Start,
			fmt.Sprintf("title %q matches multiple outline entries; using the first", binding.Section)))
	}

	for _, cfg := range binding.Rules {
		findings = append(findings, r.evaluate(cfg, material)...)
	}
	return findings, nil
}

// resolveMaterial extracts the binding's material. The second return is
// non-nil when the section was not found, which is a non-fatal outcome
// recorded as a single informational finding.
func (r *Runner) resolveMaterial(doc document.Document, binding profile.Binding) (rules.Material, *rules.Finding, error) {
	name := binding.DisplayName()

	if binding.Section == "" {
		content, err := extract.WholeDocument(doc)
		if err != nil {
			return rules.Material{}, nil, err
		}
		return rules.Material{
			Section: name,
			Range:   section.Range{Start: 1, End: doc.PageCount() + 1},
			Content: content,
			Doc:     doc,
		}, nil, nil
	}

	res := section.Resolve(doc.Outline(), binding.Section, doc.PageCount())
	if !res.Found {
		finding := rules.Warn("section-locator", name, 0,
			fmt.Sprintf("section %q not found in document outline", binding.Section))
		return rules.Material{}, &finding, nil
	}

	content, err := extract.Section(doc, res.Range)
	if err != nil {
		return rules.Material{}, nil, err
	}
	return rules.Material{
		Section: name,
		Range:   res.Range,
		Content: content,
		Doc:     doc,
	}, nil, nil
}

// evaluate builds and runs one rule, recovering configuration errors and
// internal precondition panics into failing findings so a single broken
// rule never takes down the run.
func (r *Runner) evaluate(cfg rules.Config, material rules.Material) (findings []rules.Finding) {
	defer func() {
		if rec := recover(); rec != nil {
			findings = []rules.Finding{rules.Fail(cfg.Rule, material.Section, 0,
				fmt.Sprintf("rule evaluation failed: %v", rec))}
		}
	}()

	rule, err := rules.New(cfg)
	if err != nil {
		return []rules.Finding{rules.Fail(cfg.Rule, material.Section, 0,
			fmt.Sprintf("invalid rule configuration: %v", err))}
	}

	findings = rule.Evaluate(material)
	if len(findings) == 0 && r.includePasses {
		findings = []rules.Finding{rules.Pass(rule.Name(), material.Section)}
	}
	return findings
}
