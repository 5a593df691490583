// Package report renders fact-graph analyses as explainable result
// cards. Presentation only; no trust arithmetic happens here.
package report

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/factgraph/pkg/factgraph/graph"
)

// Builder constructs analysis reports with unique IDs.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a report builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report is a rendered analysis for one candidate fact.
type Report struct {
	ID        string
	Statement string
	Trust     float64
	Sections  []Section
}

// Section groups one kind of evidence.
type Section struct {
	Title string
	Lines []string
}

// Build creates a report from a candidate fact, its trust score, and
// its relationship analysis.
func (b *Builder) Build(category1, value1, category2, value2 string, trust float64, a graph.Analysis) Report {
	r := Report{
		ID:        ulid.MustNew(ulid.Now(), b.entropy).String(),
		Statement: statement(category1, value1, category2, value2),
		Trust:     trust,
	}

	direct := Section{Title: "Direct Contradictions"}
	for _, dc := range a.DirectContradictions {
		direct.Lines = append(direct.Lines,
			fmt.Sprintf("- %s  Trust: %.2f", factLine(dc.Fact), dc.Trust))
	}
	r.Sections = append(r.Sections, direct)

	support := Section{Title: "Supporting Paths"}
	for _, sp := range a.SupportingPaths {
		support.Lines = append(support.Lines, pathLines(sp.Path)...)
		support.Lines = append(support.Lines, fmt.Sprintf("  Path Trust: %.2f", sp.Trust))
	}
	r.Sections = append(r.Sections, support)

	indirect := Section{Title: "Indirect Contradictions"}
	for _, ic := range a.IndirectContradictions {
		indirect.Lines = append(indirect.Lines, pathLines(ic.Path)...)
		indirect.Lines = append(indirect.Lines, fmt.Sprintf("  Contradiction Impact: %.2f", ic.Trust))
	}
	r.Sections = append(r.Sections, indirect)

	return r
}

// Render returns the printable form of the report.
func (r Report) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analysis for '%s'  [%s]\n", r.Statement, r.ID)
	fmt.Fprintf(&sb, "Trust score: %.2f\n", r.Trust)
	for _, sec := range r.Sections {
		fmt.Fprintf(&sb, "\n%s:\n", sec.Title)
		if len(sec.Lines) == 0 {
			sb.WriteString("  (none)\n")
			continue
		}
		for _, line := range sec.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func statement(category1, value1, category2, value2 string) string {
	return fmt.Sprintf("%s (%s) - %s (%s)", value1, category1, value2, category2)
}

func factLine(f graph.Fact) string {
	return statement(f.Category1, f.Value1, f.Category2, f.Value2)
}

func pathLines(path []graph.Fact) []string {
	lines := make([]string, len(path))
	for i, f := range path {
		lines[i] = "- " + factLine(f)
	}
	return lines
}
