package reaction

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validate checks every segment of every family for well-formedness: all four
// numeric fields finite, T0 <= T1, and a non-blank label. Errors identify the
// family, phase pair and row index so a bad transcription is easy to find.
// Validation is unit-agnostic; run it on the raw table at load time.
func Validate(t Table) error {
	for fi := range t.Families {
		f := &t.Families[fi]
		for _, pp := range PairOrder {
			g, ok := f.Groups[pp]
			if !ok {
				continue
			}
			if len(g) == 0 {
				return fmt.Errorf("%s %s: empty group (omit the phase pair instead)", f.Name, pp)
			}
			for i, s := range g {
				if err := checkSegment(s); err != nil {
					return fmt.Errorf("%s %s row %d: %w", f.Name, pp, i, err)
				}
			}
		}
	}
	return nil
}

func checkSegment(s Segment) error {
	for _, v := range []float64{s.T0, s.T1, s.G0, s.G1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite field in segment %+v", s)
		}
	}
	if s.T0 > s.T1 {
		return fmt.Errorf("reversed temperature bounds %.6g > %.6g", s.T0, s.T1)
	}
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("blank label on segment [%.6g %.6g]", s.T0, s.T1)
	}
	return nil
}

// ContinuityIssue reports a reaction whose segments do not meet at a phase
// boundary: the end temperature of one phase regime differs from the start of
// the next.
type ContinuityIssue struct {
	Family string
	Label  string
	TEnd   float64 // end of the earlier segment
	TNext  float64 // start of the later segment
}

func (c ContinuityIssue) String() string {
	return fmt.Sprintf("%s %q: segment ends at %.6g but next starts at %.6g",
		c.Family, c.Label, c.TEnd, c.TNext)
}

// CheckContinuity stitches each reaction's segments back together across phase
// pairs (keyed by equation label) and reports every gap or overlap between
// consecutive segments. The published tables carry a few of these, so callers
// log the issues rather than failing on them; the check exists to catch
// transcription slips, not to reject the reference data.
func CheckContinuity(t Table) []ContinuityIssue {
	var issues []ContinuityIssue
	for fi := range t.Families {
		f := &t.Families[fi]
		byLabel := make(map[string][]Segment)
		var labels []string
		for _, pp := range PairOrder {
			for _, s := range f.Groups[pp] {
				if _, seen := byLabel[s.Label]; !seen {
					labels = append(labels, s.Label)
				}
				byLabel[s.Label] = append(byLabel[s.Label], s)
			}
		}
		sort.Strings(labels)
		for _, label := range labels {
			// Degenerate single-point rows anchor a label, not a range; drop
			// them before sorting so an anchor sharing a T0 with a real
			// segment cannot land between two real segments and hide their
			// boundary.
			var segs []Segment
			for _, s := range byLabel[label] {
				if s.T0 == s.T1 {
					continue
				}
				segs = append(segs, s)
			}
			sort.SliceStable(segs, func(i, j int) bool { return segs[i].T0 < segs[j].T0 })
			for i := 1; i < len(segs); i++ {
				prev, next := segs[i-1], segs[i]
				if math.Abs(prev.T1-next.T0) > 1e-9 {
					issues = append(issues, ContinuityIssue{
						Family: f.Name,
						Label:  label,
						TEnd:   prev.T1,
						TNext:  next.T0,
					})
				}
			}
		}
	}
	return issues
}
