package reaction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// single-family table helper for error-path tests
func oneFamilyTable(name string, pp PhasePair, g Group) Table {
	return Table{Families: []Family{{
		Name:   name,
		Units:  KelvinKcal,
		Groups: map[PhasePair]Group{pp: g},
	}}}
}

func TestValidateBuiltinTable(t *testing.T) {
	require.NoError(t, Validate(Load()))
}

func TestValidateReversedBounds(t *testing.T) {
	ss := PhasePair{Solid, Solid}
	tbl := oneFamilyTable("oxides", ss, Group{
		{0, 932, -266.6, -220.0, "good", 0},
		{900, 100, -1, -2, "bad", 0},
	})
	err := Validate(tbl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oxides solid/solid row 1")
	assert.Contains(t, err.Error(), "reversed temperature bounds")
}

func TestValidateNonFinite(t *testing.T) {
	ss := PhasePair{Solid, Solid}
	for _, bad := range []Segment{
		{math.NaN(), 10, -1, -2, "nan start", 0},
		{0, 10, math.Inf(-1), -2, "inf energy", 0},
	} {
		err := Validate(oneFamilyTable("nitrides", ss, Group{bad}))
		require.Error(t, err, "segment %+v", bad)
		assert.Contains(t, err.Error(), "non-finite")
		assert.Contains(t, err.Error(), "nitrides solid/solid row 0")
	}
}

func TestValidateBlankLabel(t *testing.T) {
	// The upstream dataset marked missing phase pairs with zero-filled rows
	// labelled " "; those must never survive into a loaded table.
	ss := PhasePair{Solid, Solid}
	err := Validate(oneFamilyTable("fluorides", ss, Group{{0, 0, 0, 0, " ", 0}}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blank label")
}

func TestValidateEmptyGroup(t *testing.T) {
	err := Validate(oneFamilyTable("chlorides", PhasePair{Gas, Gas}, Group{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty group")
}

func TestValidateDegeneratePointAllowed(t *testing.T) {
	// T0 == T1 anchors a label at a single point (CO, CO2, H2O, ...).
	ss := PhasePair{Solid, Solid}
	assert.NoError(t, Validate(oneFamilyTable("oxides", ss, Group{{0, 0, -55.6, -55.6, "2C + O₂ = 2CO", 0}})))
}

func TestCheckContinuityBuiltinTable(t *testing.T) {
	// The transcribed tables are stitched so each reaction's phase regimes
	// meet exactly; any issue here is a transcription slip.
	issues := CheckContinuity(Load())
	for _, issue := range issues {
		t.Errorf("unexpected issue: %s", issue)
	}
}

func TestCheckContinuityReportsGap(t *testing.T) {
	tbl := Table{Families: []Family{{
		Name:  "oxides",
		Units: KelvinKcal,
		Groups: map[PhasePair]Group{
			{Solid, Solid}:  {{0, 900, -100, -80, "2M + O₂ = 2MO", 0}},
			{Liquid, Solid}: {{950, 1200, -80, -60, "2M + O₂ = 2MO", 0}},
		},
	}}}
	issues := CheckContinuity(tbl)
	require.Len(t, issues, 1)
	assert.Equal(t, 900.0, issues[0].TEnd)
	assert.Equal(t, 950.0, issues[0].TNext)
	assert.Contains(t, issues[0].String(), "2M + O₂ = 2MO")
}

func TestCheckContinuityAnchorDoesNotMaskGap(t *testing.T) {
	// An anchor row sharing its T0 with a real segment (the HgO shape: a
	// single-point row at 0 next to a liquid/solid regime starting at 0) must
	// not suppress a genuine gap between the real segments.
	tbl := Table{Families: []Family{{
		Name:  "oxides",
		Units: KelvinKcal,
		Groups: map[PhasePair]Group{
			{Solid, Solid}:  {{0, 0, -43.3, -43.3, "2Hg + O₂ = 2HgO", 0}},
			{Liquid, Solid}: {{0, 600, -43.3, -20.0, "2Hg + O₂ = 2HgO", 0}},
			{Gas, Solid}:    {{650, 740, -20.0, -10.0, "2Hg + O₂ = 2HgO", 0}},
		},
	}}}
	issues := CheckContinuity(tbl)
	require.Len(t, issues, 1)
	assert.Equal(t, 600.0, issues[0].TEnd)
	assert.Equal(t, 650.0, issues[0].TNext)
}

func TestCheckContinuitySkipsAnchors(t *testing.T) {
	tbl := Table{Families: []Family{{
		Name:  "oxides",
		Units: KelvinKcal,
		Groups: map[PhasePair]Group{
			{Solid, Solid}: {{0, 0, -55.6, -55.6, "2C + O₂ = 2CO", 0}},
			{Solid, Gas}:   {{0, 3400, -55.6, -191.9, "2C + O₂ = 2CO", 0}},
		},
	}}}
	assert.Empty(t, CheckContinuity(tbl))
}
