// Package reaction holds the thermodynamic line-segment tables behind the
// Ellingham diagrams, plus the validation and unit-normalization passes that
// prepare them for rendering.
//
// The free energy of formation of a binary compound is approximately linear in
// temperature, so each reaction is stored as one straight segment per phase
// regime: a (metal phase, compound phase) pair covering a temperature range.
// A reaction crossing a phase transition contributes one segment to each of
// the phase-pair groups it spans, with matching boundary temperatures.
//
// Data for the oxides, nitrides, fluorides and chlorides is transcribed from
// Reed (1971), Free Energy of Formation of Binary Compounds, MIT Press.
// Carbide data is from Coltters (1985), Thermodynamics of binary metallic
// carbides: A review, Materials Science and Engineering 76, 1-50.
package reaction

// Phase is the physical state of a metal or of its compound over a segment's
// temperature range.
type Phase uint8

const (
	Solid Phase = iota
	Liquid
	Gas
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case Solid:
		return "solid"
	case Liquid:
		return "liquid"
	case Gas:
		return "gas"
	}
	return "unknown"
}

// PhasePair identifies one of the nine metal-phase x compound-phase regimes a
// reaction family may carry data for.
type PhasePair struct {
	Metal    Phase
	Compound Phase
}

func (pp PhasePair) String() string {
	return pp.Metal.String() + "/" + pp.Compound.String()
}

// PairOrder is the fixed draw order over phase pairs: all compound-solid
// regimes first, then compound-liquid, then compound-gas, each sub-ordered by
// metal phase. Rendering iterates groups in this order so that output is
// deterministic.
var PairOrder = []PhasePair{
	{Solid, Solid}, {Liquid, Solid}, {Gas, Solid},
	{Solid, Liquid}, {Liquid, Liquid}, {Gas, Liquid},
	{Solid, Gas}, {Liquid, Gas}, {Gas, Gas},
}

// Units tags which unit system a family's segments are expressed in.
type Units uint8

const (
	// KelvinKcal marks raw reference data: temperatures in Kelvin, free
	// energies in kcal per mole of reactive gas.
	KelvinKcal Units = iota
	// CelsiusKJ marks display-ready data: temperatures in degrees Celsius,
	// free energies in kJ per mole.
	CelsiusKJ
)

// Segment is one straight-line piece of a reaction's free-energy-vs-temperature
// curve. Linear interpolation between the two endpoints is the model's only
// claim about intermediate temperatures. T0 == T1 is a legal degenerate form
// used for reactions whose curve is pinned at a single reference point (the
// renderer draws a dot and the label, but no line).
type Segment struct {
	T0, T1 float64 // temperature bounds
	G0, G1 float64 // free energy of formation at T0 and T1

	// Label is the chemical equation, drawn once per reaction next to the
	// lowest-temperature segment. LabelOffset shifts it vertically (in data
	// units) to keep neighbouring labels from colliding.
	Label       string
	LabelOffset float64
}

// Group is the ordered set of segments for one (family, phase pair). Rows are
// independent reactions; they are not required to be temperature-ordered or
// non-overlapping with respect to each other.
type Group []Segment

// Family is one compound family (oxides, carbides, ...) with up to nine
// phase-pair groups. A phase pair with no experimental data is simply absent
// from Groups.
type Family struct {
	Name   string
	Units  Units
	Groups map[PhasePair]Group
}

// Group returns the segments for pp, or nil when the family has no data for
// that phase pair.
func (f *Family) Group(pp PhasePair) Group { return f.Groups[pp] }

// Table is the full reaction dataset, families in fixed order.
type Table struct {
	Families []Family
}

// Family returns the named family, or nil if the table has none.
func (t *Table) Family(name string) *Family {
	for i := range t.Families {
		if t.Families[i].Name == name {
			return &t.Families[i]
		}
	}
	return nil
}

// Load assembles the built-in reaction table. Temperatures are in the units
// recorded per family: Kelvin for the Reed data, Celsius for the carbides
// (Coltters tabulates them in Celsius and kJ directly). Call Validate before
// use and Normalize before rendering.
func Load() Table {
	return Table{Families: []Family{
		oxides(),
		carbides(),
		nitrides(),
		fluorides(),
		chlorides(),
	}}
}
