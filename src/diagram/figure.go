// Package diagram renders the reaction tables as a two-panel Ellingham
// figure and exports it. Panel one carries the oxides; panel two overlays the
// carbides, nitrides, fluorides and chlorides. All plotting is done with
// gonum/plot; the vg backends write the same draw pass to EPS, PNG and PDF.
package diagram

import (
	"fmt"

	"gonum.org/v1/plot"

	"github.com/ltegg/ellingham/src/reaction"
)

const (
	yLabelOxides = "Standard free energy of formation (ΔG°f) kJ/mol O₂"
	yLabelOther  = "Standard free energy of formation (ΔG°f) kJ/mol C/N₂/F₂/Cl₂"
)

// Figure is the assembled two-panel diagram, ready for export.
type Figure struct {
	Oxides *plot.Plot
	Other  *plot.Plot
}

// Build assembles both panels from a normalized table. It refuses raw
// (Kelvin/kcal) input: the axis ranges and legend geometry are fixed in
// Celsius/kJ coordinates, so rendering unconverted data would silently produce
// a wrong diagram.
func Build(t reaction.Table) (*Figure, error) {
	for _, f := range t.Families {
		if f.Units != reaction.CelsiusKJ {
			return nil, fmt.Errorf("family %s is not normalized; call reaction.Normalize first", f.Name)
		}
	}

	ox := t.Family(reaction.Oxides)
	if ox == nil {
		return nil, fmt.Errorf("table has no %s family", reaction.Oxides)
	}
	p1, err := newPanel("Oxides", yLabelOxides)
	if err != nil {
		return nil, err
	}
	if err := addFamily(p1, ox); err != nil {
		return nil, err
	}
	if err := addPhaseLegend(p1, defaultLegendRect, familyColors[reaction.Oxides]); err != nil {
		return nil, err
	}
	clampAxes(p1)

	p2, err := newPanel("Carbides, nitrides, fluorides and chlorides", yLabelOther)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{reaction.Carbides, reaction.Nitrides, reaction.Fluorides, reaction.Chlorides} {
		f := t.Family(name)
		if f == nil {
			return nil, fmt.Errorf("table has no %s family", name)
		}
		if err := addFamily(p2, f); err != nil {
			return nil, err
		}
	}
	if err := addSourcesLegend(p2, defaultLegendRect); err != nil {
		return nil, err
	}
	clampAxes(p2)

	return &Figure{Oxides: p1, Other: p2}, nil
}
