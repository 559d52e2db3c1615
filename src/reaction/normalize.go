package reaction

const (
	kelvinOffset = 273.15
	kcalToKJ     = 4.184
)

// Normalize returns a new table with every family expressed in degrees Celsius
// and kJ/mol. Families already tagged CelsiusKJ (the carbides, or the result
// of a previous Normalize) are copied through untouched, so the conversion is
// applied exactly once no matter how often the pipeline runs it.
//
// The input table is not modified.
func Normalize(t Table) Table {
	out := Table{Families: make([]Family, len(t.Families))}
	for i, f := range t.Families {
		out.Families[i] = normalizeFamily(f)
	}
	return out
}

func normalizeFamily(f Family) Family {
	nf := Family{
		Name:   f.Name,
		Units:  CelsiusKJ,
		Groups: make(map[PhasePair]Group, len(f.Groups)),
	}
	convert := f.Units == KelvinKcal
	for pp, g := range f.Groups {
		ng := make(Group, len(g))
		copy(ng, g)
		if convert {
			for i := range ng {
				ng[i].T0 -= kelvinOffset
				ng[i].T1 -= kelvinOffset
				ng[i].G0 *= kcalToKJ
				ng[i].G1 *= kcalToKJ
			}
		}
		nf.Groups[pp] = ng
	}
	return nf
}
