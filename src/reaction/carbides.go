package reaction

// Carbide equations (Coltters 1985).
const (
	eqSiC  = "Si + C = SiC"
	eqTiC  = "Ti + C = TiC"
	eqFe3C = "3Fe + C = Fe₃C"
	eqW2C  = "2W + C = W₂C"
	eqWC   = "W + C = WC"
	eqMo2C = "2Mo + C = Mo₂C"
	eqZrC  = "Zr + C = ZrC"
)

// carbides returns the carbide family. Coltters tabulates these directly in
// degrees Celsius and kJ/mol C, so unlike the Reed families they need no unit
// conversion.
func carbides() Family {
	return Family{
		Name:  Carbides,
		Units: CelsiusKJ,
		Groups: map[PhasePair]Group{
			{Solid, Solid}: {
				{0, 1414, -57, -49, eqSiC, -9},
				{0, 1750, -160, -150.5, eqTiC, -5},
				{0, 723, 23, -1, eqFe3C, 0},
				{0, 1290, -31, -34, eqW2C, -1},
				{0, 800, -39.5, -45, eqWC, -10},
				{0, 1000, -70, -59, eqMo2C, -12},
				{0, 720, -183, -175, eqZrC, 1},
			},
			{Liquid, Solid}: {
				{1414, 2000, -49, -30, eqSiC, 0},
			},
		},
	}
}
