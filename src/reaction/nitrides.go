package reaction

// Nitride equations.
const (
	eqAlN   = "2Al + N₂ = 2AlN"
	eqBN    = "2B + N₂ = 2BN"
	eqFe4N  = "8Fe + N₂ = 2Fe₄N"
	eqMg3N2 = "3Mg + N₂ = Mg₃N₂"
	eqMo2N  = "4Mo + N₂ = Mo₂N"
	eqNH3   = "6H + N₂ = 2NH₃"
	eqSi3N4 = "3/2 Si + N₂ = 1/2 Si₃N₄"
	eqTiN   = "2Ti + N₂ = 2TiN"
	eqVN    = "2V + N₂ = 2VN"
	eqZrN   = "2Zr + N₂ = 2ZrN"
)

// nitrides returns the nitride family. Temperatures in Kelvin, energies in
// kcal/mol N₂ (Reed 1971).
func nitrides() Family {
	return Family{
		Name:  Nitrides,
		Units: KelvinKcal,
		Groups: map[PhasePair]Group{
			{Solid, Solid}: {
				{0, 932, -144.3, -101.0, eqAlN, 0},
				{0, 2300, -121.4, -20.8, eqBN, 0},
				{0, 1809, -5.8, 38.5, eqFe4N, 12},
				{0, 923, -109.6, -65.8, eqMg3N2, 8},
				{0, 1150, -31.9, 0.0, eqMo2N, 10},
				{0, 0, -24.1, -24.1, eqNH3, 0},
				{0, 1680, -90.0, -22.5, eqSi3N4, -6},
				{0, 1940, -160.5, -73.4, eqTiN, 1},
				{0, 2190, -83.3, 3.6, eqVN, -13},
				{0, 2128, -163.8, -67.2, eqZrN, -2},
			},
			{Liquid, Solid}: {
				{2300, 2500, -20.8, 0, eqBN, 0},
				{923, 1376, -65.8, -41.3, eqMg3N2, 0},
				{1680, 2130, -22.5, 0.0, eqSi3N4, 0},
			},
			{Gas, Gas}: {
				{0, 2000, -24.1, 85.2, eqNH3, 0},
			},
		},
	}
}
