package reaction

// Fluoride and chloride equations.
const (
	eqAlF3 = "2/3 Al + F₂ = 2/3 AlF₃"
	eqCaF2 = "Ca + F₂ = CaF₂"
	eqHF   = "2H + F₂ = 2HF"
	eqCF4  = "1/2 C + F₂ = 1/2 CF₄"
	eqLiF  = "2Li + F₂ = 2LiF"
	eqKF   = "2K + F₂ = 2KF"
	eqNaF  = "2Na + F₂ = 2NaF"

	eqAlCl3 = "2/3 Al + Cl₂ = 2/3 AlCl₃"
	eqCaCl2 = "Ca + Cl₂ = CaCl₂"
	eqCCl4  = "1/2 C + Cl₂ = 1/2 CCl₄"
	eqHCl   = "2H + Cl₂ = 2HCl"
	eqLiCl  = "2Li + Cl₂ = 2LiCl"
	eqKCl   = "2K + Cl₂ = 2KCl"
	eqNaCl  = "2Na + Cl₂ = 2NaCl"
	eqWCl6  = "1/3 W + Cl₂ = 1/3 WCl₆"
)

// fluorides returns the fluoride family. Temperatures in Kelvin, energies in
// kcal/mol F₂ (Reed 1971).
func fluorides() Family {
	return Family{
		Name:  Fluorides,
		Units: KelvinKcal,
		Groups: map[PhasePair]Group{
			{Solid, Solid}: {
				{0, 932, -215.3, -181.0, eqAlF3, 0},
				{0, 1123, -288.0, -245.0, eqCaF2, 5},
				{0, 0, -129.8, -129.8, eqHF, 0},
				{0, 0, -81.2, -81.2, eqCF4, 2},
				{0, 453, -290.0, -271.0, eqLiF, -8},
				{0, 336, -270.0, -253.0, eqKF, 0.3},
				{0, 371, -274.0, -255.0, eqNaF, -0.3},
			},
			{Liquid, Solid}: {
				{932, 1545, -181.0, -156.0, eqAlF3, 0},
				{1123, 1691, -245.0, -224.0, eqCaF2, 0},
				{453, 1120, -271.0, -240.0, eqLiF, 0},
				{336, 1031, -253.0, -214.0, eqKF, 0},
				{371, 1187, -255.0, -214.0, eqNaF, 0},
			},
			{Liquid, Liquid}: {
				{1545, 2500, -156.0, -157.0, eqAlF3, 0},
				{1691, 1955, -224.0, -222.0, eqCaF2, 0},
				{1120, 1597, -240.0, -216.0, eqLiF, 0},
				{1031, 1130, -214.0, -209.0, eqKF, 0},
				{1187, 1268, -214.0, -209.0, eqNaF, 0},
			},
			{Gas, Liquid}: {
				{1955, 2500, -222.0, -186.0, eqCaF2, 0},
				{1597, 1954, -216.0, -194.0, eqLiF, 0},
				{1130, 1775, -209.0, -166.0, eqKF, 0},
				{1268, 1977, -209.0, -156.0, eqNaF, 0},
			},
			{Gas, Gas}: {
				{0, 2500, -81.2, -36.0, eqCF4, 0},
				{0, 0, -129.8, -129.8, eqHF, 0},
				{1954, 2500, -194.0, -179.0, eqLiF, 0},
				{1775, 2500, -166.0, -150.0, eqKF, 0},
				{1977, 2500, -156.0, -150.0, eqNaF, 0},
				{0, 1287, -129.8, -134.1, eqHF, 0},
			},
		},
	}
}

// chlorides returns the chloride family. Temperatures in Kelvin, energies in
// kcal/mol Cl₂ (Reed 1971).
func chlorides() Family {
	return Family{
		Name:  Chlorides,
		Units: KelvinKcal,
		Groups: map[PhasePair]Group{
			{Solid, Solid}: {
				{0, 465, -110.9, -92.9, eqAlCl3, -5},
				{0, 1055, -188.0, -154.0, eqCaCl2, 0},
				{0, 0, -12.3, -12.3, eqCCl4, 0},
				{0, 0, -45.0, -45.0, eqHCl, -11},
				{0, 459, -193.6, -177.6, eqLiCl, 0},
				{0, 336, -209.4, -193.2, eqKCl, 0},
				{0, 371, -196.8, -180.0, eqNaCl, -5},
				{0, 0, -36.1, -36.1, eqWCl6, 8},
			},
			{Liquid, Solid}: {
				{459, 887, -177.6, -161.0, eqLiCl, 0},
				{336, 1031, -193.2, -161.0, eqKCl, 0},
				{371, 1073, -180.0, -149.4, eqNaCl, 0},
			},
			{Solid, Liquid}: {
				{465, 500, -92.9, -91.7, eqAlCl3, 0},
				{1055, 1123, -154.0, -152.0, eqCaCl2, 0},
				{0, 548, -36.1, -15.0, eqWCl6, 0},
			},
			{Liquid, Liquid}: {
				{1123, 1755, -152.0, -136.0, eqCaCl2, 0},
				{887, 1597, -161.0, -141.2, eqLiCl, 0},
				{1031, 1043, -161.0, -160.0, eqKCl, 0},
				{1073, 1156, -149.4, -145.6, eqNaCl, 0},
			},
			{Gas, Liquid}: {
				{1755, 1900, -136.0, -128.0, eqCaCl2, 0},
				{1597, 1655, -141.2, -138.4, eqLiCl, 0},
				{1043, 1680, -160.0, -122.4, eqKCl, 0},
				{1156, 1738, -145.6, -110.0, eqNaCl, 0},
			},
			{Solid, Gas}: {
				{500, 932, -91.7, -84.6, eqAlCl3, 0},
				{548, 1500, -15.0, -0.8, eqWCl6, 0},
			},
			{Liquid, Gas}: {
				{932, 2273, -84.6, -70.2, eqAlCl3, 0},
			},
			{Gas, Gas}: {
				{2273, 2500, -70.2, -71.6, eqAlCl3, 0},
				{1900, 2500, -128.0, -114.0, eqCaCl2, 0},
				{0, 2500, -12.3, 27.4, eqCCl4, 0},
				{0, 2500, -45.0, -53.3, eqHCl, 0},
				{1655, 2500, -138.4, -118.4, eqLiCl, 0},
				{1680, 2500, -122.4, -110.4, eqKCl, 0},
				{1738, 2500, -110.0, -96.8, eqNaCl, 0},
			},
		},
	}
}
