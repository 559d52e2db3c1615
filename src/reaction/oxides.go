package reaction

// Family names, in diagram draw order.
const (
	Oxides    = "oxides"
	Carbides  = "carbides"
	Nitrides  = "nitrides"
	Fluorides = "fluorides"
	Chlorides = "chlorides"
)

// Oxide equations. One constant per reaction: the same string keys a
// reaction's segments across phase-pair groups, so the continuity check can
// stitch them back together.
const (
	eqAl2O3 = "4/3 Al + O₂ = 2/3 Al₂O₃"
	eqSb2O3 = "4/3 Sb + O₂ = 2/3 Sb₂O₃"
	eqBaO   = "2Ba + O₂ = 2BaO"
	eqBi2O3 = "4/3 Bi + O₂ = 2/3 Bi₂O₃"
	eqB2O3  = "4/3 B + O₂ = 2/3 B₂O₃"
	eqCaO   = "2Ca + O₂ = 2CaO"
	eqCO    = "2C + O₂ = 2CO"
	eqCO2   = "C + O₂ = CO₂"
	eqCs2O  = "4Cs + O₂ = 2Cs₂O"
	eqCu2O  = "4Cu + O₂ = 2Cu₂O"
	eqCuO   = "2Cu + O₂ = 2CuO"
	eqH2O   = "4H + O₂ = 2H₂O"
	eqFeO   = "2Fe + O₂ = 2FeO"
	eqFe2O3 = "4/3 Fe + O₂ = 2/3 Fe₂O₃"
	eqLi2O  = "4Li + O₂ = 2Li₂O"
	eqMoO3  = "2/3 Mo + O₂ = 2/3 MoO₃"
	eqMgO   = "2Mg + O₂ = 2MgO"
	eqHgO   = "2Hg + O₂ = 2HgO"
	eqNb2O5 = "4/5 Nb + O₂ = 2/5 Nb₂O₅"
	eqPt3O4 = "3/2 Pt + O₂ = 1/2 Pt₃O₄"
	eqK2O   = "4K + O₂ = 2K₂O"
	eqRb2O  = "4Rb + O₂ = 2Rb₂O"
	eqSiO2  = "Si + O₂ = SiO₂"
	eqAg2O  = "4Ag + O₂ = 2Ag₂O"
	eqNa2O  = "4Na + O₂ = 2Na₂O"
	eqSrO   = "2Sr + O₂ = 2SrO"
	eqSnO2  = "Sn + O₂ = SnO₂"
	eqTiO2  = "Ti + O₂ = TiO₂"
	eqTiO   = "2Ti + O₂ = 2TiO"
	eqVO2   = "V + O₂ = VO₂"
	eqV2O5  = "4/5 V + O₂ = 2/5 V₂O₅"
	eqWO3   = "2/3 W + O₂ = 2/3 WO₃"
	eqZnO   = "2Zn + O₂ = 2ZnO"
	eqZrO2  = "Zr + O₂ = ZrO₂"
)

// oxides returns the oxide family. Temperatures in Kelvin, energies in
// kcal/mol O₂ (Reed 1971).
func oxides() Family {
	return Family{
		Name:  Oxides,
		Units: KelvinKcal,
		Groups: map[PhasePair]Group{
			{Solid, Solid}: {
				{0, 932, -266.6, -220.0, eqAl2O3, -13},
				{0, 904, -111.0, -74.0, eqSb2O3, 3},
				{0, 983, -265.0, -222.0, eqBaO, 0},
				{0, 544, -92.0, -69.0, eqBi2O3, 6},
				{0, 723, -200.5, -171.5, eqB2O3, -3},
				{0, 1123, -303.0, -249.0, eqCaO, 0},
				{0, 0, -55.6, -55.6, eqCO, 0},
				{0, 0, -94.5, -94.5, eqCO2, -8},
				{0, 302, -151.8, -125.0, eqCs2O, -14},
				{0, 1357, -80.0, -33.0, eqCu2O, 0},
				{0, 1357, -74.5, -16.0, eqCuO, 0},
				{0, 0, -119.3, -119.3, eqH2O, 12},
				{0, 1642, -124.1, -75.0, eqFeO, -9},
				{0, 1809, -129.2, -55.5, eqFe2O3, -5},
				{0, 453, -286.0, -258.0, eqLi2O, -12},
				{0, 1068, -120.0, -77.0, eqMoO3, -3},
				{0, 923, -286.0, -240.0, eqMgO, 8},
				{0, 0, -44.0, -44.0, eqHgO, 0},
				{0, 1764, -181.0, -112.0, eqNb2O5, 0},
				{0, 734, -32.0, 0.0, eqPt3O4, 0},
				{0, 336, -172.0, -151.0, eqK2O, -14},
				{0, 312, -157.8, -138.0, eqRb2O, -8},
				{0, 1685, -216.5, -145.8, eqSiO2, 0},
				{0, 480, -14.0, 0.0, eqAg2O, 0},
				{0, 371, -197.0, -176.0, eqNa2O, 3},
				{0, 1043, -281.0, -233.0, eqSrO, 5},
				{0, 505, -138.8, -114.0, eqSnO2, -11},
				{0, 1940, -225.5, -142.5, eqTiO2, 0},
				{0, 1940, -247.5, -161.0, eqTiO, 0},
				{0, 1818, -168.0, -100.0, eqVO2, -9},
				{0, 943, -149.5, -110.0, eqV2O5, 2},
				{0, 1743, -133.0, -67.0, eqWO3, -10},
				{0, 693, -166.0, -134.0, eqZnO, 4},
				{0, 2125, -262.0, -166.0, eqZrO2, 9},
			},
			{Liquid, Solid}: {
				{932, 2345, -220.0, -147.6, eqAl2O3, 0},
				{904, 928, -74.0, -73.0, eqSb2O3, 0},
				{983, 1895, -222.0, -183.0, eqBaO, 0},
				{544, 1098, -69.0, -44.0, eqBi2O3, 0},
				{1123, 1756, -249.0, -217.0, eqCaO, 0},
				{302, 763, -125.0, -84.0, eqCs2O, -16},
				{1357, 1509, -33.0, -28.0, eqCu2O, 0},
				{1357, 1609, -16.0, -9.5, eqCuO, 0},
				{453, 1597, -258.0, -173.0, eqLi2O, 0},
				{336, 980, -151.0, -107.0, eqK2O, 0},
				{0, 630, -44.0, -10.0, eqHgO, 0},
				{312, 910, -138.0, -96.0, eqRb2O, -8},
				{1685, 1696, -145.8, -145.4, eqSiO2, 0},
				{371, 1156, -176.0, -122.0, eqNa2O, 0},
				{1940, 2128, -142.5, -134.5, eqTiO2, 0},
				{1940, 2033, -161.0, -159.0, eqTiO, 0},
				{693, 1180, -134.0, -109.0, eqZnO, 0},
				{2125, 2980, -166.0, -130.0, eqZrO2, 0},
			},
			{Gas, Solid}: {
				{1895, 2191, -183.0, -159.0, eqBaO, 0},
				{1756, 2887, -217.0, -117.0, eqCaO, 0},
				{1597, 2000, -173.0, -128.0, eqLi2O, 0},
				{923, 1376, -240.0, -214.0, eqMgO, 0},
				{630, 740, -10.0, 0.0, eqHgO, 0},
				{1156, 1193, -122.0, -119.0, eqNa2O, 0},
				{1180, 2240, -109.0, -9.0, eqZnO, 0},
			},
			{Solid, Liquid}: {
				{723, 2313, -171.5, -112.0, eqB2O3, 0},
				{1642, 1809, -75.0, -71.9, eqFeO, 0},
				{1068, 1530, -77.0, -64.0, eqMoO3, 0},
				{1818, 2190, -100.0, -96.0, eqVO2, 0},
				{1743, 2100, -67.0, -57.0, eqWO3, 0},
			},
			{Liquid, Liquid}: {
				{2345, 2736, -147.6, -128.5, eqAl2O3, 0},
				{928, 1698, -73.0, -45.0, eqSb2O3, 0},
				{1098, 1852, -44.0, -12.0, eqBi2O3, 0},
				{1809, 2000, -71.9, -67.9, eqFeO, 0},
				{1376, 3125, -214.0, 52.0, eqMgO, 0},
				{763, 915, -84.0, -73.0, eqCs2O, -16},
				{1509, 2500, -28.0, -9.5, eqCu2O, 0},
				{1609, 1870, -9.5, 0, eqCuO, 0},
				{980, 1031, -107.0, -104.0, eqK2O, 0},
				{910, 952, -96.0, -95.0, eqRb2O, -8},
				{1696, 2500, -145.4, -107.8, eqSiO2, 0},
				{2128, 2500, -134.5, -121.5, eqTiO2, 0},
				{2033, 2500, -159.0, -142.5, eqTiO, 0},
				{2190, 2500, -96.0, -81.0, eqVO2, 0},
			},
			{Gas, Liquid}: {
				{2191, 2500, -159.0, -131.0, eqBaO, 0},
				{1031, 1325, -104.0, -71.0, eqK2O, 0},
				{1193, 1600, -119.0, -62.0, eqNa2O, 0},
				{2240, 2340, -9.0, 0.0, eqZnO, 0},
			},
			{Solid, Gas}: {
				{0, 3400, -55.6, -191.9, eqCO, 0},
				{0, 3400, -94.5, -94.5, eqCO2, 0},
				{1530, 2500, -64.0, -52.0, eqMoO3, 0},
				{2100, 2500, -57.0, -52.0, eqWO3, 0},
			},
			{Liquid, Gas}: {
				{915, 955, -73.0, -72.0, eqCs2O, -16},
				{1698, 1908, -45.0, -32.0, eqSb2O3, 0},
			},
			{Gas, Gas}: {
				{0, 3400, -119.3, -26.6, eqH2O, 0},
				{1325, 2160, -71.0, 0.0, eqK2O, 0},
				{1600, 2250, -62.0, 0.0, eqNa2O, 0},
				{1908, 2380, -32.0, 0.0, eqSb2O3, 0},
			},
		},
	}
}
