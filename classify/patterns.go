package classify

import "regexp"

// patternRule is one entry of the ordered PatternMatch table (§4.2).
// Evaluation order is a semantic part of the specification: the first
// rule whose regex matches the layer name wins.
type patternRule struct {
	category string
	regex    *regexp.Regexp
}

// namePatterns is compiled once at package init and never mutated
// afterward (§9 "global state ... read-only lookup data; initialize once
// at module load"). Substrings cover English plus common multilingual
// equivalents (German, French, Spanish, abbreviations) for the handful of
// categories most commonly named across international AIA-style layer
// conventions.
var namePatterns = compilePatterns([]struct {
	category string
	pattern  string
}{
	{"Walls", `wall|wand|mur|pared|mauer`},
	{"Doors", `door|tur|tür|porte|puerta|\bdr\b`},
	{"Windows", `window|fenster|fenetre|fenêtre|ventana|\bwin\b`},
	{"Columns", `column|colonne|saule|säule|columna|\bcol\b`},
	{"Floors", `floor|boden|plancher|piso|slab|suelo`},
	{"Ceilings", `ceiling|decke|plafond|techo`},
	{"Roofs", `roof|dach|toit|techo|tejado`},
	{"StructuralFraming", `beam|balken|poutre|viga|framing`},
	{"StructuralFoundations", `foundation|fondation|fundament|cimentacion|cimentación|footing`},
	{"DuctSystems", `duct|kanal|gaine|conducto`},
	{"MechanicalEquipment", `hvac|mech|mecanic|mecánic`},
	{"PipingSystems", `pipe|rohr|tuyau|tuberia|tubería|plumb`},
	{"PlumbingFixtures", `fixt|sanit|armatur|appareil`},
	{"LightingFixtures", `light|licht|lumiere|lumière|luz|lamp`},
	{"ElectricalFixtures", `elec|strom|electr|eléctr`},
	{"ElectricalEquipment", `panel|breaker|switchgear|tableau`},
	{"AirTerminals", `diffuser|grille|register|terminal`},
	{"Furniture", `furn|mobel|möbel|meuble|mueble`},
	{"Entourage", `site|plant|tree|arbre|arbol|árbol|landscap`},
	{"Planting", `veget|planting|pflanz|vegetac`},
	{"Rooms", `room|raum|piece|pièce|habitacion|habitación|zone|area|área`},
	{"Grids", `grid|raster|grille|rejilla`},
	{"Annotation", `anno|text|texte|texto|note|label`},
	{"Dimensions", `dim|mass|cote|cota`},
	{"StructuralColumns", `struct.*col|col.*struct`},
	{"CurtainWalls", `curtain|rideau|cortina|vorhang`},
	{"Stairs", `stair|treppe|escalier|escalera`},
	{"Railings", `rail|gelander|geländer|garde.?corps|baranda`},
	{"Ramps", `ramp|rampe|rampa`},
	{"Topography", `topo|terrain|gelande|gelände|terreno`},
	{"Parking", `park|parking|estacionamiento|parkplatz`},
	{"GenericModel", `generic|divers|varios|misc`},
	{"Casework", `casework|cabinet|armoire|armario|schrank`},
	{"Signage", `sign|schild|signalisation|senal|señal`},
	{"Sprinklers", `sprinkler|sprinkleranlage|extincteur|rociador`},
	{"SpecialtyEquipment", `specialty|special.?equip|sonderausstattung`},
})

func compilePatterns(defs []struct {
	category string
	pattern  string
}) []patternRule {
	rules := make([]patternRule, 0, len(defs))
	for _, d := range defs {
		rules = append(rules, patternRule{
			category: d.category,
			regex:    regexp.MustCompile(`(?i)` + d.pattern),
		})
	}
	return rules
}

// matchPattern returns the category of the first pattern rule whose regex
// matches name, in table order, and true. If no rule matches it returns
// ("", false).
func matchPattern(name string) (string, bool) {
	for _, rule := range namePatterns {
		if rule.regex.MatchString(name) {
			return rule.category, true
		}
	}
	return "", false
}
