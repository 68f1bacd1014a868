package blocks

import "regexp"

// namePatternRule is one ordered entry of the block-name classification
// table (§4.4 phase 1). First match wins; order is a semantic part of
// the specification, compiled once at package init (§9 global state).
type namePatternRule struct {
	elementType BlockElementType
	regex       *regexp.Regexp
}

var blockNamePatterns = compileBlockPatterns([]struct {
	elementType BlockElementType
	pattern     string
}{
	{TypeDoubleDoor, `double.?door|2.?leaf.?door|door.?double`},
	{TypeSlidingDoor, `slid(e|ing).?door|door.?slid`},
	{TypeFoldingDoor, `fold(ing)?.?door|bifold`},
	{TypeRevolvingDoor, `revolv(e|ing).?door`},
	{TypeGarageDoor, `garage.?door`},
	{TypeOverheadDoor, `overhead.?door|roll.?up.?door`},
	{TypeDoor, `door|\bdr\b|puerta|porte|tur|tür`},

	{TypeBayWindow, `bay.?window`},
	{TypeSkylight, `skylight|roof.?light`},
	{TypeCasementWindow, `casement.?win`},
	{TypeSlidingWindow, `slid(e|ing).?win`},
	{TypeFixedWindow, `fixed.?win`},
	{TypeWindow, `\bwindow\b|\bwin\b|ventana|fenetre|fenêtre|fenster`},

	{TypeToilet, `toilet|wc\b|water.?closet|inodoro`},
	{TypeUrinal, `urinal`},
	{TypeBathtub, `bath.?tub|tina`},
	{TypeShower, `shower|ducha`},
	{TypeSink, `sink|basin|lavabo|lavamanos`},
	{TypeWaterHeater, `water.?heater|calentador`},
	{TypeFloorDrain, `floor.?drain|drenaje`},

	{TypeAirHandlingUnit, `\bahu\b|air.?hand(l|ling)`},
	{TypeChiller, `chiller`},
	{TypeBoiler, `boiler|caldera`},
	{TypePump, `\bpump\b|bomba`},
	{TypeDiffuser, `diffuser|difusor`},
	{TypeGrille, `grille|grill\b|rejilla`},
	{TypeFan, `\bfan\b|exhaust.?fan|ventilador`},

	{TypeRecessedLight, `recessed.?light|downlight`},
	{TypePendantLight, `pendant.?light`},
	{TypeLightFixture, `light.?fixture|\blum\b|luminaire|luminaria`},
	{TypePanelBoard, `panel.?board|electrical.?panel|tablero`},
	{TypeTransformer, `transformer|transformador`},
	{TypeOutlet, `outlet|receptacle|toma.?corriente`},
	{TypeSwitch, `\bswitch\b|interruptor`},

	{TypeDesk, `\bdesk\b|escritorio`},
	{TypeChair, `\bchair\b|silla`},
	{TypeSofa, `sofa|couch|sofá`},
	{TypeBed, `\bbed\b|cama`},
	{TypeTable, `\btable\b|mesa`},
	{TypeShelving, `shelv|estanteria|estantería`},
	{TypeCabinet, `cabinet|armoire|armario`},

	{TypeElevator, `elevator|lift|ascensor`},
	{TypeStair, `stair|escalier|escalera`},
	{TypeRamp, `ramp|rampe|rampa`},
	{TypeRailing, `railing|gelander|geländer|baranda`},
	{TypeColumn, `column|colonne|columna|\bcol\b`},

	{TypeParkingSpace, `parking|estacionamiento`},
	{TypeVehicle, `\bcar\b|vehicle|vehiculo|vehículo`},
	{TypeTree, `\btree\b|arbre|arbol|árbol`},
	{TypeShrub, `shrub|bush|arbusto`},
	{TypeBenchmark, `benchmark|\bbm\b`},
	{TypeFireExtinguisher, `fire.?ext|extintor`},
	{TypeFireHoseCabinet, `fire.?hose|hose.?cabinet`},
	{TypeSprinklerHead, `sprinkler|rociador`},
	{TypeSignage, `\bsign\b|signage|letrero|senal|señal`},
})

func compileBlockPatterns(defs []struct {
	elementType BlockElementType
	pattern     string
}) []namePatternRule {
	rules := make([]namePatternRule, 0, len(defs))
	for _, d := range defs {
		rules = append(rules, namePatternRule{
			elementType: d.elementType,
			regex:       regexp.MustCompile(`(?i)` + d.pattern),
		})
	}
	return rules
}

// matchBlockName returns the BlockElementType of the first pattern rule
// whose regex matches name, in table order.
func matchBlockName(name string) (BlockElementType, bool) {
	for _, rule := range blockNamePatterns {
		if rule.regex.MatchString(name) {
			return rule.elementType, true
		}
	}
	return TypeUnrecognized, false
}
