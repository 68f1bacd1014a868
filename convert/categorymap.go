package convert

import "github.com/cadbridge/bimimport/blocks"

// blockTypeToCategory maps a recognized BlockElementType onto the
// coarser RevitCategory taxonomy (§4.6).
var blockTypeToCategory = map[blocks.BlockElementType]string{
	blocks.TypeDoor:            "Doors",
	blocks.TypeDoubleDoor:      "Doors",
	blocks.TypeSlidingDoor:     "Doors",
	blocks.TypeFoldingDoor:     "Doors",
	blocks.TypeRevolvingDoor:   "Doors",
	blocks.TypeGarageDoor:      "Doors",
	blocks.TypeOverheadDoor:    "Doors",

	blocks.TypeWindow:         "Windows",
	blocks.TypeCasementWindow: "Windows",
	blocks.TypeSlidingWindow:  "Windows",
	blocks.TypeFixedWindow:    "Windows",
	blocks.TypeBayWindow:      "Windows",
	blocks.TypeSkylight:       "Windows",

	blocks.TypeToilet:      "PlumbingFixtures",
	blocks.TypeSink:        "PlumbingFixtures",
	blocks.TypeBathtub:     "PlumbingFixtures",
	blocks.TypeShower:      "PlumbingFixtures",
	blocks.TypeUrinal:      "PlumbingFixtures",
	blocks.TypeWaterHeater: "PlumbingFixtures",
	blocks.TypeFloorDrain:  "PlumbingFixtures",

	blocks.TypeAirHandlingUnit: "MechanicalEquipment",
	blocks.TypeChiller:         "MechanicalEquipment",
	blocks.TypeBoiler:          "MechanicalEquipment",
	blocks.TypePump:            "MechanicalEquipment",
	blocks.TypeFan:             "MechanicalEquipment",
	blocks.TypeDiffuser:        "AirTerminals",
	blocks.TypeGrille:          "AirTerminals",

	blocks.TypeLightFixture:  "LightingFixtures",
	blocks.TypeRecessedLight: "LightingFixtures",
	blocks.TypePendantLight:  "LightingFixtures",
	blocks.TypeOutlet:        "ElectricalFixtures",
	blocks.TypeSwitch:        "ElectricalFixtures",
	blocks.TypePanelBoard:    "ElectricalEquipment",
	blocks.TypeTransformer:   "ElectricalEquipment",

	blocks.TypeDesk:      "Furniture",
	blocks.TypeChair:     "Furniture",
	blocks.TypeSofa:      "Furniture",
	blocks.TypeBed:       "Furniture",
	blocks.TypeTable:     "Furniture",
	blocks.TypeShelving:  "Casework",
	blocks.TypeCabinet:   "Casework",

	blocks.TypeElevator: "SpecialtyEquipment",
	blocks.TypeStair:    "Stairs",
	blocks.TypeRamp:     "Ramps",
	blocks.TypeRailing:  "Railings",
	blocks.TypeColumn:   "Columns",

	blocks.TypeParkingSpace:     "Parking",
	blocks.TypeVehicle:          "Entourage",
	blocks.TypeTree:             "Planting",
	blocks.TypeShrub:            "Planting",
	blocks.TypeBenchmark:        "Survey",
	blocks.TypeFireExtinguisher: "SpecialtyEquipment",
	blocks.TypeFireHoseCabinet:  "SpecialtyEquipment",
	blocks.TypeSprinklerHead:    "Sprinklers",
	blocks.TypeSignage:          "Signage",
}

// categoryFor returns the RevitCategory for a recognized block element
// type, defaulting to GenericModel for anything not in the table (§4.6:
// "unknown → GenericModel").
func categoryFor(t blocks.BlockElementType) string {
	if cat, ok := blockTypeToCategory[t]; ok {
		return cat
	}
	return "GenericModel"
}
