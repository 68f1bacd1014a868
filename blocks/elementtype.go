// Package blocks classifies INSERT block references into a fine-grained
// BlockElementType, first by the block definition's name, then by a
// geometry-signature fallback (§4.4).
package blocks

// BlockElementType is the fine classification of a recognized block —
// one of roughly fifty tags that map many-to-one onto a Category
// (convert.RevitCategory).
type BlockElementType string

const (
	TypeUnrecognized BlockElementType = ""

	// Doors
	TypeDoor              BlockElementType = "Door"
	TypeDoubleDoor         BlockElementType = "DoubleDoor"
	TypeSlidingDoor        BlockElementType = "SlidingDoor"
	TypeFoldingDoor        BlockElementType = "FoldingDoor"
	TypeRevolvingDoor      BlockElementType = "RevolvingDoor"
	TypeGarageDoor         BlockElementType = "GarageDoor"
	TypeOverheadDoor       BlockElementType = "OverheadDoor"

	// Windows
	TypeWindow            BlockElementType = "Window"
	TypeCasementWindow     BlockElementType = "CasementWindow"
	TypeSlidingWindow      BlockElementType = "SlidingWindow"
	TypeFixedWindow        BlockElementType = "FixedWindow"
	TypeBayWindow          BlockElementType = "BayWindow"
	TypeSkylight           BlockElementType = "Skylight"

	// Plumbing
	TypeToilet             BlockElementType = "Toilet"
	TypeSink               BlockElementType = "Sink"
	TypeBathtub            BlockElementType = "Bathtub"
	TypeShower             BlockElementType = "Shower"
	TypeUrinal             BlockElementType = "Urinal"
	TypeWaterHeater        BlockElementType = "WaterHeater"
	TypeFloorDrain         BlockElementType = "FloorDrain"

	// MEP / mechanical
	TypeAirHandlingUnit    BlockElementType = "AirHandlingUnit"
	TypeDiffuser           BlockElementType = "Diffuser"
	TypeGrille             BlockElementType = "Grille"
	TypeFan                BlockElementType = "Fan"
	TypeChiller            BlockElementType = "Chiller"
	TypeBoiler             BlockElementType = "Boiler"
	TypePump               BlockElementType = "Pump"

	// Electrical
	TypeLightFixture       BlockElementType = "LightFixture"
	TypeRecessedLight      BlockElementType = "RecessedLight"
	TypePendantLight       BlockElementType = "PendantLight"
	TypeOutlet             BlockElementType = "Outlet"
	TypeSwitch             BlockElementType = "Switch"
	TypePanelBoard         BlockElementType = "PanelBoard"
	TypeTransformer        BlockElementType = "Transformer"

	// Furniture / casework
	TypeDesk               BlockElementType = "Desk"
	TypeChair              BlockElementType = "Chair"
	TypeTable              BlockElementType = "Table"
	TypeCabinet            BlockElementType = "Cabinet"
	TypeShelving           BlockElementType = "Shelving"
	TypeSofa               BlockElementType = "Sofa"
	TypeBed                BlockElementType = "Bed"

	// Structural / vertical circulation
	TypeColumn             BlockElementType = "Column"
	TypeStair              BlockElementType = "Stair"
	TypeElevator           BlockElementType = "Elevator"
	TypeRailing            BlockElementType = "Railing"
	TypeRamp               BlockElementType = "Ramp"

	// Site / entourage
	TypeTree               BlockElementType = "Tree"
	TypeShrub              BlockElementType = "Shrub"
	TypeVehicle            BlockElementType = "Vehicle"
	TypeParkingSpace       BlockElementType = "ParkingSpace"
	TypeBenchmark          BlockElementType = "Benchmark"
	TypeSignage            BlockElementType = "Signage"
	TypeFireExtinguisher   BlockElementType = "FireExtinguisher"
	TypeFireHoseCabinet    BlockElementType = "FireHoseCabinet"
	TypeSprinklerHead      BlockElementType = "SprinklerHead"
)
