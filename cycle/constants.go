// Package cycle defines shared constants used by the cycle assembler, keeping
// the band geometry and error context tokens in one place.
package cycle

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build operation.
	MethodBuild = "Build"
	// MethodValidate is the canonical name for the Validate operation.
	MethodValidate = "Validate"
	// MethodSlabTemplate is the canonical name for the SlabTemplate operation.
	MethodSlabTemplate = "SlabTemplate"
)

//-----------------------------------------------------------------------------
// Size Limits
//-----------------------------------------------------------------------------

// MinSize is the smallest board the construction supports: a single 2×2 loop.
const MinSize = 2

// MaxSize caps n so that n² steps stay well inside memory for an untrusted
// size. A 2048×2048 cycle holds about 4.2M steps.
const MaxSize = 2048

//-----------------------------------------------------------------------------
// Band Geometry
//-----------------------------------------------------------------------------

const (
	// bandRows is the height of a row band (bottom, top, remainder cap).
	bandRows = 2
	// slabPeriod is the height of one slab; replicas are stacked this far apart.
	slabPeriod = 4
	// slabOriginY is the first row covered by the slab template.
	slabOriginY = bandRows
	// interiorMargin is the number of rows taken by the bottom and top bands.
	interiorMargin = 2 * bandRows
	// blockCells is the number of steps one 2×2 block contributes.
	blockCells = 4
	// turnaroundX is the left column of the fixed slab turnaround units.
	turnaroundX = 2
	// slabRunStartX is the first column of the rightward run on rows 4–5
	// of the slab and the column where the leftward run on rows 2–3 stops.
	slabRunStartX = 4
	// connectorStopY is the lowest top row of a left-connector unit.
	connectorStopY = 3
)

//-----------------------------------------------------------------------------
// Stage Names
//-----------------------------------------------------------------------------

// StageName labels one section of an assembled Cycle.
type StageName string

const (
	// StageBottomBand covers rows 0–1.
	StageBottomBand StageName = "bottom-band"
	// StageSlab covers one 4-row slab instance (template or replica).
	StageSlab StageName = "slab"
	// StageRemainderCap covers rows n-4 and n-3 when present.
	StageRemainderCap StageName = "remainder-cap"
	// StageTopBand covers rows n-2 and n-1.
	StageTopBand StageName = "top-band"
	// StageLeftConnector covers columns 0–1 of the interior rows.
	StageLeftConnector StageName = "left-connector"
)
