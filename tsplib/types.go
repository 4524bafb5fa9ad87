package tsplib

import "github.com/pkg/errors"

// MaxDimension is the largest DIMENSION Parse accepts. It covers every
// symmetric TSPLIB instance (the largest, pla85900, has 85900 nodes).
const MaxDimension = 100000

var (
	// ErrMalformed indicates a line that does not parse.
	ErrMalformed = errors.New("tsplib: malformed input")

	// ErrUnsupported indicates a TYPE, EDGE_WEIGHT_TYPE or EDGE_WEIGHT_FORMAT
	// this package does not handle.
	ErrUnsupported = errors.New("tsplib: unsupported problem")

	// ErrMissingDimension indicates a data section before DIMENSION.
	ErrMissingDimension = errors.New("tsplib: DIMENSION missing")

	// ErrMissingData indicates coordinates or weights that are absent or short.
	ErrMissingData = errors.New("tsplib: missing data")
)

// WeightType is the EDGE_WEIGHT_TYPE value.
type WeightType string

// Distance functions.
const (
	Explicit WeightType = "EXPLICIT"
	Euc2D    WeightType = "EUC_2D"
	Ceil2D   WeightType = "CEIL_2D"
	Att      WeightType = "ATT"
	Geo      WeightType = "GEO"
	Man2D    WeightType = "MAN_2D"
	Max2D    WeightType = "MAX_2D"
)

// WeightFormat is the EDGE_WEIGHT_FORMAT value of an EXPLICIT instance.
type WeightFormat string

// Matrix layouts.
const (
	FullMatrix   WeightFormat = "FULL_MATRIX"
	UpperRow     WeightFormat = "UPPER_ROW"
	LowerRow     WeightFormat = "LOWER_ROW"
	UpperDiagRow WeightFormat = "UPPER_DIAG_ROW"
	LowerDiagRow WeightFormat = "LOWER_DIAG_ROW"
)

// Coord is one NODE_COORD_SECTION entry.
type Coord struct {
	ID   int
	X, Y float64
}

// Problem is a parsed TSPLIB instance.
type Problem struct {
	Name       string
	Comment    string
	Dimension  int
	WeightType WeightType
	// Format is set for Explicit instances only.
	Format WeightFormat
	// Coords[i] belongs to node i+1; nil for Explicit instances.
	Coords []Coord
	// Weights is the full symmetric n×n matrix for Explicit instances.
	Weights [][]float64
}

func (t WeightType) coordinateBased() bool {
	switch t {
	case Euc2D, Ceil2D, Att, Geo, Man2D, Max2D:
		return true
	default:
		return false
	}
}

func (f WeightFormat) valid() bool {
	switch f {
	case FullMatrix, UpperRow, LowerRow, UpperDiagRow, LowerDiagRow:
		return true
	default:
		return false
	}
}

// entries is the number of values an EDGE_WEIGHT_SECTION of format f holds.
func (f WeightFormat) entries(n int) int {
	switch f {
	case FullMatrix:
		return n * n
	case UpperRow, LowerRow:
		return n * (n - 1) / 2
	default:
		return n * (n + 1) / 2
	}
}
