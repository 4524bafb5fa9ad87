package tsplib

import (
	"math"

	"github.com/pkg/errors"
)

// Distance returns the weight between nodes i and j (1-based) under the
// instance's EDGE_WEIGHT_TYPE.
//
// Errors:
//   - ErrMissingData if i or j is out of range or the needed data is absent.
//   - ErrUnsupported for an unknown weight type.
func (p *Problem) Distance(i, j int) (float64, error) {
	if i < 1 || j < 1 || i > p.Dimension || j > p.Dimension {
		return 0, errors.Wrapf(ErrMissingData, "distance %d-%d outside 1..%d", i, j, p.Dimension)
	}
	if p.WeightType == Explicit {
		if len(p.Weights) != p.Dimension {
			return 0, errors.Wrap(ErrMissingData, "edge weight matrix")
		}
		return p.Weights[i-1][j-1], nil
	}
	if len(p.Coords) != p.Dimension {
		return 0, errors.Wrap(ErrMissingData, "node coordinates")
	}

	a, b := p.Coords[i-1], p.Coords[j-1]
	xd, yd := a.X-b.X, a.Y-b.Y
	switch p.WeightType {
	case Euc2D:
		return nint(math.Sqrt(xd*xd + yd*yd)), nil
	case Ceil2D:
		return math.Ceil(math.Sqrt(xd*xd + yd*yd)), nil
	case Man2D:
		return nint(math.Abs(xd) + math.Abs(yd)), nil
	case Max2D:
		return math.Max(nint(math.Abs(xd)), nint(math.Abs(yd))), nil
	case Att:
		r := math.Sqrt((xd*xd + yd*yd) / 10.0)
		t := nint(r)
		if t < r {
			t++
		}
		return t, nil
	case Geo:
		return geoDistance(a, b), nil
	default:
		return 0, errors.Wrapf(ErrUnsupported, "EDGE_WEIGHT_TYPE %s", p.WeightType)
	}
}

// nint rounds half up, the TSPLIB convention for non-negative values.
func nint(x float64) float64 {
	return math.Floor(x + 0.5)
}

// geoRadius and geoPi are the constants fixed by the TSPLIB definition.
const (
	geoRadius = 6378.388
	geoPi     = 3.141592
)

// geoRadians reads DDD.MM (degrees.minutes) as radians.
func geoRadians(v float64) float64 {
	deg := math.Trunc(v)
	min := v - deg

	return geoPi * (deg + 5.0*min/3.0) / 180.0
}

// geoDistance is the idealised-sphere distance in kilometres, truncated.
// X is latitude and Y longitude.
func geoDistance(a, b Coord) float64 {
	latA, lonA := geoRadians(a.X), geoRadians(a.Y)
	latB, lonB := geoRadians(b.X), geoRadians(b.Y)
	q1 := math.Cos(lonA - lonB)
	q2 := math.Cos(latA - latB)
	q3 := math.Cos(latA + latB)

	return math.Trunc(geoRadius*math.Acos(0.5*((1.0+q1)*q2-(1.0-q1)*q3)) + 1.0)
}
