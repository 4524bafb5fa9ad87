package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Write renders p in TSPLIB syntax: a header, NODE_COORD_SECTION or a
// FULL_MATRIX EDGE_WEIGHT_SECTION, and EOF.
func Write(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NAME : %s\n", p.Name)
	if p.Comment != "" {
		fmt.Fprintf(bw, "COMMENT : %s\n", p.Comment)
	}
	fmt.Fprintf(bw, "TYPE : TSP\n")
	fmt.Fprintf(bw, "DIMENSION : %d\n", p.Dimension)
	fmt.Fprintf(bw, "EDGE_WEIGHT_TYPE : %s\n", p.WeightType)

	switch {
	case p.WeightType == Explicit:
		if len(p.Weights) != p.Dimension {
			return errors.Wrap(ErrMissingData, "tsplib: write: edge weight matrix")
		}
		fmt.Fprintf(bw, "EDGE_WEIGHT_FORMAT : %s\n", FullMatrix)
		fmt.Fprintln(bw, "EDGE_WEIGHT_SECTION")
		for _, row := range p.Weights {
			for j, v := range row {
				if j > 0 {
					bw.WriteByte(' ')
				}
				bw.WriteString(formatNumber(v))
			}
			bw.WriteByte('\n')
		}
	case p.WeightType.coordinateBased():
		if len(p.Coords) != p.Dimension {
			return errors.Wrap(ErrMissingData, "tsplib: write: node coordinates")
		}
		fmt.Fprintln(bw, "NODE_COORD_SECTION")
		for i, c := range p.Coords {
			fmt.Fprintf(bw, "%d %s %s\n", i+1, formatNumber(c.X), formatNumber(c.Y))
		}
	default:
		return errors.Wrapf(ErrUnsupported, "tsplib: write: EDGE_WEIGHT_TYPE %q", p.WeightType)
	}
	fmt.Fprintln(bw, "EOF")

	return errors.Wrap(bw.Flush(), "tsplib: write")
}

// WriteTour renders order (node IDs, closing repeat optional) as a TSPLIB
// TOUR file.
func WriteTour(w io.Writer, name string, order []int) error {
	if n := len(order); n > 1 && order[0] == order[n-1] {
		order = order[:n-1]
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NAME : %s\n", name)
	fmt.Fprintf(bw, "TYPE : TOUR\n")
	fmt.Fprintf(bw, "DIMENSION : %d\n", len(order))
	fmt.Fprintln(bw, "TOUR_SECTION")
	for _, id := range order {
		fmt.Fprintln(bw, id)
	}
	fmt.Fprintln(bw, "-1")
	fmt.Fprintln(bw, "EOF")

	return errors.Wrap(bw.Flush(), "tsplib: write tour")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
