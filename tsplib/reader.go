package tsplib

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadFile opens path and parses it with Parse.
func ReadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "tsplib: open %s", path)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "tsplib: %s", path)
	}

	return p, nil
}

// lines yields trimmed, non-empty lines with their 1-based numbers.
type lines struct {
	sc   *bufio.Scanner
	text string
	num  int
}

func (l *lines) next() bool {
	for l.sc.Scan() {
		l.num++
		if l.text = strings.TrimSpace(l.sc.Text()); l.text != "" {
			return true
		}
	}

	return false
}

// Parse reads one TSPLIB problem from r.
//
// Steps:
//  1. Header lines "KEY : VALUE" fill the Problem; unknown keys are ignored.
//  2. Section keywords switch to reading data: NODE_COORD_SECTION takes
//     DIMENSION lines "id x y"; EDGE_WEIGHT_SECTION takes as many numbers
//     as the format requires, across any line breaks;
//     DISPLAY_DATA_SECTION is skipped.
//  3. EOF or end of input stops parsing; the result is then validated.
//
// Errors:
//   - ErrMalformed, ErrUnsupported, ErrMissingDimension, ErrMissingData,
//     each wrapped with the line number; read errors from r.
//   - ErrMalformed for a DIMENSION outside 1..MaxDimension.
func Parse(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	in := &lines{sc: sc}
	p := &Problem{}

	for in.next() {
		key, value := splitKeyword(in.text)
		var err error
		switch key {
		case "EOF":
			return finish(p, sc.Err())
		case "NAME":
			p.Name = value
		case "COMMENT":
			if p.Comment != "" {
				p.Comment += "\n"
			}
			p.Comment += value
		case "TYPE":
			if t := firstField(value); t != "TSP" {
				err = errors.Wrapf(ErrUnsupported, "TYPE %s", value)
			}
		case "DIMENSION":
			p.Dimension, err = strconv.Atoi(value)
			if err != nil || p.Dimension < 1 || p.Dimension > MaxDimension {
				err = errors.Wrapf(ErrMalformed, "DIMENSION %q", value)
			}
		case "EDGE_WEIGHT_TYPE":
			p.WeightType = WeightType(firstField(value))
			if p.WeightType != Explicit && !p.WeightType.coordinateBased() {
				err = errors.Wrapf(ErrUnsupported, "EDGE_WEIGHT_TYPE %s", value)
			}
		case "EDGE_WEIGHT_FORMAT":
			if firstField(value) == "FUNCTION" {
				break
			}
			p.Format = WeightFormat(firstField(value))
			if !p.Format.valid() {
				err = errors.Wrapf(ErrUnsupported, "EDGE_WEIGHT_FORMAT %s", value)
			}
		case "NODE_COORD_SECTION":
			err = readCoords(in, p)
		case "EDGE_WEIGHT_SECTION":
			err = readWeights(in, p)
		case "DISPLAY_DATA_SECTION":
			err = skipRows(in, p)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", in.num)
		}
	}

	return finish(p, sc.Err())
}

// splitKeyword splits "KEY : VALUE", "KEY: VALUE" and bare "KEY".
func splitKeyword(line string) (string, string) {
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return strings.ToUpper(strings.TrimSpace(line[:i])), strings.TrimSpace(line[i+1:])
	}
	fields := strings.Fields(line)

	return strings.ToUpper(fields[0]), strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return strings.ToUpper(f[0])
	}

	return ""
}

func readCoords(in *lines, p *Problem) error {
	if p.Dimension == 0 {
		return ErrMissingDimension
	}
	p.Coords = make([]Coord, p.Dimension)
	seen := make([]bool, p.Dimension)
	for k := 0; k < p.Dimension; k++ {
		if !in.next() {
			return errors.Wrapf(ErrMissingData, "NODE_COORD_SECTION: %d of %d nodes", k, p.Dimension)
		}
		f := strings.Fields(in.text)
		if len(f) < 3 {
			return errors.Wrapf(ErrMalformed, "coordinate %q", in.text)
		}
		id, err := strconv.Atoi(f[0])
		if err != nil || id < 1 || id > p.Dimension || seen[id-1] {
			return errors.Wrapf(ErrMalformed, "node id %q", f[0])
		}
		x, errX := strconv.ParseFloat(f[1], 64)
		y, errY := strconv.ParseFloat(f[2], 64)
		if errX != nil || errY != nil {
			return errors.Wrapf(ErrMalformed, "coordinate %q", in.text)
		}
		seen[id-1] = true
		p.Coords[id-1] = Coord{ID: id, X: x, Y: y}
	}

	return nil
}

func readWeights(in *lines, p *Problem) error {
	if p.Dimension == 0 {
		return ErrMissingDimension
	}
	if p.Format == "" {
		p.Format = FullMatrix
	}
	n := p.Dimension
	want := p.Format.entries(n)
	// Grow with the data actually present rather than trusting DIMENSION.
	values := make([]float64, 0, min(want, 4096))
	for len(values) < want {
		if !in.next() {
			return errors.Wrapf(ErrMissingData, "EDGE_WEIGHT_SECTION: %d of %d values", len(values), want)
		}
		for _, tok := range strings.Fields(in.text) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return errors.Wrapf(ErrMalformed, "weight %q", tok)
			}
			values = append(values, v)
		}
	}
	if len(values) != want {
		return errors.Wrapf(ErrMalformed, "%d weights, expected %d", len(values), want)
	}

	p.Weights = make([][]float64, n)
	for i := range p.Weights {
		p.Weights[i] = make([]float64, n)
	}
	k := 0
	set := func(i, j int) {
		p.Weights[i][j], p.Weights[j][i] = values[k], values[k]
		k++
	}
	switch p.Format {
	case FullMatrix:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				p.Weights[i][j] = values[k]
				k++
			}
		}
	case UpperRow:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				set(i, j)
			}
		}
	case LowerRow:
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				set(i, j)
			}
		}
	case UpperDiagRow:
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				set(i, j)
			}
		}
	case LowerDiagRow:
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				set(i, j)
			}
		}
	}

	return nil
}

func skipRows(in *lines, p *Problem) error {
	if p.Dimension == 0 {
		return ErrMissingDimension
	}
	for k := 0; k < p.Dimension; k++ {
		if !in.next() {
			return errors.Wrap(ErrMissingData, "DISPLAY_DATA_SECTION")
		}
	}

	return nil
}

// finish validates a fully read problem.
func finish(p *Problem, readErr error) (*Problem, error) {
	if readErr != nil {
		return nil, errors.Wrap(readErr, "tsplib: read")
	}
	if p.Dimension == 0 {
		return nil, ErrMissingDimension
	}
	switch {
	case p.WeightType == "":
		return nil, errors.Wrap(ErrMissingData, "EDGE_WEIGHT_TYPE")
	case p.WeightType == Explicit && p.Weights == nil:
		return nil, errors.Wrap(ErrMissingData, "EDGE_WEIGHT_SECTION")
	case p.WeightType.coordinateBased() && p.Coords == nil:
		return nil, errors.Wrap(ErrMissingData, "NODE_COORD_SECTION")
	}

	return p, nil
}
