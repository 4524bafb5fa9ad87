// Package tsplib reads and writes symmetric TSP instances in the TSPLIB
// format and turns them into core.Graph values.
//
// Supported header keywords:
//
//	NAME, TYPE (TSP), COMMENT, DIMENSION,
//	EDGE_WEIGHT_TYPE   EXPLICIT | EUC_2D | CEIL_2D | ATT | GEO | MAN_2D | MAX_2D
//	EDGE_WEIGHT_FORMAT FULL_MATRIX | UPPER_ROW | LOWER_ROW |
//	                   UPPER_DIAG_ROW | LOWER_DIAG_ROW
//	NODE_COORD_SECTION, EDGE_WEIGHT_SECTION, DISPLAY_DATA_SECTION (skipped), EOF
//
// Nodes are numbered 1..DIMENSION. Distances follow the TSPLIB rounding
// rules, so every weight is integral.
//
// Errors are wrapped with github.com/pkg/errors and carry the offending line;
// errors.Is against the package sentinels still works.
package tsplib
