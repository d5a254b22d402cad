package sshserve

import (
	"fmt"
	"strconv"
)

const usage = "usage: [rows cols [seed]] | level <id>"

type requestKind int

const (
	requestRandom requestKind = iota
	requestLevel
)

type request struct {
	kind    requestKind
	rows    int
	cols    int
	seed    uint64
	levelID string
}

// parseRequest reads a session command. Dimension bounds are left to the
// generator so the error names the limits.
func parseRequest(args []string, defRows, defCols int) (request, error) {
	if len(args) > 0 && args[0] == "run" {
		args = args[1:]
	}

	switch {
	case len(args) == 0:
		return request{kind: requestRandom, rows: defRows, cols: defCols}, nil

	case args[0] == "level":
		if len(args) != 2 {
			return request{}, fmt.Errorf("level takes exactly one id")
		}
		return request{kind: requestLevel, levelID: args[1]}, nil

	case len(args) == 2 || len(args) == 3:
		rows, err := strconv.Atoi(args[0])
		if err != nil {
			return request{}, fmt.Errorf("rows %q is not a number", args[0])
		}
		cols, err := strconv.Atoi(args[1])
		if err != nil {
			return request{}, fmt.Errorf("cols %q is not a number", args[1])
		}
		req := request{kind: requestRandom, rows: rows, cols: cols}
		if len(args) == 3 {
			seed, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return request{}, fmt.Errorf("seed %q is not a number", args[2])
			}
			req.seed = seed
		}
		return req, nil
	}

	return request{}, fmt.Errorf("unexpected arguments %v", args)
}
