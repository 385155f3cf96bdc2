package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Method tokens used in error messages.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// Minimum sizes per topology.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinCompleteNodes = 1
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinGridDim       = 1
	MinRandomNodes   = 1
)

// Constructor describes one topology: its vertex count and the pairs it
// joins. Build it with Build.
type Constructor struct {
	name  string
	n     int
	err   error
	pairs func(cfg config, add func(u, v int) error) error
}

// Name returns the method token of the topology.
func (c Constructor) Name() string { return c.name }

// Order returns the number of vertices the topology creates.
func (c Constructor) Order() int { return c.n }

// Build creates a labeled graph with the shape of c.
//
// Errors: the parameter error recorded by the constructor, or the first
// core error raised while labeling or joining vertices, wrapped with the
// method token.
func Build(c Constructor, opts ...Option) (*core.Graph, error) {
	if c.pairs == nil {
		return nil, fmt.Errorf("Build: %w", ErrUnknownTopology)
	}
	if c.err != nil {
		return nil, c.err
	}
	cfg := newConfig(opts...)

	g, err := core.NewGraph(c.n, cfg.gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	for i := 0; i < c.n; i++ {
		if err = g.AddVertexLabel(i, cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("%s: label %d: %w", c.name, i, err)
		}
	}

	add := func(u, v int) error {
		w := cfg.weightFn(cfg.rng)
		if err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d—%d, w=%d): %w", c.name, u, v, w, err)
		}
		return nil
	}
	if err = c.pairs(cfg, add); err != nil {
		return nil, err
	}

	return g, nil
}

// tooFew returns a Constructor that fails with ErrTooFewVertices.
func tooFew(method string, got, min int) Constructor {
	return Constructor{
		name:  method,
		err:   fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices),
		pairs: func(config, func(int, int) error) error { return nil },
	}
}

// Path joins 0—1—…—(n-1).
func Path(n int) Constructor {
	if n < MinPathNodes {
		return tooFew(methodPath, n, MinPathNodes)
	}
	return Constructor{name: methodPath, n: n, pairs: func(_ config, add func(u, v int) error) error {
		for i := 0; i+1 < n; i++ {
			if err := add(i, i+1); err != nil {
				return err
			}
		}
		return nil
	}}
}

// Cycle is Path(n) closed by (n-1)—0.
func Cycle(n int) Constructor {
	if n < MinCycleNodes {
		return tooFew(methodCycle, n, MinCycleNodes)
	}
	path := Path(n).pairs
	return Constructor{name: methodCycle, n: n, pairs: func(cfg config, add func(u, v int) error) error {
		if err := path(cfg, add); err != nil {
			return err
		}
		return add(n-1, 0)
	}}
}

// Complete joins every pair i<j.
func Complete(n int) Constructor {
	if n < MinCompleteNodes {
		return tooFew(methodComplete, n, MinCompleteNodes)
	}
	return Constructor{name: methodComplete, n: n, pairs: func(_ config, add func(u, v int) error) error {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := add(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}}
}

// Star joins vertex 0 to every other vertex.
func Star(n int) Constructor {
	if n < MinStarNodes {
		return tooFew(methodStar, n, MinStarNodes)
	}
	return Constructor{name: methodStar, n: n, pairs: func(_ config, add func(u, v int) error) error {
		for i := 1; i < n; i++ {
			if err := add(0, i); err != nil {
				return err
			}
		}
		return nil
	}}
}

// Wheel is a hub 0 joined to a rim cycle 1—2—…—(n-1)—1.
func Wheel(n int) Constructor {
	if n < MinWheelNodes {
		return tooFew(methodWheel, n, MinWheelNodes)
	}
	return Constructor{name: methodWheel, n: n, pairs: func(_ config, add func(u, v int) error) error {
		for i := 1; i < n; i++ {
			if err := add(0, i); err != nil {
				return err
			}
		}
		for i := 1; i < n-1; i++ {
			if err := add(i, i+1); err != nil {
				return err
			}
		}
		return add(n-1, 1)
	}}
}

// Grid is a rows×cols lattice; vertex r*cols+c joins its right and lower
// neighbors.
func Grid(rows, cols int) Constructor {
	if rows < MinGridDim || cols < MinGridDim {
		return Constructor{
			name:  methodGrid,
			err:   fmt.Errorf("%s: %dx%d below %d: %w", methodGrid, rows, cols, MinGridDim, ErrTooFewVertices),
			pairs: func(config, func(int, int) error) error { return nil },
		}
	}
	return Constructor{name: methodGrid, n: rows * cols, pairs: func(_ config, add func(u, v int) error) error {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := add(i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := add(i, i+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}}
}

// RandomSparse joins each pair i<j independently with probability p
// (Erdős–Rényi). 0 < p < 1 needs an RNG; p == 0 and p == 1 are
// deterministic.
func RandomSparse(n int, p float64) Constructor {
	if n < MinRandomNodes {
		return tooFew(methodRandomSparse, n, MinRandomNodes)
	}
	if p < 0 || p > 1 {
		return Constructor{
			name:  methodRandomSparse,
			err:   fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability),
			pairs: func(config, func(int, int) error) error { return nil },
		}
	}
	return Constructor{name: methodRandomSparse, n: n, pairs: func(cfg config, add func(u, v int) error) error {
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == 0:
					continue
				case p < 1 && cfg.rng.Float64() >= p:
					continue
				}
				if err := add(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}}
}

// Params are the size parameters ParseTopology reads. Each topology uses
// only the fields it needs.
type Params struct {
	N    int
	Rows int
	Cols int
	P    float64
}

// ParseTopology returns the Constructor named by name, case-insensitively:
// path, cycle, complete, star, wheel, grid or random.
func ParseTopology(name string, p Params) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "path":
		return Path(p.N), nil
	case "cycle":
		return Cycle(p.N), nil
	case "complete":
		return Complete(p.N), nil
	case "star":
		return Star(p.N), nil
	case "wheel":
		return Wheel(p.N), nil
	case "grid":
		return Grid(p.Rows, p.Cols), nil
	case "random":
		return RandomSparse(p.N, p.P), nil
	default:
		return Constructor{}, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
}
