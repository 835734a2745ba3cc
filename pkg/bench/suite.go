package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mpavel/cliquer/pkg/errors"
	"github.com/mpavel/cliquer/pkg/gen"
	"github.com/mpavel/cliquer/pkg/graph"
	"github.com/mpavel/cliquer/pkg/solver"
)

// TargetMax selects maximum-clique mode for a dataset or a suite's
// defaults. TOML cannot distinguish an explicit target = 0 from an absent
// one, so maximum mode gets its own sentinel value.
const TargetMax = -1

// Params are the solve parameters for a dataset. Zero-valued fields inherit
// the suite defaults; Target set to TargetMax selects maximum-clique mode.
type Params struct {
	Target        int      `toml:"target"`
	Algorithms    []string `toml:"algorithms"`
	MaxIterations int      `toml:"max_iterations"`
	Tenure        int      `toml:"tenure"`
	Seed          int64    `toml:"seed"`
}

// tabuOptions converts the params to solver options.
func (p Params) tabuOptions() solver.TabuOptions {
	return solver.TabuOptions{
		MaxIterations: p.MaxIterations,
		Tenure:        p.Tenure,
		Seed:          p.Seed,
	}
}

// Dataset is one benchmark input: either an edge-list file or a synthetic
// generator spec.
type Dataset struct {
	Name string `toml:"name"`

	// File-backed datasets.
	File string `toml:"file"`

	// Generator-backed datasets. Generator is one of "random", "planted",
	// "complete", or "demo".
	Generator  string  `toml:"generator"`
	Nodes      int     `toml:"nodes"`
	EdgeProb   float64 `toml:"edge_prob"`
	CliqueSize int     `toml:"clique_size"`
	GenSeed    int64   `toml:"gen_seed"`

	Params
}

// Suite is a parsed benchmark suite.
type Suite struct {
	Name     string    `toml:"name"`
	Defaults Params    `toml:"defaults"`
	Datasets []Dataset `toml:"dataset"`

	// dir is the suite file's directory; relative dataset paths resolve
	// against it.
	dir string
}

// LoadSuite reads and validates a TOML suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read suite %s", path)
	}
	suite, err := ParseSuite(data)
	if err != nil {
		return nil, err
	}
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	suite.dir = filepath.Dir(path)
	return suite, nil
}

// ParseSuite parses suite TOML and validates every dataset.
func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	if err := toml.Unmarshal(data, &suite); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSuite, err, "malformed suite file")
	}

	if len(suite.Datasets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSuite, "suite defines no datasets")
	}

	seen := make(map[string]bool)
	for i := range suite.Datasets {
		ds := &suite.Datasets[i]
		if err := errors.ValidateDatasetName(ds.Name); err != nil {
			return nil, err
		}
		if seen[ds.Name] {
			return nil, errors.New(errors.ErrCodeInvalidSuite, "duplicate dataset name %q", ds.Name)
		}
		seen[ds.Name] = true

		if ds.File == "" && ds.Generator == "" {
			return nil, errors.New(errors.ErrCodeInvalidSuite, "dataset %q needs a file or a generator", ds.Name)
		}
		if ds.File != "" && ds.Generator != "" {
			return nil, errors.New(errors.ErrCodeInvalidSuite, "dataset %q has both a file and a generator", ds.Name)
		}

		params := ds.params(suite.Defaults)
		if err := errors.ValidateTarget(params.Target); err != nil {
			return nil, err
		}
		for _, name := range params.Algorithms {
			if err := errors.ValidateAlgorithmName(name); err != nil {
				return nil, err
			}
		}
	}

	return &suite, nil
}

// params merges suite defaults into the dataset's own parameters. An empty
// algorithm list falls back to all solvers; a TargetMax target becomes the
// solvers' maximum-clique mode (target 0).
func (ds Dataset) params(defaults Params) Params {
	p := ds.Params
	if p.Target == 0 {
		p.Target = defaults.Target
	}
	if len(p.Algorithms) == 0 {
		p.Algorithms = defaults.Algorithms
	}
	if p.MaxIterations == 0 {
		p.MaxIterations = defaults.MaxIterations
	}
	if p.Tenure == 0 {
		p.Tenure = defaults.Tenure
	}
	if p.Seed == 0 {
		p.Seed = defaults.Seed
	}
	if len(p.Algorithms) == 0 {
		p.Algorithms = solver.Names()
	}
	switch p.Target {
	case TargetMax:
		p.Target = 0
	case 0:
		p.Target = solver.DefaultTarget
	}
	return p
}

// Materialize produces the dataset's graph, reading the edge-list file or
// running the configured generator.
func (ds Dataset) Materialize(warn graph.WarnFunc) (*graph.Graph, error) {
	if ds.File != "" {
		g, _, err := graph.ReadEdgeListFile(ds.File, warn)
		return g, err
	}

	switch ds.Generator {
	case "random":
		return gen.New(ds.GenSeed).Random(ds.Nodes, ds.EdgeProb), nil
	case "planted":
		k := ds.CliqueSize
		if k == 0 {
			k = solver.DefaultTarget
		}
		g, _, err := gen.New(ds.GenSeed).Planted(ds.Nodes, ds.EdgeProb, k)
		return g, err
	case "complete":
		return gen.Complete(ds.Nodes), nil
	case "demo":
		return gen.Demo(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidSuite, "unknown generator %q", ds.Generator)
	}
}

// ResolvePaths makes relative dataset file paths absolute against the suite
// file's directory.
func (s *Suite) ResolvePaths() {
	for i := range s.Datasets {
		ds := &s.Datasets[i]
		if ds.File != "" && !filepath.IsAbs(ds.File) && s.dir != "" {
			ds.File = filepath.Join(s.dir, ds.File)
		}
	}
}

// String summarizes the suite for logging.
func (s *Suite) String() string {
	return fmt.Sprintf("%s (%d datasets)", s.Name, len(s.Datasets))
}
