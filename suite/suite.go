package suite

import (
	"fmt"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goccy/go-yaml"

	"github.com/signadot/robdd/encode"
)

// Case is one named formula in a suite.
type Case struct {
	Name    string          `yaml:"name"`
	Formula string          `yaml:"formula"`
	Vars    []string        `yaml:"vars"`
	Formats []encode.Format `yaml:"formats,omitempty"`
	Verify  bool            `yaml:"verify,omitempty"`
}

// Suite is a list of cases sharing an output directory.
type Suite struct {
	OutDir string `yaml:"outdir,omitempty"`
	Cases  []Case `yaml:"cases"`
}

// Parse decodes and validates suite YAML.  Missing fields get
// defaults: outdir "outputs", formats [text].
func Parse(d []byte) (*Suite, error) {
	s := &Suite{}
	if err := yaml.Unmarshal(d, s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the suite file at path.
func Load(path string) (*Suite, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	s, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Suite) validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("%w: no cases", ErrConfig)
	}
	seen := mapset.NewSet[string]()
	for i := range s.Cases {
		c := &s.Cases[i]
		switch {
		case c.Name == "":
			return fmt.Errorf("%w: case %d has no name", ErrConfig, i)
		case c.Formula == "":
			return fmt.Errorf("%w: case %q has no formula", ErrConfig, c.Name)
		case len(c.Vars) == 0:
			return fmt.Errorf("%w: case %q has no vars", ErrConfig, c.Name)
		}
		if !seen.Add(c.Name) {
			return fmt.Errorf("%w: duplicate case %q", ErrConfig, c.Name)
		}
		if len(c.Formats) == 0 {
			c.Formats = []encode.Format{encode.TextFormat}
		}
	}
	if s.OutDir == "" {
		s.OutDir = "outputs"
	}
	return nil
}
