package trick

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTrick is returned for catalog entries that can never match.
var ErrInvalidTrick = errors.New("invalid trick")

// MinDuration is the shortest lock a trick can hold.
const MinDuration = 0.01

//go:embed tricks.yaml
var defaultCatalogYAML []byte

// Definition is one catalog entry. Animation names are opaque to the
// simulation and are handed to the animator ports as-is.
type Definition struct {
	Name           string      `yaml:"name"`
	Directions     []Direction `yaml:"directions"`
	Animation      string      `yaml:"animation"`
	BoardAnimation string      `yaml:"board_animation"`
	Duration       float64     `yaml:"duration"` // seconds the trick stays locked
}

func (d Definition) validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: unnamed trick", ErrInvalidTrick)
	}
	if len(d.Directions) == 0 {
		return fmt.Errorf("%w: %q has no directions", ErrInvalidTrick, d.Name)
	}
	if d.Duration < 0 {
		return fmt.Errorf("%w: %q has a negative duration", ErrInvalidTrick, d.Name)
	}
	for _, dir := range d.Directions {
		if dir < Left || dir > Down {
			return fmt.Errorf("%w: %q uses %v", ErrInvalidTrick, d.Name, dir)
		}
	}
	return nil
}

// Catalog is an immutable, ordered list of tricks. Catalog order breaks
// ties between matches of equal length.
type Catalog struct {
	tricks []Definition
}

type catalogFile struct {
	Tricks []Definition `yaml:"tricks"`
}

// NewCatalog validates and copies defs.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{tricks: make([]Definition, 0, len(defs))}
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		d.Directions = append([]Direction(nil), d.Directions...)
		c.tricks = append(c.tricks, d)
	}
	return c, nil
}

// LoadCatalog reads a YAML document of the form {tricks: [...]}.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode trick catalog: %w", err)
	}
	return NewCatalog(file.Tricks...)
}

// LoadCatalogFile reads the catalog document at path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trick catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tricks)
}

// Tricks returns a copy of the catalog entries in order.
func (c *Catalog) Tricks() []Definition {
	if c == nil {
		return nil
	}
	return append([]Definition(nil), c.tricks...)
}

// BestSuffixMatch returns the longest trick whose direction sequence equals
// the tail of buf. Among equal lengths the earliest catalog entry wins.
func (c *Catalog) BestSuffixMatch(buf []Direction) (Definition, bool) {
	if c == nil || len(buf) == 0 {
		return Definition{}, false
	}

	best := -1
	bestLen := 0
	for i, t := range c.tricks {
		n := len(t.Directions)
		if n > len(buf) || n <= bestLen {
			continue
		}
		if matchesSuffix(buf, t.Directions) {
			best = i
			bestLen = n
		}
	}

	if best < 0 {
		return Definition{}, false
	}
	return c.tricks[best], true
}

// SingleDirection returns the first one-direction trick for d.
func (c *Catalog) SingleDirection(d Direction) (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}
	for _, t := range c.tricks {
		if len(t.Directions) == 1 && t.Directions[0] == d {
			return t, true
		}
	}
	return Definition{}, false
}

func matchesSuffix(buf, pattern []Direction) bool {
	start := len(buf) - len(pattern)
	for i, d := range pattern {
		if buf[start+i] != d {
			return false
		}
	}
	return true
}
