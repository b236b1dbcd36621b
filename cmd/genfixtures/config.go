package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"cloudeng.io/errors"
	"github.com/go-playground/validator/v10"
	"github.com/rabitt1ove/fiscalyear"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultConfig []byte

var errInvalidConfig = errors.New("invalid config")

// Config selects the dates and definitions fixtures are generated for.
type Config struct {
	Dates       []string `yaml:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
	Definitions []string `yaml:"definitions" validate:"dive,required,definition"`
}

// fixtureSet is a Config resolved against a catalog.
type fixtureSet struct {
	ids   []string
	dates []time.Time
}

// loadConfig reads the config at path, or the embedded default when path
// is empty.
func loadConfig(path string) (*Config, error) {
	data := defaultConfig
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		data = b
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", errInvalidConfig)
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// lookupDefinition finds a definition by id, falling back to matching its
// fiscal-year start so "04-01" selects "April 1".
func lookupDefinition(cat *fiscalyear.Catalog, id string) (fiscalyear.Definition, bool) {
	if def, ok := cat.Definition(id); ok {
		return def, true
	}
	s, err := fiscalyear.ParseStart(id)
	if err != nil {
		return fiscalyear.Definition{}, false
	}
	return cat.DefinitionByStart(s)
}

func newValidator(cat *fiscalyear.Catalog) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("definition", func(fl validator.FieldLevel) bool {
		_, ok := lookupDefinition(cat, fl.Field().String())
		return ok
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// resolve validates the config and maps it onto the catalog. Duplicate
// definitions are dropped, keeping the first.
func (c *Config) resolve(cat *fiscalyear.Catalog) (*fixtureSet, error) {
	v, err := newValidator(cat)
	if err != nil {
		return nil, err
	}
	if err := v.Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}

	set := &fixtureSet{}
	if len(c.Definitions) == 0 {
		set.ids = cat.IDs()
	}
	for _, id := range c.Definitions {
		def, _ := lookupDefinition(cat, id)
		if !slices.Contains(set.ids, def.ID) {
			set.ids = append(set.ids, def.ID)
		}
	}
	for _, s := range c.Dates {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q: %v", errInvalidConfig, s, err)
		}
		set.dates = append(set.dates, t)
	}
	return set, nil
}

func loadFixtureSet(path string, cat *fiscalyear.Catalog) (*fixtureSet, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	set, err := cfg.resolve(cat)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", path, "dates", len(set.dates), "definitions", set.ids)
	return set, nil
}
