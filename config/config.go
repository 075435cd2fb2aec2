package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/secretsanta/output"
	"github.com/katalvlaran/secretsanta/registry"
	"github.com/katalvlaran/secretsanta/santa"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up inside a config directory.
const FileName = "config.yaml"

// Config is a decoded configuration file.
type Config struct {
	Rules   Rules             `yaml:"Rules"`
	Output  Output            `yaml:"Output"`
	Names   People            `yaml:"Names" validate:"required,min=1,dive"`
	Rigging map[string]string `yaml:"Rigging" validate:"dive,keys,required,endkeys,required"`
}

// Rules mirrors santa.Rules. Pointers make a missing key detectable.
type Rules struct {
	WeightHistory       *bool    `yaml:"WeightHistory" validate:"required"`
	WeightCoupleHistory *bool    `yaml:"WeightCoupleHistory" validate:"required"`
	GrandfatherPeriod   *float64 `yaml:"GrandfatherPeriod" validate:"required,gte=0"`
	PartnerToPartner    *bool    `yaml:"PartnerToPartner" validate:"required"`
	Triangles           *bool    `yaml:"Triangles" validate:"required"`
	CoupleToCouple      *bool    `yaml:"CoupleToCouple" validate:"required"`
}

// Output mirrors output.Options.
type Output struct {
	PrintingOrder string `yaml:"PrintingOrder" validate:"printorder"`
	PrintToScreen *bool  `yaml:"PrintToScreen"`
	WriteToFile   bool   `yaml:"WriteToFile"`
	Append        bool   `yaml:"Append"`
	FileName      string `yaml:"FileName"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w: %w", path, ErrMissingFile, err)
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadDir reads FileName from dir.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Parse decodes and validates a configuration document, filling output
// defaults (FamilyOrder, print to screen, output.DefaultFileName).
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Output.PrintingOrder == "" {
		c.Output.PrintingOrder = string(output.FamilyOrder)
	}
	if c.Output.PrintToScreen == nil {
		yes := true
		c.Output.PrintToScreen = &yes
	}
	if c.Output.FileName == "" {
		c.Output.FileName = output.DefaultFileName
	}
}

// Registry builds the participant registry in file order.
func (c *Config) Registry() (*registry.Registry, error) {
	entries := make([]registry.Entry, len(c.Names))
	var (
		i int
		p Person
		h *string
	)
	for i, p = range c.Names {
		entries[i] = registry.Entry{Name: p.Name, Partner: p.Partner}
		if len(p.History) == 0 {
			continue
		}
		entries[i].History = make([]string, len(p.History))
		for j := range p.History {
			if h = p.History[j]; h != nil {
				entries[i].History[j] = *h
			}
		}
	}
	return registry.New(entries)
}

// SantaRules converts the validated rule section.
func (c *Config) SantaRules() santa.Rules {
	return santa.Rules{
		WeightHistory:       deref(c.Rules.WeightHistory),
		WeightCoupleHistory: deref(c.Rules.WeightCoupleHistory),
		GrandfatherPeriod:   derefFloat(c.Rules.GrandfatherPeriod),
		PartnerToPartner:    deref(c.Rules.PartnerToPartner),
		Triangles:           deref(c.Rules.Triangles),
		CoupleToCouple:      deref(c.Rules.CoupleToCouple),
	}
}

// SantaRigging converts the rigging section; nil when there is none.
func (c *Config) SantaRigging() santa.Rigging {
	if len(c.Rigging) == 0 {
		return nil
	}
	rig := make(santa.Rigging, len(c.Rigging))
	for g, r := range c.Rigging {
		rig[g] = r
	}
	return rig
}

// Draw builds the registry and the validated draw in one step.
func (c *Config) Draw() (*santa.Draw, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	return santa.NewDraw(reg, c.SantaRules(), c.SantaRigging())
}

// OutputOptions converts the output section.
func (c *Config) OutputOptions() (output.Options, error) {
	order, err := output.ParseOrder(c.Output.PrintingOrder)
	if err != nil {
		return output.Options{}, err
	}
	return output.Options{
		Order:         order,
		PrintToScreen: c.Output.PrintToScreen == nil || *c.Output.PrintToScreen,
		WriteToFile:   c.Output.WriteToFile,
		Append:        c.Output.Append,
		FileName:      c.Output.FileName,
	}, nil
}

func deref(b *bool) bool { return b != nil && *b }

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
