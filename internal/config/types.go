package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gopak/depsort/internal/graph"
)

type Package struct {
	Name      string  `yaml:"name" json:"name"`
	DependsOn string  `yaml:"depends_on" json:"depends_on,omitempty"`
	Install   Command `yaml:"install" json:"install"`
	Remove    Command `yaml:"remove" json:"remove"`
}

type Manifest struct {
	Packages []Package `yaml:"packages" json:"packages"`
}

// Declarations returns one declaration per package in manifest order.
func (m Manifest) Declarations() []graph.Declaration {
	out := make([]graph.Declaration, 0, len(m.Packages))
	for _, p := range m.Packages {
		out = append(out, graph.Declaration{Package: p.Name, Dependency: p.DependsOn})
	}
	return out
}

type Command struct {
	Command     string `yaml:"command" json:"command"`
	RequireRoot bool   `yaml:"require_root" json:"require_root"`
}

func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		c.Command = value.Value
		c.RequireRoot = false
		return nil
	case yaml.MappingNode:
		var aux struct {
			Command     string `yaml:"command"`
			RequireRoot *bool  `yaml:"require_root"`
		}
		if err := value.Decode(&aux); err != nil {
			return err
		}
		c.Command = aux.Command
		c.RequireRoot = aux.RequireRoot != nil && *aux.RequireRoot
		return nil
	default:
		return fmt.Errorf("invalid command node kind: %d", value.Kind)
	}
}
