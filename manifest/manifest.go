// Package manifest builds folder trees from declarative YAML or JSON
// documents, so scaffolding layouts can live in version-controlled files
// instead of code.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	luckytemplate "github.com/mdwagner/lucky-template"
	"github.com/mdwagner/lucky-template/internal/util"
)

// NodeType identifies the kind of node a definition creates.
type NodeType string

const (
	FileNodeType NodeType = "file"
	DirNodeType  NodeType = "dir"
)

// NodeDef is the declarative representation of a single node. Path is a
// POSIX-style relative path; missing intermediate folders are created on
// demand. Content and Generator are mutually exclusive; a file with neither
// is empty.
type NodeDef struct {
	Path      string            `yaml:"path" json:"path"`
	Type      NodeType          `yaml:"type,omitempty" json:"type,omitempty"` // Default is file
	Content   *string           `yaml:"content,omitempty" json:"content,omitempty"`
	Generator *string           `yaml:"generator,omitempty" json:"generator,omitempty"`
	Args      map[string]string `yaml:"args,omitempty" json:"args,omitempty"` // Generator-specific options
}

// Load reads node definitions from a file. Supports both YAML (.yaml, .yml)
// and JSON (.json) formats, determined by extension.
func Load(path string) ([]NodeDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var defs []NodeDef

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown manifest file extension: %s", path)
	}

	return defs, nil
}

// Build assembles a folder tree from node definitions, in order. Generators
// referenced by name must be registered first (see [Register] and
// [RegisterBuiltins]).
func Build(defs []NodeDef) (*luckytemplate.Folder, error) {
	logger := util.GetLogger("manifest")
	return luckytemplate.BuildFolder(func(root *luckytemplate.Folder) error {
		for _, def := range defs {
			if err := addNode(root, def); err != nil {
				logger.Error().Err(err).Str("path", def.Path).Msg("Failed to build manifest node")
				return err
			}
			logger.Debug().Str("path", def.Path).Msg("Added manifest node")
		}
		return nil
	})
}

func addNode(root *luckytemplate.Folder, def NodeDef) error {
	switch def.Type {
	case DirNodeType:
		if def.Content != nil || def.Generator != nil {
			return fmt.Errorf("dir %q cannot have content", def.Path)
		}
		_, err := root.AddFolder(def.Path)
		return err
	case FileNodeType, "":
		src, err := fileSource(def)
		if err != nil {
			return err
		}
		return root.AddFile(def.Path, src)
	default:
		return fmt.Errorf("unknown node type %q for %q", def.Type, def.Path)
	}
}

// fileSource resolves a definition's content source: literal content,
// a registered generator, or nil for an empty file.
func fileSource(def NodeDef) (luckytemplate.Source, error) {
	if def.Content != nil && def.Generator != nil {
		return nil, fmt.Errorf("file %q has both content and generator", def.Path)
	}
	if def.Content != nil {
		return luckytemplate.String(*def.Content), nil
	}
	if def.Generator != nil {
		return newGeneratorSource(*def.Generator, def.Args)
	}
	return nil, nil
}
