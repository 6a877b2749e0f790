package transform

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

// Descriptor is the on-disk description of one function signature.
//
// Example (YAML):
//
//	generator: ">=0.1.0"
//	name: greet
//	description: Greets someone
//	entry: ./src/greet.ts
//	positionals:
//	  - name: who
//	    type: string
//	options:
//	  - name: loud
//	    alias: l
//	    type: boolean
//	ref:
//	  ./src/greet.ts:
//	    default: [greet]
type Descriptor struct {
	Generator   string                `json:"generator,omitempty"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Entry       string                `json:"entry,omitempty"`
	Positionals []ArgSpec             `json:"positionals,omitempty"`
	Options     []ArgSpec             `json:"options,omitempty"`
	Ref         map[string]RefExports `json:"ref,omitempty"`

	// Path is the file the descriptor was loaded from.
	Path string `json:"-"`
}

// ArgSpec describes one positional or option.
type ArgSpec struct {
	Name         string        `json:"name"`
	Type         string        `json:"type,omitempty"`
	Describe     string        `json:"describe,omitempty"`
	Alias        string        `json:"alias,omitempty"`
	Choices      []interface{} `json:"choices,omitempty"`
	Default      interface{}   `json:"default,omitempty"`
	DemandOption bool          `json:"demandOption,omitempty"`
	Array        bool          `json:"array,omitempty"`
	Optional     bool          `json:"optional,omitempty"`
}

//go:embed descriptor.schema.json
var descriptorSchemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func descriptorSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var schemaDoc any
		if err := json.Unmarshal(descriptorSchemaJSON, &schemaDoc); err != nil {
			schemaErr = errors.Wrap(err, "unmarshal descriptor schema")
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("descriptor.schema.json", schemaDoc); err != nil {
			schemaErr = errors.Wrap(err, "add descriptor schema resource")
			return
		}
		compiledSchema, schemaErr = c.Compile("descriptor.schema.json")
		if schemaErr != nil {
			schemaErr = errors.Wrap(schemaErr, "compile descriptor schema")
		}
	})
	return compiledSchema, schemaErr
}

// LoadDescriptor reads a descriptor file. The decoder is chosen by extension:
// .yaml/.yml, .toml, or .json.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptor %s", path)
	}

	desc, err := ParseDescriptor(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}
	desc.Path = abs
	return desc, nil
}

// ParseDescriptor decodes descriptor content in the format named by ext,
// validates it against the descriptor schema and returns the typed form.
func ParseDescriptor(data []byte, ext string) (*Descriptor, error) {
	var doc interface{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "invalid YAML"), errors.ErrInvalidInput)
		}
	case ".toml":
		var m map[string]interface{}
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "invalid TOML"), errors.ErrInvalidInput)
		}
		doc = m
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "invalid JSON"), errors.ErrInvalidInput)
		}
	default:
		return nil, errors.WithHint(
			errors.NewUnsupportedError("descriptor format %q", ext),
			"use a .yaml, .yml, .toml or .json file")
	}

	// Round-trip through JSON so every format reaches the schema validator
	// and the typed decoder with the same value shapes.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "descriptor is not representable as JSON"), errors.ErrInvalidInput)
	}
	var instance any
	if err := json.Unmarshal(normalized, &instance); err != nil {
		return nil, errors.Wrap(err, "re-decode descriptor")
	}

	schema, err := descriptorSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(instance); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "descriptor does not match schema"), errors.ErrInvalidInput)
	}

	var desc Descriptor
	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&desc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode descriptor"), errors.ErrInvalidInput)
	}
	return &desc, nil
}

// CheckGenerator verifies that the running generator version satisfies the
// descriptor's `generator` constraint. Development builds whose version is
// not semver skip the check.
func CheckGenerator(constraint, current string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "invalid generator constraint %q", constraint), errors.ErrInvalidInput)
	}

	v, err := semver.NewVersion(current)
	if err != nil {
		return nil
	}

	if !c.Check(v) {
		return errors.WithHint(
			errors.NewUnsupportedError("descriptor requires cligen %s, running %s", constraint, current),
			"upgrade cligen or relax the generator constraint")
	}
	return nil
}

// Dir returns the directory relative paths in the descriptor are resolved against.
func (d *Descriptor) Dir() string {
	if d.Path == "" {
		return "."
	}
	return filepath.Dir(d.Path)
}

// EntryPath returns the absolute entry file path, or "" when none is declared.
func (d *Descriptor) EntryPath() string {
	if d.Entry == "" {
		return ""
	}
	return d.resolve(d.Entry)
}

func (d *Descriptor) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(d.Dir(), filepath.FromSlash(p))
}

// Result converts the descriptor into a validated transform Result.
func (d *Descriptor) Result() (*Result, error) {
	r := &Result{
		Name:        d.Name,
		Description: jsast.Str(d.Description),
	}

	for _, spec := range d.Positionals {
		call, err := definitionCall("positional", spec, positionalKeys)
		if err != nil {
			return nil, err
		}
		r.Positionals = append(r.Positionals, Positional{Name: spec.Name, Call: call, Optional: spec.Optional})
	}

	for _, spec := range d.Options {
		if spec.Optional {
			return nil, errors.NewInvalidInputError("option %q: optional only applies to positionals", spec.Name)
		}
		call, err := definitionCall("option", spec, optionKeys)
		if err != nil {
			return nil, err
		}
		r.Options = append(r.Options, Option{Name: spec.Name, Call: call})
	}

	if len(d.Ref) > 0 {
		r.Ref = make(map[string]RefExports, len(d.Ref))
		for file, exports := range d.Ref {
			r.Ref[d.resolve(file)] = exports
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
