// Package resolve computes module specifiers and import bindings for the
// generated entry module, and locates the argument-parsing library on disk.
package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

// strippedExtensions are removed from relative import specifiers; the
// TypeScript toolchain resolves them back.
var strippedExtensions = []string{".d.ts", ".tsx", ".mts", ".cts", ".ts", ".jsx", ".mjs", ".js"}

// ImportSpecifier returns the specifier outputFile uses to import sourceFile:
// relative, slash-separated, always starting with "./" or "../", extension stripped.
func ImportSpecifier(outputFile, sourceFile string) string {
	from := filepath.Dir(outputFile)
	rel, err := filepath.Rel(from, sourceFile)
	if err != nil {
		rel = sourceFile
	}
	rel = filepath.ToSlash(rel)
	rel = stripExtension(rel)

	if !strings.HasPrefix(rel, "../") && !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "/") {
		rel = "./" + rel
	}
	return rel
}

func stripExtension(p string) string {
	for _, ext := range strippedExtensions {
		if strings.HasSuffix(p, ext) {
			return strings.TrimSuffix(p, ext)
		}
	}
	return p
}

// DefaultImportName returns the local binding for a default import: the
// declaration name when the export is named, otherwise the camelCased file stem.
func DefaultImportName(decl, sourceFile string) string {
	if decl != "" {
		return decl
	}
	stem := stripExtension(filepath.Base(sourceFile))
	name := toCamelCase(stem)
	if !jsast.IsIdentifier(name) {
		return "_" + name
	}
	return name
}

// ModuleResolver locates an installed package by name starting from a directory.
type ModuleResolver interface {
	Resolve(lib, fromDir string) (string, error)
}

// NodeResolver follows the node_modules lookup: it walks up from fromDir and
// returns the first node_modules/<lib> directory found.
type NodeResolver struct{}

// Resolve implements ModuleResolver.
func (NodeResolver) Resolve(lib, fromDir string) (string, error) {
	if lib == "" {
		return "", errors.NewInvalidInputError("empty module name")
	}
	if filepath.IsAbs(lib) {
		return lib, nil
	}

	dir, err := filepath.Abs(fromDir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", fromDir)
	}

	for {
		candidate := filepath.Join(dir, "node_modules", filepath.FromSlash(lib))
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.WithHintf(
		errors.NewNotFoundError("module %q from %s", lib, fromDir),
		"install it with `npm install %s` or pass an absolute path with --lib", lib)
}

// StaticResolver resolves every module to a fixed directory map. Missing
// entries fall back to Fallback when set.
type StaticResolver struct {
	Modules  map[string]string
	Fallback ModuleResolver
}

// Resolve implements ModuleResolver.
func (s StaticResolver) Resolve(lib, fromDir string) (string, error) {
	if p, ok := s.Modules[lib]; ok {
		return p, nil
	}
	if s.Fallback != nil {
		return s.Fallback.Resolve(lib, fromDir)
	}
	return "", errors.NewNotFoundError("module %q", lib)
}
