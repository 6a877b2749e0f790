// Package emit turns rendered syntax trees into files: it prints them with a
// generated-code header, optionally strips types with esbuild, checks the
// result parses, and writes or compares it against disk.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

// Output formats.
const (
	FormatTS = "ts"
	FormatJS = "js"
)

const (
	generatedMarker = "// Code generated by cligen. DO NOT EDIT."
	sourcePrefix    = "// Source: "
	versionPrefix   = "// Generated with cligen "
)

// Header identifies where a generated file came from.
type Header struct {
	// Descriptor is the descriptor path, relative to the output when possible.
	Descriptor string
	Version    string
}

func (h *Header) String() string {
	var sb strings.Builder
	sb.WriteString(generatedMarker)
	sb.WriteString("\n")
	if h.Descriptor != "" {
		sb.WriteString(sourcePrefix)
		sb.WriteString(filepath.ToSlash(h.Descriptor))
		sb.WriteString("\n")
	}
	if h.Version != "" {
		sb.WriteString(versionPrefix)
		sb.WriteString(h.Version)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Print renders nodes as TypeScript, preceded by the header when one is given.
func Print(nodes []jsast.Node, header *Header) string {
	body := jsast.Print(nodes...)
	if header == nil {
		return body
	}
	return header.String() + "\n" + body
}

// Transpile strips TypeScript syntax and returns an ES module.
func Transpile(ts, filename string) (string, error) {
	result := api.Transform(ts, api.TransformOptions{
		Loader:     api.LoaderTS,
		Format:     api.FormatESModule,
		Target:     api.ES2020,
		Sourcefile: filename,
	})
	if len(result.Errors) > 0 {
		return "", syntaxError(filename, result.Errors)
	}
	return string(result.Code), nil
}

// Validate parses ts and reports the first syntax errors esbuild finds.
func Validate(ts, filename string) error {
	_, err := Transpile(ts, filename)
	return err
}

// Render prints nodes and converts them to the requested format. TypeScript
// output is still parsed so malformed trees never reach disk.
func Render(nodes []jsast.Node, header *Header, format, filename string) (string, error) {
	ts := Print(nodes, header)
	switch format {
	case "", FormatTS:
		if err := Validate(ts, filename); err != nil {
			return "", err
		}
		return ts, nil
	case FormatJS:
		js, err := Transpile(ts, filename)
		if err != nil {
			return "", err
		}
		if header != nil && !strings.HasPrefix(js, generatedMarker) {
			js = header.String() + "\n" + js
		}
		return js, nil
	default:
		return "", errors.WithHint(
			errors.NewUnsupportedError("output format %q", format),
			"use ts or js")
	}
}

func syntaxError(filename string, msgs []api.Message) error {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location != nil {
			lines = append(lines, fmt.Sprintf("%s:%d:%d: %s", filename, m.Location.Line, m.Location.Column, m.Text))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", filename, m.Text))
	}
	err := errors.Newf("generated code does not parse: %d error(s)", len(msgs))
	return errors.Mark(errors.WithDetail(err, strings.Join(lines, "\n")), errors.ErrInvariantViolation)
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// OutputPath returns path with its extension switched to match format.
func OutputPath(path, format string) string {
	if format != FormatJS {
		return path
	}
	ext := filepath.Ext(path)
	switch ext {
	case ".ts", ".mts", ".tsx":
		return strings.TrimSuffix(path, ext) + ".js"
	}
	return path
}
