package transform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

func TestLoadDescriptor_Formats(t *testing.T) {
	for _, file := range []string{"greet.yaml", "greet.toml", "greet.json"} {
		t.Run(file, func(t *testing.T) {
			desc, err := LoadDescriptor(filepath.Join("testdata", file))
			require.NoError(t, err)

			assert.Equal(t, "greet", desc.Name)
			assert.Equal(t, "Greets someone", desc.Description)
			assert.Equal(t, ">=0.1.0", desc.Generator)
			require.Len(t, desc.Positionals, 1)
			require.Len(t, desc.Options, 2)
			assert.Equal(t, "l", desc.Options[0].Alias)
			assert.Equal(t, float64(1), desc.Options[1].Default)
			assert.True(t, filepath.IsAbs(desc.Path))

			want, err := filepath.Abs(filepath.Join("testdata", "src", "greet.ts"))
			require.NoError(t, err)
			assert.Equal(t, want, desc.EntryPath())
		})
	}
}

func TestLoadDescriptor_FormatsAgree(t *testing.T) {
	var printed []string
	for _, file := range []string{"greet.yaml", "greet.toml", "greet.json"} {
		desc, err := LoadDescriptor(filepath.Join("testdata", file))
		require.NoError(t, err)
		r, err := desc.Result()
		require.NoError(t, err)

		out := ""
		for _, p := range r.Positionals {
			out += jsast.PrintExpr(p.Call) + "\n"
		}
		for _, o := range r.Options {
			out += jsast.PrintExpr(o.Call) + "\n"
		}
		printed = append(printed, out)
	}
	assert.Equal(t, printed[0], printed[1])
	assert.Equal(t, printed[0], printed[2])
}

func TestLoadDescriptor_Missing(t *testing.T) {
	_, err := LoadDescriptor(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read descriptor")
}

func TestParseDescriptor_UnsupportedExtension(t *testing.T) {
	_, err := ParseDescriptor([]byte("name = 'x'"), ".ini")
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedError(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestParseDescriptor_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", `description: x`},
		{"bad name", `name: "1abc"`},
		{"unknown field", "name: f\ncolour: red"},
		{"bad arg type", "name: f\noptions:\n  - name: v\n    type: object"},
		{"arg without name", "name: f\npositionals:\n  - type: string"},
		{"ref default not list", "name: f\nref:\n  ./a.ts:\n    default: a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescriptor([]byte(tt.doc), ".yaml")
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInputError(err), "got %v", err)
		})
	}
}

func TestParseDescriptor_Malformed(t *testing.T) {
	for ext, doc := range map[string]string{
		".yaml": "name: [unclosed",
		".toml": "name = ",
		".json": "{",
	} {
		_, err := ParseDescriptor([]byte(doc), ext)
		require.Error(t, err, ext)
		assert.True(t, errors.IsInvalidInputError(err), ext)
	}
}

func TestDescriptorResult_DefinitionCalls(t *testing.T) {
	desc, err := ParseDescriptor([]byte(`
name: build
description: Build things
positionals:
  - name: target
    type: string
    describe: what to build
    choices: [app, lib]
    default: app
  - name: files
    array: true
options:
  - name: verbose
    alias: v
    type: count
    demandOption: true
  - name: dry-run
`), ".yml")
	require.NoError(t, err)

	r, err := desc.Result()
	require.NoError(t, err)

	assert.Equal(t, "build", r.Name)
	assert.Equal(t, "Build things", r.Description.Value)
	assert.Equal(t, []string{"target", "files"}, r.PositionalNames())

	assert.Equal(t,
		`positional("target", { type: "string", describe: "what to build", choices: ["app", "lib"], default: "app" })`,
		jsast.PrintExpr(r.Positionals[0].Call))
	assert.Equal(t, `positional("files", { array: true })`, jsast.PrintExpr(r.Positionals[1].Call))
	assert.Equal(t,
		`option("verbose", { alias: "v", type: "count", demandOption: true })`,
		jsast.PrintExpr(r.Options[0].Call))
	assert.Equal(t, `option("dry-run")`, jsast.PrintExpr(r.Options[1].Call))
}

func TestDescriptorResult_EmptyDescription(t *testing.T) {
	desc, err := ParseDescriptor([]byte(`{"name": "f"}`), ".json")
	require.NoError(t, err)

	r, err := desc.Result()
	require.NoError(t, err)
	require.NotNil(t, r.Description)
	assert.Equal(t, "", r.Description.Value)
	assert.False(t, r.HasPositionals())
	assert.False(t, r.HasOptions())
}

func TestDescriptorResult_OptionalOnOption(t *testing.T) {
	desc, err := ParseDescriptor([]byte("name: f\noptions:\n  - name: v\n    optional: true"), ".yaml")
	require.NoError(t, err)

	_, err = desc.Result()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestDescriptorResult_OptionalPositionalCarried(t *testing.T) {
	desc, err := ParseDescriptor([]byte("name: f\npositionals:\n  - name: out\n    optional: true"), ".yaml")
	require.NoError(t, err)

	r, err := desc.Result()
	require.NoError(t, err)
	assert.True(t, r.Positionals[0].Optional)
}

func TestDescriptorResult_RefResolvedAgainstDescriptor(t *testing.T) {
	desc, err := LoadDescriptor(filepath.Join("testdata", "greet.yaml"))
	require.NoError(t, err)

	r, err := desc.Result()
	require.NoError(t, err)

	want := filepath.Join(desc.Dir(), "src", "greet.ts")
	require.Contains(t, r.Ref, want)
	assert.Equal(t, []string{"greet"}, r.Ref[want].Default)
}

func TestDescriptorResult_RejectsReservedPositional(t *testing.T) {
	desc, err := ParseDescriptor([]byte("name: f\npositionals:\n  - name: argv"), ".yaml")
	require.NoError(t, err)

	_, err = desc.Result()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestCheckGenerator(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		current    string
		wantErr    bool
		check      func(error) bool
	}{
		{"no constraint", "", "0.1.0", false, nil},
		{"satisfied", ">=0.1.0", "0.2.3", false, nil},
		{"caret satisfied", "^1.2.0", "1.9.0", false, nil},
		{"too old", ">=2.0.0", "1.4.0", true, errors.IsUnsupportedError},
		{"dev build skips", ">=2.0.0", "dev", false, nil},
		{"bad constraint", "not a range", "1.0.0", true, errors.IsInvalidInputError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckGenerator(tt.constraint, tt.current)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, tt.check(err), "got %v", err)
		})
	}
}
