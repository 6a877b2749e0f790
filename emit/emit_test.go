package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

func sampleNodes() []jsast.Node {
	return []jsast.Node{
		&jsast.ImportDecl{Namespace: "yargs", Source: "yargs"},
		&jsast.FuncDecl{
			Name:    "cli",
			Export:  true,
			Default: true,
			Params: []*jsast.Param{{
				Binding: jsast.ID("args"),
				Type:    &jsast.ArrayType{Elem: &jsast.TypeRef{Name: "string"}},
			}},
			ReturnType: &jsast.TypeRef{Name: "void"},
			Body: []jsast.Stmt{
				jsast.Expression(jsast.Call(jsast.Member(jsast.ID("yargs"), "parse"), jsast.ID("args"))),
			},
		},
	}
}

func TestPrint_Header(t *testing.T) {
	out := Print(sampleNodes(), &Header{Descriptor: "greet.yaml", Version: "1.2.3"})

	assert.True(t, strings.HasPrefix(out, "// Code generated by cligen. DO NOT EDIT.\n// Source: greet.yaml\n// Generated with cligen 1.2.3\n\nimport * as yargs"))
	assert.Equal(t, jsast.Print(sampleNodes()...), Print(sampleNodes(), nil))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Print(sampleNodes(), nil), "cli.ts"))

	err := Validate("export default function (args: string[] {", "broken.ts")
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))
	details := strings.Join(errors.GetAllDetails(err), "\n")
	assert.Contains(t, details, "broken.ts:1:")
}

func TestTranspile(t *testing.T) {
	js, err := Transpile(Print(sampleNodes(), nil), "cli.ts")
	require.NoError(t, err)

	assert.Contains(t, js, `import * as yargs from "yargs";`)
	assert.Contains(t, js, "export default function cli(args)")
	assert.NotContains(t, js, "string[]")
	assert.NotContains(t, js, ": void")
}

func TestRender_Formats(t *testing.T) {
	header := &Header{Version: "0.1.0"}

	ts, err := Render(sampleNodes(), header, FormatTS, "cli.ts")
	require.NoError(t, err)
	assert.Contains(t, ts, "args: string[]")

	js, err := Render(sampleNodes(), header, FormatJS, "cli.ts")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(js, generatedMarker))
	assert.NotContains(t, js, "string[]")

	_, err = Render(sampleNodes(), header, "coffee", "cli.ts")
	assert.True(t, errors.IsUnsupportedError(err))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "bin/cli.ts", OutputPath("bin/cli.ts", FormatTS))
	assert.Equal(t, "bin/cli.js", OutputPath("bin/cli.ts", FormatJS))
	assert.Equal(t, "bin/cli.js", OutputPath("bin/cli.mts", FormatJS))
	assert.Equal(t, "bin/cli", OutputPath("bin/cli", FormatJS))
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "cli.ts")
	require.NoError(t, WriteFile(path, "x\n"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(got))
}
