package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cligen/errors"
)

func TestImportSpecifier(t *testing.T) {
	tests := []struct {
		name   string
		output string
		source string
		want   string
	}{
		{"same dir", "/p/cli.ts", "/p/greet.ts", "./greet"},
		{"subdir", "/p/cli.ts", "/p/src/greet.ts", "./src/greet"},
		{"parent", "/p/bin/cli.ts", "/p/src/greet.ts", "../src/greet"},
		{"tsx", "/p/cli.ts", "/p/view.tsx", "./view"},
		{"mts", "/p/cli.ts", "/p/lib.mts", "./lib"},
		{"js", "/p/cli.ts", "/p/lib.js", "./lib"},
		{"declaration", "/p/cli.ts", "/p/types.d.ts", "./types"},
		{"no extension", "/p/cli.ts", "/p/lib/index", "./lib/index"},
		{"other extension kept", "/p/cli.ts", "/p/data.json", "./data.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.FromSlash(tt.output)
			src := filepath.FromSlash(tt.source)
			assert.Equal(t, tt.want, ImportSpecifier(out, src))
		})
	}
}

func TestDefaultImportName(t *testing.T) {
	tests := []struct {
		decl string
		file string
		want string
	}{
		{"greet", "/p/whatever.ts", "greet"},
		{"", "/p/read-config.ts", "readConfig"},
		{"", "/p/read_config.ts", "readConfig"},
		{"", "/p/Main.ts", "main"},
		{"", "/p/my.module.ts", "myModule"},
		{"", "/p/2fa.ts", "_2fa"},
		{"", "/p/class.ts", "_class"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultImportName(tt.decl, filepath.FromSlash(tt.file)))
		})
	}
}

func TestNodeResolver_WalksUp(t *testing.T) {
	root := t.TempDir()
	lib := filepath.Join(root, "node_modules", "yargs")
	require.NoError(t, os.MkdirAll(lib, 0o755))
	deep := filepath.Join(root, "packages", "app", "src")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	got, err := NodeResolver{}.Resolve("yargs", deep)
	require.NoError(t, err)
	assert.Equal(t, lib, got)
}

func TestNodeResolver_ScopedPackage(t *testing.T) {
	root := t.TempDir()
	lib := filepath.Join(root, "node_modules", "@scope", "args")
	require.NoError(t, os.MkdirAll(lib, 0o755))

	got, err := NodeResolver{}.Resolve("@scope/args", root)
	require.NoError(t, err)
	assert.Equal(t, lib, got)
}

func TestNodeResolver_NotFound(t *testing.T) {
	_, err := NodeResolver{}.Resolve("definitely-not-installed-cligen-test", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestNodeResolver_AbsoluteLib(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "vendor", "yargs")
	got, err := NodeResolver{}.Resolve(abs, "/ignored")
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}

func TestNodeResolver_EmptyName(t *testing.T) {
	_, err := NodeResolver{}.Resolve("", ".")
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestStaticResolver(t *testing.T) {
	r := StaticResolver{Modules: map[string]string{"yargs": "/opt/yargs"}}

	got, err := r.Resolve("yargs", ".")
	require.NoError(t, err)
	assert.Equal(t, "/opt/yargs", got)

	_, err = r.Resolve("commander", ".")
	assert.True(t, errors.IsNotFoundError(err))
}
