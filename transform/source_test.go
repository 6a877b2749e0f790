package transform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

func TestLoadSourceFile(t *testing.T) {
	path := filepath.Join("testdata", "src", "greet.ts")
	src, err := LoadSourceFile(path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(src.Path))
	require.Len(t, src.Statements, 1)
	raw, ok := src.Statements[0].(*jsast.Raw)
	require.True(t, ok)
	assert.Equal(t, string(content), raw.Text)
}

func TestLoadSourceFile_Missing(t *testing.T) {
	_, err := LoadSourceFile(filepath.Join(t.TempDir(), "missing.ts"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}
