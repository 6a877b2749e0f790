package transform

import (
	"os"
	"path/filepath"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/jsast"
)

// LoadSourceFile reads an entry file for stdin mode. The file is not parsed:
// its whole text becomes one verbatim statement.
func LoadSourceFile(path string) (*SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithHint(
				errors.NewNotFoundError("entry file %s", path),
				"set `entry` in the descriptor to the file that declares the function")
		}
		return nil, errors.Wrapf(err, "failed to read entry file %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	return &SourceFile{
		Path:       abs,
		Statements: []jsast.Stmt{&jsast.Raw{Text: string(content)}},
	}, nil
}
