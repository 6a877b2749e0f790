package emit

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/teranos/cligen/errors"
)

// CheckResult holds the outcome of comparing generated output with disk.
type CheckResult struct {
	UpToDate bool
	Missing  bool

	// Line is the first differing line (1-based) after metadata is removed.
	Line     int
	Expected string
	Actual   string
}

// Check compares freshly generated content with the file at path, ignoring
// the version line of the header which changes between releases.
func Check(path, content string) (*CheckResult, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &CheckResult{Missing: true}, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	want := filterMetadataLines([]byte(content))
	got := filterMetadataLines(existing)
	if want == nil || got == nil {
		return nil, errors.Newf("failed to scan %s", path)
	}

	for i := 0; i < len(want) || i < len(got); i++ {
		var w, g string
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if i >= len(want) || i >= len(got) || w != g {
			return &CheckResult{Line: i + 1, Expected: w, Actual: g}, nil
		}
	}
	return &CheckResult{UpToDate: true}, nil
}

// filterMetadataLines splits content into lines without the version header
// line. Returns nil when the scanner fails.
func filterMetadataLines(content []byte) []string {
	lines := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), versionPrefix) {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil
	}
	return lines
}
