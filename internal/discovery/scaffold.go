// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/cli-commander/cli-commander/internal/issue"
	"github.com/cli-commander/cli-commander/pkg/selectorfile"
)

const (
	scaffoldDirPerm  os.FileMode = 0o755
	scaffoldFilePerm os.FileMode = 0o644
)

// ScaffoldResult reports what Scaffold did for one candidate location.
type ScaffoldResult struct {
	Path    string
	Source  Source
	Created bool
}

// Scaffold writes the commented template to every candidate location that
// does not already hold a file. Existing files are never overwritten, so
// running it twice is harmless.
func (l *Locator) Scaffold() ([]ScaffoldResult, error) {
	candidates := l.Candidates()
	results := make([]ScaffoldResult, 0, len(candidates))

	for _, c := range candidates {
		exists, err := afero.Exists(l.fs, c.Path)
		if err != nil {
			return results, accessError("inspect configuration", c.Path, err)
		}
		if exists {
			l.logger.Debug("configuration already present", "path", c.Path)
			results = append(results, ScaffoldResult{Path: c.Path, Source: c.Source})
			continue
		}

		if err := l.fs.MkdirAll(filepath.Dir(c.Path), scaffoldDirPerm); err != nil {
			return results, accessError("create configuration directory", filepath.Dir(c.Path), err)
		}
		if err := afero.WriteFile(l.fs, c.Path, []byte(selectorfile.DefaultTemplate), scaffoldFilePerm); err != nil {
			return results, accessError("write configuration", c.Path, err)
		}

		l.logger.Debug("configuration scaffolded", "path", c.Path, "source", c.Source)
		results = append(results, ScaffoldResult{Path: c.Path, Source: c.Source, Created: true})
	}

	return results, nil
}

func accessError(op, path string, err error) error {
	return issue.NewErrorContext().
		WithOperation(op).
		WithResource(path).
		WithIssue(issue.ConfigAccessId).
		Wrap(err).
		BuildError()
}
