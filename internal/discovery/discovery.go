// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/cli-commander/cli-commander/internal/issue"
	"github.com/cli-commander/cli-commander/pkg/selectorfile"
)

// ErrConfigNotFound is the sentinel error wrapped by ConfigNotFoundError.
var ErrConfigNotFound = errors.New("no configuration file found")

// Source represents where a configuration file is looked for.
type Source int

const (
	// SourceCurrentDir is ./cli-commander.yml
	SourceCurrentDir Source = iota
	// SourceHomeDir is ~/.cli-commander/cli-commander.yml
	SourceHomeDir
)

// String returns a human-readable source name
func (s Source) String() string {
	switch s {
	case SourceCurrentDir:
		return "current directory"
	case SourceHomeDir:
		return "home directory (~/" + selectorfile.HomeDirName + ")"
	default:
		return "unknown"
	}
}

type (
	// Candidate is one location checked by Locate.
	Candidate struct {
		Path   string
		Source Source
	}

	// ConfigNotFoundError is returned by Load when no candidate exists.
	ConfigNotFoundError struct {
		// Checked lists the concrete paths that were tried, in order.
		Checked []string
	}

	// Locator finds and loads the configuration file. It holds no state
	// between calls; every Load reads the file again.
	Locator struct {
		fs      afero.Fs
		workDir string
		homeDir string
		logger  *log.Logger
	}

	// Option configures a Locator.
	Option func(*Locator)
)

// Error implements the error interface. The text is the guidance shown to
// users and names both candidate locations.
func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("No configuration file found. Please create either:\n"+
		"  - %s in the current directory, or\n"+
		"  - ~/%s/%s", selectorfile.FileName, selectorfile.HomeDirName, selectorfile.FileName)
}

// Unwrap returns ErrConfigNotFound for errors.Is() compatibility.
func (e *ConfigNotFoundError) Unwrap() error { return ErrConfigNotFound }

// WithFs sets the filesystem the Locator reads from.
func WithFs(fs afero.Fs) Option {
	return func(l *Locator) { l.fs = fs }
}

// WithWorkDir sets the directory searched for a local configuration.
func WithWorkDir(dir string) Option {
	return func(l *Locator) { l.workDir = dir }
}

// WithHomeDir sets the home directory. An empty value disables the home
// candidate.
func WithHomeDir(dir string) Option {
	return func(l *Locator) { l.homeDir = dir }
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *log.Logger) Option {
	return func(l *Locator) { l.logger = logger }
}

// New creates a Locator for the OS filesystem, the process working directory
// and the user's home directory. Options override each of these.
func New(opts ...Option) *Locator {
	l := &Locator{fs: afero.NewOsFs()}

	if wd, err := os.Getwd(); err == nil {
		l.workDir = wd
	} else {
		l.workDir = "."
	}
	if home, err := os.UserHomeDir(); err == nil {
		l.homeDir = home
	}

	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// Candidates returns the locations checked by Locate, in precedence order.
func (l *Locator) Candidates() []Candidate {
	candidates := []Candidate{{
		Path:   filepath.Join(l.workDir, selectorfile.FileName),
		Source: SourceCurrentDir,
	}}
	if l.homeDir != "" {
		candidates = append(candidates, Candidate{
			Path:   filepath.Join(l.homeDir, selectorfile.HomeDirName, selectorfile.FileName),
			Source: SourceHomeDir,
		})
	}
	return candidates
}

// Locate returns the first candidate that exists as a regular file. The
// local file always wins over the home file. ok is false when neither
// exists; that is not an error.
func (l *Locator) Locate() (path string, ok bool) {
	for _, c := range l.Candidates() {
		info, err := l.fs.Stat(c.Path)
		if err != nil || !info.Mode().IsRegular() {
			l.logger.Debug("configuration candidate not present", "path", c.Path, "source", c.Source)
			continue
		}
		l.logger.Debug("configuration resolved", "path", c.Path, "source", c.Source)
		return c.Path, true
	}
	return "", false
}

// Load locates the configuration file, reads it once and parses it. The
// returned File keeps the bytes it was parsed from.
//
// Errors:
//   - *ConfigNotFoundError when no candidate exists
//   - *selectorfile.ParseError when the file is not valid YAML
//   - *issue.ActionableError wrapping the I/O error when the file cannot be read
func (l *Locator) Load() (*selectorfile.File, error) {
	path, ok := l.Locate()
	if !ok {
		return nil, &ConfigNotFoundError{Checked: l.checkedPaths()}
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read configuration").
			WithResource(path).
			WithSuggestion("Check that the file is readable").
			WithIssue(issue.ConfigAccessId).
			Wrap(err).
			BuildError()
	}

	return selectorfile.Parse(path, data)
}

func (l *Locator) checkedPaths() []string {
	candidates := l.Candidates()
	paths := make([]string, 0, len(candidates))
	for _, c := range candidates {
		paths = append(paths, c.Path)
	}
	return paths
}
