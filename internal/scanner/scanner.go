// Package scanner handles local asset discovery for a sync pass.
// It expands declared glob patterns into concrete files and collapses the
// resulting candidate list to unique asset names.
package scanner

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	syncerrors "github.com/releasekit/assetsync/errors"
	"github.com/releasekit/assetsync/synctypes"
)

// Scanner expands asset specs against a local filesystem.
type Scanner struct {
	fs     billy.Filesystem
	logger *slog.Logger
}

// New creates a new scanner over the given filesystem.
func New(fsys billy.Filesystem, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{
		fs:     fsys,
		logger: logger,
	}
}

// Expand evaluates one asset spec's glob pattern and returns the concrete
// local assets it selects. Directories are never eligible matches.
//
// A pattern matching exactly one file honors the spec's Name and Label
// overrides. A pattern matching several files ignores them: a single override
// name applied to multiple files would collide, so every match keeps its own
// base file name and an empty label.
//
// A mandatory pattern matching nothing fails with ErrMandatoryAssetNotFound.
// An optional one logs a note and yields no assets.
func (s *Scanner) Expand(spec synctypes.AssetSpec) ([]synctypes.LocalAsset, error) {
	if spec.Pattern == "" {
		return nil, syncerrors.NewError("expand", syncerrors.ErrInvalidInput)
	}

	matches, err := util.Glob(s.fs, spec.Pattern)
	if err != nil {
		return nil, syncerrors.NewPatternError("expand", spec.Pattern, err)
	}

	files := s.filterFiles(matches)

	if len(files) == 0 {
		if spec.Optional {
			s.logger.Info("optional pattern matched no files", "pattern", spec.Pattern)
			return nil, nil
		}
		return nil, syncerrors.NewPatternError("expand", spec.Pattern, syncerrors.ErrMandatoryAssetNotFound)
	}

	if len(files) == 1 {
		name := spec.Name
		if name == "" {
			name = filepath.Base(files[0])
		}
		asset := synctypes.LocalAsset{
			Path:  files[0],
			Name:  name,
			Label: spec.Label,
		}
		s.logger.Debug("discovered asset", "pattern", spec.Pattern, "path", asset.Path, "name", asset.Name)
		return []synctypes.LocalAsset{asset}, nil
	}

	// Wildcard expansion: per-file base names are the distinguishing names.
	if spec.Name != "" || spec.Label != "" {
		s.logger.Warn("pattern matched multiple files, ignoring name/label overrides",
			"pattern", spec.Pattern, "matches", len(files))
	}

	assets := make([]synctypes.LocalAsset, 0, len(files))
	for _, path := range files {
		asset := synctypes.LocalAsset{
			Path: path,
			Name: filepath.Base(path),
		}
		s.logger.Debug("discovered asset", "pattern", spec.Pattern, "path", asset.Path, "name", asset.Name)
		assets = append(assets, asset)
	}
	return assets, nil
}

// ExpandAll expands every spec in order and concatenates the results.
// The first mandatory-pattern failure aborts the whole expansion, before any
// remote operation has been attempted.
func (s *Scanner) ExpandAll(specs []synctypes.AssetSpec) ([]synctypes.LocalAsset, error) {
	var assets []synctypes.LocalAsset
	for _, spec := range specs {
		expanded, err := s.Expand(spec)
		if err != nil {
			return nil, err
		}
		assets = append(assets, expanded...)
	}
	return assets, nil
}

// Dedupe collapses the candidate list to unique asset names, keeping the
// first occurrence of each name. Name comparison is case-insensitive; remote
// hosts commonly treat asset names that differ only in case as the same
// attachment. Order of first occurrences is preserved. Every dropped
// duplicate is logged as a warning.
func (s *Scanner) Dedupe(assets []synctypes.LocalAsset) []synctypes.LocalAsset {
	seen := make(map[string]struct{}, len(assets))
	unique := make([]synctypes.LocalAsset, 0, len(assets))

	for _, asset := range assets {
		key := strings.ToLower(asset.Name)
		if _, dup := seen[key]; dup {
			s.logger.Warn("skipping duplicate asset", "name", asset.Name, "path", asset.Path)
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, asset)
	}

	return unique
}

// filterFiles drops matches that are not regular files. Matches that cannot
// be stat'd are dropped as well, with a warning.
func (s *Scanner) filterFiles(matches []string) []string {
	files := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := s.fs.Stat(match)
		if err != nil {
			s.logger.Warn("skipping unreadable match", "path", match, "error", err)
			continue
		}
		if info.IsDir() {
			continue
		}
		files = append(files, match)
	}
	return files
}
