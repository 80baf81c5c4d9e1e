package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/zacklukem/try-utils/internal/config"
	"github.com/zacklukem/try-utils/internal/expand"
)

// ErrNotSource is returned when a root names a file that is not a
// directive source.
var ErrNotSource = errors.New("not a directive source")

// Discover returns the directive sources under roots, sorted and without
// duplicates. A root may be a directory, walked recursively, or a single
// source file. Directories excluded by cfg are skipped below the root.
func Discover(roots []string, cfg *config.Config) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if _, ok := expand.OutputPath(root, cfg.SourceSuffix); !ok {
				return nil, fmt.Errorf("%s: %w: name must end in %s", root, ErrNotSource, cfg.SourceSuffix)
			}
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && cfg.Excluded(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := expand.OutputPath(path, cfg.SourceSuffix); ok && d.Type().IsRegular() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
