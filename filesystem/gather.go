package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// GatherFiles expands roots into a list of files. Directories are walked recursively and
// contribute the regular files accepted by accept; files named directly are always kept.
func GatherFiles(roots []string, accept func(name string) bool) ([]string, error) {
	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			paths = append(paths, root)
		} else if fi.Mode().IsDir() {
			err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if d.Type().IsRegular() && accept(d.Name()) {
					paths = append(paths, path)
				}

				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}
		} else {
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	return paths, nil
}
