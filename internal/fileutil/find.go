// Package fileutil provides filesystem helpers for corpus discovery.
package fileutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/FocuswithJustin/WillowConcord/core/errors"
)

// FindByExt walks root recursively and returns every regular file whose
// extension matches one of exts, compared case-insensitively and without
// the leading dot. The result is sorted lexicographically by full path so
// callers get one deterministic order regardless of directory layout.
func FindByExt(root string, exts []string) ([]string, error) {
	want := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		want[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := want[ext]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewIO("walk", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// HasExt reports whether path's extension matches ext, compared
// case-insensitively and without the leading dot.
func HasExt(path, ext string) bool {
	got := strings.TrimPrefix(filepath.Ext(path), ".")
	return strings.EqualFold(got, strings.TrimPrefix(ext, "."))
}
