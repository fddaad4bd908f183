// Package scanner discovers proof files beneath a directory root.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
)

// DefaultExtension is the filename extension proof files carry.
const DefaultExtension = ".proof"

// FileInfo describes one discovered proof file.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a directory tree collecting files by extension.
type Scanner struct {
	rootDir    string
	extensions []string
}

// New creates a Scanner rooted at rootDir. When no extensions are given
// only DefaultExtension files are collected.
func New(rootDir string, extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = []string{DefaultExtension}
	}
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan returns every matching file under the root, sorted by path so that
// batch verification reports arrive in a stable order.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if s.isTargetFile(path) {
			files = append(files, FileInfo{
				Path: path,
				Size: info.Size(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (s *Scanner) isTargetFile(path string) bool {
	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
