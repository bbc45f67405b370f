package crawler

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// Crawler scans a directory tree for content files.
type Crawler struct {
	fs         afero.Fs
	ignored    []string
	extensions []string
}

// NewCrawler creates a crawler over fs that picks up Markdown and plain text.
func NewCrawler(fsys afero.Fs) *Crawler {
	return &Crawler{
		fs:         fsys,
		ignored:    []string{".git", "vendor", "node_modules", "output"},
		extensions: []string{".md", ".markdown", ".txt"},
	}
}

// Scan walks root in lexical order and calls onFile for every content file.
// Hidden directories are skipped. An error from onFile stops the walk.
func (c *Crawler) Scan(root string, onFile func(path string) error) error {
	return afero.Walk(c.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if path != root && (strings.HasPrefix(name, ".") || slices.Contains(c.ignored, name)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !slices.Contains(c.extensions, strings.ToLower(filepath.Ext(info.Name()))) {
			return nil
		}
		return onFile(path)
	})
}

// Files returns every content file under root.
func (c *Crawler) Files(root string) ([]string, error) {
	var out []string
	err := c.Scan(root, func(path string) error {
		out = append(out, path)
		return nil
	})
	return out, err
}
