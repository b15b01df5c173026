package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File is one raw record handed over by a backend.
type File struct {
	Path     string // identity key, stable across edits
	Category string // top-level grouping folder, "" for uncategorized
	Content  string
}

// Backend is the storage collaborator: an idempotent upsert keyed by path
// over some collection of markdown records.
type Backend interface {
	LoadAll() ([]File, error)
	Save(path, content string) error
	Delete(path string) error
}

// FSBackend stores goals as markdown files under <root>/goals/<category>/.
type FSBackend struct {
	Root string
}

// NewFSBackend creates the goals directory if needed.
func NewFSBackend(root string) (*FSBackend, error) {
	if err := os.MkdirAll(filepath.Join(root, "goals"), 0755); err != nil {
		return nil, fmt.Errorf("creating goals directory: %w", err)
	}
	return &FSBackend{Root: root}, nil
}

// GoalsDir returns the path of the goals root.
func (b *FSBackend) GoalsDir() string {
	return filepath.Join(b.Root, "goals")
}

// LoadAll walks the goals directory. The first path element below the root is
// the category; deeper nesting is flattened into it. Hidden files and files
// whose name marks them as category metadata (leading underscore) are
// skipped.
func (b *FSBackend) LoadAll() ([]File, error) {
	goalsDir := b.GoalsDir()
	var files []File
	err := filepath.WalkDir(goalsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") && path != goalsDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".md") ||
			strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(goalsDir, path)
		if err != nil {
			return nil
		}
		category := ""
		if dir := filepath.Dir(rel); dir != "." {
			category = strings.Split(filepath.ToSlash(dir), "/")[0]
		}
		files = append(files, File{Path: path, Category: category, Content: string(data)})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading goals directory: %w", err)
	}
	return files, nil
}

// Save writes a record, creating parent directories as needed.
func (b *FSBackend) Save(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// Delete removes a record. Deleting a missing record is not an error.
func (b *FSBackend) Delete(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
