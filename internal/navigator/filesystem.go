package navigator

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/llehouerou/hnl/internal/tags"
)

// FileNode represents a file or directory.
type FileNode struct {
	path  string
	name  string
	isDir bool
}

func (n FileNode) ID() string { return n.path }

func (n FileNode) DisplayName() string { return n.name }

func (n FileNode) IsContainer() bool { return n.isDir }

// FileSource browses the local filesystem. Only directories and files the
// tag reader understands are listed; symlinks count as what they point to.
type FileSource struct {
	root       string
	home       string
	showHidden bool
}

// NewFileSource creates a source rooted at startPath, made absolute.
func NewFileSource(startPath string) (*FileSource, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, err
	}
	home, _ := os.UserHomeDir() // no home only disables "~" in headers
	return &FileSource{root: absPath, home: home}, nil
}

func (s *FileSource) Root() FileNode {
	info, err := os.Stat(s.root)
	if err != nil {
		return FileNode{path: s.root, name: filepath.Base(s.root), isDir: true}
	}
	return FileNode{path: s.root, name: info.Name(), isDir: info.IsDir()}
}

// ToggleHidden flips whether dotfiles are listed and returns the new state.
func (s *FileSource) ToggleHidden() bool {
	s.showHidden = !s.showHidden
	return s.showHidden
}

func (s *FileSource) Children(parent FileNode) ([]FileNode, error) {
	if !parent.isDir {
		return nil, nil
	}

	entries, err := os.ReadDir(parent.path)
	if err != nil {
		return nil, err
	}

	nodes := make([]FileNode, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !s.showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(parent.path, name)
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}
		if !isDir && !tags.IsMusicFile(path) {
			continue
		}

		nodes = append(nodes, FileNode{path: path, name: name, isDir: isDir})
	}

	slices.SortFunc(nodes, compareNodes)
	return nodes, nil
}

// compareNodes lists folders first, then orders names naturally.
func compareNodes(a, b FileNode) int {
	if a.isDir != b.isDir {
		if a.isDir {
			return -1
		}
		return 1
	}
	return naturalCompare(a.name, b.name)
}

func (s *FileSource) Parent(node FileNode) *FileNode {
	parentPath := filepath.Dir(node.path)
	if parentPath == node.path {
		return nil
	}

	return &FileNode{
		path:  parentPath,
		name:  filepath.Base(parentPath),
		isDir: true,
	}
}

// DisplayPath abbreviates the home directory to "~".
func (s *FileSource) DisplayPath(node FileNode) string {
	if s.home != "" {
		if rel, err := filepath.Rel(s.home, node.path); err == nil && !strings.HasPrefix(rel, "..") {
			if rel == "." {
				return "~"
			}
			return filepath.Join("~", rel)
		}
	}
	return node.path
}

func (s *FileSource) NodeFromID(id string) (FileNode, bool) {
	info, err := os.Stat(id)
	if err != nil {
		return FileNode{}, false
	}
	return FileNode{
		path:  id,
		name:  filepath.Base(id),
		isDir: info.IsDir(),
	}, true
}
