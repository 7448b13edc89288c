package navigator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func names(nodes []FileNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.DisplayName()
	}
	return out
}

func TestFileSource_Children(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.flac"))
	touch(t, filepath.Join(dir, "A.mp3"))
	touch(t, filepath.Join(dir, "cover.jpg"))
	touch(t, filepath.Join(dir, ".hidden.opus"))
	touch(t, filepath.Join(dir, "zeta", "x.m4a"))
	touch(t, filepath.Join(dir, "Alpha", "y.ogg"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".cache"), 0o755))

	src, err := NewFileSource(dir)
	require.NoError(t, err)

	root := src.Root()
	assert.True(t, root.IsContainer())
	assert.Equal(t, dir, root.ID())

	children, err := src.Children(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "zeta", "A.mp3", "b.flac"}, names(children))

	assert.True(t, src.ToggleHidden())
	children, err = src.Children(root)
	require.NoError(t, err)
	assert.Equal(t, []string{".cache", "Alpha", "zeta", ".hidden.opus", "A.mp3", "b.flac"}, names(children))

	leaf, err := src.Children(children[4])
	require.NoError(t, err)
	assert.Nil(t, leaf, "files have no children")
}

func TestFileSource_SymlinkedDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "real", "a.flac"))
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	src, err := NewFileSource(dir)
	require.NoError(t, err)
	children, err := src.Children(src.Root())
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.True(t, children[0].IsContainer())
	assert.True(t, children[1].IsContainer())
}

func TestFileSource_ParentAndNodeFromID(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "album", "01.flac")
	touch(t, file)

	src, err := NewFileSource(dir)
	require.NoError(t, err)

	node, ok := src.NodeFromID(file)
	require.True(t, ok)
	assert.False(t, node.IsContainer())
	assert.Equal(t, "01.flac", node.DisplayName())

	parent := src.Parent(node)
	require.NotNil(t, parent)
	assert.Equal(t, filepath.Join(dir, "album"), parent.ID())
	assert.True(t, parent.IsContainer())

	assert.Nil(t, src.Parent(FileNode{path: "/", isDir: true}))

	_, ok = src.NodeFromID(filepath.Join(dir, "missing"))
	assert.False(t, ok)
}

func TestFileSource_DisplayPath(t *testing.T) {
	src := &FileSource{home: "/home/user"}

	assert.Equal(t, "~", src.DisplayPath(FileNode{path: "/home/user"}))
	assert.Equal(t, filepath.Join("~", "Music"), src.DisplayPath(FileNode{path: "/home/user/Music"}))
	assert.Equal(t, "/srv/music", src.DisplayPath(FileNode{path: "/srv/music"}))
	assert.Equal(t, "/home/username", src.DisplayPath(FileNode{path: "/home/username"}))
}

func TestFileSource_InNavigator(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "album", "01.flac"))

	src, err := NewFileSource(dir)
	require.NoError(t, err)
	nav, err := New[FileNode](src)
	require.NoError(t, err)
	nav.SetFocused(true)
	nav.SetSize(60, 10)

	require.True(t, nav.NavigateTo(filepath.Join(dir, "album", "01.flac")))
	assert.Equal(t, filepath.Join(dir, "album", "01.flac"), nav.SelectedID())
}
