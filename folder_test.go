package luckytemplate

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFolder_StartsUnlockedAndEmpty(t *testing.T) {
	t.Parallel()

	f := NewFolder()

	assert.False(t, f.Locked())
	assert.True(t, f.Empty())
	assert.Equal(t, "", f.Name())
	assert.Empty(t, f.Children())
}

func TestFolder_AddFile(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	require.NoError(t, f.AddFile("hello.txt", String("hello world")))

	assert.False(t, f.Empty(), "must not be empty after a successful add")

	node, ok := f.Child("hello.txt")
	require.True(t, ok)
	file, ok := node.(*File)
	require.True(t, ok)
	assert.Equal(t, "hello.txt", file.Name())
	assert.NotNil(t, file.Source())
}

// TestFolder_AddFile_NestedPath tests that a multi-segment name creates the
// intermediate folders on demand.
func TestFolder_AddFile_NestedPath(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	require.NoError(t, f.AddFile("a/b/c/hello.txt", nil))

	node, ok := f.Child("a")
	require.True(t, ok)
	a, ok := node.(*Folder)
	require.True(t, ok)

	node, ok = a.Child("b")
	require.True(t, ok)
	b, ok := node.(*Folder)
	require.True(t, ok)

	node, ok = b.Child("c")
	require.True(t, ok)
	c, ok := node.(*Folder)
	require.True(t, ok)

	node, ok = c.Child("hello.txt")
	require.True(t, ok)
	file, ok := node.(*File)
	require.True(t, ok)
	assert.Nil(t, file.Source(), "file without content source must be empty")
}

// TestFolder_AddFile_ReusesExistingFolders tests that already-existing
// intermediate folders are descended into, not replaced.
func TestFolder_AddFile_ReusesExistingFolders(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	sub, err := f.AddFolder("src")
	require.NoError(t, err)
	require.NoError(t, f.AddFile("src/main.go", String("package main")))

	node, ok := f.Child("src")
	require.True(t, ok)
	assert.Same(t, sub, node, "existing intermediate folder must be reused")

	_, ok = sub.Child("main.go")
	assert.True(t, ok)
}

func TestFolder_AddFile_Collision(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	require.NoError(t, f.AddFile("hello.txt", nil))

	err := f.AddFile("hello.txt", String("again"))
	assert.ErrorIs(t, err, ErrExists)

	// A folder segment cannot pass through an existing file either
	err = f.AddFile("hello.txt/inner.txt", nil)
	assert.ErrorIs(t, err, ErrExists)
}

func TestFolder_AddFile_InvalidName(t *testing.T) {
	t.Parallel()

	f := NewFolder()

	assert.ErrorIs(t, f.AddFile("", nil), ErrInvalidName)
	assert.ErrorIs(t, f.AddFile("a//b.txt", nil), ErrInvalidName)
	assert.ErrorIs(t, f.AddFile("/a.txt", nil), ErrInvalidName)
	assert.ErrorIs(t, f.AddFile("a/", nil), ErrInvalidName)
}

func TestFolder_AddFolder_Chain(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	deepest, err := f.AddFolder("parent", "child", "grandchild")
	require.NoError(t, err)

	assert.Equal(t, "grandchild", deepest.Name())
	assert.False(t, deepest.Locked(), "folder returned without a callback must be unlocked")

	// The chain must be attached under the receiver
	node, ok := f.Child("parent")
	require.True(t, ok)
	parent, ok := node.(*Folder)
	require.True(t, ok)
	_, ok = parent.Child("child")
	assert.True(t, ok)
}

func TestFolder_AddFolder_MergesExisting(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	first, err := f.AddFolder("a", "b")
	require.NoError(t, err)
	second, err := f.AddFolder("a", "b")
	require.NoError(t, err)

	assert.Same(t, first, second, "repeated AddFolder must descend, not replace")
}

func TestFolder_AddFolder_SegmentIsFile(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	require.NoError(t, f.AddFile("a", nil))

	_, err := f.AddFolder("a", "b")
	assert.ErrorIs(t, err, ErrExists)
}

func TestFolder_Children_InsertionOrder(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	require.NoError(t, f.AddFile("z.txt", nil))
	_, err := f.AddFolder("alpha")
	require.NoError(t, err)
	require.NoError(t, f.AddFile("m.txt", nil))

	var names []string
	for _, node := range f.Children() {
		names = append(names, node.Name())
	}
	assert.Equal(t, []string{"z.txt", "alpha", "m.txt"}, names)
}

// TestFolder_Build tests the scoped-construction lock: the folder is locked
// for the callback's duration and unlocked after, on both exit paths.
func TestFolder_Build(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	err := f.Build(func(f *Folder) error {
		assert.True(t, f.Locked(), "folder must report locked inside its construction callback")
		return f.AddFile("hello.txt", nil)
	})
	require.NoError(t, err)
	assert.False(t, f.Locked(), "folder must be unlocked after the callback returns")
	assert.False(t, f.Empty())
}

func TestFolder_Build_UnlocksOnError(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	boom := errors.New("boom")
	err := f.Build(func(f *Folder) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, f.Locked(), "folder must be unlocked even when the callback fails")
}

func TestFolder_Build_Reentrant(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	err := f.Build(func(f *Folder) error {
		return f.Build(func(*Folder) error { return nil })
	})
	assert.ErrorIs(t, err, ErrLocked)
}

func TestBuildFolder(t *testing.T) {
	t.Parallel()

	f, err := BuildFolder(func(f *Folder) error {
		return f.AddFile("hello.txt", nil)
	})
	require.NoError(t, err)
	assert.False(t, f.Locked())
	assert.False(t, f.Empty())
}

func TestBuildFolder_Error(t *testing.T) {
	t.Parallel()

	f, err := BuildFolder(func(f *Folder) error {
		return errors.New("boom")
	})
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestFolder_InsertFolder(t *testing.T) {
	t.Parallel()

	root := NewFolder()
	child := NewFolder()
	require.NoError(t, child.AddFile("hello.txt", nil))

	require.NoError(t, root.InsertFolder("lib", child))

	assert.True(t, child.Locked(), "inserted folder must be locked permanently")
	assert.Equal(t, "lib", child.Name())

	node, ok := root.Child("lib")
	require.True(t, ok)
	assert.Same(t, child, node)
}

func TestFolder_InsertFolder_Self(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	err := f.InsertFolder("self", f)
	assert.ErrorIs(t, err, ErrSelfReference)
}

// TestFolder_InsertFolder_Twice tests that aliasing a subtree into two
// places fails on the second insertion.
func TestFolder_InsertFolder_Twice(t *testing.T) {
	t.Parallel()

	a := NewFolder()
	b := NewFolder()
	child := NewFolder()

	require.NoError(t, a.InsertFolder("shared", child))

	err := b.InsertFolder("shared", child)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestFolder_InsertFolder_DuringConstruction(t *testing.T) {
	t.Parallel()

	root := NewFolder()
	child := NewFolder()
	err := child.Build(func(c *Folder) error {
		return root.InsertFolder("child", c)
	})
	assert.ErrorIs(t, err, ErrLocked, "a folder under scoped construction cannot be inserted elsewhere")
	assert.False(t, child.Locked())
}

func TestFolder_InsertFolder_NameTaken(t *testing.T) {
	t.Parallel()

	root := NewFolder()
	require.NoError(t, root.AddFile("lib", nil))

	err := root.InsertFolder("lib", NewFolder())
	assert.ErrorIs(t, err, ErrExists)
}

func TestFolder_InsertFolder_InvalidName(t *testing.T) {
	t.Parallel()

	root := NewFolder()

	assert.ErrorIs(t, root.InsertFolder("", NewFolder()), ErrInvalidName)
	assert.ErrorIs(t, root.InsertFolder("a/b", NewFolder()), ErrInvalidName)
}

func TestSourceFunc_WriteContent(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	src := SourceFunc(func(w io.Writer) error {
		_, err := io.WriteString(w, "generated")
		return err
	})
	require.NoError(t, src.WriteContent(&sb))
	assert.Equal(t, "generated", sb.String())
}

func TestBytes_WriteContent(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, Bytes([]byte{0x68, 0x69}).WriteContent(&sb))
	assert.Equal(t, "hi", sb.String())
}
