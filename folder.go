package luckytemplate

import (
	"fmt"
	"strings"
)

// Folder is a named collection of child nodes in insertion order. Children
// are owned exclusively by their parent; a child holds no back-reference, so
// the tree cannot form reference cycles. Reuse of a subtree in two places is
// prevented by the lock flag instead (see [Folder.InsertFolder]).
//
// A Folder is a single-owner value with no internal synchronization. Two
// goroutines mutating the same Folder is caller error; build independent
// trees per goroutine instead.
type Folder struct {
	name     string
	order    []string // child names in insertion order
	children map[string]Node
	locked   bool
}

// NewFolder creates an empty, unlocked root Folder.
func NewFolder() *Folder {
	return &Folder{children: make(map[string]Node)}
}

// BuildFolder creates a root Folder and populates it inside a scoped
// construction callback (see [Folder.Build]). The returned Folder is
// unlocked.
func BuildFolder(fn func(*Folder) error) (*Folder, error) {
	f := NewFolder()
	if err := f.Build(fn); err != nil {
		return nil, err
	}
	return f, nil
}

// Name returns the folder's name. A root folder that was never inserted
// anywhere has the empty name.
func (f *Folder) Name() string {
	return f.name
}

// Locked reports whether the folder is currently locked, either temporarily
// by a running [Folder.Build] callback or permanently by
// [Folder.InsertFolder].
func (f *Folder) Locked() bool {
	return f.locked
}

// Empty reports whether the folder has no direct children.
func (f *Folder) Empty() bool {
	return len(f.order) == 0
}

// Child returns the direct child with the given name.
func (f *Folder) Child(name string) (Node, bool) {
	node, ok := f.children[name]
	return node, ok
}

// Children returns the direct children in insertion order.
func (f *Folder) Children() []Node {
	nodes := make([]Node, 0, len(f.order))
	for _, name := range f.order {
		nodes = append(nodes, f.children[name])
	}
	return nodes
}

// Build runs fn with the folder locked for the duration of the call. The
// lock blocks engine handoff, insertion into another folder, and re-entrant
// Build; it does not block the builder API, so fn can still populate the
// folder. The folder is unlocked again on every exit path, including an
// error from fn.
func (f *Folder) Build(fn func(*Folder) error) error {
	if f.locked {
		return fmt.Errorf("%w: folder is already in use", ErrLocked)
	}
	f.locked = true
	defer func() { f.locked = false }()
	return fn(f)
}

// AddFile adds a file under name with the given content source; a nil src
// means an empty file. The name may be a multi-segment POSIX-style relative
// path ("a/b/c.txt"), in which case missing intermediate folders are created
// and existing ones are reused. Adding over any existing child of the final
// segment's parent fails with [ErrExists].
func (f *Folder) AddFile(name string, src Source) error {
	segments, err := splitName(name)
	if err != nil {
		return err
	}

	parent := f
	if len(segments) > 1 {
		parent, err = f.AddFolder(segments[:len(segments)-1]...)
		if err != nil {
			return err
		}
	}

	base := segments[len(segments)-1]
	if _, ok := parent.children[base]; ok {
		return fmt.Errorf("%w: %q", ErrExists, name)
	}
	parent.attach(&File{name: base, source: src})
	return nil
}

// AddFolder creates a chain of nested folders named by names, in order, and
// returns the deepest one. Segments that already exist as folders are
// descended into rather than replaced, so repeated calls merge. A segment
// occupied by a file fails with [ErrExists]. The returned folder is unlocked
// and can be populated further; wrap mutations in [Folder.Build] to scope
// them.
func (f *Folder) AddFolder(names ...string) (*Folder, error) {
	cur := f
	for _, name := range names {
		segments, err := splitName(name)
		if err != nil {
			return nil, err
		}
		for _, segment := range segments {
			existing, ok := cur.children[segment]
			if !ok {
				child := &Folder{name: segment, children: make(map[string]Node)}
				cur.attach(child)
				cur = child
				continue
			}
			folder, ok := existing.(*Folder)
			if !ok {
				return nil, fmt.Errorf("%w: %q is a file", ErrExists, segment)
			}
			cur = folder
		}
	}
	return cur, nil
}

// InsertFolder attaches an already-constructed folder as a child under name.
// It fails with [ErrSelfReference] when child is the receiver itself, and
// with [ErrLocked] when child is already locked (inserted elsewhere, or
// currently under scoped construction). On success child is locked
// permanently: ownership has moved and it can no longer be used as a
// standalone root or inserted again.
func (f *Folder) InsertFolder(name string, child *Folder) error {
	if child == f {
		return fmt.Errorf("%w: %q", ErrSelfReference, name)
	}
	if err := checkSegment(name); err != nil {
		return err
	}
	if child.locked {
		return fmt.Errorf("%w: folder %q was already inserted or is under construction", ErrLocked, name)
	}
	if _, ok := f.children[name]; ok {
		return fmt.Errorf("%w: %q", ErrExists, name)
	}

	child.name = name
	child.locked = true
	f.attach(child)
	return nil
}

// attach links a node as a direct child. Callers have already checked for
// name collisions.
func (f *Folder) attach(node Node) {
	f.order = append(f.order, node.Name())
	f.children[node.Name()] = node
}

// splitName splits a POSIX-style relative path into its segments and
// validates each one.
func splitName(name string) ([]string, error) {
	segments := strings.Split(name, "/")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return segments, nil
}

// checkSegment validates a single child name.
func checkSegment(name string) error {
	if name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
