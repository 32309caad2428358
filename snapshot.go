package luckytemplate

import (
	"fmt"
	"maps"
)

// NodeKind identifies the kind of node a snapshot entry describes.
type NodeKind string

const (
	KindFolder NodeKind = "folder"
	KindFile   NodeKind = "file"
)

// SnapshotEntry is the structural descriptor of a single node. Content is
// recorded only for files backed by a literal source (Literal true);
// callback- and capability-produced content is compared structurally only.
type SnapshotEntry struct {
	Kind    NodeKind
	Content string
	Literal bool
}

// Snapshot maps each node's relative POSIX path (no leading "./") to its
// descriptor. Every folder level contributes its own entry, not only leaves.
type Snapshot map[string]SnapshotEntry

// Equal reports whether two snapshots describe identical tree shapes, and
// identical literal content where recorded.
func (s Snapshot) Equal(other Snapshot) bool {
	return maps.Equal(s, other)
}

// Snapshot produces a deterministic fingerprint of the tree. It never
// mutates the folder and never touches the filesystem; snapshotting the same
// unchanged tree twice yields equal snapshots. A locked folder is rejected
// with [ErrLocked].
func (f *Folder) Snapshot() (Snapshot, error) {
	if f.locked {
		return nil, fmt.Errorf("%w: cannot snapshot a folder under construction", ErrLocked)
	}
	snap := make(Snapshot)
	f.snapshotInto(snap, "")
	return snap, nil
}

func (f *Folder) snapshotInto(snap Snapshot, prefix string) {
	for _, node := range f.Children() {
		key := node.Name()
		if prefix != "" {
			key = prefix + "/" + key
		}
		switch n := node.(type) {
		case *Folder:
			snap[key] = SnapshotEntry{Kind: KindFolder}
			n.snapshotInto(snap, key)
		case *File:
			entry := SnapshotEntry{Kind: KindFile}
			if lit, ok := n.source.(literalSource); ok {
				entry.Content = string(lit)
				entry.Literal = true
			}
			snap[key] = entry
		}
	}
}
