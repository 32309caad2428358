package luckytemplate

// Node is a single entry in a tree: either a *Folder or a *File.
type Node interface {
	// Name returns the node's name (a single path segment).
	Name() string
}

// File is a leaf node holding a content [Source]. A nil source means an
// empty file.
type File struct {
	name   string
	source Source
}

func (f *File) Name() string {
	return f.name
}

// Source returns the file's content source; nil for an empty file.
func (f *File) Source() Source {
	return f.source
}
