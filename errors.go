package luckytemplate

import "errors"

var (
	// ErrLocked is returned when a locked Folder is handed to an engine,
	// passed to InsertFolder a second time, or re-entered with Build.
	ErrLocked = errors.New("folder is locked")
	// ErrSelfReference is returned when a Folder is inserted into itself.
	ErrSelfReference = errors.New("cannot insert folder into itself")
	// ErrExists is returned by the builder API when a child name is already
	// taken and cannot be merged.
	ErrExists = errors.New("name already exists in folder")
	// ErrAlreadyExists is returned by the write engine when a non-directory
	// occupies a path where a directory is required.
	ErrAlreadyExists = errors.New("path already exists")
	// ErrNotFound is returned by the strict validate form when an expected
	// path is absent or has the wrong kind.
	ErrNotFound = errors.New("path not found")
	// ErrInvalidName is returned for empty names or names containing a path
	// separator where a single segment is required.
	ErrInvalidName = errors.New("invalid name")
)
