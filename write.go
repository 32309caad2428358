package luckytemplate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/mdwagner/lucky-template/config"
	"github.com/mdwagner/lucky-template/internal/util"
)

// Writer materializes a Folder tree onto a filesystem. Writes are additive:
// existing directories are merged into, existing files are truncated and
// rewritten. There is no rollback; a failure mid-walk leaves whatever was
// already written in place.
type Writer struct {
	fsys     afero.Fs
	dirMode  os.FileMode
	fileMode os.FileMode
	log      zerolog.Logger
}

// NewWriter creates a Writer for the given filesystem. A nil fsys targets
// the OS filesystem; a nil cfg uses defaults.
func NewWriter(fsys afero.Fs, cfg *config.Config) *Writer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &Writer{
		fsys:     fsys,
		dirMode:  cfg.DirMode,
		fileMode: cfg.FileMode,
		log:      util.GetLogger("writer"),
	}
}

// Write materializes root under target. The target path must name an
// existing directory or a not-yet-existing path; it is created on demand.
// The walk is depth-first, parent before children, and stops at the first
// filesystem error. A locked root is rejected before any disk activity.
func (w *Writer) Write(root *Folder, target string) error {
	if root.Locked() {
		return fmt.Errorf("%w: cannot write a folder under construction", ErrLocked)
	}
	if err := w.ensureDir(target); err != nil {
		return err
	}
	if err := w.writeFolder(root, target); err != nil {
		return err
	}
	w.log.Debug().Str("target", target).Msg("Folder written")
	return nil
}

func (w *Writer) writeFolder(folder *Folder, dir string) error {
	for _, node := range folder.Children() {
		target := filepath.Join(dir, node.Name())
		switch n := node.(type) {
		case *Folder:
			if err := w.ensureDir(target); err != nil {
				return err
			}
			if err := w.writeFolder(n, target); err != nil {
				return err
			}
		case *File:
			if err := w.writeFile(n, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// ensureDir creates dir if missing and accepts an existing directory.
// Anything else occupying the path is a conflict.
func (w *Writer) ensureDir(dir string) error {
	info, err := w.fsys.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%w: %s is not a directory", ErrAlreadyExists, dir)
	case os.IsNotExist(err):
		if err := w.fsys.MkdirAll(dir, w.dirMode); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
		w.log.Debug().Str("path", dir).Msg("Created directory")
		return nil
	default:
		return fmt.Errorf("stat %s: %w", dir, err)
	}
}

// writeFile creates or truncates the file at target and asks the node's
// source for its content. A nil source leaves the file empty.
func (w *Writer) writeFile(file *File, target string) error {
	out, err := w.fsys.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.fileMode)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if src := file.Source(); src != nil {
		if err := src.WriteContent(out); err != nil {
			out.Close() // nolint:errcheck
			return fmt.Errorf("write %s: %w", target, err)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", target, err)
	}
	w.log.Debug().Str("path", target).Msg("Wrote file")
	return nil
}

// Write materializes the folder under target on the OS filesystem with
// default modes. See [Writer.Write].
func (f *Folder) Write(target string) error {
	return NewWriter(nil, nil).Write(f, target)
}
