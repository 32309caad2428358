package luckytemplate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/mdwagner/lucky-template/internal/util"
)

// Validator checks a Folder tree's shape against an existing filesystem
// location. Only existence and kind are checked, never file content.
type Validator struct {
	fsys afero.Fs
	log  zerolog.Logger
}

// NewValidator creates a Validator for the given filesystem. A nil fsys
// targets the OS filesystem.
func NewValidator(fsys afero.Fs) *Validator {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Validator{fsys: fsys, log: util.GetLogger("validator")}
}

// Validate walks root the same way the write engine does and fails with
// [ErrNotFound] at the first node whose target path is absent, or present
// with the wrong kind for a folder. A locked root is rejected with
// [ErrLocked].
func (v *Validator) Validate(root *Folder, target string) error {
	if root.Locked() {
		return fmt.Errorf("%w: cannot validate a folder under construction", ErrLocked)
	}
	if err := v.checkDir(target); err != nil {
		return err
	}
	return v.validateFolder(root, target)
}

// Valid reports whether every node of root validates against target. Only
// validation outcomes are folded into the boolean; a locked root or an
// unexpected filesystem error still returns a hard error.
func (v *Validator) Valid(root *Folder, target string) (bool, error) {
	err := v.Validate(root, target)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		v.log.Debug().Err(err).Str("target", target).Msg("Validation mismatch")
		return false, nil
	default:
		return false, err
	}
}

func (v *Validator) validateFolder(folder *Folder, dir string) error {
	for _, node := range folder.Children() {
		target := filepath.Join(dir, node.Name())
		switch n := node.(type) {
		case *Folder:
			if err := v.checkDir(target); err != nil {
				return err
			}
			if err := v.validateFolder(n, target); err != nil {
				return err
			}
		case *File:
			if err := v.checkExists(target); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkDir requires target to exist and be a directory.
func (v *Validator) checkDir(target string) error {
	info, err := v.fsys.Stat(target)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%w: %s is not a directory", ErrNotFound, target)
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s", ErrNotFound, target)
	default:
		return fmt.Errorf("stat %s: %w", target, err)
	}
}

// checkExists requires target to exist.
func (v *Validator) checkExists(target string) error {
	if _, err := v.fsys.Stat(target); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, target)
		}
		return fmt.Errorf("stat %s: %w", target, err)
	}
	return nil
}

// Validate checks the folder against target on the OS filesystem, failing
// with [ErrNotFound] on the first mismatch. See [Validator.Validate].
func (f *Folder) Validate(target string) error {
	return NewValidator(nil).Validate(f, target)
}

// Valid reports whether the folder matches target on the OS filesystem.
// See [Validator.Valid].
func (f *Folder) Valid(target string) (bool, error) {
	return NewValidator(nil).Valid(f, target)
}
