package backlight

import (
	"errors"
	"io/fs"
)

var (
	ErrFile               = errors.New("generic file error")
	ErrMissingPermissions = errors.New("missing permissions to the file")
	ErrFileMissing        = errors.New("file not found")
	ErrRead               = errors.New("error while reading file contents")
	ErrParse              = errors.New("unable to parse file into a brightness value")
)

// IsTransient reports whether err is worth retrying after a pause.
// Permission and read failures are treated as a busy or lagging driver;
// everything else, including unclassified errors, is fatal.
func IsTransient(err error) bool {
	return errors.Is(err, ErrMissingPermissions) || errors.Is(err, ErrRead)
}

// openErrKind classifies an error returned while opening the device file.
func openErrKind(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrFileMissing
	case errors.Is(err, fs.ErrPermission):
		return ErrMissingPermissions
	default:
		return ErrFile
	}
}
