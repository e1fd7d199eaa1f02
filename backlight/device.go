// Package backlight reads and writes a sysfs style brightness control file.
package backlight

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Device is a brightness control file. It holds no open handle: every Read
// and Write opens and closes the file again, so the file can be replaced
// underneath it.
type Device struct {
	Path string
}

func New(path string) *Device {
	return &Device{Path: path}
}

// Read returns the brightness currently stored in the file.
func (d *Device) Read() (uint8, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", openErrKind(err), err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return parse(string(b))
}

// Write replaces the file content with v. The file is never created.
func (d *Device) Write(v uint8) error {
	f, err := os.OpenFile(d.Path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", openErrKind(err), err)
	}

	_, werr := f.WriteString(strconv.Itoa(int(v)))
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("%w: %w", ErrFile, werr)
	}
	if cerr != nil {
		return fmt.Errorf("%w: %w", ErrFile, cerr)
	}
	return nil
}

func parse(s string) (uint8, error) {
	s = trimNewline(s)
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return uint8(v), nil
}

// trimNewline strips one trailing "\n" or "\r\n", never more.
func trimNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	s = s[:len(s)-1]
	return strings.TrimSuffix(s, "\r")
}
