package backlight

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
)

func writeDeviceFile(t *testing.T, content string) *Device {
	t.Helper()
	p := filepath.Join(t.TempDir(), "brightness")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return New(p)
}

func TestRead_TrimsOneLineTerminator(t *testing.T) {
	for _, content := range []string{"128", "128\n", "128\r\n"} {
		d := writeDeviceFile(t, content)
		v, err := d.Read()
		if err != nil {
			t.Fatalf("Read(%q): %v", content, err)
		}
		if v != 128 {
			t.Fatalf("Read(%q)=%d want 128", content, v)
		}
	}
}

func TestRead_OnlyOneTerminatorIsStripped(t *testing.T) {
	for _, content := range []string{"128\n\n", "128\r", " 128", ""} {
		d := writeDeviceFile(t, content)
		_, err := d.Read()
		if !errors.Is(err, ErrParse) {
			t.Fatalf("Read(%q) err=%v want ErrParse", content, err)
		}
	}
}

func TestRead_ParseErrorKeepsCause(t *testing.T) {
	d := writeDeviceFile(t, "abc")
	_, err := d.Read()
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err=%v want ErrParse", err)
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("err=%v does not carry *strconv.NumError", err)
	}
	if IsTransient(err) {
		t.Fatalf("parse error must be fatal")
	}
}

func TestRead_OutOfRange(t *testing.T) {
	d := writeDeviceFile(t, "256")
	if _, err := d.Read(); !errors.Is(err, ErrParse) {
		t.Fatalf("err=%v want ErrParse", err)
	}
}

func TestRead_Missing(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), "nope"))
	_, err := d.Read()
	if !errors.Is(err, ErrFileMissing) {
		t.Fatalf("err=%v want ErrFileMissing", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v lost the underlying cause", err)
	}
}

func TestRead_DirectoryIsReadError(t *testing.T) {
	d := New(t.TempDir())
	_, err := d.Read()
	if !errors.Is(err, ErrRead) {
		t.Fatalf("err=%v want ErrRead", err)
	}
	if !IsTransient(err) {
		t.Fatalf("read error must be transient")
	}
}

func TestWrite_TruncatesWithoutNewline(t *testing.T) {
	d := writeDeviceFile(t, "200\n")
	if err := d.Write(7); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := os.ReadFile(d.Path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(b) != "7" {
		t.Fatalf("content=%q want %q", b, "7")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	d := writeDeviceFile(t, "0")
	for v := 0; v <= 255; v++ {
		if err := d.Write(uint8(v)); err != nil {
			t.Fatalf("Write(%d): %v", v, err)
		}
		got, err := d.Read()
		if err != nil {
			t.Fatalf("Read after Write(%d): %v", v, err)
		}
		if int(got) != v {
			t.Fatalf("round trip %d -> %d", v, got)
		}
	}
}

func TestWrite_DoesNotCreate(t *testing.T) {
	p := filepath.Join(t.TempDir(), "brightness")
	err := New(p).Write(10)
	if !errors.Is(err, ErrFileMissing) {
		t.Fatalf("err=%v want ErrFileMissing", err)
	}
	if _, statErr := os.Stat(p); !os.IsNotExist(statErr) {
		t.Fatalf("Write created %s", p)
	}
}

func TestWrite_DirectoryIsFileError(t *testing.T) {
	err := New(t.TempDir()).Write(10)
	if !errors.Is(err, ErrFile) {
		t.Fatalf("err=%v want ErrFile", err)
	}
	if IsTransient(err) {
		t.Fatalf("file error must be fatal")
	}
}

func TestWrite_WriteFailureAfterOpenIsFileError(t *testing.T) {
	const full = "/dev/full"
	if _, err := os.Stat(full); err != nil {
		t.Skipf("%s not available: %v", full, err)
	}

	err := New(full).Write(200)
	if !errors.Is(err, ErrFile) {
		t.Fatalf("err=%v want ErrFile", err)
	}
	if IsTransient(err) {
		t.Fatalf("write failure must be fatal")
	}
	if strings.Count(err.Error(), full) != 1 {
		t.Fatalf("err=%q repeats the path", err)
	}
}

func TestOpenErrKind(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{&fs.PathError{Op: "open", Path: "x", Err: syscall.ENOENT}, ErrFileMissing},
		{&fs.PathError{Op: "open", Path: "x", Err: syscall.EACCES}, ErrMissingPermissions},
		{&fs.PathError{Op: "open", Path: "x", Err: syscall.EPERM}, ErrMissingPermissions},
		{&fs.PathError{Op: "open", Path: "x", Err: syscall.EBUSY}, ErrFile},
		{errors.New("boom"), ErrFile},
	}
	for _, tt := range tests {
		if got := openErrKind(tt.err); got != tt.want {
			t.Errorf("openErrKind(%v)=%v want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrMissingPermissions, true},
		{ErrRead, true},
		{ErrFile, false},
		{ErrFileMissing, false},
		{ErrParse, false},
		{errors.New("unclassified"), false},
	}
	for _, tt := range tests {
		if got := IsTransient(tt.err); got != tt.want {
			t.Errorf("IsTransient(%v)=%v want %v", tt.err, got, tt.want)
		}
	}
}
