// Package file reads fingerprint inputs, memory-mapping them through
// [mmapfile] when the platform allows it and falling back to [os.File]
// otherwise.
package file

import (
	"bytes"
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

var (
	_ io.Reader = (*File)(nil)
	_ io.Closer = (*File)(nil)
)

// File is a read-only input backed by either a memory-mapped file or a plain
// os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps the file into memory when supported; otherwise it falls back to
// os.Open. Empty files and platforms without mmap take the fallback.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

// ReadFile returns the contents of the named file. The returned slice does not
// alias the mapping.
func ReadFile(name string) ([]byte, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if b := f.Bytes(); b != nil {
		return bytes.Clone(b), nil
	}

	buf := bytes.NewBuffer(make([]byte, 0, f.Len()))
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (f *File) Read(p []byte) (int, error) {
	if f.mm != nil {
		return f.mm.Read(p)
	}

	return f.os.Read(p)
}

// Bytes exposes the mapped region; nil is returned for the os.File fallback.
func (f *File) Bytes() []byte {
	if f.mm != nil {
		return f.mm.Bytes()
	}

	return nil
}

// Len returns the mapped length, or the file size for the os.File fallback.
func (f *File) Len() int {
	if f.mm != nil {
		return f.mm.Len()
	}

	info, err := f.os.Stat()
	if err != nil {
		return 0
	}

	return int(info.Size())
}

// Close releases resources held by the file.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}
