package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache-backed stores read and write through the active backend,
// so switching to MemMapFs in tests also redirects persisted favorites and settings.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
