package storage

import (
	"github.com/metafates/gache"
	"github.com/palettekit/palettekit/filesystem"
)

// File keeps every slot in a single JSON object on disk, through the swappable filesystem backend.
type File struct {
	cacher *gache.Cache[map[string]string]
}

// NewFile opens (lazily) the store at path.
func NewFile(path string) *File {
	return &File{
		cacher: gache.New[map[string]string](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (f *File) slots() (map[string]string, error) {
	cached, expired, err := f.cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]string), nil
	}
	return cached, nil
}

func (f *File) Get(key string) (string, bool, error) {
	slots, err := f.slots()
	if err != nil {
		return "", false, err
	}

	v, ok := slots[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	slots, err := f.slots()
	if err != nil {
		return err
	}

	slots[key] = value
	return f.cacher.Set(slots)
}

func (f *File) Delete(key string) error {
	slots, err := f.slots()
	if err != nil {
		return err
	}

	delete(slots, key)
	return f.cacher.Set(slots)
}
