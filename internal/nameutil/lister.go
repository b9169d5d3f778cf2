package nameutil

import "os"

// DirLister lists the entry names in a directory. The naming resolver only
// sees names, so tests can supply a fixed listing without touching disk.
type DirLister interface {
	List(dir string) ([]string, error)
}

// ListerFunc adapts a plain function to DirLister.
type ListerFunc func(dir string) ([]string, error)

// List calls f(dir).
func (f ListerFunc) List(dir string) ([]string, error) {
	return f(dir)
}

// OSLister lists a real directory. Files are included alongside
// subdirectories: a file named like a project still blocks that name.
type OSLister struct{}

// List returns the names of all entries in dir.
func (OSLister) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
