package ports

type AccessMode int

const (
	ReadWrite AccessMode = iota
	ReadWriteExecute
)

type FileSystem interface {
	WriteFile(path string, content []byte, accessMode AccessMode) error
	MkdirAll(path string, accessMode AccessMode) error
	// MkdirTemp creates a new directory below the system temporary
	// directory whose name starts with pattern and returns its path.
	MkdirTemp(pattern string) (string, error)
	RemoveAll(path string) error
	FileExists(path string) (bool, error)
	IsEmptyDir(path string) (bool, error)
}
