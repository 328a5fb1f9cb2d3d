package ports

// Entry is a single working-directory entry.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// Workspace abstracts the filesystem operations of the orchestrator and the
// dependency fetcher.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Entries lists the direct children of dir in lexicographic order.
	Entries(dir string) ([]Entry, error)

	// Remove deletes path, recursively for directories.
	Remove(path string) error

	// Executables lists the runnable files directly inside dir in lexicographic order.
	Executables(dir string) ([]string, error)

	// Reset removes dir if it exists and creates it empty.
	Reset(dir string) error
}
