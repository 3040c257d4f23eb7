package export

// initialCapacity is a sizing hint; typical translation units pull in a few
// hundred headers.
const initialCapacity = 256

// DependencySet is an ordered, append-only list of dependency paths.
// Duplicates are kept and paths are stored as given.
type DependencySet struct {
	paths []string
}

// NewDependencySet creates an empty set.
func NewDependencySet() *DependencySet {
	return &DependencySet{paths: make([]string, 0, initialCapacity)}
}

// Add appends path.
func (d *DependencySet) Add(path string) {
	d.paths = append(d.paths, path)
}

// Len returns the number of stored paths.
func (d *DependencySet) Len() int {
	return len(d.paths)
}

// Paths returns a copy of the stored paths in insertion order.
func (d *DependencySet) Paths() []string {
	return append([]string(nil), d.paths...)
}

// Reset drops all paths and releases the backing storage.
func (d *DependencySet) Reset() {
	d.paths = nil
}
