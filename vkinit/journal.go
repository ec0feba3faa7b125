package vkinit

// Journal records a release closure after each successful create and unwinds
// them in reverse creation order on teardown. Unwinding consumes the entries,
// so tearing down a partially constructed state releases exactly what was
// built and a second unwind is a no-op rather than a double release.
type Journal struct {
	releases []func()
}

// Push records the release closure for the most recently created object.
func (j *Journal) Push(release func()) {
	j.releases = append(j.releases, release)
}

// Len reports how many objects are currently registered.
func (j *Journal) Len() int {
	return len(j.releases)
}

// Unwind releases every recorded object, most recent first.
func (j *Journal) Unwind() {
	for i := len(j.releases) - 1; i >= 0; i-- {
		j.releases[i]()
	}
	j.releases = nil
}
