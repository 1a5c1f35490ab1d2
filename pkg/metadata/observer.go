// ABOUTME: Observation hook for document I/O and dataset cache lookups
// ABOUTME: Lets logging and metrics layers watch the core without imports

package metadata

import "time"

// Document operations reported to the Observer
const (
	OpLoad   = "load"
	OpWrite  = "write"
	OpCreate = "create"
)

// Observer receives notifications about blocking document I/O and about
// lazy dataset cache lookups.
type Observer interface {
	DocumentOperation(op, path string, duration time.Duration, err error)
	CacheLookup(hit bool)
}

type nopObserver struct{}

func (nopObserver) DocumentOperation(string, string, time.Duration, error) {}
func (nopObserver) CacheLookup(bool)                                       {}

var observer Observer = nopObserver{}

// SetObserver installs o as the process-wide observer. A nil o restores the
// no-op observer. Not safe to call concurrently with document operations.
func SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	observer = o
}

type multiObserver []Observer

func (m multiObserver) DocumentOperation(op, path string, duration time.Duration, err error) {
	for _, o := range m {
		o.DocumentOperation(op, path, duration, err)
	}
}

func (m multiObserver) CacheLookup(hit bool) {
	for _, o := range m {
		o.CacheLookup(hit)
	}
}

// MultiObserver fans notifications out to every non-nil observer
func MultiObserver(observers ...Observer) Observer {
	var m multiObserver
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}
