package builtin

import "sync"

// FileLineTracker carries per-file contribution metrics across fsWrite
// invocations in a session: how many lines the last write observed and
// produced, and how the counts split between agent edits and edits made
// outside the session.
type FileLineTracker struct {
	// PrevWriteLines is the line count at the end of the last write.
	PrevWriteLines int
	// BeforeWriteLines is the line count observed before the current write.
	BeforeWriteLines int
	// AfterWriteLines is the line count after the current write.
	AfterWriteLines int
	// LinesAddedByAgent and LinesRemovedByAgent are the net lines the
	// current write added or removed.
	LinesAddedByAgent   int
	LinesRemovedByAgent int
	// IsFirstWrite is true until the first write is recorded.
	IsFirstWrite bool
}

// NewFileLineTracker returns a tracker in its pre-first-write state.
func NewFileLineTracker() *FileLineTracker {
	return &FileLineTracker{IsFirstWrite: true}
}

// RecordWrite folds one completed write into the tracker. The previous
// write's after-count rolls into PrevWriteLines so LinesByUser reflects
// edits made between agent writes.
func (t *FileLineTracker) RecordWrite(before, after int) {
	if !t.IsFirstWrite {
		t.PrevWriteLines = t.AfterWriteLines
	}
	t.BeforeWriteLines = before
	t.AfterWriteLines = after
	delta := after - before
	if delta >= 0 {
		t.LinesAddedByAgent = delta
		t.LinesRemovedByAgent = 0
	} else {
		t.LinesAddedByAgent = 0
		t.LinesRemovedByAgent = -delta
	}
	t.IsFirstWrite = false
}

// LinesByUser is the line-count change attributable to edits made outside
// the agent since the previous write. Negative when lines were removed.
func (t *FileLineTracker) LinesByUser() int {
	return t.BeforeWriteLines - t.PrevWriteLines
}

// LinesByAgent is the total line churn of the current write.
func (t *FileLineTracker) LinesByAgent() int {
	return t.LinesAddedByAgent + t.LinesRemovedByAgent
}

// SessionState holds per-session execution state keyed by canonical file
// path. Safe for concurrent use.
type SessionState struct {
	mu       sync.Mutex
	trackers map[string]*FileLineTracker
}

func NewSessionState() *SessionState {
	return &SessionState{trackers: make(map[string]*FileLineTracker)}
}

// Tracker returns the line tracker for path, creating one on first use.
func (s *SessionState) Tracker(path string) *FileLineTracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trackers[path]
	if !ok {
		t = NewFileLineTracker()
		s.trackers[path] = t
	}
	return t
}
