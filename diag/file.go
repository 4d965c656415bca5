package diag

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// WriterSink writes one formatted line per event to an io.Writer.
// Write errors are counted and otherwise ignored.
type WriterSink struct {
	mu      sync.Mutex
	w       io.Writer
	dropped atomic.Int64
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Record writes e as a line.
func (s *WriterSink) Record(e Event) {
	line := e.String() + "\n"
	s.mu.Lock()
	_, err := io.WriteString(s.w, line)
	s.mu.Unlock()
	if err != nil {
		s.dropped.Add(1)
	}
}

// Dropped returns how many events could not be written.
func (s *WriterSink) Dropped() int64 { return s.dropped.Load() }

// FileSink appends one line per event to a file. The file is opened in
// append mode and closed again for every event.
type FileSink struct {
	mu      sync.Mutex
	path    string
	dropped atomic.Int64
}

// NewFileSink returns a sink appending to path; an empty path selects
// DefaultLogFile in the working directory.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultLogFile
	}
	return &FileSink{path: path}
}

// Path returns the file the sink appends to.
func (s *FileSink) Path() string { return s.path }

// Record appends e to the file. Failures are counted, never reported.
func (s *FileSink) Record(e Event) {
	line := e.String() + "\n"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.dropped.Add(1)
		return
	}
	if _, err = f.WriteString(line); err != nil {
		s.dropped.Add(1)
	}
	_ = f.Close()
}

// Dropped returns how many events could not be written.
func (s *FileSink) Dropped() int64 { return s.dropped.Load() }
