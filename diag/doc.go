// Package diag carries the diagnostic side-channel of lvsearch: lifecycle
// events (start, expand, goal) emitted by every search, and the sinks that
// receive them.
//
// Sinks are best-effort. A sink never returns an error to the search and a
// failing sink never changes a search result; FileSink, for instance, drops
// lines it cannot write and only counts them.
//
// Sinks:
//
//   - Nop         discards everything (the default).
//   - FileSink    appends one text line per event to a file, by default
//     search_log.txt in the working directory.
//   - WriterSink  writes the same lines to any io.Writer.
//   - SlogSink    emits events as structured log/slog records.
//   - PromSink    counts events in Prometheus counters.
//   - Multi       fans one event out to several sinks.
//   - SinkFunc    adapts a plain function.
//
// Line format (identical for FileSink and WriterSink):
//
//	DFS start: A
//	DFS expand: A | path_len=0
//	UCS expand: B | g=1 | path_len=1
//	A* expand: B | g=1 h=3 | path_len=1
//	UCS goal: D | g=2 | path_len=2
//
// All sinks in this package are safe for concurrent use.
package diag
