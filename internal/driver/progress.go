package driver

import "cisniff/internal/diag"

// Status captures the state of one file in a check run.
type Status string

const (
	// StatusQueued indicates the file is loaded and waits for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates rules are running over the file.
	StatusWorking Status = "checking"
	// StatusCached indicates the result came from the disk cache.
	StatusCached Status = "cached"
	// StatusDone indicates the file has no error diagnostics.
	StatusDone Status = "done"
	// StatusFailed indicates the file has at least one error diagnostic.
	StatusFailed Status = "failed"
)

// Event reports progress for a file.
type Event struct {
	File     string
	Status   Status
	Errors   int
	Warnings int
}

// Finished reports whether no further events follow for the file.
func (e Event) Finished() bool {
	return e.Status == StatusDone || e.Status == StatusFailed || e.Status == StatusCached
}

// ProgressSink consumes progress events. OnEvent is called from worker
// goroutines concurrently.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

func finishedEvent(r FileResult) Event {
	evt := Event{
		File:     r.Path,
		Status:   StatusDone,
		Errors:   r.Bag.Count(diag.SevError),
		Warnings: r.Bag.Count(diag.SevWarning),
	}
	switch {
	case r.Cached:
		evt.Status = StatusCached
	case evt.Errors > 0:
		evt.Status = StatusFailed
	}
	return evt
}
