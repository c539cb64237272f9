package playsound

// Task is the handle for a non-blocking playback started by Start. The
// playback runs on its own goroutine; the caller may wait on the Task
// or drop it and let the playback finish detached. Playback errors are
// observable only through the Task.
type Task struct {
	done chan struct{}
	err  error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

// finish records the playback outcome and releases waiters.
func (t *Task) finish(err error) {
	t.err = err
	close(t.done)
}

// Done returns a channel closed when the playback finishes.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the playback finishes and returns its error.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Err returns the playback error without blocking. It returns nil
// while the playback is still running.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}
