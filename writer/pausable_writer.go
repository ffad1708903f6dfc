package writer

import (
	"bytes"
	"io"
	"sync"
)

// PausableWriter buffers writes while paused and flushes them on Resume.
type PausableWriter struct {
	writer io.Writer
	buffer *bytes.Buffer
	paused bool
	mutex  sync.Mutex
}

func NewPausableWriter(writer io.Writer) *PausableWriter {
	return &PausableWriter{writer: writer, buffer: new(bytes.Buffer)}
}

func (w *PausableWriter) Write(p []byte) (int, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.paused {
		return w.buffer.Write(p)
	}
	return w.writer.Write(p)
}

func (w *PausableWriter) Pause() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.paused = true
}

func (w *PausableWriter) Resume() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.paused = false
	_, err := w.buffer.WriteTo(w.writer)
	return err
}
