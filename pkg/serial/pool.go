package serial

import "sync"

// maxPooledCap bounds the buffers kept for reuse. Contract parameters and
// return values never exceed 64 KiB, so anything larger is a one-off.
const maxPooledCap = 1 << 16

var writers = sync.Pool{New: func() any { return NewWriter() }}

// GetWriter returns an empty pooled Writer configured with opts. Release it
// with PutWriter.
func GetWriter(opts Options) *Writer {
	w := writers.Get().(*Writer)
	w.Reset()
	w.SetOptions(opts)
	return w
}

// PutWriter releases w. It must not be used afterwards.
func PutWriter(w *Writer) {
	if w == nil || cap(w.buf) > maxPooledCap {
		return
	}
	writers.Put(w)
}
