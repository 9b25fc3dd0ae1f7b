package serial

import "fmt"

// WriteList writes items as a count prefix of the given width followed by
// the concatenated element encodings. A list with more elements than the
// prefix can count fails with ErrListTooLong and writes nothing.
func WriteList[T any](w *Writer, items []T, prefix PrefixWidth, enc func(*Writer, T)) {
	w.WriteLength(len(items), prefix, ErrListTooLong)
	for _, item := range items {
		if w.Err() != nil {
			return
		}
		enc(w, item)
	}
}

// ReadList reads a count prefix of the given width and then exactly that
// many elements with dec. On success the cursor is left at the first byte
// after the last element. A nil slice is returned on failure.
func ReadList[T any](r *Reader, prefix PrefixWidth, dec func(*Reader) T) []T {
	n := r.ReadLength(prefix)
	if r.Err() != nil {
		return nil
	}
	if max := r.opts.Limits.MaxListLength; max > 0 && n > max {
		r.setErrorAt(ErrMaxListLength, fmt.Sprintf("list of %d elements exceeds limit %d", n, max))
		return nil
	}
	// Every element occupies at least one byte, so a count larger than the
	// remaining input can never be satisfied.
	if n > r.Len() {
		r.setErrorAt(ErrUnexpectedEOF, fmt.Sprintf("list of %d elements with %d bytes left", n, r.Len()))
		return nil
	}

	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		item := dec(r)
		if r.Err() != nil {
			return nil
		}
		items = append(items, item)
	}
	return items
}
