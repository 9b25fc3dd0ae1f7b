package serial

// Serializable is implemented by values with a fixed wire encoding.
type Serializable interface {
	// Serialize appends the value's encoding to w. Failures are recorded
	// on w and reported by w.Err.
	Serialize(w *Writer)
}

// Marshal encodes v with default options.
func Marshal(v Serializable) ([]byte, error) {
	return MarshalWithOptions(v, DefaultOptions)
}

// MarshalWithOptions encodes v with the specified options.
func MarshalWithOptions(v Serializable, opts Options) ([]byte, error) {
	w := GetWriter(opts)
	defer PutWriter(w)

	v.Serialize(w)
	if err := w.Err(); err != nil {
		return nil, err
	}
	return w.BytesCopy(), nil
}

// Decode decodes a complete top-level value from data with dec using
// default options. Unconsumed input fails with ErrTrailingBytes.
func Decode[T any](data []byte, dec func(*Reader) T) (T, error) {
	return DecodeWithOptions(data, DefaultOptions, dec)
}

// DecodeWithOptions is Decode with the specified options.
func DecodeWithOptions[T any](data []byte, opts Options, dec func(*Reader) T) (T, error) {
	r := NewReaderWithOptions(data, opts)
	var v T
	if r.Err() == nil {
		v = dec(r)
	}
	if err := r.Finish(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
