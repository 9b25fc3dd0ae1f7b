//go:build go1.18

package serial

import "testing"

// FuzzReadList tests that list decoding never panics on arbitrary input.
func FuzzReadList(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x00})
	f.Add([]byte{0x02, 0x00, 0x01, 0x02})
	f.Add([]byte{0xff, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = Decode(data, func(r *Reader) [][]byte {
			return ReadList(r, Prefix16, func(r *Reader) []byte {
				return r.ReadBytes(Prefix8)
			})
		})
	})
}

// FuzzReadBigUvarint tests that varint decoding never panics and that
// accepted encodings re-encode to the same bytes.
func FuzzReadBigUvarint(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0xb9, 0x60})
	f.Add([]byte{0x80, 0x00})
	f.Add([]byte{0x80})

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		v := r.ReadBigUvarint(37)
		if r.Err() != nil {
			return
		}
		w := NewWriter()
		w.WriteBigUvarint(v, 37)
		if string(w.Bytes()) != string(data[:r.Pos()]) {
			t.Errorf("re-encoding %x gave %x", data[:r.Pos()], w.Bytes())
		}
	})
}
