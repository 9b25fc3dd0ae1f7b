package serial

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func writeByte(w *Writer, b uint8) { w.WriteUint8(b) }
func readByte(r *Reader) uint8     { return r.ReadUint8() }

func TestWriteList(t *testing.T) {
	tests := []struct {
		name     string
		items    []uint8
		prefix   PrefixWidth
		expected []byte
	}{
		{"empty_u16", nil, Prefix16, []byte{0x00, 0x00}},
		{"two_u16", []uint8{7, 8}, Prefix16, []byte{0x02, 0x00, 7, 8}},
		{"one_u8", []uint8{1}, Prefix8, []byte{0x01, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter()
			WriteList(w, tc.items, tc.prefix, writeByte)
			if w.Err() != nil {
				t.Fatalf("unexpected error: %v", w.Err())
			}
			if !bytes.Equal(w.Bytes(), tc.expected) {
				t.Errorf("WriteList = %x, want %x", w.Bytes(), tc.expected)
			}
		})
	}
}

func TestWriteListBoundary(t *testing.T) {
	w := NewWriter()
	WriteList(w, make([]uint8, 65535), Prefix16, writeByte)
	if w.Err() != nil {
		t.Fatalf("65535 elements: unexpected error %v", w.Err())
	}
	if w.Len() != 2+65535 {
		t.Errorf("65535 elements: Len() = %d", w.Len())
	}

	w = NewWriter()
	WriteList(w, make([]uint8, 65536), Prefix16, writeByte)
	if !errors.Is(w.Err(), ErrListTooLong) {
		t.Errorf("65536 elements: Err() = %v, want ErrListTooLong", w.Err())
	}
}

func TestReadList(t *testing.T) {
	r := NewReader([]byte{0x03, 0x00, 1, 2, 3, 0xff})
	items := ReadList(r, Prefix16, readByte)
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	if !reflect.DeepEqual(items, []uint8{1, 2, 3}) {
		t.Errorf("ReadList = %v", items)
	}
	// The cursor stops at the first unconsumed byte.
	if r.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", r.Pos())
	}
}

func TestReadListTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"missing_count", []byte{0x01}},
		{"missing_elements", []byte{0x03, 0x00, 1, 2}},
		{"huge_count", []byte{0xff, 0xff, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(tc.data)
			items := ReadList(r, Prefix16, readByte)
			if !errors.Is(r.Err(), ErrUnexpectedEOF) {
				t.Errorf("Err() = %v, want ErrUnexpectedEOF", r.Err())
			}
			if items != nil {
				t.Errorf("partial result returned: %v", items)
			}
		})
	}
}

func TestReadListLimit(t *testing.T) {
	opts := Options{Limits: Limits{MaxListLength: 2}}
	_, err := DecodeWithOptions([]byte{0x03, 0x00, 1, 2, 3}, opts, func(r *Reader) []uint8 {
		return ReadList(r, Prefix16, readByte)
	})
	if !errors.Is(err, ErrMaxListLength) {
		t.Errorf("error = %v, want ErrMaxListLength", err)
	}
}

func TestListRoundTrip(t *testing.T) {
	lists := [][]uint8{{}, {0}, {1, 2, 3, 4, 5}, bytes.Repeat([]byte{0xaa}, 300)}
	for _, items := range lists {
		w := NewWriter()
		WriteList(w, items, Prefix16, writeByte)
		got, err := Decode(w.Bytes(), func(r *Reader) []uint8 {
			return ReadList(r, Prefix16, readByte)
		})
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if !bytes.Equal(got, items) {
			t.Errorf("round trip = %v, want %v", got, items)
		}
	}
}

type pair struct{ a, b uint8 }

func (p pair) Serialize(w *Writer) {
	w.WriteUint8(p.a)
	w.WriteUint8(p.b)
}

func TestMarshalDeterministic(t *testing.T) {
	p := pair{1, 2}
	first, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) || !bytes.Equal(first, []byte{1, 2}) {
		t.Errorf("Marshal not deterministic: %x vs %x", first, second)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x00, 7, 8}, func(r *Reader) []uint8 {
		return ReadList(r, Prefix16, readByte)
	})
	if !errors.Is(err, ErrTrailingBytes) {
		t.Errorf("Decode error = %v, want ErrTrailingBytes", err)
	}
}
