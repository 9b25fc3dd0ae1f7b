package chain

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/blockberries/ciscodec/pkg/serial"
)

func TestNewReceiveName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"valid", "test.receive", true},
		{"max_length", strings.Repeat("a", 50) + "." + strings.Repeat("b", 49), true},
		{"too_long", strings.Repeat("a", 50) + "." + strings.Repeat("b", 50), false},
		{"no_separator", "receive", false},
		{"non_ascii", "tëst.receive", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReceiveName(tc.input)
			if tc.ok && err != nil {
				t.Errorf("NewReceiveName(%q) error: %v", tc.input, err)
			}
			if !tc.ok && !errors.Is(err, serial.ErrInvalidValue) {
				t.Errorf("NewReceiveName(%q) error = %v, want ErrInvalidValue", tc.input, err)
			}
		})
	}
}

func TestReceiveNameParts(t *testing.T) {
	n, err := NewReceiveName("cis2_nft.transfer")
	if err != nil {
		t.Fatal(err)
	}
	if n.ContractName().String() != "cis2_nft" || n.Entrypoint().String() != "transfer" {
		t.Errorf("parts = %q, %q", n.ContractName(), n.Entrypoint())
	}
}

func TestContractNameReceiveName(t *testing.T) {
	c, err := NewContractName("cis2_nft")
	if err != nil {
		t.Fatal(err)
	}
	n, err := c.ReceiveName(MustEntrypointName("balanceOf"))
	if err != nil {
		t.Fatal(err)
	}
	if n.String() != "cis2_nft.balanceOf" {
		t.Errorf("ReceiveName = %q", n)
	}

	if _, err := NewContractName("a.b"); err == nil {
		t.Error("contract name with '.' accepted")
	}
	if _, err := NewContractName(strings.Repeat("c", 96)); err == nil {
		t.Error("96-character contract name accepted")
	}
	if _, err := NewEntrypointName(strings.Repeat("e", 100)); err == nil {
		t.Error("100-character entrypoint name accepted")
	}
}

func TestReceiveNameWire(t *testing.T) {
	n, _ := NewReceiveName("test.receive")
	w := serial.NewWriter()
	n.Serialize(w)
	want := append([]byte{0x0c, 0x00}, "test.receive"...)
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Serialize = %x, want %x", w.Bytes(), want)
	}

	got, err := serial.Decode(want, ReadReceiveName)
	if err != nil || got != n {
		t.Errorf("Decode = %v, %v", got, err)
	}

	w = serial.NewWriter()
	ReceiveName{}.Serialize(w)
	if !bytes.Equal(w.Bytes(), []byte{0x00, 0x00}) {
		t.Errorf("zero ReceiveName = %x, want 0000", w.Bytes())
	}
	got, err = serial.Decode([]byte{0x00, 0x00}, ReadReceiveName)
	if err != nil || !got.IsZero() {
		t.Errorf("Decode(0000) = %v, %v", got, err)
	}
}

func TestReadReceiveNameInvalid(t *testing.T) {
	data := append([]byte{0x04, 0x00}, "nope"...)
	_, err := serial.Decode(data, ReadReceiveName)
	if !errors.Is(err, serial.ErrInvalidValue) {
		t.Errorf("Decode error = %v, want ErrInvalidValue", err)
	}
}
