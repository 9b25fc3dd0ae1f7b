package cis2

import (
	"encoding/hex"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/serial"
)

func TestDeserializeMintEvent(t *testing.T) {
	data := "fe" + "00" + "0a" + "01" + "0100000000000000" + "0000000000000000"
	ev, err := DeserializeEvent(decodeHex(t, data))
	if err != nil {
		t.Fatal(err)
	}
	mint, ok := ev.(MintEvent)
	if !ok {
		t.Fatalf("event = %#v, want MintEvent", ev)
	}
	if mint.TokenID.Len() != 0 || mint.Amount.String() != "10" || mint.Owner != chain.NewContractAddress(1, 0) {
		t.Errorf("mint = %+v", mint)
	}
}

func TestEventRoundTrip(t *testing.T) {
	events := []Event{
		TransferEvent{TokenID: TokenIDFromUint8(1), Amount: TokenAmountFromUint64(12345), From: testAccount, To: chain.NewContractAddress(3, 4)},
		MintEvent{TokenID: TokenIDFromUint16(0x0102), Amount: TokenAmountFromUint64(1), Owner: testAccount},
		BurnEvent{TokenID: TokenIDFromUint8(1), Amount: TokenAmountFromUint64(300), Owner: chain.NewContractAddress(8, 0)},
		UpdateOperatorEvent{Update: OperatorAdd, Owner: testAccount, Operator: chain.NewContractAddress(2, 0)},
		TokenMetadataEvent{TokenID: TokenIDFromUint8(7), Metadata: NewTokenMetadataUrl("ipfs://meta", []byte("x"))},
		CustomEvent{EventTag: 5, Data: []byte{1, 2}},
	}

	for _, ev := range events {
		t.Run(reflect.TypeOf(ev).Name(), func(t *testing.T) {
			b, err := serial.Marshal(ev)
			if err != nil {
				t.Fatal(err)
			}
			if b[0] != ev.Tag() {
				t.Errorf("first byte = %d, want tag %d", b[0], ev.Tag())
			}
			back, err := DeserializeEvent(b)
			if err != nil {
				t.Fatalf("DeserializeEvent(%x): %v", b, err)
			}
			again, err := serial.Marshal(back)
			if err != nil {
				t.Fatal(err)
			}
			if hex.EncodeToString(again) != hex.EncodeToString(b) {
				t.Errorf("re-encoded %x, want %x", again, b)
			}
			if reflect.TypeOf(back) != reflect.TypeOf(ev) {
				t.Errorf("decoded %T, want %T", back, ev)
			}
		})
	}
}

func TestEventErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", serial.ErrUnexpectedEOF},
		{"operator_update_tag", "fc" + "02" + "00" + testAccountHex + "00" + testAccountHex, serial.ErrInvalidTag},
		{"address_tag", "fd" + "00" + "00" + "05", serial.ErrInvalidTag},
		{"truncated_transfer", "ff" + "00" + "00" + "00" + strings.Repeat("02", 8), serial.ErrUnexpectedEOF},
		{"trailing", "fe" + "00" + "00" + "01" + strings.Repeat("00", 16) + "00", serial.ErrTrailingBytes},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DeserializeEvent(decodeHex(t, tc.input)); !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCustomEventReservedTag(t *testing.T) {
	if _, err := serial.Marshal(CustomEvent{EventTag: EventTagTransfer}); !errors.Is(err, serial.ErrInvalidValue) {
		t.Errorf("error = %v, want ErrInvalidValue", err)
	}
}

func TestUnknownOperatorUpdateRejected(t *testing.T) {
	tests := []struct {
		name string
		v    serial.Serializable
	}{
		{"param", UpdateOperatorParam{{Update: OperatorUpdate(7), Operator: testAccount}}},
		{"event", UpdateOperatorEvent{Update: OperatorUpdate(2), Owner: testAccount, Operator: testAccount}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := serial.Marshal(tc.v); !errors.Is(err, serial.ErrInvalidValue) {
				t.Errorf("error = %v, want ErrInvalidValue", err)
			}
		})
	}
}
