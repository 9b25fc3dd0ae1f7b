// Package benchmark measures the CIS codecs and compares the varint path
// with protobuf's protowire and JSON.
package benchmark

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/blockberries/ciscodec/internal/wire"
	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/cis2"
	"github.com/blockberries/ciscodec/pkg/serial"
)

// ============================================================================
// Test Data Construction
// ============================================================================

var account = chain.AccountAddress(bytes.Repeat([]byte{7}, chain.AccountAddressSize))

func makeTransferParam(n int) cis2.TransferParam {
	hook, _ := chain.NewReceiveName("vault.onReceivingCIS2")
	param := make(cis2.TransferParam, n)
	for i := range param {
		var to cis2.Receiver = cis2.AccountReceiver{Address: account}
		if i%2 == 1 {
			to = cis2.ContractReceiver{Address: chain.NewContractAddress(uint64(i), 0), Hook: hook}
		}
		param[i] = cis2.TransferPayload{
			TokenID: cis2.TokenIDFromUint32(uint32(i)),
			Amount:  cis2.TokenAmountFromUint64(uint64(i) * 1_000_000),
			From:    account,
			To:      to,
			Data:    []byte{0xca, 0xfe},
		}
	}
	return param
}

func makeBalanceOfResponse(n int) cis2.BalanceOfResponse {
	resp := make(cis2.BalanceOfResponse, n)
	large := new(big.Int).Lsh(big.NewInt(1), 200)
	for i := range resp {
		if i%4 == 0 {
			resp[i], _ = cis2.NewTokenAmount(new(big.Int).Add(large, big.NewInt(int64(i))))
		} else {
			resp[i] = cis2.TokenAmountFromUint64(uint64(i) << 20)
		}
	}
	return resp
}

var varintValues = []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 35, 1<<63 + 12345}

// ============================================================================
// Varint Benchmarks
// ============================================================================

func BenchmarkUvarint_Wire_Encode(b *testing.B) {
	buf := make([]byte, 0, 128)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = buf[:0]
		for _, v := range varintValues {
			buf = wire.AppendUvarint(buf, v)
		}
	}
}

func BenchmarkUvarint_Protowire_Encode(b *testing.B) {
	buf := make([]byte, 0, 128)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = buf[:0]
		for _, v := range varintValues {
			buf = protowire.AppendVarint(buf, v)
		}
	}
}

func BenchmarkUvarint_Wire_Decode(b *testing.B) {
	var data []byte
	for _, v := range varintValues {
		data = wire.AppendUvarint(data, v)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for rest := data; len(rest) > 0; {
			_, n, err := wire.DecodeUvarint(rest)
			if err != nil {
				b.Fatal(err)
			}
			rest = rest[n:]
		}
	}
}

func BenchmarkUvarint_Protowire_Decode(b *testing.B) {
	var data []byte
	for _, v := range varintValues {
		data = protowire.AppendVarint(data, v)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for rest := data; len(rest) > 0; {
			_, n := protowire.ConsumeVarint(rest)
			if n < 0 {
				b.Fatal(protowire.ParseError(n))
			}
			rest = rest[n:]
		}
	}
}

func BenchmarkBigUvarint_Encode256(b *testing.B) {
	v := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	buf := make([]byte, 0, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = wire.AppendBigUvarint(buf[:0], v)
	}
}

func BenchmarkBigUvarint_Decode256(b *testing.B) {
	v := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	data := wire.AppendBigUvarint(nil, v)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := wire.DecodeBigUvarint(data, cis2.TokenAmountMaxLength); err != nil {
			b.Fatal(err)
		}
	}
}

// ============================================================================
// Message Benchmarks
// ============================================================================

func BenchmarkTransferParam_Encode(b *testing.B) {
	param := makeTransferParam(100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := serial.Marshal(param); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransferParam_Decode(b *testing.B) {
	data, err := serial.Marshal(makeTransferParam(100))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := serial.Decode(data, cis2.ReadTransferParam); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBalanceOfResponse_Decode(b *testing.B) {
	data, err := serial.Marshal(makeBalanceOfResponse(1000))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cis2.DeserializeBalanceOfResponse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBalanceOfResponse_JSON_Decode(b *testing.B) {
	resp := makeBalanceOfResponse(1000)
	amounts := make([]string, len(resp))
	for i, a := range resp {
		amounts[i] = a.String()
	}
	data, err := json.Marshal(amounts)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out []string
		if err := json.Unmarshal(data, &out); err != nil {
			b.Fatal(err)
		}
		for _, s := range out {
			if _, err := cis2.ParseTokenAmount(s); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// ============================================================================
// Size Comparison
// ============================================================================

func TestSizeComparison(t *testing.T) {
	resp := makeBalanceOfResponse(1000)
	data, err := serial.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	amounts := make([]string, len(resp))
	for i, a := range resp {
		amounts[i] = a.String()
	}
	js, _ := json.Marshal(amounts)
	t.Logf("balanceOf response with %d amounts: binary %d bytes, JSON %d bytes", len(resp), len(data), len(js))
	if len(data) >= len(js) {
		t.Errorf("binary encoding (%d) not smaller than JSON (%d)", len(data), len(js))
	}
}
