package cis2

import (
	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/serial"
)

// Receiver tags in the wire format.
const (
	ReceiverTagAccount  uint8 = 0
	ReceiverTagContract uint8 = 1
)

// BalanceOfQuery asks for the balance of Address in token TokenID.
type BalanceOfQuery struct {
	TokenID TokenID
	Address chain.Address
}

// Serialize writes the token ID followed by the tagged address.
func (q BalanceOfQuery) Serialize(w *serial.Writer) {
	q.TokenID.Serialize(w)
	chain.WriteAddress(w, q.Address)
}

// ReadBalanceOfQuery reads a BalanceOfQuery.
func ReadBalanceOfQuery(r *serial.Reader) BalanceOfQuery {
	id := ReadTokenID(r)
	addr := chain.ReadAddress(r)
	return BalanceOfQuery{TokenID: id, Address: addr}
}

// BalanceOfParam is the parameter of the balanceOf entrypoint.
type BalanceOfParam []BalanceOfQuery

// Serialize writes the queries as a list with a 2-byte count.
func (p BalanceOfParam) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, func(w *serial.Writer, q BalanceOfQuery) { q.Serialize(w) })
}

// ReadBalanceOfParam reads a balanceOf parameter.
func ReadBalanceOfParam(r *serial.Reader) BalanceOfParam {
	return serial.ReadList(r, serial.Prefix16, ReadBalanceOfQuery)
}

// BalanceOfResponse holds one amount per query, in query order.
type BalanceOfResponse []TokenAmount

// Serialize writes the amounts as a list with a 2-byte count.
func (p BalanceOfResponse) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, func(w *serial.Writer, a TokenAmount) { a.Serialize(w) })
}

// ReadBalanceOfResponse reads a balanceOf response.
func ReadBalanceOfResponse(r *serial.Reader) BalanceOfResponse {
	return serial.ReadList(r, serial.Prefix16, ReadTokenAmount)
}

// DeserializeBalanceOfResponse decodes a complete balanceOf response.
func DeserializeBalanceOfResponse(data []byte) (BalanceOfResponse, error) {
	return serial.Decode(data, ReadBalanceOfResponse)
}

// Receiver is the destination of a transfer: an AccountReceiver or a
// ContractReceiver. The set of implementations is closed.
type Receiver interface {
	serial.Serializable

	receiverTag() uint8
}

// AccountReceiver sends tokens to an account.
type AccountReceiver struct {
	Address chain.AccountAddress
}

// ContractReceiver sends tokens to a contract, which is notified through
// the Hook entrypoint.
type ContractReceiver struct {
	Address chain.ContractAddress
	Hook    chain.ReceiveName
}

func (AccountReceiver) receiverTag() uint8  { return ReceiverTagAccount }
func (ContractReceiver) receiverTag() uint8 { return ReceiverTagContract }

// Serialize writes the tag and the account address.
func (a AccountReceiver) Serialize(w *serial.Writer) {
	w.WriteUint8(ReceiverTagAccount)
	a.Address.Serialize(w)
}

// Serialize writes the tag, the contract address and the hook name with a
// 2-byte length prefix. The hook name is always present, possibly empty.
func (c ContractReceiver) Serialize(w *serial.Writer) {
	w.WriteUint8(ReceiverTagContract)
	c.Address.Serialize(w)
	c.Hook.Serialize(w)
}

// ReadReceiver reads a tagged Receiver.
func ReadReceiver(r *serial.Reader) Receiver {
	tag := r.ReadUint8()
	if r.Err() != nil {
		return nil
	}
	switch tag {
	case ReceiverTagAccount:
		return AccountReceiver{Address: chain.ReadAccountAddress(r)}
	case ReceiverTagContract:
		addr := chain.ReadContractAddress(r)
		hook := chain.ReadReceiveName(r)
		return ContractReceiver{Address: addr, Hook: hook}
	default:
		r.FailTag("Receiver", tag)
		return nil
	}
}

// TransferPayload moves Amount of TokenID from From to To. Data is passed
// to the receive hook of contract receivers.
type TransferPayload struct {
	TokenID TokenID
	Amount  TokenAmount
	From    chain.Address
	To      Receiver
	Data    []byte
}

// Serialize writes the payload. Nil Data is written as an empty blob.
func (t TransferPayload) Serialize(w *serial.Writer) {
	t.TokenID.Serialize(w)
	t.Amount.Serialize(w)
	chain.WriteAddress(w, t.From)
	if t.To == nil {
		w.Fail(serial.NewEncodeError("nil Receiver", serial.ErrInvalidValue))
		return
	}
	t.To.Serialize(w)
	w.WriteBytes(t.Data, serial.Prefix16)
}

// ReadTransferPayload reads a TransferPayload. An empty data blob decodes
// as nil.
func ReadTransferPayload(r *serial.Reader) TransferPayload {
	var t TransferPayload
	t.TokenID = ReadTokenID(r)
	t.Amount = ReadTokenAmount(r)
	t.From = chain.ReadAddress(r)
	t.To = ReadReceiver(r)
	if data := r.ReadBytes(serial.Prefix16); len(data) > 0 {
		t.Data = data
	}
	return t
}

// TransferParam is the parameter of the transfer entrypoint.
type TransferParam []TransferPayload

// Serialize writes the transfers as a list with a 2-byte count.
func (p TransferParam) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, func(w *serial.Writer, t TransferPayload) { t.Serialize(w) })
}

// ReadTransferParam reads a transfer parameter.
func ReadTransferParam(r *serial.Reader) TransferParam {
	return serial.ReadList(r, serial.Prefix16, ReadTransferPayload)
}

// TokenMetadataParam is the parameter of the tokenMetadata entrypoint.
type TokenMetadataParam []TokenID

// Serialize writes the token IDs as a list with a 2-byte count.
func (p TokenMetadataParam) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, func(w *serial.Writer, id TokenID) { id.Serialize(w) })
}

// ReadTokenMetadataParam reads a tokenMetadata parameter.
func ReadTokenMetadataParam(r *serial.Reader) TokenMetadataParam {
	return serial.ReadList(r, serial.Prefix16, ReadTokenID)
}

// TokenMetadataResponse holds one metadata URL per queried token.
type TokenMetadataResponse []TokenMetadataUrl

// Serialize writes the URLs as a list with a 2-byte count.
func (p TokenMetadataResponse) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, func(w *serial.Writer, m TokenMetadataUrl) { m.Serialize(w) })
}

// ReadTokenMetadataResponse reads a tokenMetadata response.
func ReadTokenMetadataResponse(r *serial.Reader) TokenMetadataResponse {
	return serial.ReadList(r, serial.Prefix16, ReadTokenMetadataUrl)
}

// DeserializeTokenMetadataResponse decodes a complete tokenMetadata response.
func DeserializeTokenMetadataResponse(data []byte) (TokenMetadataResponse, error) {
	return serial.Decode(data, ReadTokenMetadataResponse)
}
