package cis2

import (
	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/serial"
)

// Event tags reserved by CIS-2. Smaller tags are free for contract
// specific events.
const (
	EventTagTransfer       uint8 = 255
	EventTagMint           uint8 = 254
	EventTagBurn           uint8 = 253
	EventTagUpdateOperator uint8 = 252
	EventTagTokenMetadata  uint8 = 251
)

// Event is a CIS-2 event logged by a contract.
type Event interface {
	serial.Serializable

	// Tag returns the event tag.
	Tag() uint8
}

// TransferEvent is logged for every transfer.
type TransferEvent struct {
	TokenID TokenID
	Amount  TokenAmount
	From    chain.Address
	To      chain.Address
}

// MintEvent is logged when tokens are created.
type MintEvent struct {
	TokenID TokenID
	Amount  TokenAmount
	Owner   chain.Address
}

// BurnEvent is logged when tokens are destroyed.
type BurnEvent struct {
	TokenID TokenID
	Amount  TokenAmount
	Owner   chain.Address
}

// UpdateOperatorEvent is logged when an operator is added or removed.
type UpdateOperatorEvent struct {
	Update   OperatorUpdate
	Owner    chain.Address
	Operator chain.Address
}

// TokenMetadataEvent is logged when the metadata URL of a token is set.
type TokenMetadataEvent struct {
	TokenID  TokenID
	Metadata TokenMetadataUrl
}

// CustomEvent is an event with a tag outside the CIS-2 range. Data holds
// the bytes after the tag.
type CustomEvent struct {
	EventTag uint8
	Data     []byte
}

func (TransferEvent) Tag() uint8       { return EventTagTransfer }
func (MintEvent) Tag() uint8           { return EventTagMint }
func (BurnEvent) Tag() uint8           { return EventTagBurn }
func (UpdateOperatorEvent) Tag() uint8 { return EventTagUpdateOperator }
func (TokenMetadataEvent) Tag() uint8  { return EventTagTokenMetadata }
func (e CustomEvent) Tag() uint8       { return e.EventTag }

// Serialize writes the tagged event.
func (e TransferEvent) Serialize(w *serial.Writer) {
	w.WriteUint8(EventTagTransfer)
	e.TokenID.Serialize(w)
	e.Amount.Serialize(w)
	chain.WriteAddress(w, e.From)
	chain.WriteAddress(w, e.To)
}

// Serialize writes the tagged event.
func (e MintEvent) Serialize(w *serial.Writer) {
	w.WriteUint8(EventTagMint)
	e.TokenID.Serialize(w)
	e.Amount.Serialize(w)
	chain.WriteAddress(w, e.Owner)
}

// Serialize writes the tagged event.
func (e BurnEvent) Serialize(w *serial.Writer) {
	w.WriteUint8(EventTagBurn)
	e.TokenID.Serialize(w)
	e.Amount.Serialize(w)
	chain.WriteAddress(w, e.Owner)
}

// Serialize writes the tagged event.
func (e UpdateOperatorEvent) Serialize(w *serial.Writer) {
	w.WriteUint8(EventTagUpdateOperator)
	writeOperatorUpdate(w, e.Update)
	chain.WriteAddress(w, e.Owner)
	chain.WriteAddress(w, e.Operator)
}

// Serialize writes the tagged event.
func (e TokenMetadataEvent) Serialize(w *serial.Writer) {
	w.WriteUint8(EventTagTokenMetadata)
	e.TokenID.Serialize(w)
	e.Metadata.Serialize(w)
}

// Serialize writes the tag and the raw event data.
func (e CustomEvent) Serialize(w *serial.Writer) {
	if e.EventTag >= EventTagTokenMetadata {
		w.Fail(serial.NewEncodeError("custom event uses a reserved tag", serial.ErrInvalidValue))
		return
	}
	w.WriteUint8(e.EventTag)
	w.WriteRaw(e.Data)
}

// ReadEvent reads a tagged event. Tags below the CIS-2 range yield a
// CustomEvent holding the rest of the input.
func ReadEvent(r *serial.Reader) Event {
	tag := r.ReadUint8()
	if r.Err() != nil {
		return nil
	}
	switch tag {
	case EventTagTransfer:
		var e TransferEvent
		e.TokenID = ReadTokenID(r)
		e.Amount = ReadTokenAmount(r)
		e.From = chain.ReadAddress(r)
		e.To = chain.ReadAddress(r)
		return e
	case EventTagMint:
		var e MintEvent
		e.TokenID = ReadTokenID(r)
		e.Amount = ReadTokenAmount(r)
		e.Owner = chain.ReadAddress(r)
		return e
	case EventTagBurn:
		var e BurnEvent
		e.TokenID = ReadTokenID(r)
		e.Amount = ReadTokenAmount(r)
		e.Owner = chain.ReadAddress(r)
		return e
	case EventTagUpdateOperator:
		var e UpdateOperatorEvent
		e.Update = ReadOperatorUpdate(r)
		e.Owner = chain.ReadAddress(r)
		e.Operator = chain.ReadAddress(r)
		return e
	case EventTagTokenMetadata:
		var e TokenMetadataEvent
		e.TokenID = ReadTokenID(r)
		e.Metadata = ReadTokenMetadataUrl(r)
		return e
	default:
		return CustomEvent{EventTag: tag, Data: r.ReadRaw(r.Len())}
	}
}

// DeserializeEvent decodes a complete logged event.
func DeserializeEvent(data []byte) (Event, error) {
	return serial.Decode(data, ReadEvent)
}
