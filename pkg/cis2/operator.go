package cis2

import (
	"fmt"

	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/serial"
)

// OperatorUpdate adds or removes an operator.
type OperatorUpdate uint8

const (
	OperatorRemove OperatorUpdate = 0
	OperatorAdd    OperatorUpdate = 1
)

// String returns "remove" or "add".
func (u OperatorUpdate) String() string {
	switch u {
	case OperatorRemove:
		return "remove"
	case OperatorAdd:
		return "add"
	default:
		return fmt.Sprintf("OperatorUpdate(%d)", uint8(u))
	}
}

func writeOperatorUpdate(w *serial.Writer, u OperatorUpdate) {
	if u > OperatorAdd {
		w.Fail(serial.NewEncodeError("unknown operator update "+u.String(), serial.ErrInvalidValue))
		return
	}
	w.WriteUint8(uint8(u))
}

// ReadOperatorUpdate reads an OperatorUpdate tag.
func ReadOperatorUpdate(r *serial.Reader) OperatorUpdate {
	tag := r.ReadUint8()
	if r.Err() != nil {
		return 0
	}
	if tag > uint8(OperatorAdd) {
		r.FailTag("OperatorUpdate", tag)
		return 0
	}
	return OperatorUpdate(tag)
}

// OperatorOfQuery asks whether Address is an operator of Owner.
type OperatorOfQuery struct {
	Owner   chain.Address
	Address chain.Address
}

// Serialize writes the owner followed by the address.
func (q OperatorOfQuery) Serialize(w *serial.Writer) {
	chain.WriteAddress(w, q.Owner)
	chain.WriteAddress(w, q.Address)
}

// ReadOperatorOfQuery reads an OperatorOfQuery.
func ReadOperatorOfQuery(r *serial.Reader) OperatorOfQuery {
	owner := chain.ReadAddress(r)
	addr := chain.ReadAddress(r)
	return OperatorOfQuery{Owner: owner, Address: addr}
}

// OperatorOfParam is the parameter of the operatorOf entrypoint.
type OperatorOfParam []OperatorOfQuery

// Serialize writes the queries as a list with a 2-byte count.
func (p OperatorOfParam) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, func(w *serial.Writer, q OperatorOfQuery) { q.Serialize(w) })
}

// ReadOperatorOfParam reads an operatorOf parameter.
func ReadOperatorOfParam(r *serial.Reader) OperatorOfParam {
	return serial.ReadList(r, serial.Prefix16, ReadOperatorOfQuery)
}

// OperatorOfResponse holds one answer per query, in query order.
type OperatorOfResponse []bool

// Serialize writes the answers as a list with a 2-byte count.
func (p OperatorOfResponse) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, (*serial.Writer).WriteBool)
}

// ReadOperatorOfResponse reads an operatorOf response.
func ReadOperatorOfResponse(r *serial.Reader) OperatorOfResponse {
	return serial.ReadList(r, serial.Prefix16, (*serial.Reader).ReadBool)
}

// DeserializeOperatorOfResponse decodes a complete operatorOf response.
func DeserializeOperatorOfResponse(data []byte) (OperatorOfResponse, error) {
	return serial.Decode(data, ReadOperatorOfResponse)
}

// UpdateOperator adds or removes Operator as an operator of the sender.
type UpdateOperator struct {
	Update   OperatorUpdate
	Operator chain.Address
}

// Serialize writes the update tag followed by the operator address.
func (u UpdateOperator) Serialize(w *serial.Writer) {
	writeOperatorUpdate(w, u.Update)
	chain.WriteAddress(w, u.Operator)
}

// ReadUpdateOperator reads an UpdateOperator.
func ReadUpdateOperator(r *serial.Reader) UpdateOperator {
	update := ReadOperatorUpdate(r)
	op := chain.ReadAddress(r)
	return UpdateOperator{Update: update, Operator: op}
}

// UpdateOperatorParam is the parameter of the updateOperator entrypoint.
type UpdateOperatorParam []UpdateOperator

// Serialize writes the updates as a list with a 2-byte count.
func (p UpdateOperatorParam) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, func(w *serial.Writer, u UpdateOperator) { u.Serialize(w) })
}

// ReadUpdateOperatorParam reads an updateOperator parameter.
func ReadUpdateOperatorParam(r *serial.Reader) UpdateOperatorParam {
	return serial.ReadList(r, serial.Prefix16, ReadUpdateOperator)
}
