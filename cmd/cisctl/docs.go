package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/cis0"
	"github.com/blockberries/ciscodec/pkg/cis2"
)

// addressDoc is an Address in YAML form. Exactly one field is set.
type addressDoc struct {
	Account  string `yaml:"account,omitempty"`
	Contract string `yaml:"contract,omitempty"`
}

// receiverDoc is a transfer Receiver in YAML form.
type receiverDoc struct {
	Account  string `yaml:"account,omitempty"`
	Contract string `yaml:"contract,omitempty"`
	Hook     string `yaml:"hook,omitempty"`
}

type balanceQueryDoc struct {
	TokenID string     `yaml:"token_id"`
	Address addressDoc `yaml:"address"`
}

type transferDoc struct {
	TokenID string      `yaml:"token_id"`
	Amount  string      `yaml:"amount"`
	From    addressDoc  `yaml:"from"`
	To      receiverDoc `yaml:"to"`
	Data    string      `yaml:"data,omitempty"`
}

type operatorQueryDoc struct {
	Owner   addressDoc `yaml:"owner"`
	Address addressDoc `yaml:"address"`
}

type updateOperatorDoc struct {
	Update   string     `yaml:"update"`
	Operator addressDoc `yaml:"operator"`
}

type metadataDoc struct {
	URL      string `yaml:"url"`
	Checksum string `yaml:"checksum,omitempty"`
}

type supportDoc struct {
	Result    string   `yaml:"result"`
	Contracts []string `yaml:"contracts,omitempty"`
}

type eventDoc struct {
	Type     string       `yaml:"type"`
	Tag      uint8        `yaml:"tag"`
	TokenID  string       `yaml:"token_id,omitempty"`
	Amount   string       `yaml:"amount,omitempty"`
	From     *addressDoc  `yaml:"from,omitempty"`
	To       *addressDoc  `yaml:"to,omitempty"`
	Owner    *addressDoc  `yaml:"owner,omitempty"`
	Operator *addressDoc  `yaml:"operator,omitempty"`
	Update   string       `yaml:"update,omitempty"`
	Metadata *metadataDoc `yaml:"metadata,omitempty"`
	Data     string       `yaml:"data,omitempty"`
}

// requestDoc is the input of the encode command.
type requestDoc struct {
	Kind           string              `yaml:"kind"`
	Standards      []string            `yaml:"standards,omitempty"`
	BalanceOf      []balanceQueryDoc   `yaml:"balance_of,omitempty"`
	Transfers      []transferDoc       `yaml:"transfers,omitempty"`
	TokenIDs       []string            `yaml:"token_ids,omitempty"`
	OperatorOf     []operatorQueryDoc  `yaml:"operator_of,omitempty"`
	UpdateOperator []updateOperatorDoc `yaml:"update_operator,omitempty"`
}

// responseDoc is the output of the decode command.
type responseDoc struct {
	Kind      string        `yaml:"kind"`
	Supports  []supportDoc  `yaml:"supports,omitempty"`
	Balances  []string      `yaml:"balances,omitempty"`
	Metadata  []metadataDoc `yaml:"metadata,omitempty"`
	Operators []bool        `yaml:"operators,omitempty"`
	Transfers []transferDoc `yaml:"transfers,omitempty"`
	Event     *eventDoc     `yaml:"event,omitempty"`
}

// parseContractAddress accepts "<index,subindex>" or "index,subindex".
func parseContractAddress(s string) (chain.ContractAddress, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "<"), ">")
	index, subindex, ok := strings.Cut(s, ",")
	if !ok {
		subindex = "0"
	}
	i, err := strconv.ParseUint(strings.TrimSpace(index), 10, 64)
	if err != nil {
		return chain.ContractAddress{}, fmt.Errorf("contract address index: %w", err)
	}
	j, err := strconv.ParseUint(strings.TrimSpace(subindex), 10, 64)
	if err != nil {
		return chain.ContractAddress{}, fmt.Errorf("contract address subindex: %w", err)
	}
	return chain.NewContractAddress(i, j), nil
}

func (d addressDoc) address() (chain.Address, error) {
	switch {
	case d.Account != "" && d.Contract != "":
		return nil, fmt.Errorf("address sets both account and contract")
	case d.Account != "":
		return chain.ParseAccountAddress(d.Account)
	case d.Contract != "":
		return parseContractAddress(d.Contract)
	default:
		return nil, fmt.Errorf("address is empty")
	}
}

func toAddressDoc(a chain.Address) *addressDoc {
	switch v := a.(type) {
	case chain.AccountAddress:
		return &addressDoc{Account: v.String()}
	case chain.ContractAddress:
		return &addressDoc{Contract: v.String()}
	default:
		return nil
	}
}

func (d receiverDoc) receiver() (cis2.Receiver, error) {
	switch {
	case d.Account != "" && d.Contract != "":
		return nil, fmt.Errorf("receiver sets both account and contract")
	case d.Account != "":
		if d.Hook != "" {
			return nil, fmt.Errorf("account receiver cannot have a hook")
		}
		a, err := chain.ParseAccountAddress(d.Account)
		if err != nil {
			return nil, err
		}
		return cis2.AccountReceiver{Address: a}, nil
	case d.Contract != "":
		c, err := parseContractAddress(d.Contract)
		if err != nil {
			return nil, err
		}
		var hook chain.ReceiveName
		if d.Hook != "" {
			if hook, err = chain.NewReceiveName(d.Hook); err != nil {
				return nil, err
			}
		}
		return cis2.ContractReceiver{Address: c, Hook: hook}, nil
	default:
		return nil, fmt.Errorf("receiver is empty")
	}
}

func toReceiverDoc(r cis2.Receiver) receiverDoc {
	switch v := r.(type) {
	case cis2.AccountReceiver:
		return receiverDoc{Account: v.Address.String()}
	case cis2.ContractReceiver:
		return receiverDoc{Contract: v.Address.String(), Hook: v.Hook.String()}
	default:
		return receiverDoc{}
	}
}

func (d transferDoc) payload() (cis2.TransferPayload, error) {
	var t cis2.TransferPayload
	var err error
	if t.TokenID, err = cis2.ParseTokenID(d.TokenID); err != nil {
		return t, err
	}
	if t.Amount, err = cis2.ParseTokenAmount(d.Amount); err != nil {
		return t, err
	}
	if t.From, err = d.From.address(); err != nil {
		return t, fmt.Errorf("from: %w", err)
	}
	if t.To, err = d.To.receiver(); err != nil {
		return t, fmt.Errorf("to: %w", err)
	}
	if d.Data != "" {
		if t.Data, err = hex.DecodeString(d.Data); err != nil {
			return t, fmt.Errorf("data: %w", err)
		}
	}
	return t, nil
}

func toTransferDoc(t cis2.TransferPayload) transferDoc {
	d := transferDoc{
		TokenID: t.TokenID.String(),
		Amount:  t.Amount.String(),
		To:      toReceiverDoc(t.To),
		Data:    hex.EncodeToString(t.Data),
	}
	if from := toAddressDoc(t.From); from != nil {
		d.From = *from
	}
	return d
}

func toMetadataDoc(m cis2.TokenMetadataUrl) metadataDoc {
	d := metadataDoc{URL: m.URL}
	if m.Checksum != nil {
		d.Checksum = hex.EncodeToString(m.Checksum[:])
	}
	return d
}

func toSupportDoc(r cis0.SupportResult) supportDoc {
	switch v := r.(type) {
	case cis0.Supported:
		return supportDoc{Result: "supported"}
	case cis0.SupportedBy:
		d := supportDoc{Result: "supported by"}
		for _, c := range v.Contracts {
			d.Contracts = append(d.Contracts, c.String())
		}
		return d
	default:
		return supportDoc{Result: "not supported"}
	}
}

func toEventDoc(e cis2.Event) *eventDoc {
	d := &eventDoc{Tag: e.Tag()}
	switch v := e.(type) {
	case cis2.TransferEvent:
		d.Type = "transfer"
		d.TokenID, d.Amount = v.TokenID.String(), v.Amount.String()
		d.From, d.To = toAddressDoc(v.From), toAddressDoc(v.To)
	case cis2.MintEvent:
		d.Type = "mint"
		d.TokenID, d.Amount = v.TokenID.String(), v.Amount.String()
		d.Owner = toAddressDoc(v.Owner)
	case cis2.BurnEvent:
		d.Type = "burn"
		d.TokenID, d.Amount = v.TokenID.String(), v.Amount.String()
		d.Owner = toAddressDoc(v.Owner)
	case cis2.UpdateOperatorEvent:
		d.Type = "update operator"
		d.Update = v.Update.String()
		d.Owner, d.Operator = toAddressDoc(v.Owner), toAddressDoc(v.Operator)
	case cis2.TokenMetadataEvent:
		d.Type = "token metadata"
		d.TokenID = v.TokenID.String()
		m := toMetadataDoc(v.Metadata)
		d.Metadata = &m
	case cis2.CustomEvent:
		d.Type = "custom"
		d.Data = hex.EncodeToString(v.Data)
	}
	return d
}
