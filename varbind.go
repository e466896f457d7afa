// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmppdu

import (
	"bytes"
	"fmt"
)

// SnmpPDU is a single variable binding: an OID and its typed value. Value
// follows the same per-type conventions as Variable; use the decoded Go types
// listed there when a binding must compare equal to its own round trip.
type SnmpPDU struct {
	// Name is an oid in string format eg ".1.3.6.1.4.9.27"
	Name string

	// The type of the value eg Integer
	Type Asn1BER

	// The value to be set by the SNMP set, or the value when
	// sending a trap
	Value any
}

func (p SnmpPDU) String() string {
	if b, ok := p.Value.([]byte); ok {
		return fmt.Sprintf("%s: %s %x", p.Name, p.Type, b)
	}
	return fmt.Sprintf("%s: %s %v", p.Name, p.Type, p.Value)
}

// VarBindCodec encodes and decodes one variable binding.
//
// UnmarshalVarBind decodes the binding at the start of data and reports how
// many octets it consumed; data may continue past the binding.
type VarBindCodec interface {
	MarshalVarBind(vb SnmpPDU) ([]byte, error)
	UnmarshalVarBind(data []byte) (SnmpPDU, int, error)
}

// BERVarBinds is the standard VarBindCodec:
//
//	Sequence {
//	  ObjectIdentifier (Name)
//	  <Value TLV>      (Type + Value)
//	}
type BERVarBinds struct{}

var _ VarBindCodec = BERVarBinds{}

// MarshalVarBind encodes vb as a Sequence TLV.
func (BERVarBinds) MarshalVarBind(vb SnmpPDU) ([]byte, error) {
	name, err := Variable{Type: ObjectIdentifier, Value: vb.Name}.Marshal()
	if err != nil {
		return nil, err
	}
	value, err := Variable{Type: vb.Type, Value: vb.Value}.Marshal()
	if err != nil {
		return nil, fmt.Errorf("varbind %s: %w", vb.Name, err)
	}

	tmpBuf := bytes.NewBuffer(name)
	tmpBuf.Write(value)

	pduBuf := new(bytes.Buffer)
	marshalTLV(pduBuf, byte(Sequence), tmpBuf.Bytes())
	return pduBuf.Bytes(), nil
}

// UnmarshalVarBind decodes the Sequence TLV at the start of data.
func (BERVarBinds) UnmarshalVarBind(data []byte) (SnmpPDU, int, error) {
	if len(data) == 0 {
		return SnmpPDU{}, 0, fmt.Errorf("%w: empty varbind", ErrBadLength)
	}
	if PDUType(data[0]) != Sequence {
		return SnmpPDU{}, 0, fmt.Errorf("%w: expected a sequence when unmarshalling a VB, got %#x", ErrUnexpectedSnmpPdu, data[0])
	}

	length, cursor, err := parseLength(data)
	if err != nil {
		return SnmpPDU{}, 0, err
	}
	if length > len(data) {
		return SnmpPDU{}, 0, fmt.Errorf("%w: varbind needs %d octets, have %d", ErrBadLength, length, len(data))
	}
	body := data[cursor:length]

	name, nameLength, err := DecodeValue(body)
	if err != nil {
		return SnmpPDU{}, 0, fmt.Errorf("error parsing OID Value: %w", err)
	}
	if name.Type != ObjectIdentifier {
		return SnmpPDU{}, 0, fmt.Errorf("%w: varbind name is %s, not an OID", ErrUnexpectedSnmpPdu, name.Type)
	}

	value, valueLength, err := DecodeValue(body[nameLength:])
	if err != nil {
		return SnmpPDU{}, 0, fmt.Errorf("error decoding value of %s: %w", name.Value, err)
	}
	if nameLength+valueLength != len(body) {
		return SnmpPDU{}, 0, fmt.Errorf("%w: varbind content %d octets, fields %d", ErrBadLength, len(body), nameLength+valueLength)
	}

	oid, _ := name.Value.(string)
	return SnmpPDU{Name: oid, Type: value.Type, Value: value.Value}, length, nil
}
