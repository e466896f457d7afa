// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmppdu

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// Decode failures. Every error returned by UnmarshalPDU wraps exactly one of
// these; test with errors.Is.
var (
	// ErrBadLength reports a declared length that disagrees with the
	// available octets, or a buffer too short to hold a PDU.
	ErrBadLength = errors.New("bad length")
	// ErrUnsupportedType reports a leading tag that is not a decodable PDU type.
	ErrUnsupportedType = errors.New("unsupported pdu type")
	// ErrUnexpectedSnmpPdu reports a field of the wrong ASN.1 type or with
	// malformed contents.
	ErrUnexpectedSnmpPdu = errors.New("unexpected snmp pdu")
)

// Codec encodes and decodes PDUs. The zero value is ready to use and does
// not log.
type Codec struct {
	// Logger receives a trace of each decode step. Leave it zero for silence.
	Logger Logger

	// VarBinds handles individual variable bindings. Nil means BERVarBinds.
	VarBinds VarBindCodec
}

// Default is the Codec used by UnmarshalPDU and PDU.Marshal.
var Default = &Codec{}

func (c *Codec) varBinds() VarBindCodec {
	if c.VarBinds == nil {
		return BERVarBinds{}
	}
	return c.VarBinds
}

// -- Marshalling Logic --------------------------------------------------------

// MarshalPDU encodes pdu as
//
//	[type] [length] {
//	  Integer request-id
//	  Integer error-status
//	  Integer error-index
//	  Sequence { VarBind ... }
//	}
//
// All integers use minimal form; a request id of 2^31 or more carries a
// leading 0x00 to stay non-negative. The only failure is a binding whose
// value cannot be encoded.
func (c *Codec) MarshalPDU(pdu *PDU) ([]byte, error) {
	buf := new(bytes.Buffer)

	// requestid
	if err := shrinkAndWriteInt(buf, int64(pdu.requestID)); err != nil {
		return nil, fmt.Errorf("marshalPDU: unable to marshal request id: %w", err)
	}

	// error status
	if err := shrinkAndWriteInt(buf, int64(pdu.errorStatus)); err != nil {
		return nil, fmt.Errorf("marshalPDU: unable to marshal errorStatus: %w", err)
	}

	// error index
	if err := shrinkAndWriteInt(buf, pdu.errorIndex); err != nil {
		return nil, fmt.Errorf("marshalPDU: unable to marshal errorIndex: %w", err)
	}

	// build varbind list
	vbl, err := c.marshalVBL(pdu.variables)
	if err != nil {
		return nil, fmt.Errorf("marshalPDU: unable to marshal varbind list: %w", err)
	}
	buf.Write(vbl)

	// build up resulting pdu
	out := new(bytes.Buffer)
	out.WriteByte(byte(pdu.pduType))
	out.Write(EncodeLength(buf.Len()))
	if _, err = buf.WriteTo(out); err != nil {
		return nil, fmt.Errorf("marshalPDU: unable to marshal pdu: %w", err)
	}
	return out.Bytes(), nil
}

// marshal a varbind list
func (c *Codec) marshalVBL(vars []SnmpPDU) ([]byte, error) {
	vblBuf := new(bytes.Buffer)
	for _, vb := range vars {
		b, err := c.varBinds().MarshalVarBind(vb)
		if err != nil {
			return nil, err
		}
		vblBuf.Write(b)
	}

	result := new(bytes.Buffer)
	marshalTLV(result, byte(Sequence), vblBuf.Bytes())
	return result.Bytes(), nil
}

// -- Unmarshalling Logic ------------------------------------------------------

// UnmarshalPDU decodes a get-response PDU with the Default codec.
func UnmarshalPDU(data []byte) (*PDU, error) {
	return Default.UnmarshalPDU(data)
}

// UnmarshalPDU decodes the get-response PDU at the start of data. Octets
// after the PDU's declared length are ignored.
//
// Only the first variable binding is decoded; any further bindings in the
// list are skipped without inspection.
func (c *Codec) UnmarshalPDU(data []byte) (*PDU, error) {
	if err := ValidateLength(data); err != nil {
		return nil, err
	}
	if len(data) <= 2 {
		return nil, fmt.Errorf("%w: pdu of %d octets", ErrBadLength, len(data))
	}

	pduType := PDUType(data[0])
	if pduType != GetResponse {
		c.Logger.Printf("UnmarshalPDU Meet Unknown PDUType %#x", data[0])
		return nil, fmt.Errorf("%w: %#x", ErrUnsupportedType, data[0])
	}

	length, cursor, err := parseLength(data)
	if err != nil {
		return nil, err
	}
	if length < len(data) {
		c.Logger.Printf("ignoring %d octets after pdu", len(data)-length)
	}
	packet := data[:length]
	c.Logger.Printf("%s length: %d", pduType, length)

	rawRequestID, cursor, err := decodeIntegerField(packet, cursor, "request id")
	if err != nil {
		return nil, err
	}
	requestID, err := narrowRequestID(rawRequestID)
	if err != nil {
		return nil, err
	}
	c.Logger.Printf("requestID: %d", requestID)

	errorStatus, cursor, err := decodeIntegerField(packet, cursor, "error-status")
	if err != nil {
		return nil, err
	}
	c.Logger.Printf("errorStatus: %d", errorStatus)

	errorIndex, cursor, err := decodeIntegerField(packet, cursor, "error index")
	if err != nil {
		return nil, err
	}
	c.Logger.Printf("error-index: %d", errorIndex)

	vblStart, remaining, err := decodeVBLHeader(packet, cursor)
	if err != nil {
		return nil, err
	}
	c.Logger.Printf("vblLength: %d", remaining)

	vb, err := c.decodeFirstVarBind(packet[vblStart : vblStart+remaining])
	if err != nil {
		return nil, err
	}

	return &PDU{
		pduType:     pduType,
		requestID:   requestID,
		errorStatus: SNMPError(errorStatus),
		errorIndex:  errorIndex,
		variables:   []SnmpPDU{vb},
	}, nil
}

// decodeIntegerField decodes the INTEGER at offset in packet and returns its
// value and the offset just past it.
func decodeIntegerField(packet []byte, offset int, field string) (int64, int, error) {
	if offset >= len(packet) {
		return 0, offset, fmt.Errorf("%w: pdu ends before %s", ErrBadLength, field)
	}
	v, n, err := DecodeValue(packet[offset:])
	if err != nil {
		return 0, offset, fmt.Errorf("error parsing %s: %w", field, err)
	}
	i, ok := v.Value.(int64)
	if v.Type != Integer || !ok {
		return 0, offset, fmt.Errorf("%w: %s is %s, expected %s", ErrUnexpectedSnmpPdu, field, v.Type, Integer)
	}
	return i, offset + n, nil
}

// narrowRequestID maps a decoded request id onto uint32. Negative values in
// the int32 range come from agents that encode the id without a sign octet
// and are reinterpreted as their unsigned bit pattern.
func narrowRequestID(v int64) (uint32, error) {
	switch {
	case v >= 0 && v <= math.MaxUint32:
		return uint32(v), nil
	case v < 0 && v >= math.MinInt32:
		return uint32(int32(v)), nil
	}
	return 0, fmt.Errorf("%w: request id %d out of range", ErrUnexpectedSnmpPdu, v)
}

// decodeVBLHeader reads the varbind list header at offset. It returns the
// offset of the list contents and the number of content octets. The list
// must be the last field of packet.
func decodeVBLHeader(packet []byte, offset int) (int, int, error) {
	if offset >= len(packet) {
		return 0, 0, fmt.Errorf("%w: pdu ends before varbind list", ErrBadLength)
	}
	if PDUType(packet[offset]) != Sequence {
		return 0, 0, fmt.Errorf("%w: expected a sequence when unmarshalling a VBL, got %#x", ErrUnexpectedSnmpPdu, packet[offset])
	}

	vblLength, prefix, err := parseLength(packet[offset:])
	if err != nil {
		return 0, 0, err
	}
	if offset+vblLength != len(packet) {
		return 0, 0, fmt.Errorf("%w: varbind list ends at %d, pdu at %d", ErrBadLength, offset+vblLength, len(packet))
	}

	remaining := vblLength - prefix
	if remaining == 0 {
		return 0, 0, fmt.Errorf("%w: empty varbind list", ErrUnexpectedSnmpPdu)
	}
	return offset + prefix, remaining, nil
}

// decodeFirstVarBind decodes the first binding of the list contents vbl.
func (c *Codec) decodeFirstVarBind(vbl []byte) (SnmpPDU, error) {
	vb, n, err := c.varBinds().UnmarshalVarBind(vbl)
	if err != nil {
		if !isDecodeError(err) {
			return SnmpPDU{}, fmt.Errorf("%w: varbind: %w", ErrUnexpectedSnmpPdu, err)
		}
		return SnmpPDU{}, fmt.Errorf("error parsing varbind: %w", err)
	}
	if n > len(vbl) {
		return SnmpPDU{}, fmt.Errorf("%w: varbind of %d octets in list of %d", ErrBadLength, n, len(vbl))
	}
	c.Logger.Printf("OID: %s", vb.Name)

	// Only the first binding is decoded.
	if n < len(vbl) {
		c.Logger.Printf("ignoring %d octets of further varbinds", len(vbl)-n)
	}
	return vb, nil
}

func isDecodeError(err error) bool {
	return errors.Is(err, ErrBadLength) ||
		errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrUnexpectedSnmpPdu)
}
