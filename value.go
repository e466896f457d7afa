// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmppdu

import (
	"bytes"
	"fmt"
	"math"
	"net"
)

// Variable is a single decoded BER value.
//
// Value holds, by Type:
//
//	Integer                                      int64
//	OctetString, BitString, Opaque               []byte
//	ObjectIdentifier                             string, dotted with a leading "."
//	IPAddress                                    string, or nil for an empty address
//	Counter32, Gauge32, TimeTicks, Uinteger32    uint32
//	Counter64                                    uint64
//	Null, NoSuchObject, NoSuchInstance,
//	EndOfMibView                                 nil
//
// Any other tag keeps its raw contents as []byte.
//
// Marshal also accepts any Go integer type whose value fits the field, and
// string or net.IP where a string is listed. Decoding always yields the types
// above, so only those compare equal after a round trip.
type Variable struct {
	Type  Asn1BER
	Value any
}

// DecodeValue decodes the single TLV at the start of data. It returns the
// value and the number of octets it occupied.
func DecodeValue(data []byte) (Variable, int, error) {
	length, cursor, err := parseLength(data)
	if err != nil {
		return Variable{}, 0, err
	}
	if length > len(data) {
		return Variable{}, 0, fmt.Errorf("%w: %s needs %d octets, have %d", ErrBadLength, Asn1BER(data[0]), length, len(data))
	}

	content := data[cursor:length]
	v := Variable{Type: Asn1BER(data[0])}

	switch v.Type {
	case Integer:
		v.Value, err = parseInt64(content)
	case OctetString, BitString, Opaque:
		v.Value = bytes.Clone(content)
	case Null, NoSuchObject, NoSuchInstance, EndOfMibView:
		v.Value = nil
	case ObjectIdentifier:
		v.Value, err = parseObjectIdentifier(content)
	case IPAddress:
		v.Value, err = parseIPAddress(content)
	case Counter32, Gauge32, TimeTicks, Uinteger32:
		v.Value, err = parseUint32(content)
	case Counter64:
		v.Value, err = parseUint64(content)
	default:
		v.Value = bytes.Clone(content)
	}
	if err != nil {
		return Variable{}, 0, fmt.Errorf("decoding %s: %w", v.Type, err)
	}
	return v, length, nil
}

// Marshal returns the complete TLV encoding of v.
func (v Variable) Marshal() ([]byte, error) {
	content, err := v.marshalContents()
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	marshalTLV(buf, byte(v.Type), content)
	return buf.Bytes(), nil
}

func (v Variable) marshalContents() ([]byte, error) {
	switch v.Type {
	case Integer:
		i, ok := toInt64(v.Value)
		if !ok {
			return nil, fmt.Errorf("unable to marshal %s from %T", v.Type, v.Value)
		}
		return marshalInt64(i), nil

	case Counter32, Gauge32, TimeTicks, Uinteger32:
		u, ok := toUint64(v.Value)
		if !ok || u > 0xffffffff {
			return nil, fmt.Errorf("unable to marshal %s from %T %v", v.Type, v.Value, v.Value)
		}
		return marshalUint64(u), nil

	case Counter64:
		u, ok := toUint64(v.Value)
		if !ok {
			return nil, fmt.Errorf("unable to marshal %s from %T", v.Type, v.Value)
		}
		return marshalUint64(u), nil

	case Null, NoSuchObject, NoSuchInstance, EndOfMibView:
		return nil, nil

	case ObjectIdentifier:
		oid, ok := v.Value.(string)
		if !ok {
			return nil, fmt.Errorf("unable to marshal %s from %T", v.Type, v.Value)
		}
		return marshalObjectIdentifier(oid)

	case IPAddress:
		switch value := v.Value.(type) {
		case nil:
			return nil, nil
		case net.IP:
			return ipToBytes(value)
		case []byte:
			return value, nil
		case string:
			ip := net.ParseIP(value)
			if ip == nil {
				return nil, fmt.Errorf("unable to marshal %s from %q", v.Type, value)
			}
			return ipToBytes(ip)
		}
		return nil, fmt.Errorf("unable to marshal %s from %T", v.Type, v.Value)

	default:
		switch value := v.Value.(type) {
		case []byte:
			return value, nil
		case string:
			return []byte(value), nil
		case nil:
			return nil, nil
		}
		return nil, fmt.Errorf("unable to marshal %s from %T", v.Type, v.Value)
	}
}

func toInt64(v any) (int64, bool) {
	switch value := v.(type) {
	case int:
		return int64(value), true
	case int8:
		return int64(value), true
	case int16:
		return int64(value), true
	case int32:
		return int64(value), true
	case int64:
		return value, true
	case uint8:
		return int64(value), true
	case uint16:
		return int64(value), true
	case uint32:
		return int64(value), true
	case uint:
		if uint64(value) <= math.MaxInt64 {
			return int64(value), true
		}
	case uint64:
		if value <= math.MaxInt64 {
			return int64(value), true
		}
	}
	return 0, false
}

func toUint64(v any) (uint64, bool) {
	switch value := v.(type) {
	case uint:
		return uint64(value), true
	case uint8:
		return uint64(value), true
	case uint16:
		return uint64(value), true
	case uint32:
		return uint64(value), true
	case uint64:
		return value, true
	case int:
		if value >= 0 {
			return uint64(value), true
		}
	case int8:
		if value >= 0 {
			return uint64(value), true
		}
	case int16:
		if value >= 0 {
			return uint64(value), true
		}
	case int32:
		if value >= 0 {
			return uint64(value), true
		}
	case int64:
		if value >= 0 {
			return uint64(value), true
		}
	}
	return 0, false
}
