// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmppdu

import (
	"bytes"
	"encoding/asn1"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"net"
	"strconv"
	"strings"
)

// MaxObjectSubIdentifierValue is the largest value a single OID arc may hold.
const MaxObjectSubIdentifierValue = math.MaxUint32

// maxLengthOctets bounds the long form; SNMP messages never exceed 2^32 octets.
const maxLengthOctets = 4

// -- Length octets ------------------------------------------------------------

// EncodeLength builds the BER length octets for a content of length bytes.
//
// Length octets. There are two forms: short (for lengths between 0 and 127),
// and long definite (for lengths between 0 and 2^1008 -1).
//
//   - Short form. One octet. Bit 8 has value "0" and bits 7-1 give the length.
//   - Long form. Two to 127 octets. Bit 8 of first octet has value "1" and bits
//     7-1 give the number of additional length octets. Second and following
//     octets give the length, base 256, most significant digit first.
//
// Lengths come from len(), so a negative length returns nil.
func EncodeLength(length int) []byte {
	if length < 0 {
		return nil
	}
	if length < 0x80 {
		return []byte{byte(length)}
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(length))
	i := 0
	for buf[i] == 0 {
		i++
	}
	return append([]byte{byte(0x80 | (len(buf) - i))}, buf[i:]...)
}

// parseLength reads the tag and length octets at the start of data. It returns
// the total length of the TLV (header and contents) and the width of the
// header, which is where the contents begin.
//
// Only the definite form is accepted; RFC 3417 section 8 prohibits the
// indefinite form in SNMP.
func parseLength(data []byte) (length int, cursor int, err error) {
	if len(data) < 2 {
		return 0, 0, fmt.Errorf("%w: need 2 header octets, have %d", ErrBadLength, len(data))
	}

	first := int(data[1])
	if first < 0x80 {
		return first + 2, 2, nil
	}

	numOctets := first & 0x7f
	switch {
	case numOctets == 0:
		return 0, 0, fmt.Errorf("%w: indefinite length not supported", ErrBadLength)
	case numOctets > maxLengthOctets:
		return 0, 0, fmt.Errorf("%w: %d length octets exceed limit of %d", ErrBadLength, numOctets, maxLengthOctets)
	case len(data) < 2+numOctets:
		return 0, 0, fmt.Errorf("%w: truncated length octets, need %d have %d", ErrBadLength, numOctets, len(data)-2)
	}

	cursor = 2 + numOctets
	var content uint64
	for i := 0; i < numOctets; i++ {
		content = content<<8 | uint64(data[2+i])
	}
	// header plus contents must fit in an int32 so the sum cannot wrap on
	// 32-bit platforms
	if content > uint64(math.MaxInt32-cursor) {
		return 0, 0, fmt.Errorf("%w: length %d out of range", ErrBadLength, content)
	}
	return int(content) + cursor, cursor, nil
}

// PrefixLength returns the width of the tag and length octets of the TLV at
// the start of data.
func PrefixLength(data []byte) (int, error) {
	_, cursor, err := parseLength(data)
	return cursor, err
}

// PDULength returns the total encoded width of the TLV at the start of data,
// tag and length octets included.
func PDULength(data []byte) (int, error) {
	length, _, err := parseLength(data)
	return length, err
}

// ValidateLength checks that the TLV at the start of data fits in data.
func ValidateLength(data []byte) error {
	length, _, err := parseLength(data)
	if err != nil {
		return err
	}
	if length > len(data) {
		return fmt.Errorf("%w: declared %d octets, have %d", ErrBadLength, length, len(data))
	}
	return nil
}

// marshalTLV writes tag, length and value to buf.
func marshalTLV(buf *bytes.Buffer, tag byte, value []byte) {
	buf.WriteByte(tag)
	buf.Write(EncodeLength(len(value)))
	buf.Write(value)
}

// -- Integers -----------------------------------------------------------------

/*
	snmp Integer32 and INTEGER are signed and use the shortest two's complement
	form: a leading 0x00 or 0xff octet only appears when the next octet would
	otherwise carry the wrong sign.

	snmp Counter32, Gauge32, TimeTicks, Unsigned32 and Counter64 are unsigned
	but share the INTEGER encoding, so values with the high bit set gain a
	leading 0x00.
*/

// shrinkAndWriteInt writes in as a complete minimal-form INTEGER TLV.
func shrinkAndWriteInt(buf io.Writer, in int64) error {
	out, err := asn1.Marshal(in)
	if err != nil {
		return err
	}
	_, err = buf.Write(out)
	return err
}

// marshalInt64 returns the minimal two's complement contents for v.
func marshalInt64(v int64) []byte {
	n := 1
	for i := v; i > 127 || i < -128; i >>= 8 {
		n++
	}

	out := make([]byte, n)
	for j := n - 1; j >= 0; j-- {
		out[j] = byte(v)
		v >>= 8
	}
	return out
}

// marshalUint64 returns the minimal contents for an unsigned value, keeping
// a 0x00 guard octet when the high bit is set.
func marshalUint64(v uint64) []byte {
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[1:], v)
	i := 1
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	if buf[i]&0x80 != 0 {
		i--
	}
	return append([]byte(nil), buf[i:]...)
}

// parseInt64 treats the given bytes as a big-endian, signed integer and
// returns the result.
func parseInt64(bytes []byte) (ret int64, err error) {
	if len(bytes) == 0 {
		return 0, fmt.Errorf("%w: empty integer", ErrUnexpectedSnmpPdu)
	}
	if len(bytes) > 8 {
		// We'll overflow an int64 in this case.
		return 0, fmt.Errorf("%w: integer of %d octets too large", ErrUnexpectedSnmpPdu, len(bytes))
	}
	for bytesRead := 0; bytesRead < len(bytes); bytesRead++ {
		ret <<= 8
		ret |= int64(bytes[bytesRead])
	}

	// Shift up and down in order to sign extend the result.
	ret <<= 64 - uint8(len(bytes))*8
	ret >>= 64 - uint8(len(bytes))*8
	return ret, nil
}

// parseUint64 treats the given bytes as a big-endian, unsigned integer and
// returns the result.
func parseUint64(bytes []byte) (ret uint64, err error) {
	if len(bytes) == 0 {
		return 0, fmt.Errorf("%w: empty unsigned integer", ErrUnexpectedSnmpPdu)
	}
	if len(bytes) > 9 || (len(bytes) > 8 && bytes[0] != 0x0) {
		// We'll overflow a uint64 in this case.
		return 0, fmt.Errorf("%w: unsigned integer of %d octets too large", ErrUnexpectedSnmpPdu, len(bytes))
	}
	for bytesRead := 0; bytesRead < len(bytes); bytesRead++ {
		ret <<= 8
		ret |= uint64(bytes[bytesRead])
	}
	return ret, nil
}

func parseUint32(bytes []byte) (uint32, error) {
	ret, err := parseUint64(bytes)
	if err != nil {
		return 0, err
	}
	if ret > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d overflows 32 bits", ErrUnexpectedSnmpPdu, ret)
	}
	return uint32(ret), nil
}

// -- Object identifiers -------------------------------------------------------

func marshalBase128Int(out io.ByteWriter, n uint64) error {
	if n == 0 {
		return out.WriteByte(0)
	}

	l := 0
	for i := n; i > 0; i >>= 7 {
		l++
	}

	for i := l - 1; i >= 0; i-- {
		o := byte(n >> uint(i*7))
		o &= 0x7f
		if i != 0 {
			o |= 0x80
		}
		if err := out.WriteByte(o); err != nil {
			return err
		}
	}
	return nil
}

// marshalObjectIdentifier encodes a dotted OID, with or without the leading
// dot, into its BER contents.
func marshalObjectIdentifier(oid string) ([]byte, error) {
	arcs := strings.Split(strings.TrimPrefix(oid, "."), ".")
	if len(arcs) < 2 || len(arcs) > 128 {
		return nil, fmt.Errorf("unable to marshal OID %q: invalid object identifier", oid)
	}

	values := make([]uint64, len(arcs))
	for i, arc := range arcs {
		v, err := strconv.ParseUint(arc, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("unable to marshal OID %q: %w", oid, err)
		}
		values[i] = v
	}
	if values[0] > 2 || (values[0] < 2 && values[1] >= 40) {
		return nil, fmt.Errorf("unable to marshal OID %q: invalid object identifier", oid)
	}
	if values[0]*40+values[1] > MaxObjectSubIdentifierValue {
		return nil, fmt.Errorf("unable to marshal OID %q: first sub-identifier out of range", oid)
	}

	out := new(bytes.Buffer)
	if err := marshalBase128Int(out, values[0]*40+values[1]); err != nil {
		return nil, err
	}
	for _, v := range values[2:] {
		if err := marshalBase128Int(out, v); err != nil {
			return nil, err
		}
	}
	return out.Bytes(), nil
}

// parseBase128Int parses a base-128 encoded int from the given offset in the
// given byte slice. It returns the value and the new offset.
func parseBase128Int(bytes []byte, initOffset int) (ret uint64, offset int, err error) {
	offset = initOffset
	for shifted := 0; offset < len(bytes); shifted++ {
		if shifted > 4 {
			return 0, offset, fmt.Errorf("%w: base 128 integer too large", ErrUnexpectedSnmpPdu)
		}
		ret <<= 7
		b := bytes[offset]
		ret |= uint64(b & 0x7f)
		offset++
		if b&0x80 == 0 {
			if ret > MaxObjectSubIdentifierValue {
				return 0, offset, fmt.Errorf("%w: sub-identifier %d out of range", ErrUnexpectedSnmpPdu, ret)
			}
			return ret, offset, nil
		}
	}
	return 0, offset, fmt.Errorf("%w: truncated base 128 integer", ErrUnexpectedSnmpPdu)
}

// parseObjectIdentifier parses an OBJECT IDENTIFIER from the given bytes and
// returns it in dotted form with a leading dot.
func parseObjectIdentifier(src []byte) (string, error) {
	if len(src) == 0 {
		return "", fmt.Errorf("%w: invalid OID length", ErrUnexpectedSnmpPdu)
	}

	first, offset, err := parseBase128Int(src, 0)
	if err != nil {
		return "", err
	}

	out := new(strings.Builder)
	if first < 80 {
		fmt.Fprintf(out, ".%d.%d", first/40, first%40)
	} else {
		fmt.Fprintf(out, ".2.%d", first-80)
	}

	for offset < len(src) {
		var v uint64
		v, offset, err = parseBase128Int(src, offset)
		if err != nil {
			return "", err
		}
		out.WriteByte('.')
		out.WriteString(strconv.FormatUint(v, 10))
	}
	return out.String(), nil
}

// -- IP addresses -------------------------------------------------------------

func ipToBytes(ip net.IP) ([]byte, error) {
	if v4 := ip.To4(); v4 != nil {
		return []byte(v4), nil
	}
	if v6 := ip.To16(); v6 != nil {
		return []byte(v6), nil
	}
	return nil, fmt.Errorf("invalid ip address %q", ip)
}

func parseIPAddress(content []byte) (any, error) {
	switch len(content) {
	case 0: // real life, buggy devices returning bad data
		return nil, nil
	case net.IPv4len, net.IPv6len:
		return net.IP(bytes.Clone(content)).String(), nil
	default:
		return nil, fmt.Errorf("%w: got ipaddress len %d, expected 4 or 16", ErrUnexpectedSnmpPdu, len(content))
	}
}
