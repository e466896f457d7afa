// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

/*
Package snmppdu encodes and decodes SNMP Protocol Data Units using the
Basic Encoding Rules.

NewPDU builds an outgoing PDU with a random request id, and Marshal writes
it as

	[type] [length] { request-id, error-status, error-index, VarBindList }

UnmarshalPDU decodes a GetResponse. Only the first variable binding of the
list is returned. Decode failures wrap ErrBadLength, ErrUnsupportedType or
ErrUnexpectedSnmpPdu.

PDULayer exposes the codec to gopacket.
*/
package snmppdu
