// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmppdu

import "strconv"

// Asn1BER is the type of an SNMP value tag.
type Asn1BER byte

// Asn1BER's - http://www.ietf.org/rfc/rfc1442.txt
const (
	EndOfContents     Asn1BER = 0x00
	Boolean           Asn1BER = 0x01
	Integer           Asn1BER = 0x02
	BitString         Asn1BER = 0x03
	OctetString       Asn1BER = 0x04
	Null              Asn1BER = 0x05
	ObjectIdentifier  Asn1BER = 0x06
	ObjectDescription Asn1BER = 0x07
	IPAddress         Asn1BER = 0x40
	Counter32         Asn1BER = 0x41
	Gauge32           Asn1BER = 0x42
	TimeTicks         Asn1BER = 0x43
	Opaque            Asn1BER = 0x44
	NsapAddress       Asn1BER = 0x45
	Counter64         Asn1BER = 0x46
	Uinteger32        Asn1BER = 0x47
	NoSuchObject      Asn1BER = 0x80
	NoSuchInstance    Asn1BER = 0x81
	EndOfMibView      Asn1BER = 0x82
)

func (a Asn1BER) String() string {
	switch a {
	case EndOfContents:
		return "EndOfContents"
	case Boolean:
		return "Boolean"
	case Integer:
		return "Integer"
	case BitString:
		return "BitString"
	case OctetString:
		return "OctetString"
	case Null:
		return "Null"
	case ObjectIdentifier:
		return "ObjectIdentifier"
	case ObjectDescription:
		return "ObjectDescription"
	case IPAddress:
		return "IPAddress"
	case Counter32:
		return "Counter32"
	case Gauge32:
		return "Gauge32"
	case TimeTicks:
		return "TimeTicks"
	case Opaque:
		return "Opaque"
	case NsapAddress:
		return "NsapAddress"
	case Counter64:
		return "Counter64"
	case Uinteger32:
		return "Uinteger32"
	case NoSuchObject:
		return "NoSuchObject"
	case NoSuchInstance:
		return "NoSuchInstance"
	case EndOfMibView:
		return "EndOfMibView"
	}
	return "Asn1BER(" + strconv.FormatInt(int64(a), 10) + ")"
}

// PDUType describes which SNMP Protocol Data Unit is being sent.
type PDUType byte

// The currently supported PDUType's
const (
	Sequence       PDUType = 0x30
	GetRequest     PDUType = 0xa0
	GetNextRequest PDUType = 0xa1
	GetResponse    PDUType = 0xa2
	SetRequest     PDUType = 0xa3
	Trap           PDUType = 0xa4 // v1
	GetBulkRequest PDUType = 0xa5
	InformRequest  PDUType = 0xa6
	SNMPv2Trap     PDUType = 0xa7 // v2c, v3
	Report         PDUType = 0xa8 // v3
)

var pduTypeNames = [...]string{
	"GetRequest",
	"GetNextRequest",
	"GetResponse",
	"SetRequest",
	"Trap",
	"GetBulkRequest",
	"InformRequest",
	"SNMPv2Trap",
	"Report",
}

func (p PDUType) String() string {
	switch {
	case p == Sequence:
		return "Sequence"
	case p >= GetRequest && p <= Report:
		return pduTypeNames[p-GetRequest]
	}
	return "PDUType(" + strconv.FormatInt(int64(p), 10) + ")"
}

// SNMPError is the type for the error-status field of a PDU. It is kept
// wide so any INTEGER an agent sends survives decoding.
type SNMPError int64

// SNMP Errors, RFC 3416 section 3.
const (
	NoError             SNMPError = iota // No error occurred. This code is also used in all request PDUs, since they have no error status to report.
	TooBig                               // The size of the Response-PDU would be too large to transport.
	NoSuchName                           // The name of a requested object was not found.
	BadValue                             // A value in the request didn't match the structure that the recipient of the request had for the object.
	ReadOnly                             // An attempt was made to set a variable that has an Access value indicating that it is read-only.
	GenErr                               // An error occurred other than one indicated by a more specific error code in this table.
	NoAccess                             // Access was denied to the object for security reasons.
	WrongType                            // The object type in a variable binding is incorrect for the object.
	WrongLength                          // A variable binding specifies a length incorrect for the object.
	WrongEncoding                        // A variable binding specifies an encoding incorrect for the object.
	WrongValue                           // The value given in a variable binding is not possible for the object.
	NoCreation                           // A specified variable does not exist and cannot be created.
	InconsistentValue                    // A variable binding specifies a value that could be held by the variable but cannot be assigned to it at this time.
	ResourceUnavailable                  // An attempt to set a variable required a resource that is not available.
	CommitFailed                         // An attempt to set a particular variable failed.
	UndoFailed                           // An attempt to set a particular variable as part of a group of variables failed, and the attempt to then undo the setting of other variables was not successful.
	AuthorizationError                   // A problem occurred in authorization.
	NotWritable                          // The variable cannot be written or created.
	InconsistentName                     // The name in a variable binding specifies a variable that does not exist.
)

var snmpErrorNames = [...]string{
	"NoError",
	"TooBig",
	"NoSuchName",
	"BadValue",
	"ReadOnly",
	"GenErr",
	"NoAccess",
	"WrongType",
	"WrongLength",
	"WrongEncoding",
	"WrongValue",
	"NoCreation",
	"InconsistentValue",
	"ResourceUnavailable",
	"CommitFailed",
	"UndoFailed",
	"AuthorizationError",
	"NotWritable",
	"InconsistentName",
}

func (e SNMPError) String() string {
	if e >= 0 && int64(e) < int64(len(snmpErrorNames)) {
		return snmpErrorNames[e]
	}
	return "SNMPError(" + strconv.FormatInt(int64(e), 10) + ")"
}
