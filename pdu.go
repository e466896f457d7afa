// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmppdu

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
)

// ErrNoVariables is returned by NewPDU when no variable bindings are given.
var ErrNoVariables = errors.New("pdu requires at least 1 variable binding")

// PDU is an SNMP Protocol Data Unit. It is immutable once built: either by
// NewPDU for an outgoing request or by UnmarshalPDU from received bytes.
type PDU struct {
	pduType     PDUType
	requestID   uint32
	errorStatus SNMPError
	errorIndex  int64
	variables   []SnmpPDU
}

// NewPDU builds an outgoing PDU of type t carrying vars. The request id is
// drawn uniformly from 1..2^32-1; error-status and error-index are zero.
func NewPDU(t PDUType, vars []SnmpPDU) (*PDU, error) {
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}
	return &PDU{
		pduType:   t,
		requestID: newRequestID(),
		variables: slices.Clone(vars),
	}, nil
}

func newRequestID() uint32 {
	return rand.Uint32N(math.MaxUint32) + 1
}

// Type returns the PDU type tag.
func (p *PDU) Type() PDUType { return p.pduType }

// RequestID returns the id correlating a response with its request.
func (p *PDU) RequestID() uint32 { return p.requestID }

// ErrorStatus returns the error-status field.
func (p *PDU) ErrorStatus() SNMPError { return p.errorStatus }

// ErrorIndex returns the 1-based index of the binding that caused
// ErrorStatus, or 0.
func (p *PDU) ErrorIndex() int64 { return p.errorIndex }

// Variables returns a copy of the variable bindings.
func (p *PDU) Variables() []SnmpPDU { return slices.Clone(p.variables) }

// Marshal encodes p with the Default codec.
func (p *PDU) Marshal() ([]byte, error) {
	return Default.MarshalPDU(p)
}

func (p *PDU) String() string {
	var b strings.Builder
	b.WriteString("SNMP ")
	b.WriteString(p.pduType.String())
	b.WriteString(" requestID: ")
	b.WriteString(strconv.FormatUint(uint64(p.requestID), 10))
	b.WriteString(" ErrorStatus: ")
	b.WriteString(p.errorStatus.String())
	if p.errorIndex != 0 {
		b.WriteString(" ErrorIndex: ")
		b.WriteString(strconv.FormatInt(p.errorIndex, 10))
	}
	b.WriteByte('\n')
	for _, vb := range p.variables {
		b.WriteString("  ")
		b.WriteString(vb.String())
		b.WriteByte('\n')
	}
	return b.String()
}
