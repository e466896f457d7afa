// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmppdu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPDU(t *testing.T) {
	vars := []SnmpPDU{{Name: sysDescr, Type: Null}}

	pdu, err := NewPDU(GetRequest, vars)
	require.NoError(t, err)
	assert.Equal(t, GetRequest, pdu.Type())
	assert.NotZero(t, pdu.RequestID())
	assert.Equal(t, NoError, pdu.ErrorStatus())
	assert.Equal(t, int64(0), pdu.ErrorIndex())
	assert.Equal(t, vars, pdu.Variables())

	// later changes to the caller's slice do not leak in
	vars[0].Name = ".1.3"
	assert.Equal(t, sysDescr, pdu.Variables()[0].Name)
}

func TestNewPDUNoVariables(t *testing.T) {
	for _, vars := range [][]SnmpPDU{nil, {}} {
		pdu, err := NewPDU(GetRequest, vars)
		assert.Nil(t, pdu)
		assert.ErrorIs(t, err, ErrNoVariables)
	}
}

func TestNewPDURequestIDSpread(t *testing.T) {
	const draws = 1000
	seen := make(map[uint32]struct{}, draws)
	var quartiles [4]int

	for i := 0; i < draws; i++ {
		pdu, err := NewPDU(GetRequest, []SnmpPDU{{Name: sysDescr, Type: Null}})
		require.NoError(t, err)

		id := pdu.RequestID()
		require.NotZero(t, id)
		seen[id] = struct{}{}
		quartiles[id/(math.MaxUint32/4+1)]++
	}

	assert.Greater(t, len(seen), draws-10)
	for q, n := range quartiles {
		assert.NotZero(t, n, "no request id in quartile %d", q)
	}
}

func TestPDUVariablesReturnsCopy(t *testing.T) {
	pdu := newTestPDU(GetResponse, 1, NoError, 0, SnmpPDU{Name: sysDescr, Type: Integer, Value: int64(42)})

	vars := pdu.Variables()
	vars[0].Value = int64(7)
	assert.Equal(t, int64(42), pdu.Variables()[0].Value)
}

func TestPDUString(t *testing.T) {
	pdu := newTestPDU(GetResponse, 12345, NoError, 0,
		SnmpPDU{Name: sysDescr, Type: Integer, Value: int64(42)})
	assert.Equal(t,
		"SNMP GetResponse requestID: 12345 ErrorStatus: NoError\n"+
			"  .1.3.6.1.2.1.1.1.0: Integer 42\n",
		pdu.String())

	pdu = newTestPDU(GetResponse, 9, NoSuchName, 2,
		SnmpPDU{Name: sysDescr, Type: Integer, Value: int64(1)},
		SnmpPDU{Name: ".1.3.6.1.2.1.1.5.0", Type: NoSuchInstance})
	assert.Equal(t,
		"SNMP GetResponse requestID: 9 ErrorStatus: NoSuchName ErrorIndex: 2\n"+
			"  .1.3.6.1.2.1.1.1.0: Integer 1\n"+
			"  .1.3.6.1.2.1.1.5.0: NoSuchInstance <nil>\n",
		pdu.String())
}

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{GetRequest.String(), "GetRequest"},
		{GetResponse.String(), "GetResponse"},
		{Report.String(), "Report"},
		{Sequence.String(), "Sequence"},
		{PDUType(0x99).String(), "PDUType(153)"},
		{NoError.String(), "NoError"},
		{InconsistentName.String(), "InconsistentName"},
		{SNMPError(-1).String(), "SNMPError(-1)"},
		{SNMPError(19).String(), "SNMPError(19)"},
		{Integer.String(), "Integer"},
		{Counter64.String(), "Counter64"},
		{EndOfMibView.String(), "EndOfMibView"},
		{Asn1BER(0x30).String(), "Asn1BER(48)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}
}
