// Copyright 2025 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmppdu

// setRequestID pins the request id so tests can compare encodings. It only
// exists in test builds.
func (p *PDU) setRequestID(requestID uint32) {
	p.requestID = requestID
}

// newTestPDU builds a PDU with every field chosen by the caller.
func newTestPDU(t PDUType, requestID uint32, errorStatus SNMPError, errorIndex int64, vars ...SnmpPDU) *PDU {
	return &PDU{
		pduType:     t,
		requestID:   requestID,
		errorStatus: errorStatus,
		errorIndex:  errorIndex,
		variables:   vars,
	}
}
