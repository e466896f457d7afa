// Copyright 2025 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmppdu

import (
	"errors"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// LayerTypeSNMPPDU identifies a bare SNMP PDU in gopacket.
var LayerTypeSNMPPDU = gopacket.RegisterLayerType(1161, gopacket.LayerTypeMetadata{
	Name:    "SNMPPDU",
	Decoder: gopacket.DecodeFunc(decodePDULayer),
})

// PDULayer is the gopacket layer for one SNMP PDU. Decoding uses the
// Default codec, so it has the same scope as UnmarshalPDU.
type PDULayer struct {
	layers.BaseLayer
	PDU *PDU
}

var (
	_ gopacket.Layer             = (*PDULayer)(nil)
	_ gopacket.DecodingLayer     = (*PDULayer)(nil)
	_ gopacket.SerializableLayer = (*PDULayer)(nil)
)

// LayerType returns LayerTypeSNMPPDU.
func (*PDULayer) LayerType() gopacket.LayerType {
	return LayerTypeSNMPPDU
}

// DecodeFromBytes decodes the PDU at the start of data. Octets after the
// PDU become the layer payload.
func (l *PDULayer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	pdu, err := Default.UnmarshalPDU(data)
	if err != nil {
		return err
	}
	length, err := PDULength(data)
	if err != nil {
		return err
	}

	l.PDU = pdu
	l.Contents = data[:length]
	l.Payload = data[length:]
	return nil
}

// CanDecode implements gopacket.DecodingLayer interface.
func (*PDULayer) CanDecode() gopacket.LayerClass {
	return LayerTypeSNMPPDU
}

// NextLayerType implements gopacket.DecodingLayer interface.
func (*PDULayer) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// SerializeTo prepends the encoded PDU to b.
func (l *PDULayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	if l.PDU == nil {
		return errors.New("snmp pdu layer has no PDU to serialize")
	}
	wire, err := Default.MarshalPDU(l.PDU)
	if err != nil {
		return err
	}
	room, err := b.PrependBytes(len(wire))
	if err != nil {
		return err
	}
	copy(room, wire)
	return nil
}

func decodePDULayer(data []byte, p gopacket.PacketBuilder) error {
	l := &PDULayer{}
	if err := l.DecodeFromBytes(data, p); err != nil {
		return err
	}
	p.AddLayer(l)
	return p.NextDecoder(l.NextLayerType())
}
