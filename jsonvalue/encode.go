// SPDX-FileCopyrightText: 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonvalue

import (
	"bytes"
	"errors"
	"sort"

	"github.com/francoispqt/gojay"
)

// KeyOrder selects the order in which object members are written.
type KeyOrder uint8

const (
	// SortKeys writes object members sorted by key.
	SortKeys KeyOrder = iota

	// PreserveOrder writes object members in insertion order.
	PreserveOrder
)

var (
	nullLiteral  = []byte("null")
	trueLiteral  = []byte("true")
	falseLiteral = []byte("false")
)

// errAbsent is returned when marshaling the zero Value.
var errAbsent = errors.New("jsonvalue: cannot marshal absent value")

// Marshal returns the compact JSON encoding of v.
func Marshal(v Value, order KeyOrder) ([]byte, error) {
	switch v.kind {
	case KindAbsent:
		return nil, errAbsent
	case KindNull:
		return append([]byte(nil), nullLiteral...), nil
	case KindBool:
		if v.b {
			return append([]byte(nil), trueLiteral...), nil
		}
		return append([]byte(nil), falseLiteral...), nil
	case KindNumber:
		return []byte(v.s), nil
	}

	var buf bytes.Buffer
	enc := gojay.NewEncoder(&buf)

	var err error
	switch v.kind {
	case KindString:
		err = enc.EncodeString(v.s)
	case KindArray:
		err = enc.EncodeArray(arrayEncoder{v: v, order: order})
	case KindObject:
		err = enc.EncodeObject(objectEncoder{v: v, order: order})
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return Marshal(v, PreserveOrder)
}

// objectEncoder writes an object Value through gojay.
type objectEncoder struct {
	v     Value
	order KeyOrder
}

// compile time check whether the objectEncoder implements a gojay.MarshalerJSONObject interface.
var _ gojay.MarshalerJSONObject = objectEncoder{}

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (o objectEncoder) MarshalJSONObject(enc *gojay.Encoder) {
	members := o.v.Members()
	if o.order == SortKeys {
		sort.SliceStable(members, func(i, j int) bool { return members[i].Key < members[j].Key })
	}

	for _, m := range members {
		switch m.Value.kind {
		case KindAbsent:
			// absent members are omitted
		case KindNull:
			enc.AddEmbeddedJSONKey(m.Key, (*gojay.EmbeddedJSON)(&nullLiteral))
		case KindBool:
			enc.BoolKey(m.Key, m.Value.b)
		case KindNumber:
			raw := gojay.EmbeddedJSON(m.Value.s)
			enc.AddEmbeddedJSONKey(m.Key, &raw)
		case KindString:
			enc.StringKey(m.Key, m.Value.s)
		case KindArray:
			enc.ArrayKey(m.Key, arrayEncoder{v: m.Value, order: o.order})
		case KindObject:
			enc.ObjectKey(m.Key, objectEncoder{v: m.Value, order: o.order})
		}
	}
}

// IsNil implements gojay.MarshalerJSONObject.
func (o objectEncoder) IsNil() bool { return false }

// arrayEncoder writes an array Value through gojay.
type arrayEncoder struct {
	v     Value
	order KeyOrder
}

// compile time check whether the arrayEncoder implements a gojay.MarshalerJSONArray interface.
var _ gojay.MarshalerJSONArray = arrayEncoder{}

// MarshalJSONArray implements gojay.MarshalerJSONArray.
func (a arrayEncoder) MarshalJSONArray(enc *gojay.Encoder) {
	for _, e := range a.v.arr {
		switch e.kind {
		case KindAbsent, KindNull:
			enc.AddEmbeddedJSON((*gojay.EmbeddedJSON)(&nullLiteral))
		case KindBool:
			enc.Bool(e.b)
		case KindNumber:
			raw := gojay.EmbeddedJSON(e.s)
			enc.AddEmbeddedJSON(&raw)
		case KindString:
			enc.String(e.s)
		case KindArray:
			enc.Array(arrayEncoder{v: e, order: a.order})
		case KindObject:
			enc.Object(objectEncoder{v: e, order: a.order})
		}
	}
}

// IsNil implements gojay.MarshalerJSONArray.
func (a arrayEncoder) IsNil() bool { return false }
