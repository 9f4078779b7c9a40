// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// 版权所有 2016 The go-ethereum Authors
// 此文件是 go-ethereum 库的一部分。
//
// go-ethereum 库是免费软件：您可以根据自由软件基金会发布的 GNU 宽通用公共许可证的条款重新分发和/或修改它，
// 可以是许可证的第 3 版，也可以是（由您选择）任何更高版本。
//
// go-ethereum 库的发布是希望它能有用，但没有任何保证；甚至没有对适销性或特定用途适用性的默示保证。
// 有关更多详细信息，请参阅 GNU 宽通用公共许可证。
//
// 您应该已经随 go-ethereum 库收到一份 GNU 宽通用公共许可证的副本。如果没有，请参阅 <http://www.gnu.org/licenses/>。

package abi

import (
	"testing"
)

// typeWithoutStringer is a alias for the Type type which simply doesn't implement
// the stringer interface to allow printing type details in the tests below.
type typeWithoutStringer Type

func TestTypeRegexp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		blob       string
		components []ArgumentMarshaling
		str        string
		kind       byte
		size       int
	}{
		{"bool", nil, "bool", BoolTy, 0},
		{"int", nil, "int256", IntTy, 256},
		{"int8", nil, "int8", IntTy, 8},
		{"uint", nil, "uint256", UintTy, 256},
		{"uint64", nil, "uint64", UintTy, 64},
		{"address", nil, "address", AddressTy, 20},
		{"string", nil, "string", StringTy, 0},
		{"bytes", nil, "bytes", BytesTy, 0},
		{"bytes1", nil, "bytes1", FixedBytesTy, 1},
		{"bytes32", nil, "bytes32", FixedBytesTy, 32},
		{"function", nil, "function", FunctionTy, 24},
		{"uint[]", nil, "uint256[]", SliceTy, 0},
		{"uint8[3]", nil, "uint8[3]", ArrayTy, 3},
		{"uint256[2][]", nil, "uint256[2][]", SliceTy, 0},
		{"tuple", []ArgumentMarshaling{{Name: "a", Type: "uint"}, {Name: "b", Type: "string"}}, "(uint256,string)", TupleTy, 0},
		{"tuple[]", []ArgumentMarshaling{{Name: "a", Type: "address"}}, "(address)[]", SliceTy, 0},
	}
	for _, tt := range tests {
		typ, err := NewType(tt.blob, "", tt.components)
		if err != nil {
			t.Errorf("type %q: failed to parse type string: %v", tt.blob, err)
			continue
		}
		if typ.String() != tt.str {
			t.Errorf("type %q: have string %q, want %q", tt.blob, typ.String(), tt.str)
		}
		if typ.T != tt.kind || typ.Size != tt.size {
			t.Errorf("type %q: parsed type mismatch: %+v", tt.blob, typeWithoutStringer(typ))
		}
	}
}

func TestTypeRejected(t *testing.T) {
	t.Parallel()
	for _, blob := range []string{
		"uint7", "int264", "uint0", "bytes0", "bytes33", "fixed128x18", "ufixed",
		"uint[", "uint]", "uint[a]", "foo", "uint[2", "",
	} {
		if _, err := NewType(blob, "", nil); err == nil {
			t.Errorf("type %q: expected error", blob)
		}
	}
}

func TestInternalTypes(t *testing.T) {
	t.Parallel()
	typ, err := NewType("tuple", "struct Pool.Key", []ArgumentMarshaling{{Name: "x", Type: "uint8"}})
	if err != nil {
		t.Fatal(err)
	}
	if typ.TupleRawName != "PoolKey" {
		t.Errorf("tuple raw name: have %q, want %q", typ.TupleRawName, "PoolKey")
	}
	if len(typ.TupleRawNames) != 1 || typ.TupleRawNames[0] != "x" {
		t.Errorf("tuple field names: have %v", typ.TupleRawNames)
	}
	contract, err := NewType("IERC20", "contract IERC20", nil)
	if err != nil {
		t.Fatal(err)
	}
	if contract.T != AddressTy || contract.String() != "address" {
		t.Errorf("contract type: have %+v", typeWithoutStringer(contract))
	}
}

func TestDynamicClassification(t *testing.T) {
	t.Parallel()
	mustType := func(blob string, components ...ArgumentMarshaling) Type {
		typ, err := NewType(blob, "", components)
		if err != nil {
			t.Fatalf("type %q: %v", blob, err)
		}
		return typ
	}
	tests := []struct {
		typ     Type
		dynamic bool
		size    int
	}{
		{mustType("uint256"), false, 32},
		{mustType("bool"), false, 32},
		{mustType("address"), false, 32},
		{mustType("bytes4"), false, 32},
		{mustType("uint8[3]"), false, 96},
		{mustType("uint8[2][3]"), false, 192},
		{mustType("tuple", ArgumentMarshaling{Type: "uint256"}, ArgumentMarshaling{Type: "bool[2]"}), false, 96},
		{mustType("string"), true, 32},
		{mustType("bytes"), true, 32},
		{mustType("uint256[]"), true, 32},
		{mustType("string[2]"), true, 32},
		{mustType("tuple", ArgumentMarshaling{Type: "uint256"}, ArgumentMarshaling{Type: "bytes"}), true, 32},
		{mustType("tuple[2]", ArgumentMarshaling{Type: "uint256"}, ArgumentMarshaling{Type: "uint256[]"}), true, 32},
	}
	for _, tt := range tests {
		if tt.typ.IsDynamic() != tt.dynamic {
			t.Errorf("%v: have dynamic %v, want %v", tt.typ, tt.typ.IsDynamic(), tt.dynamic)
		}
		if size := getTypeSize(tt.typ); size != tt.size {
			t.Errorf("%v: have head size %d, want %d", tt.typ, size, tt.size)
		}
	}
}
