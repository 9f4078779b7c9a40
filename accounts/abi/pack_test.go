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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// word returns the hex of a 32 byte big-endian word holding n.
func word(n uint64) string {
	w := uint256.NewInt(n).Bytes32()
	return common.Bytes2Hex(w[:])
}

func mustArgs(t *testing.T, types ...string) Arguments {
	t.Helper()
	args := make(Arguments, len(types))
	for i, blob := range types {
		typ, err := NewType(blob, "", nil)
		if err != nil {
			t.Fatalf("type %q: %v", blob, err)
		}
		args[i] = Argument{Type: typ}
	}
	return args
}

func TestPackTransfer(t *testing.T) {
	t.Parallel()
	args := mustArgs(t, "address", "uint256")
	tokens, err := args.Tokenize([]Value{Text("0x0000000000000000000000000000000000000001"), Text("1000")})
	if err != nil {
		t.Fatal(err)
	}
	packed, err := args.Pack(tokens...)
	if err != nil {
		t.Fatal(err)
	}
	want := common.Hex2Bytes(word(1) + word(1000))
	if len(packed) != 64 {
		t.Fatalf("packed length: have %d, want 64", len(packed))
	}
	if !bytes.Equal(packed, want) {
		t.Fatalf("packed mismatch:\nhave %x\nwant %x", packed, want)
	}
}

func TestPackString(t *testing.T) {
	t.Parallel()
	args := mustArgs(t, "string")
	packed, err := args.Pack(StringToken("hi"))
	if err != nil {
		t.Fatal(err)
	}
	want := common.Hex2Bytes(word(0x20) + word(2) + "6869" + strings.Repeat("00", 30))
	if len(packed) != 96 {
		t.Fatalf("packed length: have %d, want 96", len(packed))
	}
	if !bytes.Equal(packed, want) {
		t.Fatalf("packed mismatch:\nhave %x\nwant %x", packed, want)
	}
}

func TestPackLayout(t *testing.T) {
	t.Parallel()
	staticTuple, _ := NewType("tuple", "", []ArgumentMarshaling{{Type: "uint256"}, {Type: "bool"}})
	dynamicTuple, _ := NewType("tuple", "", []ArgumentMarshaling{{Type: "uint256"}, {Type: "string"}})
	staticArray, _ := NewType("uint8[2]", "", nil)
	nestedDynamic, _ := NewType("uint8[][2]", "", nil)
	slice, _ := NewType("uint256[]", "", nil)
	strs, _ := NewType("string[]", "", nil)

	tests := []struct {
		name string
		args Arguments
		in   []Token
		want string
	}{
		{
			"static tuple inline",
			Arguments{{Type: staticTuple}, {Type: mustArgs(t, "uint256")[0].Type}},
			[]Token{TupleToken(UintToken(uint256.NewInt(1)), BoolToken(true)), UintToken(uint256.NewInt(9))},
			word(1) + word(1) + word(9),
		},
		{
			"dynamic tuple by offset",
			Arguments{{Type: dynamicTuple}},
			[]Token{TupleToken(UintToken(uint256.NewInt(1)), StringToken("a"))},
			word(0x20) + word(1) + word(0x40) + word(1) + "61" + strings.Repeat("00", 31),
		},
		{
			"static array inline",
			Arguments{{Type: staticArray}, {Type: slice}},
			[]Token{ArrayToken(UintToken(uint256.NewInt(3)), UintToken(uint256.NewInt(4))), SliceToken(UintToken(uint256.NewInt(5)))},
			word(3) + word(4) + word(0x60) + word(1) + word(5),
		},
		{
			"fixed array of dynamic elements by offset",
			Arguments{{Type: nestedDynamic}},
			[]Token{ArrayToken(SliceToken(UintToken(uint256.NewInt(1))), SliceToken())},
			word(0x20) + word(0x40) + word(0x80) + word(1) + word(1) + word(0),
		},
		{
			"slice of strings",
			Arguments{{Type: strs}},
			[]Token{SliceToken(StringToken("a"), StringToken("b"))},
			word(0x20) + word(2) + word(0x40) + word(0x80) +
				word(1) + "61" + strings.Repeat("00", 31) +
				word(1) + "62" + strings.Repeat("00", 31),
		},
	}
	for _, tt := range tests {
		packed, err := tt.args.Pack(tt.in...)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if want := common.Hex2Bytes(tt.want); !bytes.Equal(packed, want) {
			t.Errorf("%s: packed mismatch:\nhave %x\nwant %x", tt.name, packed, want)
		}
	}
}

func TestPackLeaves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ  string
		in   Token
		want string
	}{
		{"int8", IntToken(new(uint256.Int).SetAllOne()), strings.Repeat("ff", 32)},
		{"int16", IntToken(new(uint256.Int).Neg(uint256.NewInt(0x8000))), strings.Repeat("ff", 30) + "8000"},
		{"uint8", UintToken(uint256.NewInt(255)), word(255)},
		{"bool", BoolToken(false), word(0)},
		{"bytes3", FixedBytesToken([]byte{1, 2, 3}), "010203" + strings.Repeat("00", 29)},
		{"address", AddressToken(common.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff")), strings.Repeat("00", 12) + strings.Repeat("ff", 20)},
		{"bytes", BytesToken(nil), word(0x20) + word(0)},
	}
	for _, tt := range tests {
		packed, err := mustArgs(t, tt.typ).Pack(tt.in)
		if err != nil {
			t.Fatalf("%s: %v", tt.typ, err)
		}
		if want := common.Hex2Bytes(tt.want); !bytes.Equal(packed, want) {
			t.Errorf("%s: packed mismatch:\nhave %x\nwant %x", tt.typ, packed, want)
		}
	}
}

func TestPackErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args Arguments
		in   []Token
		want error
	}{
		{"uint8 overflow", mustArgs(t, "uint8"), []Token{UintToken(uint256.NewInt(256))}, ErrNumberOutOfRange},
		{"int8 overflow", mustArgs(t, "int8"), []Token{IntToken(uint256.NewInt(128))}, ErrNumberOutOfRange},
		{"int8 underflow", mustArgs(t, "int8"), []Token{IntToken(new(uint256.Int).Neg(uint256.NewInt(129)))}, ErrNumberOutOfRange},
		{"nested overflow", mustArgs(t, "uint16[]"), []Token{SliceToken(UintToken(uint256.NewInt(1 << 16)))}, ErrNumberOutOfRange},
		{"count", mustArgs(t, "uint8", "bool"), []Token{UintToken(uint256.NewInt(1))}, ErrLengthMismatch},
		{"array length", mustArgs(t, "bool[2]"), []Token{ArrayToken(BoolToken(true))}, ErrLengthMismatch},
		{"fixed bytes length", mustArgs(t, "bytes2"), []Token{FixedBytesToken([]byte{1})}, ErrLengthMismatch},
		{"kind", mustArgs(t, "bool"), []Token{StringToken("true")}, ErrTypeMismatch},
		{"nil number", mustArgs(t, "uint256"), []Token{{T: UintTy}}, ErrTypeMismatch},
	}
	for _, tt := range tests {
		if _, err := tt.args.Pack(tt.in...); !errors.Is(err, tt.want) {
			t.Errorf("%s: have error %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestPackBoundaries(t *testing.T) {
	t.Parallel()
	// The extremes of each width must still be accepted.
	min8 := IntToken(new(uint256.Int).Neg(uint256.NewInt(128)))
	if _, err := mustArgs(t, "int8").Pack(min8); err != nil {
		t.Fatalf("int8 -128: %v", err)
	}
	if _, err := mustArgs(t, "int8").Pack(IntToken(uint256.NewInt(127))); err != nil {
		t.Fatalf("int8 127: %v", err)
	}
	if _, err := mustArgs(t, "uint256").Pack(UintToken(new(uint256.Int).SetAllOne())); err != nil {
		t.Fatalf("uint256 max: %v", err)
	}
}
