// Copyright 2025 The go-ethereum Authors
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

package abi

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Token is a strongly typed argument value, shaped like the Type it was built
// for. The T field holds the same enumerator as Type.T; which of the remaining
// fields is meaningful depends on it:
//
//	AddressTy                      Address
//	BoolTy                         Bool
//	StringTy                       String
//	BytesTy, FixedBytesTy, FunctionTy  Bytes
//	UintTy                         Number (unsigned)
//	IntTy                          Number (two's complement bit pattern)
//	SliceTy, ArrayTy, TupleTy      Elems
//
// Tokens own all of their data.
// Token 是强类型的参数值，形状与构建它的 Type 一致。T 字段使用与 Type.T 相同的枚举器。
type Token struct {
	T       byte
	Address common.Address
	Bool    bool
	String  string
	Bytes   []byte
	Number  *uint256.Int
	Elems   []Token
}

// AddressToken wraps an address.
func AddressToken(addr common.Address) Token {
	return Token{T: AddressTy, Address: addr}
}

// BoolToken wraps a boolean.
func BoolToken(b bool) Token {
	return Token{T: BoolTy, Bool: b}
}

// StringToken wraps a text value.
func StringToken(s string) Token {
	return Token{T: StringTy, String: s}
}

// BytesToken wraps a dynamic byte string. The slice is copied.
func BytesToken(b []byte) Token {
	return Token{T: BytesTy, Bytes: append([]byte{}, b...)}
}

// FixedBytesToken wraps a fixed length byte string. The slice is copied.
func FixedBytesToken(b []byte) Token {
	return Token{T: FixedBytesTy, Bytes: append([]byte{}, b...)}
}

// UintToken wraps an unsigned integer. The value is copied.
func UintToken(n *uint256.Int) Token {
	return Token{T: UintTy, Number: new(uint256.Int).Set(n)}
}

// IntToken wraps a signed integer given as its 256 bit two's complement
// pattern. The value is copied.
func IntToken(n *uint256.Int) Token {
	return Token{T: IntTy, Number: new(uint256.Int).Set(n)}
}

// SliceToken groups the elements of a dynamic array.
func SliceToken(elems ...Token) Token {
	return Token{T: SliceTy, Elems: append([]Token{}, elems...)}
}

// ArrayToken groups the elements of a fixed array.
func ArrayToken(elems ...Token) Token {
	return Token{T: ArrayTy, Elems: append([]Token{}, elems...)}
}

// TupleToken groups the components of a tuple.
func TupleToken(elems ...Token) Token {
	return Token{T: TupleTy, Elems: append([]Token{}, elems...)}
}

// kindString names the token kind for error messages.
func kindString(t byte) string {
	switch t {
	case IntTy:
		return "int"
	case UintTy:
		return "uint"
	case BoolTy:
		return "bool"
	case StringTy:
		return "string"
	case SliceTy:
		return "slice"
	case ArrayTy:
		return "array"
	case TupleTy:
		return "tuple"
	case AddressTy:
		return "address"
	case FixedBytesTy:
		return "fixed bytes"
	case BytesTy:
		return "bytes"
	case FunctionTy:
		return "function"
	default:
		return "unknown"
	}
}
