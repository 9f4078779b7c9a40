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
	"errors"
	"fmt"
)

// Tokenization errors, caused by host input not matching the declared type.
// 分词错误：宿主输入与声明的类型不匹配。
var (
	ErrMalformedAddress     = errors.New("abi: malformed address")
	ErrLengthMismatch       = errors.New("abi: length mismatch")
	ErrInvalidNumber        = errors.New("abi: invalid number")
	ErrInvalidHex           = errors.New("abi: invalid hex string")
	ErrUnsupportedStructure = errors.New("abi: unsupported object structure, use an array of ordered values")
)

// Codec errors, caused by values that cannot be encoded or by malformed wire
// bytes. Decoding never panics; every failure path ends in one of these.
// 编解码错误：值无法编码或线上字节格式错误。解码从不 panic。
var (
	ErrTypeMismatch     = errors.New("abi: type mismatch")
	ErrNumberOutOfRange = errors.New("abi: number out of range for declared type")
	ErrTruncatedInput   = errors.New("abi: truncated input")
	ErrOffsetOutOfRange = errors.New("abi: offset out of range")
)

var (
	errBadBool = fmt.Errorf("%w: improperly encoded boolean value", ErrTypeMismatch)
	errBadUint = fmt.Errorf("%w: improperly encoded unsigned integer", ErrTypeMismatch)
	errBadInt  = fmt.Errorf("%w: improperly encoded signed integer", ErrTypeMismatch)

	errBadAddress = fmt.Errorf("%w: improperly encoded address", ErrTypeMismatch)
)

// formatSliceString formats the element kind with the given slice size.
// sliceSize -1 denotes a dynamic array.
// formatSliceString 使用给定的大小格式化元素类型，-1 表示动态数组。
func formatSliceString(kind string, sliceSize int) string {
	if sliceSize == -1 {
		return fmt.Sprintf("[]%v", kind)
	}
	return fmt.Sprintf("[%d]%v", sliceSize, kind)
}

// typeCheck checks that the token has the shape the type t describes. Nested
// elements are checked when they are packed.
// typeCheck 检查 token 的形状是否与类型 t 一致。嵌套元素在打包时检查。
func typeCheck(t Type, tok Token) error {
	if t.T != tok.T {
		return typeErr(t, kindString(tok.T))
	}
	switch t.T {
	case ArrayTy:
		if len(tok.Elems) != t.Size {
			return fmt.Errorf("%w: cannot use %v as type %v as argument", ErrLengthMismatch,
				formatSliceString(kindString(t.Elem.T), len(tok.Elems)), t)
		}
	case TupleTy:
		if len(tok.Elems) != len(t.TupleElems) {
			return fmt.Errorf("%w: tuple %v takes %d components, have %d", ErrLengthMismatch, t, len(t.TupleElems), len(tok.Elems))
		}
	case FixedBytesTy, FunctionTy:
		if len(tok.Bytes) != t.Size {
			return fmt.Errorf("%w: cannot use %d bytes as type %v as argument", ErrLengthMismatch, len(tok.Bytes), t)
		}
	case IntTy, UintTy:
		if tok.Number == nil {
			return typeErr(t, "nil number")
		}
	}
	return nil
}

// typeErr returns a formatted type mismatch error.
// typeErr 返回一个格式化的类型不匹配错误。
func typeErr(expected, got interface{}) error {
	return fmt.Errorf("%w: cannot use %v as type %v as argument", ErrTypeMismatch, got, expected)
}
