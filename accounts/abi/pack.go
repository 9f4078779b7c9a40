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
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// packBytesSlice packs the given bytes as [L, V] as the canonical representation
// bytes slice.
// packBytesSlice 将给定的字节打包为 [L, V] 格式。L 是长度，V 是向右填充到 32 字节倍数的内容。
func packBytesSlice(bytes []byte, l int) []byte {
	len := packNum(l)
	return append(len, common.RightPadBytes(bytes, (l+31)/32*32)...)
}

// packNum packs a non-negative length or offset as a 32 byte big-endian word.
// packNum 将非负的长度或偏移量打包为 32 字节的大端字。
func packNum(n int) []byte {
	word := uint256.NewInt(uint64(n)).Bytes32()
	return word[:]
}

// pack encodes the token according to the type t.
// pack 根据类型 t 对 token 进行 ABI 编码。
func (t Type) pack(tok Token) ([]byte, error) {
	if err := typeCheck(t, tok); err != nil {
		return nil, err
	}

	switch t.T {
	case SliceTy, ArrayTy:
		var ret []byte

		if t.requiresLengthPrefix() {
			// append length
			// 对动态数组，前缀添加元素个数
			ret = append(ret, packNum(len(tok.Elems))...)
		}

		// calculate offset if any
		// 如果元素是动态类型，则需要计算偏移量
		offset := 0
		offsetReq := isDynamicType(*t.Elem)
		if offsetReq {
			offset = getTypeSize(*t.Elem) * len(tok.Elems)
		}
		var tail []byte
		for _, elem := range tok.Elems {
			val, err := t.Elem.pack(elem)
			if err != nil {
				return nil, err
			}
			if !offsetReq {
				ret = append(ret, val...)
				continue
			}
			ret = append(ret, packNum(offset)...)
			offset += len(val)
			tail = append(tail, val...)
		}
		return append(ret, tail...), nil
	case TupleTy:
		// (T1,...,Tk) for k >= 0 and any types T1, …, Tk
		// enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
		// where X = (X(1), ..., X(k)) and head and tail are defined for Ti being a static
		// type as
		//     head(X(i)) = enc(X(i)) and tail(X(i)) = "" (the empty string)
		// and as
		//     head(X(i)) = enc(len(head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(i-1))))
		//     tail(X(i)) = enc(X(i))
		// otherwise, i.e. if Ti is a dynamic type.
		// 元组编码规则：静态元素直接放入头部，动态元素在头部放入偏移量，内容追加到尾部。
		return packTuple(t.TupleElems, tok.Elems)

	default:
		return packElement(t, tok)
	}
}

// packTuple lays out the components with the head/tail rule.
// packTuple 按照头部/尾部规则排列各个组成部分。
func packTuple(types []*Type, tokens []Token) ([]byte, error) {
	// Calculate prefix occupied size.
	// 计算头部占用的总大小。
	offset := 0
	for _, elem := range types {
		offset += getTypeSize(*elem)
	}
	var ret, tail []byte
	for i, elem := range types {
		val, err := elem.pack(tokens[i])
		if err != nil {
			return nil, err
		}
		if isDynamicType(*elem) {
			ret = append(ret, packNum(offset)...)
			tail = append(tail, val...)
			offset += len(val)
		} else {
			ret = append(ret, val...)
		}
	}
	return append(ret, tail...), nil
}

// packElement packs a leaf token according to the abi specification in t.
// packElement 根据 t 中的 abi 规范打包叶子 token。
func packElement(t Type, tok Token) ([]byte, error) {
	switch t.T {
	case UintTy:
		if tok.Number.BitLen() > t.Size {
			return nil, fmt.Errorf("%w: %s does not fit %v", ErrNumberOutOfRange, tok.Number.Dec(), t)
		}
		return packWord(tok.Number), nil
	case IntTy:
		if !fitsSigned(tok.Number, t.Size) {
			return nil, fmt.Errorf("%w: %s does not fit %v", ErrNumberOutOfRange, signedDec(tok.Number), t)
		}
		return packWord(tok.Number), nil
	case StringTy:
		return packBytesSlice([]byte(tok.String), len(tok.String)), nil
	case AddressTy:
		return common.LeftPadBytes(tok.Address.Bytes(), 32), nil
	case BoolTy:
		word := make([]byte, 32)
		if tok.Bool {
			word[31] = 1
		}
		return word, nil
	case BytesTy:
		return packBytesSlice(tok.Bytes, len(tok.Bytes)), nil
	case FixedBytesTy, FunctionTy:
		return common.RightPadBytes(tok.Bytes, 32), nil
	default:
		return nil, fmt.Errorf("could not pack element, unknown type: %v", t.T)
	}
}

// packWord returns the 32 byte big-endian representation of n.
func packWord(n *uint256.Int) []byte {
	word := n.Bytes32()
	return word[:]
}

// fitsSigned reports whether the two's complement value n is representable
// in a signed integer of the given bit width.
// fitsSigned 报告补码值 n 是否能用给定位宽的有符号整数表示。
func fitsSigned(n *uint256.Int, bits int) bool {
	if bits >= 256 {
		return true
	}
	byteNum := uint256.NewInt(uint64(bits/8 - 1))
	return new(uint256.Int).ExtendSign(n, byteNum).Eq(n)
}

// signedDec renders a two's complement value as a signed decimal string.
// signedDec 将补码值渲染为有符号的十进制字符串。
func signedDec(n *uint256.Int) string {
	if n.Sign() < 0 {
		return "-" + new(uint256.Int).Neg(n).Dec()
	}
	return n.Dec()
}
