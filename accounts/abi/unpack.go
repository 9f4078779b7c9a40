// Copyright 2017 The go-ethereum Authors
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

// 版权所有 2017 The go-ethereum Authors
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

// readInteger reads a 32 byte word as an integer of the given type, rejecting
// words whose high bits do not agree with the declared width.
// readInteger 将 32 字节的字读取为给定类型的整数，高位与声明位宽不一致时拒绝。
func readInteger(typ Type, word []byte) (Token, error) {
	ret := new(uint256.Int).SetBytes32(word)

	if typ.T == UintTy {
		if ret.BitLen() > typ.Size {
			return Token{}, fmt.Errorf("%w (uint%d)", errBadUint, typ.Size)
		}
		return Token{T: UintTy, Number: ret}, nil
	}
	// On EVM, a number whose bit 255 is set is negative. Narrower types
	// must be sign extended over the whole word.
	// 在 EVM 中，第 255 位被设置的数是负数。较窄的类型必须在整个字上进行符号扩展。
	if !fitsSigned(ret, typ.Size) {
		return Token{}, fmt.Errorf("%w (int%d)", errBadInt, typ.Size)
	}
	return Token{T: IntTy, Number: ret}, nil
}

// readBool reads a bool.
// readBool 从一个 32 字节的 word 中读取一个布尔值。
func readBool(word []byte) (bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, errBadBool
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errBadBool
	}
}

// readAddress reads an address, which must be left padded with zeroes.
// readAddress 读取地址，地址左侧必须以零填充。
func readAddress(word []byte) (Token, error) {
	for _, b := range word[:32-common.AddressLength] {
		if b != 0 {
			return Token{}, errBadAddress
		}
	}
	return Token{T: AddressTy, Address: common.BytesToAddress(word)}, nil
}

// readFixedBytes copies the leading size bytes of the word.
// readFixedBytes 复制字的前 size 个字节。
func readFixedBytes(t Type, word []byte) Token {
	b := make([]byte, t.Size)
	copy(b, word[:t.Size])
	return Token{T: t.T, Bytes: b}
}

// forEachUnpack iteratively unpack elements.
// forEachUnpack 迭代地解包数组元素。
func forEachUnpack(t Type, output []byte, start, size int) (Token, error) {
	if size < 0 {
		return Token{}, fmt.Errorf("%w: cannot unpack array, size is negative (%d)", ErrTypeMismatch, size)
	}
	// Every element needs at least one head slot; this also bounds the
	// allocation below by the input size.
	// 每个元素至少需要一个头部槽位；这也使下面的分配受输入大小限制。
	if start > len(output) || size > (len(output)-start)/32 {
		return Token{}, fmt.Errorf("%w: %d elements at offset %d would go over slice boundary (len=%d)", ErrTruncatedInput, size, start, len(output))
	}
	elems := make([]Token, size)

	// Arrays of static elements are packed inline, resulting in longer unpack
	// steps. Dynamic elements have just 32 bytes per element (the offset).
	// 静态元素的数组是紧密打包的，导致解包步骤更长。动态元素每个占 32 字节（偏移量）。
	elemSize := getTypeSize(*t.Elem)

	for i, j := start, 0; j < size; i, j = i+elemSize, j+1 {
		elem, err := toToken(i, *t.Elem, output)
		if err != nil {
			return Token{}, err
		}
		elems[j] = elem
	}
	return Token{T: t.T, Elems: elems}, nil
}

// forTupleUnpack unpacks the components of a tuple starting at output[0].
// forTupleUnpack 从 output[0] 开始解包元组的各个组成部分。
func forTupleUnpack(t Type, output []byte) (Token, error) {
	elems, err := unpackSequence(t.TupleElems, output)
	if err != nil {
		return Token{}, err
	}
	return Token{T: TupleTy, Elems: elems}, nil
}

// unpackSequence decodes a head/tail laid out sequence of values. Static
// arrays and tuples occupy more than one head slot.
// unpackSequence 解码按头部/尾部排列的值序列。静态数组和元组占用多个头部槽位。
func unpackSequence(types []*Type, output []byte) ([]Token, error) {
	ret := make([]Token, 0, len(types))
	virtualArgs := 0
	for index, elem := range types {
		tok, err := toToken((index+virtualArgs)*32, *elem, output)
		if err != nil {
			return nil, err
		}
		if (elem.T == ArrayTy || elem.T == TupleTy) && !isDynamicType(*elem) {
			// If we have a static array, like [3]uint256, these are coded as
			// just like uint256,uint256,uint256. The same holds for static
			// tuples and for arrays nested multiple levels deep.
			// Decrement it by 1, as the normal index increment is still applied.
			// 静态数组（如 [3]uint256）按 uint256,uint256,uint256 编码，静态元组同理。
			// 减 1 是因为正常的索引增量仍然适用。
			virtualArgs += getTypeSize(*elem)/32 - 1
		}
		ret = append(ret, tok)
	}
	return ret, nil
}

// toToken parses the output bytes at index and recursively builds the token
// of type t in accordance with the ABI spec.
// toToken 解析 index 处的输出字节，并根据 ABI 规范递归构建类型为 t 的 token。
func toToken(index int, t Type, output []byte) (Token, error) {
	if index < 0 || index+32 > len(output) {
		return Token{}, fmt.Errorf("%w: length insufficient %d require %d", ErrTruncatedInput, len(output), index+32)
	}

	var (
		word          = output[index : index+32]
		begin, length int
		err           error
	)

	// if we require a length prefix, find the beginning word and size returned.
	// 如果需要长度前缀（动态类型），找到数据的起始位置和长度。
	if t.requiresLengthPrefix() {
		begin, length, err = lengthPrefixPointsTo(index, output)
		if err != nil {
			return Token{}, err
		}
	}

	switch t.T {
	case TupleTy:
		if isDynamicType(t) {
			begin, err := tuplePointsTo(index, output)
			if err != nil {
				return Token{}, err
			}
			return forTupleUnpack(t, output[begin:])
		}
		return forTupleUnpack(t, output[index:])
	case SliceTy:
		return forEachUnpack(t, output[begin:], 0, length)
	case ArrayTy:
		if isDynamicType(*t.Elem) {
			begin, err := tuplePointsTo(index, output)
			if err != nil {
				return Token{}, err
			}
			return forEachUnpack(t, output[begin:], 0, t.Size)
		}
		return forEachUnpack(t, output[index:], 0, t.Size)
	case StringTy:
		if err := checkPadded(begin, length, output); err != nil {
			return Token{}, err
		}
		return Token{T: StringTy, String: string(output[begin : begin+length])}, nil
	case BytesTy:
		if err := checkPadded(begin, length, output); err != nil {
			return Token{}, err
		}
		b := make([]byte, length)
		copy(b, output[begin:begin+length])
		return Token{T: BytesTy, Bytes: b}, nil
	case IntTy, UintTy:
		return readInteger(t, word)
	case BoolTy:
		b, err := readBool(word)
		if err != nil {
			return Token{}, err
		}
		return Token{T: BoolTy, Bool: b}, nil
	case AddressTy:
		return readAddress(word)
	case FixedBytesTy, FunctionTy:
		return readFixedBytes(t, word), nil
	default:
		return Token{}, fmt.Errorf("%w: unknown type %v", ErrTypeMismatch, t.T)
	}
}

// readOffset interprets a 32 byte word as an offset into output. Offsets
// beyond the buffer are reported as out of range; if they are small enough
// to be a real position the buffer is also considered truncated.
// readOffset 将 32 字节的字解释为 output 中的偏移量。
func readOffset(word []byte, outputLen int) (int, error) {
	offset := new(uint256.Int).SetBytes32(word)
	if offset.BitLen() > 63 {
		return 0, fmt.Errorf("%w: offset larger than int64: %v", ErrOffsetOutOfRange, offset.Dec())
	}
	if n := offset.Uint64(); n > uint64(outputLen) {
		return 0, fmt.Errorf("%w: %w: offset %d would go over slice boundary (len=%d)", ErrOffsetOutOfRange, ErrTruncatedInput, n, outputLen)
	}
	return int(offset.Uint64()), nil
}

// lengthPrefixPointsTo interprets a 32 byte slice as an offset and then
// determines which indices to look to decode the type.
// lengthPrefixPointsTo 将一个 32 字节的切片解释为偏移量，然后确定数据的起始位置和长度。
func lengthPrefixPointsTo(index int, output []byte) (start int, length int, err error) {
	offset, err := readOffset(output[index:index+32], len(output))
	if err != nil {
		return 0, 0, err
	}
	if offset+32 > len(output) {
		return 0, 0, fmt.Errorf("%w: length prefix at %d would go over slice boundary (len=%d)", ErrTruncatedInput, offset, len(output))
	}
	lengthWord := new(uint256.Int).SetBytes32(output[offset : offset+32])
	if lengthWord.BitLen() > 63 {
		return 0, 0, fmt.Errorf("%w: length larger than int64: %v", ErrOffsetOutOfRange, lengthWord.Dec())
	}
	start = offset + 32
	if lengthWord.Uint64() > uint64(len(output)-start) {
		return 0, 0, fmt.Errorf("%w: length insufficient %d require %d", ErrTruncatedInput, len(output), uint64(start)+lengthWord.Uint64())
	}
	return start, int(lengthWord.Uint64()), nil
}

// checkPadded makes sure the byte content and its zero padding up to the next
// 32 byte boundary are present.
// checkPadded 确保字节内容以及到下一个 32 字节边界的零填充都存在。
func checkPadded(begin, length int, output []byte) error {
	if end := begin + (length+31)/32*32; end > len(output) {
		return fmt.Errorf("%w: length insufficient %d require %d", ErrTruncatedInput, len(output), end)
	}
	return nil
}

// tuplePointsTo resolves the location reference for dynamic tuples and
// fixed arrays of dynamic elements.
// tuplePointsTo 解析动态元组和动态元素定长数组的位置引用。
func tuplePointsTo(index int, output []byte) (start int, err error) {
	return readOffset(output[index:index+32], len(output))
}
