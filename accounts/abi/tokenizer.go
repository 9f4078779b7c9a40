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

// 版权所有 2025 The go-ethereum Authors
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
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// minInt256 is the smallest value representable by an int256.
// minInt256 是 int256 能表示的最小值 (-2^255)。
var minInt256 = new(big.Int).Neg(new(big.Int).Lsh(common.Big1, 255))

// maxInt256 is the largest value representable by an int256.
// maxInt256 是 int256 能表示的最大值 (2^255 - 1)。
var maxInt256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 255), common.Big1)

// Tokenize converts a loosely typed host value into a token of type t. Input
// is parsed leniently: byte-like values accept hex with or without the 0x
// prefix, integers accept numbers as well as decimal or hex text. Keyed values
// are never accepted; tuples must be given as positional sequences.
// Tokenize 将松散类型的宿主值转换为类型为 t 的 token。输入采用宽松解析：
// 字节类值接受带或不带 0x 前缀的十六进制，整数接受数字以及十进制或十六进制文本。
// 从不接受键值对象；元组必须以按位置排列的序列给出。
func Tokenize(t Type, v Value) (Token, error) {
	if v.Kind == KeyedValue {
		return Token{}, fmt.Errorf("%w (type %v)", ErrUnsupportedStructure, t)
	}
	switch t.T {
	case AddressTy:
		return tokenizeAddress(v)
	case StringTy:
		s, err := expectText(t, v)
		if err != nil {
			return Token{}, err
		}
		return Token{T: StringTy, String: s}, nil
	case BoolTy:
		if v.Kind != BoolValue {
			return Token{}, typeErr(t, v.Kind)
		}
		return Token{T: BoolTy, Bool: v.Bool}, nil
	case BytesTy:
		b, err := tokenizeBytes(t, v)
		if err != nil {
			return Token{}, err
		}
		return Token{T: BytesTy, Bytes: b}, nil
	case FixedBytesTy, FunctionTy:
		b, err := tokenizeBytes(t, v)
		if err != nil {
			return Token{}, err
		}
		if len(b) != t.Size {
			return Token{}, fmt.Errorf("%w: %v takes %d bytes, have %d", ErrLengthMismatch, t, t.Size, len(b))
		}
		return Token{T: t.T, Bytes: b}, nil
	case UintTy:
		n, err := tokenizeUint(t, v)
		if err != nil {
			return Token{}, err
		}
		return Token{T: UintTy, Number: n}, nil
	case IntTy:
		n, err := tokenizeInt(t, v)
		if err != nil {
			return Token{}, err
		}
		return Token{T: IntTy, Number: n}, nil
	case SliceTy:
		elems, err := tokenizeSequence(t, v)
		if err != nil {
			return Token{}, err
		}
		return Token{T: SliceTy, Elems: elems}, nil
	case ArrayTy:
		if v.Kind == SequenceValue && len(v.Elems) != t.Size {
			return Token{}, fmt.Errorf("%w: %v takes %d elements, have %d", ErrLengthMismatch, t, t.Size, len(v.Elems))
		}
		elems, err := tokenizeSequence(t, v)
		if err != nil {
			return Token{}, err
		}
		return Token{T: ArrayTy, Elems: elems}, nil
	case TupleTy:
		return tokenizeTuple(t, v)
	default:
		return Token{}, fmt.Errorf("%w: cannot tokenize unknown type %v", ErrTypeMismatch, t.T)
	}
}

// expectText returns the text of v, failing if v is not a text value.
func expectText(t Type, v Value) (string, error) {
	if v.Kind != TextValue {
		return "", typeErr(t, v.Kind)
	}
	return v.Text, nil
}

// trimHexPrefix removes an optional 0x or 0X prefix.
// trimHexPrefix 移除可选的 0x 或 0X 前缀。
func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// tokenizeAddress parses exactly 20 hex encoded bytes.
// tokenizeAddress 解析恰好 20 个十六进制编码的字节。
func tokenizeAddress(v Value) (Token, error) {
	if v.Kind != TextValue {
		return Token{}, fmt.Errorf("%w: expected text, have %v", ErrMalformedAddress, v.Kind)
	}
	digits := trimHexPrefix(v.Text)
	if len(digits) != 2*common.AddressLength {
		return Token{}, fmt.Errorf("%w: %q has %d hex digits, want %d", ErrMalformedAddress, v.Text, len(digits), 2*common.AddressLength)
	}
	b, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %q: %v", ErrMalformedAddress, v.Text, err)
	}
	return Token{T: AddressTy, Address: common.BytesToAddress(b)}, nil
}

// tokenizeBytes decodes hex text with an optional prefix.
// tokenizeBytes 解码带可选前缀的十六进制文本。
func tokenizeBytes(t Type, v Value) ([]byte, error) {
	s, err := expectText(t, v)
	if err != nil {
		return nil, err
	}
	b, err := hexutil.Decode("0x" + trimHexPrefix(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// parseInteger reads an integer from a number or text value. Text may be
// decimal or 0x prefixed hex, optionally signed. Number literals are read
// exactly, so 1e21 is accepted while 1.5 is not.
// parseInteger 从数字或文本值读取整数。文本可以是十进制或带 0x 前缀的十六进制，可带符号。
// 数字字面量被精确读取，因此接受 1e21 而不接受 1.5。
func parseInteger(t Type, v Value) (*big.Int, error) {
	switch v.Kind {
	case NumberValue:
		r, ok := new(big.Rat).SetString(v.Text)
		if !ok || !r.IsInt() {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidNumber, v.Text)
		}
		return new(big.Int).Set(r.Num()), nil
	case TextValue:
		s := strings.TrimSpace(v.Text)
		neg := false
		if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
			neg = s[0] == '-'
			s = s[1:]
		}
		base := 10
		if digits := trimHexPrefix(s); len(digits) != len(s) {
			base, s = 16, digits
		}
		// SetString would accept underscores and a second sign.
		// SetString 会接受下划线和第二个符号。
		if s == "" || strings.ContainsAny(s, "_+-") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, v.Text)
		}
		n, ok := new(big.Int).SetString(s, base)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, v.Text)
		}
		if neg {
			n.Neg(n)
		}
		return n, nil
	default:
		return nil, typeErr(t, v.Kind)
	}
}

// tokenizeUint parses a value in the uint256 range. Narrower declared widths
// are enforced by the encoder.
// tokenizeUint 解析 uint256 范围内的值。更窄的声明位宽由编码器检查。
func tokenizeUint(t Type, v Value) (*uint256.Int, error) {
	n, err := parseInteger(t, v)
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 || n.Cmp(math.MaxBig256) > 0 {
		return nil, fmt.Errorf("%w: %v out of uint256 range", ErrInvalidNumber, n)
	}
	u, _ := uint256.FromBig(n)
	return u, nil
}

// tokenizeInt parses a value in the int256 range and stores its two's
// complement bit pattern.
// tokenizeInt 解析 int256 范围内的值并存储其补码位模式。
func tokenizeInt(t Type, v Value) (*uint256.Int, error) {
	n, err := parseInteger(t, v)
	if err != nil {
		return nil, err
	}
	if n.Cmp(minInt256) < 0 || n.Cmp(maxInt256) > 0 {
		return nil, fmt.Errorf("%w: %v out of int256 range", ErrInvalidNumber, n)
	}
	u, _ := uint256.FromBig(n)
	return u, nil
}

// tokenizeSequence tokenizes every element of a sequence against t.Elem.
// tokenizeSequence 针对 t.Elem 对序列的每个元素进行分词。
func tokenizeSequence(t Type, v Value) ([]Token, error) {
	if v.Kind != SequenceValue {
		return nil, typeErr(t, v.Kind)
	}
	elems := make([]Token, 0, len(v.Elems))
	for _, e := range v.Elems {
		tok, err := Tokenize(*t.Elem, e)
		if err != nil {
			return nil, err
		}
		elems = append(elems, tok)
	}
	return elems, nil
}

// tokenizeTuple tokenizes a positional sequence against the tuple components.
// tokenizeTuple 针对元组的组成部分对按位置排列的序列进行分词。
func tokenizeTuple(t Type, v Value) (Token, error) {
	if v.Kind != SequenceValue {
		return Token{}, typeErr(t, v.Kind)
	}
	if len(v.Elems) != len(t.TupleElems) {
		return Token{}, fmt.Errorf("%w: tuple %v takes %d components, have %d", ErrLengthMismatch, t, len(t.TupleElems), len(v.Elems))
	}
	elems := make([]Token, len(t.TupleElems))
	for i, elem := range t.TupleElems {
		tok, err := Tokenize(*elem, v.Elems[i])
		if err != nil {
			return Token{}, err
		}
		elems[i] = tok
	}
	return Token{T: TupleTy, Elems: elems}, nil
}
