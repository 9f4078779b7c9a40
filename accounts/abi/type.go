// Copyright 2015 The go-ethereum Authors
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

// 版权所有 2015 The go-ethereum Authors
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
	"regexp"
	"strconv"
	"strings"
)

// Type enumerator
// 类型枚举器
const (
	IntTy        byte = iota // 有符号整型
	UintTy                   // 无符号整型
	BoolTy                   // 布尔型
	StringTy                 // 字符串
	SliceTy                  // 动态数组
	ArrayTy                  // 定长数组
	TupleTy                  // 元组 (结构体)
	AddressTy                // 地址类型
	FixedBytesTy             // 固定长度字节数组
	BytesTy                  // 动态长度字节数组
	FunctionTy               // 函数类型 (地址 + 选择器, 按 bytes24 编码)
)

// Type is the descriptor of a single ABI parameter type. It is built once when
// an interface description is loaded and never mutated afterwards.
// Type 是单个 ABI 参数类型的描述符。它在加载接口描述时构建一次，之后不再修改。
type Type struct {
	Elem *Type // 嵌套元素类型（用于数组/切片）
	Size int   // 类型大小（uint256 的 size 是 256，bytes32 的 size 是 32，[3]T 的 size 是 3）
	T    byte  // 类型标签，使用上面的枚举器

	stringKind string // 规范的类型字符串，用于派生签名

	// Tuple relative fields
	// 元组相关字段
	TupleRawName  string   // 源代码中定义的原始结构体名称，可能为空。
	TupleElems    []*Type  // 所有元组字段的类型信息
	TupleRawNames []string // 所有元组字段的原始字段名称
}

var (
	// typeRegex parses the abi sub types
	// typeRegex 解析 abi 子类型
	typeRegex = regexp.MustCompile("^([a-zA-Z]+)(([0-9]+)(x([0-9]+))?)?$")

	// sliceSizeRegex grab the slice size
	// sliceSizeRegex 获取切片/数组的大小
	sliceSizeRegex = regexp.MustCompile(`^\[([0-9]*)\]$`)

	// arraySuffixRegex matches zero or more trailing array dimensions
	arraySuffixRegex = regexp.MustCompile(`^(\[[0-9]*\])*$`)
)

// NewType creates a new type descriptor from the abi type string t. Tuple
// components are taken from components.
// NewType 根据给定的 abi 类型字符串 t 创建新的类型描述符。元组的组成部分来自 components。
func NewType(t string, internalType string, components []ArgumentMarshaling) (typ Type, err error) {
	t = strings.TrimSpace(t)
	// check that array brackets are equal if they exist
	// 检查数组的方括号是否匹配
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, errors.New("invalid arg type in abi")
	}
	typ.stringKind = t

	// if there are brackets, get ready to go into slice/array mode and
	// recursively create the type
	// 如果有方括号，就进入切片/数组模式并递归地创建类型
	if strings.HasSuffix(t, "]") {
		// Note internalType can be empty here.
		// 注意 internalType 在这里可能为空。
		subInternal := internalType
		if i := strings.LastIndex(internalType, "["); i != -1 {
			subInternal = subInternal[:i]
		}
		i := strings.LastIndex(t, "[")
		embeddedType, err := NewType(t[:i], subInternal, components)
		if err != nil {
			return Type{}, err
		}
		sliced := t[i:]
		intz := sliceSizeRegex.FindStringSubmatch(sliced)
		if intz == nil {
			return Type{}, errors.New("invalid formatting of array type")
		}
		typ.Elem = &embeddedType
		if intz[1] == "" {
			// is a slice (e.g., "[]")
			// 是一个切片
			typ.T = SliceTy
		} else {
			// is an array (e.g., "[3]")
			// 是一个数组
			typ.T = ArrayTy
			typ.Size, err = strconv.Atoi(intz[1])
			if err != nil {
				return Type{}, fmt.Errorf("abi: error parsing variable size: %v", err)
			}
		}
		typ.stringKind = embeddedType.stringKind + sliced
		return typ, nil
	}
	if strings.Contains(t, "[") {
		return Type{}, errors.New("invalid formatting of array type")
	}
	// parse the type and size of the abi-type.
	// 解析 abi 类型的类型和大小。
	parsedType := typeRegex.FindStringSubmatch(t)
	if parsedType == nil {
		return Type{}, fmt.Errorf("invalid type '%v'", t)
	}
	if parsedType[4] != "" {
		// fixedMxN / ufixedMxN are not supported by the codec.
		// 编解码器不支持定点数类型。
		return Type{}, fmt.Errorf("unsupported arg type: %s", t)
	}

	// varSize is the size of the variable
	// varSize 是变量的大小
	var varSize int
	if len(parsedType[3]) > 0 {
		varSize, err = strconv.Atoi(parsedType[3])
		if err != nil {
			return Type{}, fmt.Errorf("abi: error parsing variable size: %v", err)
		}
	}
	switch varType := parsedType[1]; varType {
	case "int", "uint":
		if len(parsedType[3]) == 0 {
			// int and uint are aliases of int256 and uint256
			// int 和 uint 分别是 int256 和 uint256 的别名
			varSize = 256
		}
		if varSize == 0 || varSize%8 != 0 || varSize > 256 {
			return Type{}, fmt.Errorf("unsupported arg type: %s", t)
		}
		typ.Size = varSize
		typ.T = IntTy
		if varType == "uint" {
			typ.T = UintTy
		}
		typ.stringKind = varType + strconv.Itoa(varSize)
	case "bool":
		typ.T = BoolTy
	case "address":
		typ.Size = 20
		typ.T = AddressTy
	case "string":
		typ.T = StringTy
	case "bytes":
		if len(parsedType[3]) == 0 {
			typ.T = BytesTy
		} else {
			if varSize == 0 || varSize > 32 {
				return Type{}, fmt.Errorf("unsupported arg type: %s", t)
			}
			typ.T = FixedBytesTy
			typ.Size = varSize
		}
	case "tuple":
		var (
			elems      []*Type
			names      []string
			expression string // 规范的参数表达式, e.g., "(uint256,string)"
		)
		expression += "("
		for idx, c := range components {
			cType, err := NewType(c.Type, c.InternalType, c.Components)
			if err != nil {
				return Type{}, err
			}
			elems = append(elems, &cType)
			names = append(names, c.Name)
			expression += cType.stringKind
			if idx != len(components)-1 {
				expression += ","
			}
		}
		expression += ")"

		typ.TupleElems = elems
		typ.TupleRawNames = names
		typ.T = TupleTy
		typ.stringKind = expression

		const structPrefix = "struct "
		// After solidity 0.5.10, a new field of abi "internalType"
		// is introduced. From that we can obtain the struct name
		// user defined in the source code.
		// 在 solidity 0.5.10 之后引入了 "internalType" 字段，从中可以获取用户定义的结构体名称。
		if internalType != "" && strings.HasPrefix(internalType, structPrefix) {
			typ.TupleRawName = strings.ReplaceAll(internalType[len(structPrefix):], ".", "")
		}

	case "function":
		typ.T = FunctionTy
		typ.Size = 24 // 20 字节地址 + 4 字节函数选择器
	default:
		if strings.HasPrefix(internalType, "contract ") {
			// 合约类型在 ABI 中表示为地址
			typ.Size = 20
			typ.T = AddressTy
			typ.stringKind = "address"
		} else {
			return Type{}, fmt.Errorf("unsupported arg type: %s", t)
		}
	}
	return typ, nil
}

// String implements Stringer, returning the canonical type expression.
// String 实现了 Stringer 接口，返回规范的类型表达式。
func (t Type) String() (out string) {
	return t.stringKind
}

// requiresLengthPrefix returns whether the type requires any sort of length
// prefixing.
// requiresLengthPrefix 返回该类型是否需要长度前缀。
func (t Type) requiresLengthPrefix() bool {
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy
}

// IsDynamic reports whether values of the type are encoded out of line.
// IsDynamic 报告该类型的值是否在尾部区域编码。
func (t Type) IsDynamic() bool {
	return isDynamicType(t)
}

// isDynamicType returns true if the type is dynamic: bytes, string, T[] for
// any T, T[k] for a dynamic T and tuples with a dynamic component.
// * bytes
// * string
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
// isDynamicType 检查一个类型是否是动态的。
func isDynamicType(t Type) bool {
	if t.T == TupleTy {
		for _, elem := range t.TupleElems {
			if isDynamicType(*elem) {
				return true
			}
		}
		return false
	}
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy || (t.T == ArrayTy && isDynamicType(*t.Elem))
}

// getTypeSize returns the size that this type needs to occupy in the head.
// Static types are encoded in-place and dynamic types are encoded at a
// separately allocated location after the current block, so a dynamic type
// always takes a single 32 byte offset slot.
// getTypeSize 返回此类型在 ABI 编码的头部所占用的字节大小。
// 静态类型原地编码；动态类型在头部只占用一个 32 字节的偏移量槽位。
func getTypeSize(t Type) int {
	if t.T == ArrayTy && !isDynamicType(*t.Elem) {
		// Recursively calculate type size if it is a nested array
		// 如果是嵌套数组，则递归计算类型大小
		if t.Elem.T == ArrayTy || t.Elem.T == TupleTy {
			return t.Size * getTypeSize(*t.Elem)
		}
		return t.Size * 32
	} else if t.T == TupleTy && !isDynamicType(t) {
		total := 0
		for _, elem := range t.TupleElems {
			total += getTypeSize(*elem)
		}
		return total
	}
	return 32
}
