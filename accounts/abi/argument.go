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
	"encoding/json"
	"fmt"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
// Argument 结构体保存了参数的名称和对应的类型。
// 类型在打包和测试参数时使用。
type Argument struct {
	Name    string // 参数名称
	Type    Type   // 参数类型
	Indexed bool   // indexed 仅用于事件，表示该参数是否被索引
}

// Arguments 是 Argument 的切片。
type Arguments []Argument

// ArgumentMarshaling 用于辅助 Argument 的 JSON 解组。
type ArgumentMarshaling struct {
	Name         string               // 参数名称
	Type         string               // 参数的 ABI 类型字符串
	InternalType string               // 参数的内部类型（可选）
	Components   []ArgumentMarshaling // 用于元组类型的子组件
	Indexed      bool                 // 是否被索引
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现了 json.Unmarshaler 接口，用于自定义 JSON 反序列化。
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}

	// 从解析出的字符串和组件创建 Type 对象
	argument.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed

	return nil
}

// NonIndexed returns the arguments with indexed arguments filtered out.
// NonIndexed 返回过滤掉索引参数后的参数列表。
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// declare names unnamed arguments arg0, arg1, ... and renders each one as
// "type [indexed] name". The receiver is not modified.
// declare 将未命名的参数命名为 arg0, arg1, ...，并将每个参数渲染为 "类型 [indexed] 名称"。
func (arguments Arguments) declare() (Arguments, []string) {
	named := make(Arguments, len(arguments))
	decls := make([]string, len(arguments))
	for i, arg := range arguments {
		if arg.Name == "" {
			arg.Name = fmt.Sprintf("arg%d", i)
		}
		named[i] = arg
		if arg.Indexed {
			decls[i] = fmt.Sprintf("%v indexed %v", arg.Type, arg.Name)
		} else {
			decls[i] = fmt.Sprintf("%v %v", arg.Type, arg.Name)
		}
	}
	return named, decls
}

// Types returns the type descriptors of the arguments, in order.
// Types 按顺序返回参数的类型描述符。
func (arguments Arguments) Types() []*Type {
	types := make([]*Type, len(arguments))
	for i := range arguments {
		types[i] = &arguments[i].Type
	}
	return types
}

// Signature returns the comma separated canonical types, as used inside a
// function signature.
func (arguments Arguments) Signature() string {
	var sig string
	for i, arg := range arguments {
		if i > 0 {
			sig += ","
		}
		sig += arg.Type.String()
	}
	return sig
}

// Tokenize converts one host value per argument into tokens. The number of
// values must match the number of arguments.
// Tokenize 将每个参数对应的宿主值转换为 token。值的数量必须与参数数量一致。
func (arguments Arguments) Tokenize(values []Value) ([]Token, error) {
	if len(values) != len(arguments) {
		return nil, fmt.Errorf("%w: argument count mismatch: got %d for %d", ErrLengthMismatch, len(values), len(arguments))
	}
	tokens := make([]Token, len(values))
	for i, v := range values {
		tok, err := Tokenize(arguments[i].Type, v)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, arguments[i].Name, err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}

// Unpack performs the operation hexdata -> tokens. Indexed arguments are not
// part of the data and are skipped.
// Unpack 将 ABI 编码的数据解码为 token 列表。索引参数不在数据中，会被跳过。
func (arguments Arguments) Unpack(data []byte) ([]Token, error) {
	nonIndexed := arguments.NonIndexed()
	if len(data) == 0 {
		if len(nonIndexed) != 0 {
			return nil, fmt.Errorf("%w: attempting to unmarshal an empty string while arguments are expected", ErrTruncatedInput) // 错误：期望有参数但输入数据为空
		}
		return make([]Token, 0), nil
	}
	return unpackSequence(nonIndexed.Types(), data)
}

// Pack performs the operation tokens -> hexdata. Each token must match the
// type of the argument at the same position.
// Pack 执行 token -> 十六进制数据的操作。每个 token 必须与同一位置参数的类型一致。
func (arguments Arguments) Pack(tokens ...Token) ([]byte, error) {
	// Make sure arguments match up and pack them
	if len(tokens) != len(arguments) {
		return nil, fmt.Errorf("%w: argument count mismatch: got %d for %d", ErrLengthMismatch, len(tokens), len(arguments)) // 错误：参数数量不匹配
	}
	return packTuple(arguments.Types(), tokens)
}
