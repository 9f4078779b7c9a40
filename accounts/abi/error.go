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
	"fmt"
	"strings"
)

// Error is a custom error a contract may revert with. The revert payload is
// the 4 byte error id followed by the packed inputs, the same layout as call
// data.
// Error 是合约可能以之回滚的自定义错误。回滚负载是 4 字节错误 id 后接打包的输入，与调用数据布局相同。
type Error struct {
	Name   string
	Inputs Arguments
	str    string

	Sig string  // canonical signature, e.g. InsufficientBalance(uint256,uint256)
	ID  [4]byte // first 4 bytes of Keccak256(Sig)
}

// NewError creates an error, naming unnamed inputs and precomputing its
// signature and id.
// NewError 创建错误，为未命名的输入命名并预先计算其签名与 id。
func NewError(name string, inputs Arguments) Error {
	named, decls := inputs.declare()
	sig := fmt.Sprintf("%v(%v)", name, named.Signature())

	e := Error{
		Name:   name,
		Inputs: named,
		str:    fmt.Sprintf("error %v(%v)", name, strings.Join(decls, ", ")),
		Sig:    sig,
	}
	copy(e.ID[:], Keccak256([]byte(sig)))
	return e
}

func (e Error) String() string {
	return e.str
}

// Pack builds a revert payload from the tokens.
// Pack 根据 token 构建回滚负载。
func (e Error) Pack(tokens ...Token) ([]byte, error) {
	args, err := e.Inputs.Pack(tokens...)
	if err != nil {
		return nil, err
	}
	return append(e.ID[:], args...), nil
}

// Unpack decodes a revert payload, checking its error id first.
// Unpack 解码回滚负载，先检查其错误 id。
func (e Error) Unpack(data []byte) ([]Token, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: insufficient data for unpacking: have %d, want at least 4", ErrTruncatedInput, len(data))
	}
	if !bytes.Equal(data[:4], e.ID[:]) {
		return nil, fmt.Errorf("%w: error id %#x, want %#x for %v", ErrTypeMismatch, data[:4], e.ID[:], e.Sig)
	}
	return e.Inputs.Unpack(data[4:])
}
