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
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Event is a log entry the contract may emit. Indexed inputs are carried in
// the log topics, the others in its data section. Anonymous events don't use
// their signature hash as the first topic.
// Event 是合约可能发出的日志条目。索引参数位于日志主题中，其余参数位于数据部分。
// 匿名事件不以签名哈希作为第一个主题。
type Event struct {
	// Name is unique within the interface; overloads of foo are named foo0,
	// foo1 and so on. RawName is the declared name.
	// Name 在接口内唯一；foo 的重载命名为 foo0、foo1 等。RawName 是声明的名称。
	Name      string
	RawName   string
	Anonymous bool
	Inputs    Arguments
	str       string

	Sig string      // canonical signature, e.g. Transfer(address,address,uint256)
	ID  common.Hash // Keccak256(Sig), the first topic of non-anonymous logs
}

// NewEvent creates an event, naming unnamed inputs and precomputing its
// signature and topic.
// NewEvent 创建事件，为未命名的输入命名并预先计算其签名与主题。
func NewEvent(name, rawName string, anonymous bool, inputs Arguments) Event {
	named, decls := inputs.declare()
	sig := fmt.Sprintf("%v(%v)", rawName, named.Signature())
	return Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    named,
		str:       fmt.Sprintf("event %v(%v)", rawName, strings.Join(decls, ", ")),
		Sig:       sig,
		ID:        common.BytesToHash(Keccak256([]byte(sig))),
	}
}

func (e Event) String() string {
	return e.str
}

// Unpack decodes the data section of a log. Indexed inputs live in the
// topics and are not part of it.
// Unpack 解码日志的数据部分。索引参数位于主题中，不在数据部分。
func (e Event) Unpack(data []byte) ([]Token, error) {
	return e.Inputs.Unpack(data)
}

// UnpackLog decodes a whole log, returning one token per input in declaration
// order. Indexed inputs of reference types (strings, bytes, arrays, tuples)
// are stored as the hash of their encoding and come back as bytes32.
// UnpackLog 解码完整的日志，按声明顺序为每个输入返回一个 token。
// 引用类型（字符串、字节、数组、元组）的索引参数以其编码的哈希存储，以 bytes32 返回。
func (e Event) UnpackLog(topics []common.Hash, data []byte) ([]Token, error) {
	if !e.Anonymous {
		if len(topics) == 0 {
			return nil, fmt.Errorf("%w: log of event %v has no topics", ErrTruncatedInput, e.Sig)
		}
		if topics[0] != e.ID {
			return nil, fmt.Errorf("%w: topic %v does not identify event %v", ErrTypeMismatch, topics[0].Hex(), e.Sig)
		}
		topics = topics[1:]
	}
	var indexed int
	for _, arg := range e.Inputs {
		if arg.Indexed {
			indexed++
		}
	}
	if len(topics) != indexed {
		return nil, fmt.Errorf("%w: event %v has %d indexed inputs, log has %d topics", ErrLengthMismatch, e.Sig, indexed, len(topics))
	}
	values, err := e.Inputs.Unpack(data)
	if err != nil {
		return nil, err
	}
	tokens := make([]Token, 0, len(e.Inputs))
	for _, arg := range e.Inputs {
		if !arg.Indexed {
			tokens, values = append(tokens, values[0]), values[1:]
			continue
		}
		topic := topics[0]
		topics = topics[1:]
		if hashedTopic(arg.Type) {
			tokens = append(tokens, Token{T: FixedBytesTy, Bytes: common.CopyBytes(topic[:])})
			continue
		}
		tok, err := toToken(0, arg.Type, topic[:])
		if err != nil {
			return nil, fmt.Errorf("topic of %v: %w", arg.Name, err)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// hashedTopic reports whether an indexed value of type t is replaced by the
// hash of its encoding.
func hashedTopic(t Type) bool {
	switch t.T {
	case StringTy, BytesTy, SliceTy, ArrayTy, TupleTy:
		return true
	}
	return false
}
