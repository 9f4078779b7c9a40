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

// Package abicodec defines interfaces for encoding contract calls and decoding
// their results against registered contract interfaces.
// Package abicodec 定义了根据已注册的合约接口编码合约调用并解码其结果的接口。
package abicodec

import (
	"errors"
	"io"

	"github.com/ethereum/go-abicodec/accounts/abi"
)

// NotFound is returned by API methods if the requested item does not exist.
// NotFound 如果请求的项目不存在，API 方法将返回 NotFound。
var NotFound = errors.New("not found")

// Subscription represents an event subscription where events are
// delivered on a data channel.
// Subscription 表示一个事件订阅，其中事件通过数据通道传递。
type Subscription interface {
	// Unsubscribe cancels the sending of events to the data channel
	// and closes the error channel.
	// Unsubscribe 取消向数据通道发送事件并关闭错误通道。
	Unsubscribe()
	// Err returns the subscription error channel. Only one value will ever
	// be sent. The error channel is closed by Unsubscribe.
	// Err 返回订阅错误通道。只会发送一个值。Unsubscribe 会关闭错误通道。
	Err() <-chan error
}

// InterfaceRegistry stores parsed contract interfaces under caller chosen
// identifiers. Registering an identifier twice replaces the earlier entry.
//
// The returned error wraps NotFound if the identifier is not registered.
// InterfaceRegistry 以调用者选择的标识符存储已解析的合约接口。重复注册同一标识符会替换之前的条目。
type InterfaceRegistry interface {
	Register(id string, description string) error
	RegisterJSON(id string, reader io.Reader) error
	Unregister(id string) error
}

// CallEncoder encodes function calls. Arguments are given positionally as
// loosely typed host values; the result is 0x prefixed hex of the 4 byte
// selector followed by the packed arguments.
// CallEncoder 编码函数调用。参数以松散类型的宿主值按位置给出；结果是带 0x 前缀的十六进制。
type CallEncoder interface {
	EncodeCall(id, function string, args []abi.Value) (string, error)
}

// CallDecoder decodes call data and return data. When a function name is
// overloaded, the first declared overload is used.
//
// The returned error wraps NotFound if the interface or function is unknown.
// CallDecoder 解码调用数据和返回数据。函数名重载时使用第一个声明的重载。
type CallDecoder interface {
	DecodeInput(id, function, data string) ([]abi.Value, error)
	DecodeOutput(id, function, data string) ([]abi.Value, error)
}

// RevertDecoder decodes the payload of a reverted call.
// RevertDecoder 解码回滚调用的负载。
type RevertDecoder interface {
	DecodeError(id, data string) (string, []abi.Value, error)
}

// EventDecoder decodes emitted logs. DecodeEvent reads the data section only,
// DecodeLog also reads the indexed inputs from the topics.
type EventDecoder interface {
	DecodeEvent(id, event, data string) ([]abi.Value, error)
	DecodeLog(id, event string, topics []string, data string) ([]abi.Value, error)
}

// Codec groups all facade operations.
// Codec 组合了所有外观操作。
type Codec interface {
	InterfaceRegistry
	CallEncoder
	CallDecoder
	RevertDecoder
	EventDecoder
}
