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

// Package accounts implements the contract interface registry and the function
// call facade on top of the abi codec.
// package accounts 实现了合约接口注册表以及基于 abi 编解码器的函数调用外观。
package accounts

import (
	"strings"

	"github.com/ethereum/go-abicodec/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Interface is a parsed contract interface registered under an identifier.
// The embedded ABI is never modified after registration.
// Interface 是以某个标识符注册的已解析合约接口。注册后内嵌的 ABI 不会被修改。
type Interface struct {
	ID  string  `json:"id" yaml:"id"`   // Identifier chosen by the registering caller. // 注册者选择的标识符。
	URL URL     `json:"url" yaml:"url"` // Where the description was loaded from. // 描述的加载来源。
	ABI abi.ABI `json:"-" yaml:"-"`
}

// Function summarises a callable function of an interface.
// Function 概括了接口中一个可调用的函数。
type Function struct {
	Name      string `json:"name" yaml:"name"`           // Overload-resolved unique name, e.g. transfer0. // 重载解析后的唯一名称。
	Signature string `json:"signature" yaml:"signature"` // Canonical signature. // 规范签名。
	Selector  string `json:"selector" yaml:"selector"`   // 0x prefixed 4 byte selector. // 带 0x 前缀的 4 字节选择器。
}

// Functions lists the functions of the interface in declaration order.
// Functions 按声明顺序列出接口的函数。
func (i Interface) Functions() []Function {
	names := i.ABI.MethodNames()
	funcs := make([]Function, 0, len(names))
	for _, name := range names {
		m := i.ABI.Methods[name]
		funcs = append(funcs, Function{Name: m.Name, Signature: m.Sig, Selector: hexutil.Encode(m.ID)})
	}
	return funcs
}

// Selector returns the 4 byte function selector of a canonical signature such
// as transfer(address,uint256). Whitespace in the signature is ignored.
// Selector 返回规范签名（如 transfer(address,uint256)）的 4 字节函数选择器。签名中的空白会被忽略。
func Selector(signature string) [4]byte {
	var sel [4]byte
	copy(sel[:], abi.Keccak256([]byte(normalizeSignature(signature))))
	return sel
}

// Topic returns the 32 byte event topic of a canonical event signature.
// Topic 返回规范事件签名的 32 字节事件主题。
func Topic(signature string) common.Hash {
	return common.BytesToHash(abi.Keccak256([]byte(normalizeSignature(signature))))
}

func normalizeSignature(signature string) string {
	return strings.Join(strings.Fields(signature), "")
}

// InterfaceEventType represents the different event types that can be fired by
// the registry subscription subsystem.
// InterfaceEventType 代表了可以由注册表订阅子系统触发的不同事件类型。
type InterfaceEventType int

const (
	// InterfaceRegistered is fired when an interface is stored, including when
	// it replaces an earlier registration of the same identifier.
	// 当接口被存储时（包括替换同一标识符的先前注册）触发 InterfaceRegistered。
	InterfaceRegistered InterfaceEventType = iota

	// InterfaceDropped is fired when an interface is unregistered.
	// 当接口被注销时触发 InterfaceDropped。
	InterfaceDropped
)

func (t InterfaceEventType) String() string {
	switch t {
	case InterfaceRegistered:
		return "registered"
	case InterfaceDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// InterfaceEvent is an event fired by the registry when an interface arrives
// or departs.
// InterfaceEvent 是注册表在接口到达或离开时触发的事件。
type InterfaceEvent struct {
	Interface Interface          // Interface registered or dropped. // 注册或注销的接口。
	Kind      InterfaceEventType // Event type that happened in the registry. // 注册表中发生的事件类型。
}
