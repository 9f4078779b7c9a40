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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// The ABI holds information about a contract's context and available
// invocable methods. It will allow you to type check function calls and
// packs data accordingly.
// ABI 保存合约的上下文信息和可调用的方法，用于对函数调用进行类型检查并相应地打包数据。
type ABI struct {
	Constructor Method
	Methods     map[string]Method
	Events      map[string]Event
	Errors      map[string]Error

	// Additional "special" functions introduced in solidity v0.6.0.
	// It's separated from the original default fallback. Each contract
	// can only define one fallback and receive function.
	// solidity v0.6.0 引入的特殊函数，每个合约只能定义一个 fallback 和一个 receive。
	Fallback Method // Note it's also used to represent legacy fallback before v0.6.0
	Receive  Method

	// methodOrder lists the keys of Methods in declaration order.
	// methodOrder 按声明顺序列出 Methods 的键。
	methodOrder []string
}

// JSON returns a parsed ABI interface and error if it failed.
// JSON 返回解析后的 ABI 接口，失败时返回错误。
func JSON(reader io.Reader) (ABI, error) {
	dec := json.NewDecoder(reader)

	var abi ABI
	if err := dec.Decode(&abi); err != nil {
		return ABI{}, err
	}
	return abi, nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现了 json.Unmarshaler 接口。
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var fields []struct {
		Type    string
		Name    string
		Inputs  []Argument
		Outputs []Argument

		// Status indicator which can be: "pure", "view",
		// "nonpayable" or "payable".
		StateMutability string

		// Deprecated Status indicators, but removed in v0.6.0.
		Constant bool // True if function is either pure or view
		Payable  bool // True if function is payable

		// Event relevant indicator represents the event is
		// declared as anonymous.
		Anonymous bool
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	abi.Methods = make(map[string]Method)
	abi.Events = make(map[string]Event)
	abi.Errors = make(map[string]Error)
	abi.methodOrder = nil
	for _, field := range fields {
		switch field.Type {
		case "constructor":
			abi.Constructor = NewMethod("", "", Constructor, field.StateMutability, field.Constant, field.Payable, field.Inputs, nil)
		case "function":
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Methods[s]; return ok })
			abi.Methods[name] = NewMethod(name, field.Name, Function, field.StateMutability, field.Constant, field.Payable, field.Inputs, field.Outputs)
			abi.methodOrder = append(abi.methodOrder, name)
		case "fallback":
			// New introduced function type in v0.6.0, check more detail
			// here https://solidity.readthedocs.io/en/v0.6.0/contracts.html#fallback-function
			if abi.HasFallback() {
				return errors.New("only single fallback is allowed")
			}
			abi.Fallback = NewMethod("", "", Fallback, field.StateMutability, field.Constant, field.Payable, nil, nil)
		case "receive":
			// New introduced function type in v0.6.0, check more detail
			// here https://solidity.readthedocs.io/en/v0.6.0/contracts.html#fallback-function
			if abi.HasReceive() {
				return errors.New("only single receive is allowed")
			}
			if field.StateMutability != "payable" {
				return errors.New("the statemutability of receive can only be payable")
			}
			abi.Receive = NewMethod("", "", Receive, field.StateMutability, field.Constant, field.Payable, nil, nil)
		case "event":
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Events[s]; return ok })
			abi.Events[name] = NewEvent(name, field.Name, field.Anonymous, field.Inputs)
		case "error":
			// Errors cannot be overloaded or overridden but are inherited,
			// no need to resolve the name conflict here.
			// 错误不能被重载或覆盖，但可以被继承，这里无需解决名称冲突。
			abi.Errors[field.Name] = NewError(field.Name, field.Inputs)
		default:
			return fmt.Errorf("abi: could not recognize type %v of field %v", field.Type, field.Name)
		}
	}
	return nil
}

// ResolveNameConflict returns rawName, or rawName with the first numeric
// suffix (0, 1, ...) that is not yet used. Overloaded functions and events
// are stored under these names.
// ResolveNameConflict 返回 rawName，或带有第一个未被使用的数字后缀（0, 1, ...）的 rawName。
// 重载的函数和事件以这些名称存储。
func ResolveNameConflict(rawName string, used func(string) bool) string {
	name := rawName
	for idx := 0; used(name); idx++ {
		name = fmt.Sprintf("%s%d", rawName, idx)
	}
	return name
}

// MethodsByName returns the functions whose raw name is rawName, in the
// order they were declared.
// MethodsByName 按声明顺序返回原始名称为 rawName 的函数。
func (abi *ABI) MethodsByName(rawName string) []Method {
	var ret []Method
	for _, name := range abi.methodOrder {
		if m := abi.Methods[name]; m.RawName == rawName {
			ret = append(ret, m)
		}
	}
	return ret
}

// MethodNames returns the unique method names in declaration order.
// MethodNames 按声明顺序返回唯一的方法名。
func (abi *ABI) MethodNames() []string {
	return append([]string{}, abi.methodOrder...)
}

// FindMethod resolves a function reference. The reference may be a raw name,
// in which case the first declared overload wins, an overload-resolved name
// such as foo0, or a full signature such as foo(uint256).
// FindMethod 解析函数引用：原始名称（取第一个声明的重载）、重载解析后的名称（如 foo0）或完整签名（如 foo(uint256)）。
func (abi *ABI) FindMethod(ref string) (Method, bool) {
	if strings.Contains(ref, "(") {
		sig, err := canonicalSignature(ref)
		if err != nil {
			return Method{}, false
		}
		for _, name := range abi.methodOrder {
			if m := abi.Methods[name]; m.Sig == sig {
				return m, true
			}
		}
		return Method{}, false
	}
	if ms := abi.MethodsByName(ref); len(ms) > 0 {
		return ms[0], true
	}
	m, ok := abi.Methods[ref]
	return m, ok
}

// Keccak256 calculates the legacy Keccak-256 hash of the concatenated data.
// Selectors, event topics and error ids are all derived through it.
// Keccak256 计算拼接数据的传统 Keccak-256 哈希。选择器、事件主题和错误 id 都由它派生。
func Keccak256(data ...[]byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	for _, b := range data {
		hasher.Write(b)
	}
	return hasher.Sum(nil)
}

// canonicalSignature rewrites a signature reference into the form used by
// Method.Sig: whitespace dropped and type aliases such as uint expanded.
// canonicalSignature 将签名引用改写为 Method.Sig 的形式：去掉空白并展开 uint 等类型别名。
func canonicalSignature(ref string) (string, error) {
	ref = strings.Join(strings.Fields(ref), "")
	open := strings.Index(ref, "(")
	if open <= 0 || !strings.HasSuffix(ref, ")") {
		return "", fmt.Errorf("malformed signature %q", ref)
	}
	params, err := canonicalTypeList(ref[open+1 : len(ref)-1])
	if err != nil {
		return "", err
	}
	return ref[:open] + "(" + params + ")", nil
}

// canonicalTypeList canonicalises a comma separated list of types, splitting
// only at commas outside tuple parentheses.
func canonicalTypeList(list string) (string, error) {
	if list == "" {
		return "", nil
	}
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", fmt.Errorf("unbalanced parentheses in %q", list)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", fmt.Errorf("unbalanced parentheses in %q", list)
	}
	parts = append(parts, list[start:])

	for i, part := range parts {
		typ, err := canonicalType(part)
		if err != nil {
			return "", err
		}
		parts[i] = typ
	}
	return strings.Join(parts, ","), nil
}

func canonicalType(s string) (string, error) {
	if strings.HasPrefix(s, "(") {
		end := strings.LastIndex(s, ")")
		suffix := s[end+1:]
		if !arraySuffixRegex.MatchString(suffix) {
			return "", fmt.Errorf("invalid tuple suffix %q", suffix)
		}
		inner, err := canonicalTypeList(s[1:end])
		if err != nil {
			return "", err
		}
		return "(" + inner + ")" + suffix, nil
	}
	typ, err := NewType(s, "", nil)
	if err != nil {
		return "", err
	}
	return typ.String(), nil
}

// MethodById looks up a method by the 4-byte id,
// returns nil if none found.
// MethodById 通过 4 字节 id 查找方法，未找到时返回错误。
func (abi *ABI) MethodById(sigdata []byte) (*Method, error) {
	if len(sigdata) < 4 {
		return nil, fmt.Errorf("%w: data too short (%d bytes) for abi method lookup", ErrTruncatedInput, len(sigdata))
	}
	for _, name := range abi.methodOrder {
		method := abi.Methods[name]
		if bytes.Equal(method.ID, sigdata[:4]) {
			return &method, nil
		}
	}
	return nil, fmt.Errorf("no method with id: %#x", sigdata[:4])
}

// EventByID looks an event up by its topic hash in the
// ABI and returns nil if none found.
// EventByID 通过主题哈希查找事件。
func (abi *ABI) EventByID(topic common.Hash) (*Event, error) {
	for _, event := range abi.Events {
		if event.ID == topic {
			return &event, nil
		}
	}
	return nil, fmt.Errorf("no event with id: %#x", topic.Hex())
}

// ErrorByID looks up an error by the 4-byte id,
// returns nil if none found.
// ErrorByID 通过 4 字节 id 查找自定义错误。
func (abi *ABI) ErrorByID(sigdata [4]byte) (*Error, error) {
	for _, errABI := range abi.Errors {
		if errABI.ID == sigdata {
			return &errABI, nil
		}
	}
	return nil, fmt.Errorf("no error with id: %#x", sigdata[:])
}

// HasFallback returns an indicator whether a fallback function is included.
func (abi *ABI) HasFallback() bool {
	return abi.Fallback.Type == Fallback
}

// HasReceive returns an indicator whether a receive function is included.
func (abi *ABI) HasReceive() bool {
	return abi.Receive.Type == Receive
}

// RevertError and PanicError describe the payloads of require/revert with a
// reason string and of failed assertions.
// RevertError 与 PanicError 描述了带原因字符串的 require/revert 以及断言失败的负载。
var (
	RevertError = NewError("Error", Arguments{{Name: "reason", Type: elementaryType("string")}})
	PanicError  = NewError("Panic", Arguments{{Name: "code", Type: elementaryType("uint256")}})
)

func elementaryType(name string) Type {
	t, err := NewType(name, "", nil)
	if err != nil {
		panic(err)
	}
	return t
}

// panicReasons map is for readable panic codes
// see this linkage for the details
// https://docs.soliditylang.org/en/v0.8.21/control-structures.html#panic-via-assert-and-error-via-require
// the reason string list is copied from ether.js
// https://github.com/ethers-io/ethers.js/blob/fa3a883ff7c88611ce766f58bdd4b8ac90814470/src.ts/abi/interface.ts#L207-L218
var panicReasons = map[uint64]string{
	0x00: "generic panic",
	0x01: "assert(false)",
	0x11: "arithmetic underflow or overflow",
	0x12: "division or modulo by zero",
	0x21: "enum overflow",
	0x22: "invalid encoded storage byte array accessed",
	0x31: "out-of-bounds array access; popping on an empty array",
	0x32: "out-of-bounds access of an array or bytesN",
	0x41: "out of memory",
	0x51: "uninitialized function",
}

// UnpackRevert resolves the abi-encoded revert reason. According to the solidity
// spec https://solidity.readthedocs.io/en/latest/control-structures.html#revert,
// the provided revert reason is abi-encoded as if it were a call to function
// `Error(string)` or `Panic(uint256)`. So it's a special tool for it.
// UnpackRevert 解析 ABI 编码的 revert 原因，其编码方式如同调用 Error(string) 或 Panic(uint256)。
func UnpackRevert(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: invalid data for unpacking", ErrTruncatedInput)
	}
	var id [4]byte
	copy(id[:], data)

	switch id {
	case RevertError.ID:
		unpacked, err := RevertError.Unpack(data)
		if err != nil {
			return "", err
		}
		return unpacked[0].String, nil
	case PanicError.ID:
		unpacked, err := PanicError.Unpack(data)
		if err != nil {
			return "", err
		}
		code := unpacked[0].Number
		if code.IsUint64() {
			if reason, ok := panicReasons[code.Uint64()]; ok {
				return reason, nil
			}
		}
		return fmt.Sprintf("unknown panic code: %#x", code), nil
	default:
		return "", errors.New("invalid data for unpacking")
	}
}
