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

package accounts

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	abicodec "github.com/ethereum/go-abicodec"
	"github.com/ethereum/go-abicodec/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
)

var _ abicodec.Codec = (*Manager)(nil)

// Config lists the interfaces to load when the manager is created.
// Config 列出创建管理器时要加载的接口。
type Config struct {
	// Interfaces maps identifiers to description locations. A location is a
	// file path or a file:// URL.
	// Interfaces 将标识符映射到描述的位置。位置是文件路径或 file:// URL。
	Interfaces map[string]string `toml:",omitempty"`
}

// Manager is the contract interface registry. It stores parsed interfaces
// under caller chosen identifiers and encodes and decodes calls against them.
// All methods are safe for concurrent use.
// Manager 是合约接口注册表。它以调用者选择的标识符存储已解析的接口，并据此编码和解码调用。
// 所有方法都可以安全地并发使用。
type Manager struct {
	interfaces map[string]Interface // Index of interfaces currently registered // 当前注册的接口索引

	feed event.Feed // Interface feed notifying of arrivals/departures // 接口到达/离开的通知源

	lock sync.RWMutex
}

// NewManager creates a registry and loads the interfaces listed in config.
// NewManager 创建注册表并加载 config 中列出的接口。
func NewManager(config *Config) (*Manager, error) {
	am := &Manager{
		interfaces: make(map[string]Interface),
	}
	if config == nil {
		return am, nil
	}
	ids := make([]string, 0, len(config.Interfaces))
	for id := range config.Interfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := am.Load(id, config.Interfaces[id]); err != nil {
			return nil, err
		}
	}
	return am, nil
}

// Register parses a JSON interface description and stores it under id,
// replacing any earlier registration.
// Register 解析 JSON 接口描述并以 id 存储，替换之前的注册。
func (am *Manager) Register(id string, description string) error {
	return am.register(id, URL{Scheme: SchemeInline, Path: id}, strings.NewReader(description))
}

// RegisterJSON is like Register but reads the description from reader.
// RegisterJSON 与 Register 类似，但从 reader 读取描述。
func (am *Manager) RegisterJSON(id string, reader io.Reader) error {
	return am.register(id, URL{Scheme: SchemeReader, Path: id}, reader)
}

// Load reads the interface description at location, a file path or a
// file:// URL, and stores it under id.
// Load 读取位于 location（文件路径或 file:// URL）的接口描述并以 id 存储。
func (am *Manager) Load(id string, location string) error {
	url, err := parseURL(location)
	if err != nil {
		return fmt.Errorf("interface %q: %w", id, err)
	}
	if url.Scheme != SchemeFile {
		return fmt.Errorf("interface %q: unsupported scheme %q", id, url.Scheme)
	}
	f, err := os.Open(url.Path)
	if err != nil {
		return fmt.Errorf("interface %q: %w", id, err)
	}
	defer f.Close()
	return am.register(id, url, f)
}

func (am *Manager) register(id string, url URL, reader io.Reader) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	parsed, err := abi.JSON(reader)
	if err != nil {
		return fmt.Errorf("interface %q: %w", id, err)
	}
	iface := Interface{ID: id, URL: url, ABI: parsed}

	am.lock.Lock()
	am.interfaces[id] = iface
	am.lock.Unlock()

	log.Info("Registered contract interface", "id", id, "url", url, "functions", len(parsed.Methods), "events", len(parsed.Events), "errors", len(parsed.Errors))
	am.feed.Send(InterfaceEvent{Interface: iface, Kind: InterfaceRegistered})
	return nil
}

// Unregister removes the interface stored under id.
// Unregister 删除以 id 存储的接口。
func (am *Manager) Unregister(id string) error {
	am.lock.Lock()
	iface, ok := am.interfaces[id]
	delete(am.interfaces, id)
	am.lock.Unlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInterface, id)
	}
	log.Info("Dropped contract interface", "id", id, "url", iface.URL)
	am.feed.Send(InterfaceEvent{Interface: iface, Kind: InterfaceDropped})
	return nil
}

// Interfaces returns all registered interfaces sorted by identifier.
// Interfaces 返回按标识符排序的所有已注册接口。
func (am *Manager) Interfaces() []Interface {
	am.lock.RLock()
	ifaces := make([]Interface, 0, len(am.interfaces))
	for _, iface := range am.interfaces {
		ifaces = append(ifaces, iface)
	}
	am.lock.RUnlock()

	sort.Sort(InterfacesByID(ifaces))
	return ifaces
}

// Interface retrieves the interface registered under id.
// Interface 检索以 id 注册的接口。
func (am *Manager) Interface(id string) (Interface, error) {
	am.lock.RLock()
	defer am.lock.RUnlock()

	iface, ok := am.interfaces[id]
	if !ok {
		return Interface{}, fmt.Errorf("%w: %q", ErrUnknownInterface, id)
	}
	return iface, nil
}

// Lookup resolves a function of the interface registered under id. When the
// raw name is overloaded the first declared function wins; the overload
// resolved name (transfer0) or the full signature selects a specific one.
// Lookup 解析以 id 注册的接口中的函数。原始名称重载时取第一个声明的函数；
// 重载解析后的名称（transfer0）或完整签名可选择特定的函数。
func (am *Manager) Lookup(id, function string) (abi.Method, error) {
	iface, err := am.Interface(id)
	if err != nil {
		return abi.Method{}, err
	}
	method, ok := iface.ABI.FindMethod(function)
	if !ok {
		return abi.Method{}, fmt.Errorf("%w: %q in interface %q", ErrUnknownFunction, function, id)
	}
	return method, nil
}

// EncodeCall tokenizes args against the inputs of the function and returns
// the 0x prefixed hex of selector and packed arguments.
// EncodeCall 根据函数输入对 args 进行分词，并返回选择器与打包参数的 0x 前缀十六进制。
func (am *Manager) EncodeCall(id, function string, args []abi.Value) (string, error) {
	method, err := am.Lookup(id, function)
	if err != nil {
		return "", err
	}
	tokens, err := method.Inputs.Tokenize(args)
	if err != nil {
		return "", fmt.Errorf("%s.%s: %w", id, method.Sig, err)
	}
	data, err := method.Pack(tokens...)
	if err != nil {
		return "", fmt.Errorf("%s.%s: %w", id, method.Sig, err)
	}
	log.Debug("Encoded contract call", "id", id, "function", method.Sig, "size", len(data))
	return hexutil.Encode(data), nil
}

// DecodeOutput decodes the return data of a call to function.
// DecodeOutput 解码对函数调用的返回数据。
func (am *Manager) DecodeOutput(id, function, data string) ([]abi.Value, error) {
	method, err := am.Lookup(id, function)
	if err != nil {
		return nil, err
	}
	raw, err := decodeHex(data)
	if err != nil {
		return nil, err
	}
	tokens, err := method.Outputs.Unpack(raw)
	if err != nil {
		return nil, fmt.Errorf("%s.%s outputs: %w", id, method.Sig, err)
	}
	return abi.FormatTokens(tokens), nil
}

// DecodeInput decodes call data of function. The leading 4 byte selector is
// skipped; a selector that does not belong to the function is logged but not
// rejected.
// DecodeInput 解码函数的调用数据。跳过开头的 4 字节选择器；不属于该函数的选择器只记录日志，不拒绝。
func (am *Manager) DecodeInput(id, function, data string) ([]abi.Value, error) {
	method, err := am.Lookup(id, function)
	if err != nil {
		return nil, err
	}
	raw, err := decodeHex(data)
	if err != nil {
		return nil, err
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("%s.%s inputs: %w: have %d bytes, need a 4 byte selector", id, method.Sig, abi.ErrTruncatedInput, len(raw))
	}
	if !bytes.Equal(raw[:4], method.ID) {
		log.Warn("Call data selector mismatch", "id", id, "function", method.Sig, "have", hexutil.Encode(raw[:4]), "want", hexutil.Encode(method.ID))
	}
	tokens, err := method.Inputs.Unpack(raw[4:])
	if err != nil {
		return nil, fmt.Errorf("%s.%s inputs: %w", id, method.Sig, err)
	}
	return abi.FormatTokens(tokens), nil
}

// DecodeError decodes a revert payload against the custom errors of the
// interface, falling back to the standard Error(string) and Panic(uint256)
// payloads. It returns the error name and its decoded arguments.
// DecodeError 根据接口的自定义错误解码回滚负载，否则回退到标准的 Error(string) 和 Panic(uint256)。
// 返回错误名称及其解码后的参数。
func (am *Manager) DecodeError(id, data string) (string, []abi.Value, error) {
	iface, err := am.Interface(id)
	if err != nil {
		return "", nil, err
	}
	raw, err := decodeHex(data)
	if err != nil {
		return "", nil, err
	}
	if len(raw) < 4 {
		return "", nil, fmt.Errorf("%w: have %d bytes, need a 4 byte error id", abi.ErrTruncatedInput, len(raw))
	}
	var sel [4]byte
	copy(sel[:], raw[:4])

	if e, err := iface.ABI.ErrorByID(sel); err == nil {
		tokens, err := e.Unpack(raw)
		if err != nil {
			return "", nil, fmt.Errorf("%s.%s: %w", id, e.Sig, err)
		}
		return e.Name, abi.FormatTokens(tokens), nil
	}
	for _, std := range []abi.Error{abi.RevertError, abi.PanicError} {
		if sel != std.ID {
			continue
		}
		reason, err := abi.UnpackRevert(raw)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", std.Sig, err)
		}
		return std.Name, []abi.Value{abi.Text(reason)}, nil
	}
	return "", nil, fmt.Errorf("%w: id %#x in interface %q", ErrUnknownError, sel[:], id)
}

// DecodeEvent decodes the data section of a log emitted as event. Indexed
// inputs are carried in the log topics and are not returned.
// DecodeEvent 解码作为事件发出的日志的数据部分。索引参数位于日志主题中，不会返回。
func (am *Manager) DecodeEvent(id, event, data string) ([]abi.Value, error) {
	iface, err := am.Interface(id)
	if err != nil {
		return nil, err
	}
	ev, ok := iface.ABI.Events[event]
	if !ok {
		return nil, fmt.Errorf("%w: %q in interface %q", ErrUnknownEvent, event, id)
	}
	raw, err := decodeHex(data)
	if err != nil {
		return nil, err
	}
	tokens, err := ev.Unpack(raw)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", id, ev.Sig, err)
	}
	return abi.FormatTokens(tokens), nil
}

// DecodeLog decodes a whole log of event: its topics, hex encoded, and its
// data section. The values of all inputs are returned in declaration order.
// DecodeLog 解码事件的完整日志：十六进制编码的主题及其数据部分。按声明顺序返回所有输入的值。
func (am *Manager) DecodeLog(id, event string, topics []string, data string) ([]abi.Value, error) {
	iface, err := am.Interface(id)
	if err != nil {
		return nil, err
	}
	ev, ok := iface.ABI.Events[event]
	if !ok {
		return nil, fmt.Errorf("%w: %q in interface %q", ErrUnknownEvent, event, id)
	}
	hashes := make([]common.Hash, len(topics))
	for i, topic := range topics {
		raw, err := decodeHex(topic)
		if err != nil {
			return nil, fmt.Errorf("topic %d: %w", i, err)
		}
		if len(raw) != common.HashLength {
			return nil, fmt.Errorf("topic %d: %w: have %d bytes, want %d", i, abi.ErrLengthMismatch, len(raw), common.HashLength)
		}
		hashes[i] = common.BytesToHash(raw)
	}
	raw, err := decodeHex(data)
	if err != nil {
		return nil, err
	}
	tokens, err := ev.UnpackLog(hashes, raw)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", id, ev.Sig, err)
	}
	return abi.FormatTokens(tokens), nil
}

// Subscribe creates an async subscription to receive notifications when an
// interface is registered or dropped. Delivery blocks the registering caller
// until every subscriber has received the event.
// Subscribe 创建异步订阅，以便在接口注册或注销时接收通知。投递会阻塞注册调用者，直到所有订阅者都收到事件。
func (am *Manager) Subscribe(sink chan<- InterfaceEvent) abicodec.Subscription {
	return am.feed.Subscribe(sink)
}

// decodeHex decodes hex text with an optional 0x prefix.
// decodeHex 解码带可选 0x 前缀的十六进制文本。
func decodeHex(data string) ([]byte, error) {
	s := data
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	raw, err := hexutil.Decode("0x" + s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", abi.ErrInvalidHex, err)
	}
	return raw, nil
}
