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

package abi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"gopkg.in/yaml.v3"
)

// ValueKind enumerates the shapes a loosely typed host value can take.
type ValueKind uint8

const (
	NullValue ValueKind = iota
	BoolValue
	NumberValue
	TextValue
	SequenceValue
	KeyedValue
)

func (k ValueKind) String() string {
	switch k {
	case NullValue:
		return "null"
	case BoolValue:
		return "bool"
	case NumberValue:
		return "number"
	case TextValue:
		return "text"
	case SequenceValue:
		return "sequence"
	case KeyedValue:
		return "keyed"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Value is a loosely typed host value, the input of tokenization and the
// output of decoding. Numbers keep their literal text so that values outside
// the 64 bit range survive unchanged.
// Value 是松散类型的宿主值，是分词的输入和解码的输出。数字保留其字面文本，以免丢失精度。
type Value struct {
	Kind ValueKind
	Bool bool
	Text string // TextValue contents or NumberValue literal

	Elems []Value // SequenceValue

	// KeyedValue entries, in the order they appeared.
	Keys   []string
	Fields map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{Kind: NullValue} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{Kind: BoolValue, Bool: b} }

// Number wraps a numeric literal such as "1000", "-5" or "1e21".
func Number(literal string) Value { return Value{Kind: NumberValue, Text: literal} }

// Text wraps a string.
func Text(s string) Value { return Value{Kind: TextValue, Text: s} }

// Sequence wraps an ordered list of values.
func Sequence(elems ...Value) Value {
	return Value{Kind: SequenceValue, Elems: append([]Value{}, elems...)}
}

// Keyed builds an object value; values[i] is stored under keys[i].
func Keyed(keys []string, values []Value) Value {
	v := Value{Kind: KeyedValue, Keys: append([]string{}, keys...), Fields: make(map[string]Value, len(keys))}
	for i, k := range keys {
		v.Fields[k] = values[i]
	}
	return v
}

// String renders the value in JSON form.
func (v Value) String() string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<%v>", v.Kind)
	}
	return string(b)
}

// ParseValue decodes a JSON document into a Value.
// ParseValue 将 JSON 文档解码为 Value。
func ParseValue(data []byte) (Value, error) {
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// ParseValues decodes a JSON array into its element values, the usual shape
// of a call's argument list.
func ParseValues(data []byte) ([]Value, error) {
	v, err := ParseValue(data)
	if err != nil {
		return nil, err
	}
	if v.Kind != SequenceValue {
		return nil, fmt.Errorf("%w: argument list must be a JSON array, have %v", ErrUnsupportedStructure, v.Kind)
	}
	return v.Elems, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	parsed, err := decodeValue(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("abi: trailing data after JSON value")
	}
	*v = parsed
	return nil
}

// decodeValue reads one value from the token stream, keeping object keys in
// document order.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return Text(t), nil
	case json.Delim:
		switch t {
		case '[':
			elems := []Value{}
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, elem)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{Kind: SequenceValue, Elems: elems}, nil
		case '{':
			v := Value{Kind: KeyedValue, Fields: make(map[string]Value)}
			for dec.More() {
				key, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				name, ok := key.(string)
				if !ok {
					return Value{}, fmt.Errorf("abi: invalid object key %v", key)
				}
				field, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				if _, dup := v.Fields[name]; !dup {
					v.Keys = append(v.Keys, name)
				}
				v.Fields[name] = field
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return v, nil
		}
	}
	return Value{}, fmt.Errorf("abi: unexpected JSON token %v", tok)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case NullValue:
		return []byte("null"), nil
	case BoolValue:
		return json.Marshal(v.Bool)
	case NumberValue:
		return []byte(v.Text), nil
	case TextValue:
		return json.Marshal(v.Text)
	case SequenceValue:
		elems := v.Elems
		if elems == nil {
			elems = []Value{}
		}
		return json.Marshal(elems)
	case KeyedValue:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range v.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			field, err := json.Marshal(v.Fields[k])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(field)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("abi: cannot marshal value of kind %v", v.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.yamlNode(), nil
}

func (v Value) yamlNode() *yaml.Node {
	switch v.Kind {
	case BoolValue:
		if v.Bool {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
	case NumberValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.Text}
	case TextValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Text, Style: yaml.DoubleQuotedStyle}
	case SequenceValue:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Elems {
			n.Content = append(n.Content, e.yamlNode())
		}
		return n
	case KeyedValue:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range v.Keys {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				v.Fields[k].yamlNode())
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// FormatToken converts a decoded token into a host value: integers become
// decimal text with full precision, byte-like leaves become 0x prefixed
// lowercase hex, and composites become sequences.
// FormatToken 将解码后的 token 转换为宿主值：整数变为完整精度的十进制文本，
// 字节类叶子变为带 0x 前缀的小写十六进制，复合类型变为序列。
func FormatToken(tok Token) Value {
	switch tok.T {
	case BoolTy:
		return Bool(tok.Bool)
	case StringTy:
		return Text(tok.String)
	case AddressTy:
		return Text(hexutil.Encode(tok.Address[:]))
	case BytesTy, FixedBytesTy, FunctionTy:
		return Text(hexutil.Encode(tok.Bytes))
	case UintTy:
		return Text(tok.Number.Dec())
	case IntTy:
		return Text(signedDec(tok.Number))
	case SliceTy, ArrayTy, TupleTy:
		elems := make([]Value, len(tok.Elems))
		for i, e := range tok.Elems {
			elems[i] = FormatToken(e)
		}
		return Value{Kind: SequenceValue, Elems: elems}
	default:
		return Null()
	}
}

// FormatTokens formats every token of a decoded argument list.
func FormatTokens(tokens []Token) []Value {
	values := make([]Value, len(tokens))
	for i, tok := range tokens {
		values[i] = FormatToken(tok)
	}
	return values
}
