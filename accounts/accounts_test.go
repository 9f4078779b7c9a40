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

package accounts

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TestSelector tests the Selector function.
// TestSelector 测试 Selector 函数。
func TestSelector(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"transfer(address,uint256)":  "0xa9059cbb",
		"transfer(address, uint256)": "0xa9059cbb",
		"balanceOf(address)":         "0x70a08231",
		"Error(string)":              "0x08c379a0",
		"Panic(uint256)":             "0x4e487b71",
	}
	for sig, want := range tests {
		sel := Selector(sig)
		if have := hexutil.Encode(sel[:]); have != want {
			t.Errorf("%s: have selector %s, want %s", sig, have, want)
		}
	}
	want := common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
	if have := Topic("Transfer(address,address,uint256)"); have != want {
		t.Fatalf("wrong topic: %x", have)
	}
}

func TestURLParsing(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    URL
		wantErr bool
	}{
		{in: "file:///tmp/erc20.json", want: URL{Scheme: "file", Path: "/tmp/erc20.json"}},
		{in: "abis/erc20.json", want: URL{Scheme: SchemeFile, Path: "abis/erc20.json"}},
		{in: "inline://erc20", want: URL{Scheme: SchemeInline, Path: "erc20"}},
		{in: "", wantErr: true},
		{in: "://erc20", wantErr: true},
		{in: "a://b://c", wantErr: true},
	}
	for _, tt := range tests {
		have, err := parseURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if have != tt.want {
			t.Errorf("%q: have %+v, want %+v", tt.in, have, tt.want)
		}
	}
}

func TestURLMarshalJSON(t *testing.T) {
	t.Parallel()
	url := URL{Scheme: SchemeFile, Path: "/abis/erc20.json"}
	blob, err := json.Marshal(url)
	if err != nil {
		t.Fatal(err)
	}
	if string(blob) != `"file:///abis/erc20.json"` {
		t.Fatalf("have %s", blob)
	}
	blob, err = json.Marshal(URL{Scheme: SchemeInline, Path: "erc20"})
	if err != nil {
		t.Fatal(err)
	}
	if string(blob) != `"inline://erc20"` {
		t.Fatalf("have %s", blob)
	}
}

func TestURLTerminalString(t *testing.T) {
	t.Parallel()
	url := URL{Scheme: SchemeFile, Path: "/a/very/long/path/to/some/interface.json"}
	if have := url.TerminalString(); have != "file:///a/very/long/path/to/som.." {
		t.Fatalf("have %q", have)
	}
}

func TestSortInterfaces(t *testing.T) {
	t.Parallel()
	ifaces := []Interface{
		{ID: "b", URL: URL{Scheme: SchemeInline, Path: "b"}},
		{ID: "c", URL: URL{Scheme: SchemeFile, Path: "/z.json"}},
		{ID: "a", URL: URL{Scheme: SchemeReader, Path: "a"}},
	}
	sort.Sort(InterfacesByID(ifaces))
	if ifaces[0].ID != "a" || ifaces[1].ID != "b" || ifaces[2].ID != "c" {
		t.Fatalf("wrong id order: %v", ifaces)
	}
	sort.Sort(InterfacesByURL(ifaces))
	if ifaces[0].ID != "c" || ifaces[1].ID != "b" || ifaces[2].ID != "a" {
		t.Fatalf("wrong url order: %v", ifaces)
	}
}
