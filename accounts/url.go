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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Source schemes of registered interfaces.
// 已注册接口的来源方案。
const (
	SchemeInline = "inline" // description passed as a string
	SchemeFile   = "file"   // description read from the file system
	SchemeReader = "reader" // description streamed from an io.Reader
)

// URL represents the canonical identification URL of the place an interface
// description was loaded from.
//
// It is a simplified version of url.URL, with the important limitations (which
// are considered features here) that it contains value-copyable components only,
// as well as that it doesn't do any URL encoding/decoding of special characters.
// URL 表示接口描述加载来源的规范标识 URL。
//
// 它是 url.URL 的简化版本：它仅包含可值复制的组件，并且不对特殊字符进行任何 URL 编码/解码。
type URL struct {
	Scheme string // Protocol scheme identifying how the description was obtained // 标识描述获取方式的协议方案
	Path   string // Path of the description within the scheme // 描述在该方案中的路径
}

// parseURL converts a user supplied URL into the accounts specific structure.
// A string without a scheme is taken to be a file path.
// parseURL 将用户提供的 URL 转换为特定于帐户的结构。没有方案的字符串被视为文件路径。
func parseURL(url string) (URL, error) {
	parts := strings.Split(url, "://")
	switch {
	case len(parts) == 1 && parts[0] != "":
		return URL{Scheme: SchemeFile, Path: parts[0]}, nil
	case len(parts) != 2 || parts[0] == "":
		return URL{}, errors.New("protocol scheme missing")
	}
	return URL{
		Scheme: parts[0],
		Path:   parts[1],
	}, nil
}

// String implements the stringer interface.
// String 实现 stringer 接口。
func (u URL) String() string {
	if u.Scheme != "" {
		return fmt.Sprintf("%s://%s", u.Scheme, u.Path)
	}
	return u.Path
}

// TerminalString implements the log.TerminalStringer interface.
// TerminalString 实现 log.TerminalStringer 接口。
func (u URL) TerminalString() string {
	url := u.String()
	if len(url) > 32 {
		return url[:31] + ".."
	}
	return url
}

// MarshalJSON implements the json.Marshaller interface.
// MarshalJSON 实现 json.Marshaller 接口。
func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// MarshalYAML renders the url as a plain string.
func (u URL) MarshalYAML() (interface{}, error) {
	return u.String(), nil
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Cmp 比较 x 和 y 并返回：
//
//	-1 如果 x <  y
//	 0 如果 x == y
//	+1 如果 x >  y
func (u URL) Cmp(url URL) int {
	if u.Scheme == url.Scheme {
		return strings.Compare(u.Path, url.Path)
	}
	return strings.Compare(u.Scheme, url.Scheme)
}
