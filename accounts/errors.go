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
	"errors" // 导入 "errors" 包，用于创建和处理错误。
	"fmt"    // 导入 "fmt" 包，用于格式化字符串。

	abicodec "github.com/ethereum/go-abicodec"
)

// ErrUnknownInterface is returned for any requested operation for which no
// interface is registered under the given identifier.
// ErrUnknownInterface 在给定标识符下没有注册任何接口时返回。
var ErrUnknownInterface = fmt.Errorf("unknown interface: %w", abicodec.NotFound)

// ErrUnknownFunction is returned when the interface declares no function with
// the requested name or signature.
// ErrUnknownFunction 在接口未声明具有所请求名称或签名的函数时返回。
var ErrUnknownFunction = fmt.Errorf("unknown function: %w", abicodec.NotFound)

// ErrUnknownError is returned when a revert payload matches neither a custom
// error of the interface nor a standard revert.
// ErrUnknownError 在回滚负载既不匹配接口的自定义错误也不匹配标准回滚时返回。
var ErrUnknownError = fmt.Errorf("unknown error: %w", abicodec.NotFound)

// ErrUnknownEvent is returned when the interface declares no event with the
// requested name.
var ErrUnknownEvent = fmt.Errorf("unknown event: %w", abicodec.NotFound)

// ErrEmptyIdentifier is returned when registering an interface without an
// identifier.
// ErrEmptyIdentifier 在注册没有标识符的接口时返回。
var ErrEmptyIdentifier = errors.New("empty interface identifier")
