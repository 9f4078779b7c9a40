// Copyright 2018 The go-ethereum Authors
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

// 版权所有 2018 The go-ethereum Authors
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

// InterfacesByID implements sort.Interface for []Interface based on the ID field.
// InterfacesByID 根据 ID 字段为 []Interface 实现 sort.Interface。
type InterfacesByID []Interface

func (s InterfacesByID) Len() int           { return len(s) }
func (s InterfacesByID) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s InterfacesByID) Less(i, j int) bool { return s[i].ID < s[j].ID }

// InterfacesByURL implements sort.Interface for []Interface based on the URL field.
// InterfacesByURL 根据 URL 字段为 []Interface 实现 sort.Interface。
type InterfacesByURL []Interface

func (s InterfacesByURL) Len() int           { return len(s) }
func (s InterfacesByURL) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s InterfacesByURL) Less(i, j int) bool { return s[i].URL.Cmp(s[j].URL) < 0 }
