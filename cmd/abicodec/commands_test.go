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

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-abicodec/accounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipient = "0x0000000000000000000000000000000000000001"

func word(n uint64) string {
	return fmt.Sprintf("%064x", n)
}

// runApp executes the command line with the given arguments and returns what
// was written to standard output.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"abicodec"}, args...))
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := runApp(t, "--abi", "erc20=testdata/erc20.json", "encode", "erc20", "transfer", `["`+recipient+`", 1000]`)
	require.NoError(t, err)
	assert.Equal(t, "0xa9059cbb"+word(1)+word(1000)+"\n", out)

	_, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "encode", "erc20", "transfer", `{"to":"`+recipient+`"}`)
	require.Error(t, err)

	_, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "encode", "erc20", "transfer")
	require.Error(t, err)

	_, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "encode", "erc20", "approve", "[]")
	require.Error(t, err)
}

func TestDecodeCommands(t *testing.T) {
	out, err := runApp(t, "--abi", "erc20=testdata/erc20.json", "decode-input", "erc20", "transfer", "0xa9059cbb"+word(1)+word(1000))
	require.NoError(t, err)
	var values []string
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, []string{recipient, "1000"}, values)

	out, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "decode-output", "erc20", "balanceOf", "0x"+word(1000))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, []string{"1000"}, values)

	out, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "--format", "yaml", "decode-output", "erc20", "symbol",
		"0x"+word(0x20)+word(3)+"414243"+strings.Repeat("0", 58))
	require.NoError(t, err)
	assert.Equal(t, "- \"ABC\"\n", out)

	out, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "decode-event", "erc20", "Transfer", word(7))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, []string{"7"}, values)

	topic := accounts.Topic("Transfer(address,address,uint256)").Hex()
	out, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "decode-event", "--topic", topic, "--topic", word(1), "--topic", word(2), "erc20", "Transfer", word(7))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, []string{recipient, "0x0000000000000000000000000000000000000002", "7"}, values)

	_, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "decode-output", "erc20", "balanceOf", "0x1234")
	require.Error(t, err)
}

func TestDecodeErrorCommand(t *testing.T) {
	sel := accounts.Selector("InsufficientBalance(uint256,uint256)")
	out, err := runApp(t, "--abi", "erc20=testdata/erc20.json", "decode-error", "erc20", fmt.Sprintf("0x%x", sel[:])+word(1)+word(2))
	require.NoError(t, err)

	var result struct {
		Error string   `json:"error"`
		Args  []string `json:"args"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "InsufficientBalance", result.Error)
	assert.Equal(t, []string{"1", "2"}, result.Args)

	out, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "decode-error", "erc20", "0x4e487b71"+word(1))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Panic", result.Error)
	assert.Equal(t, []string{"assert(false)"}, result.Args)
}

func TestListCommand(t *testing.T) {
	out, err := runApp(t, "--abi", "erc20=testdata/erc20.json", "list")
	require.NoError(t, err)

	var listing []struct {
		ID        string              `json:"id"`
		URL       string              `json:"url"`
		Functions []accounts.Function `json:"functions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.Len(t, listing, 1)
	assert.Equal(t, "erc20", listing[0].ID)
	assert.Equal(t, "file://testdata/erc20.json", listing[0].URL)
	require.Len(t, listing[0].Functions, 3)
	assert.Equal(t, accounts.Function{Name: "transfer", Signature: "transfer(address,uint256)", Selector: "0xa9059cbb"}, listing[0].Functions[0])

	out, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "--format", "yaml", "list", "erc20")
	require.NoError(t, err)
	assert.Contains(t, out, "id: erc20\n")
	assert.Contains(t, out, "signature: balanceOf(address)")

	_, err = runApp(t, "--abi", "erc20=testdata/erc20.json", "list", "missing")
	require.Error(t, err)
}

func TestListSortOrder(t *testing.T) {
	// The same description under two locations, whose URLs sort opposite to their ids.
	abis := []string{"--abi", "a=testdata/erc20.json", "--abi", "b=./testdata/erc20.json"}
	listed := func(args ...string) []string {
		t.Helper()
		out, err := runApp(t, append(abis, args...)...)
		require.NoError(t, err)
		var listing []struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &listing))
		ids := make([]string, len(listing))
		for i, l := range listing {
			ids[i] = l.ID
		}
		return ids
	}
	assert.Equal(t, []string{"a", "b"}, listed("list"))
	assert.Equal(t, []string{"a", "b"}, listed("list", "--sort", "id"))
	assert.Equal(t, []string{"b", "a"}, listed("list", "--sort", "url"))

	_, err := runApp(t, append(abis, "list", "--sort", "name")...)
	require.Error(t, err)
}

func TestSelectorCommand(t *testing.T) {
	out, err := runApp(t, "selector", "Transfer(address,address,uint256)")
	require.NoError(t, err)

	var result selectorResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "0xddf252ad", result.Selector)
	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", result.Topic)
}

func TestConfigFile(t *testing.T) {
	// The configuration asks for yaml output.
	out, err := runApp(t, "--config", "testdata/config.toml", "decode-output", "erc20", "balanceOf", word(42))
	require.NoError(t, err)
	assert.Equal(t, "- \"42\"\n", out)

	// Flags override the file.
	out, err = runApp(t, "--config", "testdata/config.toml", "--format", "json", "decode-output", "erc20", "balanceOf", word(42))
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"42\"\n]\n", out)
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[Output]\nColour = \"red\"\n"), 0o600))

	cfg := defaultConfig()
	err := loadConfig(bad, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Colour")

	require.Error(t, loadConfig(filepath.Join(dir, "missing.toml"), &cfg))

	cfg = defaultConfig()
	require.NoError(t, loadConfig("testdata/config.toml", &cfg))
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, map[string]string{"erc20": "testdata/erc20.json"}, cfg.Interfaces)

	_, err = runApp(t, "--format", "xml", "selector", "f()")
	require.ErrorContains(t, err, "unknown output format")

	_, err = runApp(t, "--abi", "erc20", "selector", "f()")
	require.ErrorContains(t, err, "want id=path")
}

func TestLogFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "abicodec.log")
	_, err := runApp(t, "--log.file", file, "--verbosity", "4", "--abi", "erc20=testdata/erc20.json",
		"encode", "erc20", "balanceOf", `["`+recipient+`"]`)
	require.NoError(t, err)

	blob, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(blob), "Registered contract interface")
	assert.Contains(t, string(blob), "Encoded contract call")
}
