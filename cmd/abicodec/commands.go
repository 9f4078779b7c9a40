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
	"fmt"
	"sort"

	"github.com/ethereum/go-abicodec/accounts"
	"github.com/ethereum/go-abicodec/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

var (
	encodeCommand = &cli.Command{
		Name:      "encode",
		Usage:     "Encode a function call",
		ArgsUsage: "<id> <function> <args-json-array>",
		Description: `
Tokenizes the JSON array of arguments against the function inputs and prints
the 0x prefixed call data. Tuples are given as nested arrays; integers may be
JSON numbers or decimal/hex strings.`,
		Action: encodeCall,
	}
	decodeInputCommand = &cli.Command{
		Name:      "decode-input",
		Usage:     "Decode the call data of a function",
		ArgsUsage: "<id> <function> <hex>",
		Action:    decodeInput,
	}
	decodeOutputCommand = &cli.Command{
		Name:      "decode-output",
		Usage:     "Decode the return data of a function",
		ArgsUsage: "<id> <function> <hex>",
		Action:    decodeOutput,
	}
	decodeErrorCommand = &cli.Command{
		Name:      "decode-error",
		Usage:     "Decode a revert payload",
		ArgsUsage: "<id> <hex>",
		Action:    decodeError,
	}
	decodeEventCommand = &cli.Command{
		Name:      "decode-event",
		Usage:     "Decode an event log",
		ArgsUsage: "<id> <event> <hex>",
		Description: `
Decodes the data section of a log. When the log topics are given with --topic,
indexed inputs are decoded too and every input is printed in declaration order.`,
		Flags:  []cli.Flag{topicFlag},
		Action: decodeEvent,
	}
	listCommand = &cli.Command{
		Name:      "list",
		Usage:     "List registered interfaces and their functions",
		ArgsUsage: "[id]",
		Flags:     []cli.Flag{sortFlag},
		Action:    listInterfaces,
	}
	selectorCommand = &cli.Command{
		Name:      "selector",
		Usage:     "Print the selector and topic of a signature",
		ArgsUsage: "<signature>",
		Action:    printSelector,
	}
)

func checkArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() != n {
		return fmt.Errorf("%s takes %d arguments: %s", ctx.Command.Name, n, ctx.Command.ArgsUsage)
	}
	return nil
}

func encodeCall(ctx *cli.Context) error {
	if err := checkArgs(ctx, 3); err != nil {
		return err
	}
	am, _, err := makeManager(ctx)
	if err != nil {
		return err
	}
	args, err := abi.ParseValues([]byte(ctx.Args().Get(2)))
	if err != nil {
		return err
	}
	data, err := am.EncodeCall(ctx.Args().Get(0), ctx.Args().Get(1), args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, data)
	return err
}

func decodeInput(ctx *cli.Context) error {
	return decodeValues(ctx, (*accounts.Manager).DecodeInput)
}

func decodeOutput(ctx *cli.Context) error {
	return decodeValues(ctx, (*accounts.Manager).DecodeOutput)
}

func decodeEvent(ctx *cli.Context) error {
	topics := ctx.StringSlice(topicFlag.Name)
	if len(topics) == 0 {
		return decodeValues(ctx, (*accounts.Manager).DecodeEvent)
	}
	return decodeValues(ctx, func(am *accounts.Manager, id, event, data string) ([]abi.Value, error) {
		return am.DecodeLog(id, event, topics, data)
	})
}

func decodeValues(ctx *cli.Context, decode func(*accounts.Manager, string, string, string) ([]abi.Value, error)) error {
	if err := checkArgs(ctx, 3); err != nil {
		return err
	}
	am, cfg, err := makeManager(ctx)
	if err != nil {
		return err
	}
	values, err := decode(am, ctx.Args().Get(0), ctx.Args().Get(1), ctx.Args().Get(2))
	if err != nil {
		return err
	}
	return writeResult(ctx.App.Writer, cfg.Output.Format, values)
}

type revertResult struct {
	Error string      `json:"error" yaml:"error"`
	Args  []abi.Value `json:"args" yaml:"args"`
}

func decodeError(ctx *cli.Context) error {
	if err := checkArgs(ctx, 2); err != nil {
		return err
	}
	am, cfg, err := makeManager(ctx)
	if err != nil {
		return err
	}
	name, values, err := am.DecodeError(ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}
	return writeResult(ctx.App.Writer, cfg.Output.Format, revertResult{Error: name, Args: values})
}

type interfaceListing struct {
	accounts.Interface `yaml:",inline"`
	Functions          []accounts.Function `json:"functions" yaml:"functions"`
}

func listInterfaces(ctx *cli.Context) error {
	if ctx.NArg() > 1 {
		return fmt.Errorf("list takes at most one argument: %s", ctx.Command.ArgsUsage)
	}
	am, cfg, err := makeManager(ctx)
	if err != nil {
		return err
	}
	ifaces := am.Interfaces()
	if id := ctx.Args().First(); id != "" {
		iface, err := am.Interface(id)
		if err != nil {
			return err
		}
		ifaces = []accounts.Interface{iface}
	}
	switch order := ctx.String(sortFlag.Name); order {
	case sortByID:
	case sortByURL:
		sort.Stable(accounts.InterfacesByURL(ifaces))
	default:
		return fmt.Errorf("unknown sort order %q", order)
	}
	listing := make([]interfaceListing, len(ifaces))
	for i, iface := range ifaces {
		listing[i] = interfaceListing{Interface: iface, Functions: iface.Functions()}
	}
	return writeResult(ctx.App.Writer, cfg.Output.Format, listing)
}

type selectorResult struct {
	Signature string `json:"signature" yaml:"signature"`
	Selector  string `json:"selector" yaml:"selector"`
	Topic     string `json:"topic" yaml:"topic"`
}

func printSelector(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	_, cfg, err := makeManager(ctx)
	if err != nil {
		return err
	}
	sig := ctx.Args().First()
	sel := accounts.Selector(sig)
	return writeResult(ctx.App.Writer, cfg.Output.Format, selectorResult{
		Signature: sig,
		Selector:  hexutil.Encode(sel[:]),
		Topic:     accounts.Topic(sig).Hex(),
	})
}
