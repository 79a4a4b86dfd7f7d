/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Command gs1encode is a thin command-line front end over the gs1encode
// library, demonstrating its three ingestion paths (bracketed AI data, a
// Digital Link URI, and a raw canonical element string) plus the human-
// readable interpretation formatter. It performs no barcode rendering:
// that responsibility belongs to an external symbology renderer, out of
// scope for this core.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"gs1encode"
)

var (
	symbology     string
	titles        bool
	addCheckDigit bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gs1encode",
		Short: "Parse and validate GS1 AI data, Digital Link URIs, and element strings",
	}

	root.PersistentFlags().StringVar(&symbology, "symbology", "", "target symbology name (documentation only; no rendering is performed)")
	root.PersistentFlags().BoolVar(&titles, "titles", false, "include AI titles in HRI output")
	root.PersistentFlags().BoolVar(&addCheckDigit, "add-check-digit", false, "recompute the trailing check digit of raw non-AI input")

	root.AddCommand(encodeCmd(), dlCmd(), rawCmd())
	return root
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [bracketed AI data]",
		Short: "Parse \"(AI)value(AI)value...\" bracketed AI data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(args[0], (*gs1encode.Context).SetGS1dataStr)
		},
	}
}

func dlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dl [Digital Link URI]",
		Short: "Parse a GS1 Digital Link URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(args[0], (*gs1encode.Context).ParseDLURI)
		},
	}
}

func rawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "raw [data]",
		Short: "Set a raw data string: a canonical \"#\"-delimited element string, or a non-AI payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(args[0], func(ctx *gs1encode.Context, data string) error {
				ctx.SetAddCheckDigit(addCheckDigit)
				return ctx.SetDataStr(data)
			})
		},
	}
}

// runIngest runs ingest against a fresh Context and prints the resulting
// element string, extracted AIs, and HRI text, or the sticky error message
// on failure.
func runIngest(data string, ingest func(*gs1encode.Context, string) error) error {
	ctx := gs1encode.Init()
	defer ctx.Free()

	if err := ingest(ctx, data); err != nil {
		return fmt.Errorf("%s", ctx.GetErrMsg())
	}

	fmt.Fprintln(os.Stdout, "Element string:", ctx.GetDataStr())

	if extracted := ctx.GetExtractedAIs(); len(extracted) > 0 {
		fmt.Fprintln(os.Stdout, "Extracted AIs:")
		for _, line := range gs1encode.HRIText(ctx, titles) {
			fmt.Fprintln(os.Stdout, " ", line)
		}
	}

	return nil
}
