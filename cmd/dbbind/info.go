/*
 * Copyright 2022 CECTC, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cectc/dbbind/pkg/config"
	"github.com/cectc/dbbind/pkg/types"
)

var (
	wideStrings bool

	configCommand = &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			content, err := config.Dump(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return errors.WithStack(err)
		},
	}

	typesCommand = &cobra.Command{
		Use:   "types",
		Short: "list the supported variable types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []types.Option
			if wideStrings {
				opts = append(opts, types.WithWideStrings())
			}
			registry := types.NewRegistry(opts...)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tSQL TYPE\tC TYPE\tELEMENT SIZE\tDEFAULT SIZE\tDEFAULT SCALE")
			for _, d := range registry.Descriptors() {
				elementSize := "variable"
				if !d.VariableWidth() {
					elementSize = fmt.Sprint(d.ElementSize)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\n", d.Kind, d.SQLType, d.CType, elementSize, d.DefaultSize, d.DefaultScale)
			}
			fmt.Fprintf(tw, "default for text values: %s\n", registry.Default().Kind)
			return errors.WithStack(tw.Flush())
		},
	}
)

func init() {
	typesCommand.Flags().BoolVar(&wideStrings, "wide", false, "bind text as wide characters")
}
