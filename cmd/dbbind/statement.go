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
	"context"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cectc/dbbind/pkg/dbapi"
)

// nullArg is the argument spelling of SQL NULL.
const nullArg = `\N`

var (
	manyPath string

	queryCommand = &cobra.Command{
		Use:   "query SQL [ARG...]",
		Short: "run a query and print its rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			conn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConnection(ctx, conn)

			cursor, err := conn.Cursor()
			if err != nil {
				return err
			}
			defer cursor.Close()
			if err := cursor.Execute(ctx, args[0], parseArgs(args[1:])...); err != nil {
				return err
			}
			columns, err := cursor.Description()
			if err != nil {
				return err
			}
			if columns == nil {
				return errors.New("statement returned no result set, use exec")
			}
			return printRows(ctx, cmd.OutOrStdout(), columns, cursor)
		},
	}

	execCommand = &cobra.Command{
		Use:   "exec SQL [ARG...]",
		Short: "run a statement and print the affected row count",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			conn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConnection(ctx, conn)

			cursor, err := conn.Cursor()
			if err != nil {
				return err
			}
			defer cursor.Close()
			if manyPath != "" {
				if len(args) > 1 {
					return errors.New("arguments come from the --many file")
				}
				f, err := os.Open(manyPath)
				if err != nil {
					return errors.WithStack(err)
				}
				defer f.Close()
				rows, err := readRows(f)
				if err != nil {
					return errors.Wrapf(err, "read %s failed", manyPath)
				}
				err = cursor.ExecuteMany(ctx, args[0], rows)
				if err != nil {
					return err
				}
			} else if err := cursor.Execute(ctx, args[0], parseArgs(args[1:])...); err != nil {
				return err
			}
			if !conn.AutoCommit() {
				if err := conn.Commit(ctx); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d row(s) affected\n", cursor.RowCount())
			return nil
		},
	}
)

func init() {
	execCommand.Flags().StringVar(&manyPath, "many", "", "run once per line of the comma separated `FILE`")
}

func parseArgs(args []string) []interface{} {
	values := make([]interface{}, len(args))
	for i, arg := range args {
		if arg != nullArg {
			values[i] = arg
		}
	}
	return values
}

// readRows reads one parameter row per CSV record.
func readRows(r io.Reader) ([][]interface{}, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0
	reader.TrimLeadingSpace = true
	var rows [][]interface{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, parseArgs(record))
	}
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return "0x" + hex.EncodeToString(v)
	case decimal.Decimal:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339Nano)
	}
	return fmt.Sprint(v)
}

func printRows(ctx context.Context, w io.Writer, columns []dbapi.Column, cursor *dbapi.Cursor) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = column.Name
	}
	fmt.Fprintln(tw, strings.Join(names, "\t"))
	count := 0
	for row, err := range cursor.Rows(ctx) {
		if err != nil {
			return err
		}
		values := row.([]interface{})
		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = formatValue(v)
		}
		fmt.Fprintln(tw, strings.Join(fields, "\t"))
		count++
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintf(w, "(%d row(s))\n", count)
	return nil
}
