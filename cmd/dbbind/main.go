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
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cectc/dbbind/pkg/config"
	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/dbapi"
	"github.com/cectc/dbbind/pkg/log"
	"github.com/cectc/dbbind/pkg/protocol/sqlbridge"
)

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	Version = "0.1.0"

	configPath string
	sourceName string
	arraySize  int

	rootCommand = &cobra.Command{
		Use:          "dbbind",
		Short:        "dbbind runs statements through the typed binding engine",
		Version:      Version,
		SilenceUsage: true,
	}
)

func init() {
	rootCommand.PersistentFlags().StringVarP(&configPath, constant.ConfigPathKey, "c", os.Getenv(constant.EnvDBBindConfig), "Load configuration from `FILE`")
	rootCommand.PersistentFlags().StringVarP(&sourceName, "source", "s", "", "data source `NAME`, optional with a single data source")
	rootCommand.PersistentFlags().IntVar(&arraySize, "arraysize", 0, "rows fetched per round trip, overrides the configured cursor arraysize")
	rootCommand.AddCommand(queryCommand, execCommand, configCommand, typesCommand)
}

// signalContext is canceled by the first interrupt, the second one exits.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
			signal.Stop(c)
			return
		}
		<-c
		os.Exit(1) // second signal. Exit directly.
	}()
	return ctx, cancel
}

func loadConfig() (*config.Configuration, error) {
	if configPath == "" {
		return nil, errors.Errorf("no configuration given, use --%s or %s", constant.ConfigPathKey, constant.EnvDBBindConfig)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log.Init(cfg.Log)
	return cfg, nil
}

// connect opens the selected data source and applies the cursor defaults.
func connect(ctx context.Context) (*dbapi.Connection, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	ds, err := cfg.DataSource(sourceName)
	if err != nil {
		return nil, err
	}
	cursorDefaults := *cfg.Cursor
	if arraySize > 0 {
		cursorDefaults.ArraySize = arraySize
	}
	conn, err := dbapi.Connect(ctx, sqlbridge.NewFromDataSource(ds), ds.DSN,
		dbapi.WithAutoCommit(ds.AutoCommit),
		dbapi.WithCursorDefaults(cursorDefaults))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to connect data source: %s", ds.Name)
	}
	return conn, nil
}

func closeConnection(ctx context.Context, conn *dbapi.Connection) {
	if err := conn.Close(ctx); err != nil {
		log.Warnf("close connection: %v", err)
	}
	// syncing a console logger fails on some platforms
	_ = log.Sync()
}
