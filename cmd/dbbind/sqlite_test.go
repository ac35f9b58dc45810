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

//go:build cgo

package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "fruit.db")
	path := writeFile(t, "dbbind.yaml", fmt.Sprintf("data_sources:\n  - name: local\n    backend: sqlite\n    dsn: %s\n", db))

	out, err := run(t, "exec", "-c", path, "CREATE TABLE fruit (id INTEGER PRIMARY KEY, name TEXT)")
	require.NoError(t, err)
	assert.Equal(t, "0 row(s) affected\n", out)

	rows := writeFile(t, "fruit.csv", "1,apple\n2,\\N\n")
	out, err = run(t, "exec", "-c", path, "--many", rows, "INSERT INTO fruit (id, name) VALUES (?, ?)")
	require.NoError(t, err)
	assert.Equal(t, "2 row(s) affected\n", out)

	out, err = run(t, "exec", "-c", path, "UPDATE fruit SET name = ? WHERE id = ?", "pear", "2")
	require.NoError(t, err)
	assert.Equal(t, "1 row(s) affected\n", out)

	out, err = run(t, "query", "-c", path, "--arraysize", "1", "SELECT id, name FROM fruit ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, "id  name\n1   apple\n2   pear\n(2 row(s))\n", out)

	_, err = run(t, "query", "-c", path, "DELETE FROM fruit")
	assert.EqualError(t, err, "statement returned no result set, use exec")
}
