// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpmech/gosl/chk"
	_ "modernc.org/sqlite"
)

// schema of the history of runs
const schema = `CREATE TABLE IF NOT EXISTS runs (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  created_at  INTEGER NOT NULL,
  key         TEXT    NOT NULL,
  problem     TEXT    NOT NULL,
  formulation TEXT    NOT NULL,
  num_dofs    INTEGER NOT NULL,
  converged   INTEGER NOT NULL,
  err_l2      REAL,
  summary     TEXT    NOT NULL
)`

// Run holds one record of the history
type Run struct {
	Id      int64    // record id
	Summary *Summary // summary of run
}

// Store keeps the history of runs in a SQLite database
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a store
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, chk.Err("path of store is required")
	}
	db, err := sql.Open("sqlite", filepath.Clean(path)+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, chk.Err("cannot open store %q:\n%v", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, chk.Err("cannot connect to store %q:\n%v", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, chk.Err("cannot create tables of store %q:\n%v", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the store
func (o *Store) Close() error {
	if o == nil || o.db == nil {
		return nil
	}
	return o.db.Close()
}

// Save inserts a summary and returns the id of the record
func (o *Store) Save(ctx context.Context, sum *Summary) (id int64, err error) {
	if sum == nil {
		return 0, chk.Err("summary is required")
	}
	if sum.Created.IsZero() {
		sum.Created = time.Now().UTC()
	}
	b, err := json.Marshal(sum)
	if err != nil {
		return 0, chk.Err("cannot encode summary:\n%v", err)
	}
	var l2 sql.NullFloat64
	if v, ok := sum.Errors["err_l2"]; ok {
		l2 = sql.NullFloat64{Float64: v, Valid: true}
	}
	res, err := o.db.ExecContext(ctx,
		`INSERT INTO runs (created_at, key, problem, formulation, num_dofs, converged, err_l2, summary)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.Created.UTC().UnixMilli(), sum.Key, sum.Problem, sum.Formulation, sum.NumDofs, sum.Converged, l2, string(b))
	if err != nil {
		return 0, chk.Err("cannot save run:\n%v", err)
	}
	return res.LastInsertId()
}

// List returns all runs, the most recent first
func (o *Store) List(ctx context.Context) (runs []*Run, err error) {
	rows, err := o.db.QueryContext(ctx, `SELECT id, summary FROM runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, chk.Err("cannot list runs:\n%v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var text string
		if err = rows.Scan(&id, &text); err != nil {
			return nil, chk.Err("cannot read run:\n%v", err)
		}
		sum := new(Summary)
		if err = json.Unmarshal([]byte(text), sum); err != nil {
			return nil, chk.Err("cannot decode summary of run %d:\n%v", id, err)
		}
		runs = append(runs, &Run{Id: id, Summary: sum})
	}
	if err = rows.Err(); err != nil {
		return nil, chk.Err("cannot list runs:\n%v", err)
	}
	return
}
