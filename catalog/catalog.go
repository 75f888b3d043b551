// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package catalog supplies the types of database tables as record types.
//
// A table `users (id INT, name TEXT NOT NULL)` is typed `[{id Int32, name Utf8 not null}]`.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qslang/qcheck/types"
)

// Column as reported by a database.
type Column struct {
	Name     string
	DeclType string
	NotNull  bool
}

// Dialect queries a database for its tables and their columns.
type Dialect interface {
	Name() string
	Tables(ctx context.Context, db *sql.DB) ([]string, error)
	Columns(ctx context.Context, db *sql.DB, table string) ([]Column, error)
}

// Catalog reads table types from a database.
type Catalog struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

// Open a database and select the dialect for its driver: "sqlite" or "postgres".
func Open(driver, dsn string) (*Catalog, error) {
	var dialect Dialect
	switch driver {
	case "sqlite":
		dialect = SQLite{}
	case "postgres":
		dialect = Postgres{Schema: "public"}
	default:
		return nil, errors.New("Unsupported driver " + driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return New(db, dialect), nil
}

func New(db *sql.DB, dialect Dialect) *Catalog {
	return &Catalog{db: db, dialect: dialect, logger: slog.New(slog.DiscardHandler)}
}

// WithLogger sets the logger which receives debug records for loaded tables.
func (c *Catalog) WithLogger(logger *slog.Logger) *Catalog {
	c.logger = logger
	return c
}

func (c *Catalog) DB() *sql.DB { return c.db }

func (c *Catalog) Close() error { return c.db.Close() }

// Tables returns the names of the tables in the database.
func (c *Catalog) Tables(ctx context.Context) ([]string, error) {
	names, err := c.dialect.Tables(ctx, c.db)
	if err != nil {
		return nil, fmt.Errorf("%s: list tables: %w", c.dialect.Name(), err)
	}
	return names, nil
}

// TableType returns the type of a table's rows, as a list of records. Columns are nullable unless
// declared NOT NULL.
func (c *Catalog) TableType(ctx context.Context, table string) (*types.List, error) {
	cols, err := c.dialect.Columns(ctx, c.db, table)
	if err != nil {
		return nil, fmt.Errorf("%s: columns of %s: %w", c.dialect.Name(), table, err)
	}
	if len(cols) == 0 {
		return nil, errors.New("No such table " + table)
	}
	fields := make([]types.Field, len(cols))
	for i, col := range cols {
		kind, ok := AtomForSQLType(col.DeclType)
		if !ok {
			return nil, errors.New("Unsupported type " + col.DeclType + " for column " + table + "." + col.Name)
		}
		fields[i] = types.Field{Name: col.Name, Type: types.NewAtom(kind), Nullable: !col.NotNull}
	}
	row, err := types.NewRecord(fields...)
	if err != nil {
		return nil, err
	}
	t := types.NewList(row)
	c.logger.Debug("loaded table", "dialect", c.dialect.Name(), "table", table, "type", types.TypeString(t))
	return t, nil
}

// Load the types of the named tables, or of every table when no names are given. The result may be
// passed to qcheck.Checker.CheckUnit as externs.
func (c *Catalog) Load(ctx context.Context, names ...string) (map[string]types.Type, error) {
	if len(names) == 0 {
		var err error
		if names, err = c.Tables(ctx); err != nil {
			return nil, err
		}
	}
	externs := make(map[string]types.Type, len(names))
	for _, name := range names {
		t, err := c.TableType(ctx, name)
		if err != nil {
			return nil, err
		}
		externs[name] = t
	}
	return externs, nil
}

func queryStrings(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
