/*
 * Copyright 2025 tomoncle.
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

package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"

	"github.com/tomoncle/smartenum/enum"
)

// LookupRow is one member as stored in a lookup table.
type LookupRow struct {
	bun.BaseModel `bun:"table:enum_lookup"`

	Value int    `bun:"value,pk" json:"value"`
	Name  string `bun:"name,type:varchar(255),notnull" json:"name"`
}

// LookupTable is an enumeration that can be mirrored into a table. Priority
// orders syncing (lower values first).
type LookupTable interface {
	Table() string
	Priority() int
	Rows() []LookupRow
}

type registryTable[T enum.Member] struct {
	table    string
	priority int
	registry *enum.Registry[T]
}

// NewLookupTable mirrors the members of reg into table.
func NewLookupTable[T enum.Member](table string, reg *enum.Registry[T], priority int) LookupTable {
	return &registryTable[T]{table: table, priority: priority, registry: reg}
}

func (t *registryTable[T]) Table() string { return t.table }

func (t *registryTable[T]) Priority() int { return t.priority }

func (t *registryTable[T]) Rows() []LookupRow {
	members := t.registry.Members()
	rows := make([]LookupRow, len(members))
	for i, m := range members {
		rows[i] = LookupRow{Value: m.Value(), Name: m.Name()}
	}
	return rows
}

// EnsureLookupTable creates the lookup table if it does not exist.
func EnsureLookupTable(ctx context.Context, db bun.IDB, lt LookupTable) error {
	_, err := db.NewCreateTable().
		Model((*LookupRow)(nil)).
		ModelTableExpr("?", bun.Ident(lt.Table())).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create lookup table %s: %w", lt.Table(), err)
	}
	return nil
}

// SyncLookupTable creates the table if needed and upserts every declared
// member. With prune, rows whose value is not declared are deleted.
func SyncLookupTable(ctx context.Context, db bun.IDB, lt LookupTable, prune bool) error {
	rows, err := lookupRows(lt)
	if err != nil {
		return err
	}
	if err := EnsureLookupTable(ctx, db, lt); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err := upsertRows(ctx, db, lt.Table(), rows); err != nil {
			return fmt.Errorf("failed to upsert lookup table %s: %w", lt.Table(), err)
		}
	}

	if prune {
		q := db.NewDelete().
			Model((*LookupRow)(nil)).
			ModelTableExpr("?", bun.Ident(lt.Table()))
		if len(rows) > 0 {
			values := make([]int, len(rows))
			for i, r := range rows {
				values[i] = r.Value
			}
			q = q.Where("? NOT IN (?)", bun.Ident("value"), bun.In(values))
		} else {
			q = q.Where("? IS NOT NULL", bun.Ident("value"))
		}
		res, err := q.Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to prune lookup table %s: %w", lt.Table(), err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			GetLogger().Warn("Pruned undeclared lookup rows", "table", lt.Table(), "rows", n)
		}
	}

	GetLogger().Debug("Lookup table synced", "table", lt.Table(), "members", len(rows))
	return nil
}

// SyncLookupTables syncs tables in priority order and stops at the first
// failure.
func SyncLookupTables(ctx context.Context, db bun.IDB, tables []LookupTable, prune bool) error {
	for _, lt := range tables {
		if err := SyncLookupTable(ctx, db, lt, prune); err != nil {
			return err
		}
	}
	return nil
}

// lookupRows surfaces a malformed enumeration as an error instead of a panic.
func lookupRows(lt LookupTable) (rows []LookupRow, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("lookup table %s: %w", lt.Table(), e)
				return
			}
			panic(r)
		}
	}()
	return lt.Rows(), nil
}

func upsertRows(ctx context.Context, db bun.IDB, table string, rows []LookupRow) error {
	features := db.Dialect().Features()
	q := db.NewInsert().Model(&rows).ModelTableExpr("?", bun.Ident(table))
	switch {
	case features.Has(feature.InsertOnConflict):
		q = q.On("CONFLICT (?) DO UPDATE", bun.Ident("value")).
			Set("? = EXCLUDED.?", bun.Ident("name"), bun.Ident("name"))
	case features.Has(feature.InsertOnDuplicateKey):
		q = q.On("DUPLICATE KEY UPDATE ? = VALUES(?)", bun.Ident("name"), bun.Ident("name"))
	default:
		return upsertFallback(ctx, db, table, rows)
	}
	_, err := q.Exec(ctx)
	return err
}

func upsertFallback(ctx context.Context, db bun.IDB, table string, rows []LookupRow) error {
	for i := range rows {
		row := &rows[i]
		_, err := db.NewInsert().Model(row).ModelTableExpr("?", bun.Ident(table)).Exec(ctx)
		if err == nil {
			continue
		}
		_, updateErr := db.NewUpdate().
			Model(row).
			ModelTableExpr("?", bun.Ident(table)).
			Set("? = ?", bun.Ident("name"), row.Name).
			Where("? = ?", bun.Ident("value"), row.Value).
			Exec(ctx)
		if updateErr != nil {
			return fmt.Errorf("upsert failed for value %d: insert error: %v, update error: %v", row.Value, err, updateErr)
		}
	}
	return nil
}

type DriftKind int

const (
	// DriftMissing: declared in code, absent from the table.
	DriftMissing DriftKind = iota
	// DriftRenamed: same value, different name.
	DriftRenamed
	// DriftUnknown: stored in the table, not declared in code.
	DriftUnknown
)

func (k DriftKind) String() string {
	switch k {
	case DriftMissing:
		return "missing"
	case DriftRenamed:
		return "renamed"
	case DriftUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("DriftKind(%d)", int(k))
	}
}

// Drift is one difference between declared members and stored rows.
type Drift struct {
	Kind       DriftKind
	Value      int
	Name       string
	StoredName string
}

func (d Drift) String() string {
	switch d.Kind {
	case DriftRenamed:
		return fmt.Sprintf("%s: %d %q stored as %q", d.Kind, d.Value, d.Name, d.StoredName)
	case DriftUnknown:
		return fmt.Sprintf("%s: %d %q", d.Kind, d.Value, d.StoredName)
	default:
		return fmt.Sprintf("%s: %d %q", d.Kind, d.Value, d.Name)
	}
}

// VerifyLookupTable compares the stored rows with the declared members. A
// table that does not exist reports every member as missing.
func VerifyLookupTable(ctx context.Context, db bun.IDB, lt LookupTable) ([]Drift, error) {
	declared, err := lookupRows(lt)
	if err != nil {
		return nil, err
	}

	var stored []LookupRow
	err = db.NewRaw("SELECT ?, ? FROM ? ORDER BY ?",
		bun.Ident("value"), bun.Ident("name"), bun.Ident(lt.Table()), bun.Ident("value")).
		Scan(ctx, &stored)
	if err != nil {
		if is, kind := IsSqlError(err); !is || kind != NoTableErr {
			return nil, fmt.Errorf("failed to read lookup table %s: %w", lt.Table(), err)
		}
		stored = nil
	}

	byValue := make(map[int]string, len(stored))
	for _, r := range stored {
		byValue[r.Value] = r.Name
	}

	var drift []Drift
	seen := make(map[int]bool, len(declared))
	for _, r := range declared {
		seen[r.Value] = true
		name, ok := byValue[r.Value]
		switch {
		case !ok:
			drift = append(drift, Drift{Kind: DriftMissing, Value: r.Value, Name: r.Name})
		case name != r.Name:
			drift = append(drift, Drift{Kind: DriftRenamed, Value: r.Value, Name: r.Name, StoredName: name})
		}
	}
	for _, r := range stored {
		if !seen[r.Value] {
			drift = append(drift, Drift{Kind: DriftUnknown, Value: r.Value, StoredName: r.Name})
		}
	}
	return drift, nil
}
