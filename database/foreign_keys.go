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
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// ErrForeignKeyUnsupported is returned by AddForeignKey on SQLite, which
// cannot add constraints to an existing table. Use ForeignKeyConstraint.Clause
// with CREATE TABLE instead.
var ErrForeignKeyUnsupported = errors.New("database: ALTER TABLE ADD CONSTRAINT is not supported by this dialect")

// ForeignKeyConstraint ties a column holding enum values to a lookup table.
type ForeignKeyConstraint struct {
	Table           string
	Column          string
	ReferenceTable  string
	ReferenceColumn string
	OnDelete        string // CASCADE, RESTRICT, SET NULL, NO ACTION
	OnUpdate        string // CASCADE, RESTRICT, SET NULL, NO ACTION
	ConstraintName  string
}

// ReferenceLookup returns a constraint from table.column to the value column
// of lt. Deleting a referenced member is restricted.
func ReferenceLookup(table, column string, lt LookupTable) ForeignKeyConstraint {
	return ForeignKeyConstraint{
		Table:           table,
		Column:          column,
		ReferenceTable:  lt.Table(),
		ReferenceColumn: "value",
		OnDelete:        "RESTRICT",
		OnUpdate:        "CASCADE",
	}
}

// GenerateConstraintName returns the explicit name or a derived name.
func (fk *ForeignKeyConstraint) GenerateConstraintName() string {
	if fk.ConstraintName != "" {
		return fk.ConstraintName
	}
	return fmt.Sprintf("fk_%s_%s", fk.Table, fk.Column)
}

// Clause returns the FOREIGN KEY clause usable inside CREATE TABLE.
func (fk *ForeignKeyConstraint) Clause() string {
	clause := fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)", fk.Column, fk.ReferenceTable, fk.ReferenceColumn)
	if fk.OnDelete != "" {
		clause += " ON DELETE " + fk.OnDelete
	}
	if fk.OnUpdate != "" {
		clause += " ON UPDATE " + fk.OnUpdate
	}
	return clause
}

// GenerateSQL returns the ALTER TABLE statement to add the constraint.
func (fk *ForeignKeyConstraint) GenerateSQL() string {
	return fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", fk.Table, fk.GenerateConstraintName(), fk.Clause())
}

// Validate checks the constraint for missing names and unknown actions.
func (fk *ForeignKeyConstraint) Validate() error {
	var errs []error
	if fk.Table == "" {
		errs = append(errs, fmt.Errorf("table name cannot be empty"))
	}
	if fk.Column == "" {
		errs = append(errs, fmt.Errorf("column name cannot be empty: %s", fk.Table))
	}
	if fk.ReferenceTable == "" {
		errs = append(errs, fmt.Errorf("reference table name cannot be empty: %s.%s", fk.Table, fk.Column))
	}
	if fk.ReferenceColumn == "" {
		errs = append(errs, fmt.Errorf("reference column name cannot be empty: %s.%s -> %s", fk.Table, fk.Column, fk.ReferenceTable))
	}
	for _, action := range []string{fk.OnDelete, fk.OnUpdate} {
		if action != "" && !validAction(action) {
			errs = append(errs, fmt.Errorf("invalid referential action: %s, constraint: %s", action, fk.GenerateConstraintName()))
		}
	}
	return errors.Join(errs...)
}

func validAction(action string) bool {
	for _, valid := range []string{"CASCADE", "RESTRICT", "SET NULL", "NO ACTION"} {
		if strings.EqualFold(action, valid) {
			return true
		}
	}
	return false
}

// AddForeignKey validates fk and adds it to an existing table.
func AddForeignKey(ctx context.Context, db bun.IDB, fk ForeignKeyConstraint) error {
	if err := fk.Validate(); err != nil {
		return err
	}
	if db.Dialect().Name() == dialect.SQLite {
		return ErrForeignKeyUnsupported
	}
	if _, err := db.ExecContext(ctx, fk.GenerateSQL()); err != nil {
		return fmt.Errorf("failed to add foreign key %s: %w", fk.GenerateConstraintName(), err)
	}
	GetLogger().Debug("Successfully added foreign key constraint", "constraint", fk.GenerateConstraintName())
	return nil
}
