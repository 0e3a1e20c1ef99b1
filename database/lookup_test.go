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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/tomoncle/smartenum/enum"
	"github.com/tomoncle/smartenum/types"
)

type orderStatus struct {
	enum.Base
}

var (
	orderPending  = &orderStatus{enum.New(1, "Pending")}
	orderShipped  = &orderStatus{enum.New(2, "Shipped")}
	orderCanceled = &orderStatus{enum.New(3, "Canceled")}
)

var orderStatuses = enum.Declare(func() []*orderStatus {
	return []*orderStatus{orderPending, orderShipped, orderCanceled}
})

func (*orderStatus) Enumeration() *enum.Registry[*orderStatus] { return orderStatuses }

type order struct {
	bun.BaseModel `bun:"table:orders"`

	ID     int64                         `bun:"id,pk,autoincrement"`
	Status types.EnumValue[*orderStatus] `bun:"status,type:integer"`
}

func openTestDB(t *testing.T) *bun.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Open(context.Background(), &ConnectionConfig{
		Type:         "sqlite",
		DBName:       fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSyncLookupTable(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	lt := NewLookupTable("order_status", orderStatuses, 0)

	drift, err := VerifyLookupTable(ctx, db, lt)
	require.NoError(t, err)
	require.Len(t, drift, 3)
	for _, d := range drift {
		assert.Equal(t, DriftMissing, d.Kind)
	}

	require.NoError(t, SyncLookupTable(ctx, db, lt, false))
	require.NoError(t, SyncLookupTable(ctx, db, lt, false), "sync must be idempotent")

	var rows []LookupRow
	require.NoError(t, db.NewRaw("SELECT value, name FROM order_status ORDER BY value").Scan(ctx, &rows))
	assert.Equal(t, []LookupRow{
		{Value: 1, Name: "Pending"},
		{Value: 2, Name: "Shipped"},
		{Value: 3, Name: "Canceled"},
	}, rows)

	drift, err = VerifyLookupTable(ctx, db, lt)
	require.NoError(t, err)
	assert.Empty(t, drift)
}

func TestVerifyAndPrune(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	lt := NewLookupTable("order_status", orderStatuses, 0)
	require.NoError(t, SyncLookupTable(ctx, db, lt, false))

	_, err := db.ExecContext(ctx, "UPDATE order_status SET name = 'Sent' WHERE value = 2")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO order_status (value, name) VALUES (9, 'Lost')")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "DELETE FROM order_status WHERE value = 3")
	require.NoError(t, err)

	drift, err := VerifyLookupTable(ctx, db, lt)
	require.NoError(t, err)
	assert.Equal(t, []Drift{
		{Kind: DriftRenamed, Value: 2, Name: "Shipped", StoredName: "Sent"},
		{Kind: DriftMissing, Value: 3, Name: "Canceled"},
		{Kind: DriftUnknown, Value: 9, StoredName: "Lost"},
	}, drift)
	assert.Equal(t, `renamed: 2 "Shipped" stored as "Sent"`, drift[0].String())

	require.NoError(t, SyncLookupTable(ctx, db, lt, false))
	drift, err = VerifyLookupTable(ctx, db, lt)
	require.NoError(t, err)
	assert.Equal(t, []Drift{{Kind: DriftUnknown, Value: 9, StoredName: "Lost"}}, drift)

	require.NoError(t, SyncLookupTable(ctx, db, lt, true))
	drift, err = VerifyLookupTable(ctx, db, lt)
	require.NoError(t, err)
	assert.Empty(t, drift)
}

type brokenKind struct {
	enum.Base
}

func TestSyncMalformedEnumeration(t *testing.T) {
	broken := enum.Declare(func() []*brokenKind {
		return []*brokenKind{{enum.New(1, "A")}, {enum.New(1, "B")}}
	})
	db := openTestDB(t)

	err := SyncLookupTable(context.Background(), db, NewLookupTable("broken", broken, 0), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, enum.ErrMalformed)
}

func TestEnumColumnRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.NewCreateTable().Model((*order)(nil)).Exec(ctx)
	require.NoError(t, err)

	orders := []*order{
		{Status: types.ValueOf(orderShipped)},
		{},
	}
	_, err = db.NewInsert().Model(&orders).Exec(ctx)
	require.NoError(t, err)

	var got []order
	require.NoError(t, db.NewSelect().Model(&got).Order("id").Scan(ctx))
	require.Len(t, got, 2)
	assert.True(t, got[0].Status.Valid)
	assert.Same(t, orderShipped, got[0].Status.Member)
	assert.False(t, got[1].Status.Valid)
}

func TestForeignKeyToLookupTable(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	lt := NewLookupTable("order_status", orderStatuses, 0)
	require.NoError(t, SyncLookupTable(ctx, db, lt, false))

	_, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	fk := ReferenceLookup("shipments", "status", lt)
	require.NoError(t, fk.Validate())
	_, err = db.ExecContext(ctx, "CREATE TABLE shipments (id INTEGER PRIMARY KEY, status INTEGER NOT NULL, "+fk.Clause()+")")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO shipments (id, status) VALUES (1, 2)")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO shipments (id, status) VALUES (2, 42)")
	require.Error(t, err)
	is, kind := IsSqlError(err)
	assert.True(t, is)
	assert.Equal(t, ForeignKeyViolationErr, kind)

	assert.ErrorIs(t, AddForeignKey(ctx, db, fk), ErrForeignKeyUnsupported)
}
