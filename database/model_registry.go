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
	"fmt"
	"sort"
	"sync"
)

var defaultRegistry = NewLookupRegistry()

// LookupRegistry stores lookup tables and exposes them in a deterministic
// order.
type LookupRegistry interface {
	Register(table LookupTable) error
	Tables() []LookupTable
}

type lookupRegistry struct {
	tables []LookupTable
	names  map[string]struct{}
	mutex  sync.RWMutex
}

func NewLookupRegistry() LookupRegistry {
	return &lookupRegistry{
		tables: make([]LookupTable, 0),
		names:  make(map[string]struct{}),
	}
}

// Register adds table. Two enumerations cannot share a table name.
func (r *lookupRegistry) Register(table LookupTable) error {
	if table == nil || table.Table() == "" {
		return fmt.Errorf("lookup table must have a name")
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.names[table.Table()]; ok {
		return fmt.Errorf("lookup table %s already registered", table.Table())
	}
	r.names[table.Table()] = struct{}{}
	r.tables = append(r.tables, table)
	return nil
}

// Tables returns the registered tables sorted by ascending priority, keeping
// registration order between equal priorities.
func (r *lookupRegistry) Tables() []LookupTable {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]LookupTable, len(r.tables))
	copy(result, r.tables)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority() < result[j].Priority()
	})
	return result
}

// RegisterLookupTable adds a table to the default registry. It panics on a
// duplicate name, which makes it suitable for init blocks.
func RegisterLookupTable(table LookupTable) {
	if err := defaultRegistry.Register(table); err != nil {
		panic(err)
	}
}

// GetLookupTables returns all tables in the default registry sorted by
// ascending priority.
func GetLookupTables() []LookupTable {
	return defaultRegistry.Tables()
}
