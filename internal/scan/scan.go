// Package scan maps database/sql result rows onto Go values.
//
// Structs are matched column-by-column using `db` tags (falling back to the
// field name), with nested and embedded structs flattened. Non-struct types
// and sql.Scanner implementations require a single-column result set.
// Columns with no matching field are discarded.
package scan

import (
	"database/sql"
	"fmt"
	"reflect"
	"sync"
)

var scannerIface = reflect.TypeOf((*sql.Scanner)(nil)).Elem()

// fieldInfo describes a mapped leaf field.
type fieldInfo struct {
	index     []int
	ambiguous bool
}

var fieldMapCache sync.Map // reflect.Type -> map[string]fieldInfo

// All materializes every remaining row of the current result set into a
// slice of T. It never returns a lazy view; the rows are fully consumed.
//
// The caller retains ownership of rows and is responsible for closing them.
func All[T any](rows *sql.Rows) ([]T, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	t := reflect.TypeFor[T]()
	if isStructTarget(t) {
		return allStructs[T](rows, cols, t)
	}

	return allScalars[T](rows, cols)
}

// allScalars scans a single-column result set into primitives or Scanner
// implementations.
func allScalars[T any](rows *sql.Rows, cols []string) ([]T, error) {
	if len(cols) != 1 {
		return nil, fmt.Errorf("scan: non-struct target requires 1 column, got %d", len(cols))
	}

	out := []T{}
	for rows.Next() {
		var v T
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

// allStructs scans each row into a freshly allocated T using the cached
// column-to-field mapping.
func allStructs[T any](rows *sql.Rows, cols []string, t reflect.Type) ([]T, error) {
	fields := fieldIndexMap(t)

	paths := make([][]int, len(cols))
	for i, col := range cols {
		fi, ok := fields[col]
		if !ok {
			continue // unmapped column, sink it
		}
		if fi.ambiguous {
			return nil, fmt.Errorf("scan: ambiguous column %q for type %s", col, t)
		}
		paths[i] = fi.index
	}

	out := []T{}
	targets := make([]any, len(cols))

	for rows.Next() {
		var v T
		dst := reflect.ValueOf(&v).Elem()

		for i := range cols {
			if paths[i] == nil {
				targets[i] = new(any)
				continue
			}
			targets[i] = fieldByIndexAlloc(dst, paths[i]).Addr().Interface()
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

// isStructTarget reports whether t should be scanned field-by-field rather
// than as a single column value.
func isStructTarget(t reflect.Type) bool {
	if reflect.PointerTo(t).Implements(scannerIface) || t.Implements(scannerIface) {
		return false
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	// time.Time is a leaf value despite being a struct.
	if t.PkgPath() == "time" && t.Name() == "Time" {
		return false
	}

	return true
}

// fieldIndexMap returns the column-name to field-path mapping for t,
// flattening nested and embedded structs. Results are cached per type.
func fieldIndexMap(t reflect.Type) map[string]fieldInfo {
	if m, ok := fieldMapCache.Load(t); ok {
		return m.(map[string]fieldInfo)
	}

	m := make(map[string]fieldInfo, t.NumField())
	visited := map[reflect.Type]bool{}

	var walk func(rt reflect.Type, path []int)
	walk = func(rt reflect.Type, path []int) {
		for rt.Kind() == reflect.Pointer {
			rt = rt.Elem()
		}
		if rt.Kind() != reflect.Struct || visited[rt] {
			return
		}
		visited[rt] = true
		defer delete(visited, rt)

		for i := range rt.NumField() {
			f := rt.Field(i)
			if f.PkgPath != "" { // unexported
				continue
			}

			tag := f.Tag.Get("db")
			if tag == "-" {
				continue
			}
			name := f.Name
			if tag != "" {
				name = tag
			}

			if shouldFlatten(f.Type) {
				walk(f.Type, appendIndex(path, i))
				continue
			}

			if prev, exists := m[name]; exists {
				if !prev.ambiguous {
					m[name] = fieldInfo{ambiguous: true}
				}
				continue
			}
			m[name] = fieldInfo{index: appendIndex(path, i)}
		}
	}

	walk(t, nil)
	fieldMapCache.Store(t, m)

	return m
}

// shouldFlatten decides whether to descend into ft (struct or *struct).
func shouldFlatten(ft reflect.Type) bool {
	if reflect.PointerTo(ft).Implements(scannerIface) || ft.Implements(scannerIface) {
		return false
	}
	tt := ft
	if tt.Kind() == reflect.Pointer {
		tt = tt.Elem()
	}
	if tt.Kind() != reflect.Struct {
		return false
	}
	if tt.PkgPath() == "time" && tt.Name() == "Time" {
		return false
	}

	return true
}

// fieldByIndexAlloc walks a struct by index path, allocating intermediate
// nil pointer nodes on the way.
func fieldByIndexAlloc(root reflect.Value, path []int) reflect.Value {
	v := root
	for i, idx := range path {
		f := v.Field(idx)
		if i == len(path)-1 {
			return f
		}
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				f.Set(reflect.New(f.Type().Elem()))
			}
			v = f.Elem()
		} else {
			v = f
		}
	}

	return v
}

// appendIndex returns a new index path with idx appended.
func appendIndex(path []int, idx int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = idx

	return out
}
