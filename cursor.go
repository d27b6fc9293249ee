package funkydapper

import (
	"database/sql"
	"fmt"

	"github.com/rahicks26/FunkyDapper/internal/scan"
	"github.com/rahicks26/FunkyDapper/types"
)

// Cursor is a forward-only handle over the pending result sets of a single
// dispatched statement.
//
// A cursor is owned by the QueryMultiple call that created it and must be
// fully consumed within the decode function; it is released before
// QueryMultiple returns. Reading from a released cursor fails with
// types.ErrCursorClosed rather than silently returning data.
type Cursor struct {
	rows   *sql.Rows
	closed bool
	read   int
}

// Close releases the cursor and the driver resources behind it. It is safe
// to call Close multiple times; subsequent calls are no-ops.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	return c.rows.Close()
}

// readSet eagerly materializes the current result set into a slice of T and
// positions the cursor on the next one.
func readSet[T any](c *Cursor) ([]T, error) {
	if c.closed {
		return nil, types.ErrCursorClosed
	}

	if c.read > 0 {
		if !c.rows.NextResultSet() {
			if err := c.rows.Err(); err != nil {
				return nil, err
			}

			return nil, fmt.Errorf("funkydapper: result set %d is missing", c.read+1)
		}
	}

	out, err := scan.All[T](c.rows)
	if err != nil {
		return nil, err
	}
	c.read++

	return out, nil
}

// ReadPair decodes exactly two result sets from the cursor, in the order the
// driver returns them, and releases the cursor before returning.
//
// Each result set is eagerly materialized; the returned slices are finite
// and independent of the cursor. On any fault, including a fault while
// reading the second set, the cursor is still released.
//
// Returns:
//   - []T1: Every row of the first result set
//   - []T2: Every row of the second result set
//   - error: Driver or mapping fault, or a missing-result-set error
func ReadPair[T1, T2 any](c *Cursor) ([]T1, []T2, error) {
	first, err := readSet[T1](c)
	if err != nil {
		c.Close()
		return nil, nil, err
	}

	second, err := readSet[T2](c)
	if err != nil {
		c.Close()
		return nil, nil, err
	}

	if err := c.Close(); err != nil {
		return nil, nil, err
	}

	return first, second, nil
}

// ReadTriple decodes exactly three result sets from the cursor, in declared
// order, and releases the cursor before returning. Semantics match ReadPair.
func ReadTriple[T1, T2, T3 any](c *Cursor) ([]T1, []T2, []T3, error) {
	first, err := readSet[T1](c)
	if err != nil {
		c.Close()
		return nil, nil, nil, err
	}

	second, err := readSet[T2](c)
	if err != nil {
		c.Close()
		return nil, nil, nil, err
	}

	third, err := readSet[T3](c)
	if err != nil {
		c.Close()
		return nil, nil, nil, err
	}

	if err := c.Close(); err != nil {
		return nil, nil, nil, err
	}

	return first, second, third, nil
}

// ReadQuad decodes exactly four result sets from the cursor, in declared
// order, and releases the cursor before returning. Semantics match ReadPair.
//
// There is no single- or five-plus-result variant; callers needing other
// arities must extend this enumeration.
func ReadQuad[T1, T2, T3, T4 any](c *Cursor) ([]T1, []T2, []T3, []T4, error) {
	first, err := readSet[T1](c)
	if err != nil {
		c.Close()
		return nil, nil, nil, nil, err
	}

	second, err := readSet[T2](c)
	if err != nil {
		c.Close()
		return nil, nil, nil, nil, err
	}

	third, err := readSet[T3](c)
	if err != nil {
		c.Close()
		return nil, nil, nil, nil, err
	}

	fourth, err := readSet[T4](c)
	if err != nil {
		c.Close()
		return nil, nil, nil, nil, err
	}

	if err := c.Close(); err != nil {
		return nil, nil, nil, nil, err
	}

	return first, second, third, fourth, nil
}
