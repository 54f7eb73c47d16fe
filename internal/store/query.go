// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
)

// filterColumn binds a resource filter to a column and the parser of its
// value. A nil parse keeps the value as is.
type filterColumn struct {
	column string
	parse  func(v any) (any, error)
}

// table describes how a resource maps onto a table.
type table struct {
	name     string
	columns  []string
	filters  map[string]filterColumn
	ordering map[string]string
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// parseID converts a key sent by a client into an int64 column value.
func parseID(v any) (any, error) {
	switch id := v.(type) {
	case int64:
		return id, nil
	case int:
		return int64(id), nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", resource.ErrInvalidFilterValue, id)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("%w: unsupported key type %T", resource.ErrInvalidFilterValue, v)
	}
}

// parseIDs converts every key, failing on the first invalid one.
func parseIDs(pks []string) ([]int64, error) {
	ids := make([]int64, 0, len(pks))
	for _, pk := range pks {
		id, err := parseID(pk)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id.(int64))
	}
	return ids, nil
}

// selectAll starts a SELECT of every mapped column.
func (t table) selectAll(b squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return b.Select(t.columns...).From(t.name)
}

// where applies resource filters as equality conditions.
func (t table) where(sb squirrel.SelectBuilder, filters resource.Filters) (squirrel.SelectBuilder, error) {
	if len(filters) == 0 {
		return sb, nil
	}

	eq := squirrel.Eq{}
	for name, value := range filters {
		fc, ok := t.filters[name]
		if !ok {
			return sb, fmt.Errorf("%w: unknown filter %q on %s", ErrBuildingSQLQuery, name, t.name)
		}
		if fc.parse != nil {
			parsed, err := fc.parse(value)
			if err != nil {
				return sb, err
			}
			value = parsed
		}
		eq[fc.column] = value
	}
	return sb.Where(eq), nil
}

// orderBy applies "field" / "-field" orderings. Objects are ordered by id
// when nothing else is asked for so that pages are stable.
func (t table) orderBy(sb squirrel.SelectBuilder, orderBy []string) (squirrel.SelectBuilder, error) {
	if len(orderBy) == 0 {
		return sb.OrderBy("id"), nil
	}

	for _, o := range orderBy {
		direction := "ASC"
		if strings.HasPrefix(o, "-") {
			direction = "DESC"
			o = o[1:]
		}
		column, ok := t.ordering[o]
		if !ok {
			return sb, fmt.Errorf("%w: unknown ordering %q on %s", ErrBuildingSQLQuery, o, t.name)
		}
		sb = sb.OrderBy(column + " " + direction)
	}
	return sb, nil
}

// listQuery builds the SELECT behind [resource.DataSource.List].
func (t table) listQuery(b squirrel.StatementBuilderType, q resource.Query) (squirrel.SelectBuilder, error) {
	sb, err := t.where(t.selectAll(b), q.Filters)
	if err != nil {
		return sb, err
	}
	if sb, err = t.orderBy(sb, q.OrderBy); err != nil {
		return sb, err
	}
	if q.Limit > 0 {
		sb = sb.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		sb = sb.Offset(uint64(q.Offset))
	}
	return sb, nil
}

// countQuery builds the SELECT behind [resource.DataSource.Count].
func (t table) countQuery(b squirrel.StatementBuilderType, filters resource.Filters) (squirrel.SelectBuilder, error) {
	return t.where(b.Select("COUNT(*)").From(t.name), filters)
}

// queryObjects runs a SELECT and scans every row with scan.
func (db *DB) queryObjects(ctx context.Context, funcName string, sb squirrel.Sqlizer, scan func(rowScanner) (resource.Object, error)) ([]resource.Object, error) {
	log := logger.FromContext(ctx)

	query, args, err := sb.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, db.translate(err))
	}
	defer rows.Close()

	objects := make([]resource.Object, 0)
	for rows.Next() {
		obj, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		objects = append(objects, obj)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, db.translate(err))
	}
	return objects, nil
}

// count runs a COUNT(*) query.
func (db *DB) count(ctx context.Context, funcName string, sb squirrel.Sqlizer) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := sb.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, db.translate(err))
	}
	return n, nil
}
