package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/shared/constant"
	"stayhub/shared/dto"
	"stayhub/shared/logger"
)

var (
	errRequiredFilter = errors.New("required filter")
	errRequiredValues = errors.New("required values")
)

// column is one selected column. Columns of joined tables carry their table and, when the
// struct field name differs from the column, an alias.
type column struct {
	name  string
	table string
	alias string
}

func (c column) expression() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

// Joiner is implemented by models that select columns from joined tables.
type Joiner interface {
	GetJoinQuery() string
}

// Repository runs named queries for one table, mapping rows onto T through its db tags. Reads
// go to the replica and writes to the primary.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	var join string
	if joiner, ok := any(zero).(Joiner); ok {
		join = joiner.GetJoinQuery()
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation, query string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))

	if query != "" {
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	}

	return ctx, scope
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// get runs a single row query on the replica. A missing row leaves dest untouched.
func (repo *Repository[T]) get(ctx context.Context, query string, args map[string]any, dest any) error {
	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, dest, args); errors.Is(err, sql.ErrNoRows) {
		return nil
	}

	return err //nolint:wrapcheck
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), repo.placeholders())

	ctx, scope := repo.scope(ctx, "Insert", query)
	defer scope.End()

	if _, err := repo.db.Write.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

// Upsert inserts model, or on a conflict over conflictColumns overwrites updateColumns
// with the incoming values.
func (repo *Repository[T]) Upsert(ctx context.Context, model T, conflictColumns, updateColumns []string) error {
	if len(conflictColumns) == 0 || len(updateColumns) == 0 {
		return errRequiredValues
	}

	assignments := make([]string, len(updateColumns))
	for idx, col := range updateColumns {
		assignments[idx] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		repo.table,
		strings.Join(repo.InsertColumns, ", "),
		repo.placeholders(),
		strings.Join(conflictColumns, ", "),
		strings.Join(assignments, ", "),
	)

	ctx, scope := repo.scope(ctx, "Upsert", query)
	defer scope.End()

	if _, err := repo.db.Write.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "upsert data", err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s %s)", repo.table, repo.join, where)

	ctx, scope := repo.scope(ctx, "Exist", query)
	defer scope.End()

	var exist bool
	if err := repo.get(ctx, query, args, &exist); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the first row matching filter, or the zero T when there is none.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectColumns(columns...), repo.table, repo.join, where)

	ctx, scope := repo.scope(ctx, "Get", query)
	defer scope.End()

	var model T
	if err := repo.get(ctx, query, args, &model); err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

// GetAll returns the rows matching filter. Page and Limit paginate when set; SortBy must come
// from a whitelist since it is written into the query as is.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s",
		repo.selectColumns(columns...), repo.table, repo.join, where, ordering(params), pagination(params, args))

	ctx, scope := repo.scope(ctx, "GetAll", query)
	defer scope.End()

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	var models []T
	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return nil, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	ctx, scope := repo.scope(ctx, "Count", query)
	defer scope.End()

	var count int
	if err := repo.get(ctx, query, args, &count); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

// Update applies mod to the rows matching filter and returns how many rows changed.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	if len(mod) == 0 {
		return 0, errRequiredValues
	}

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)

	ctx, scope := repo.scope(ctx, "Update", query)
	defer scope.End()

	maps.Copy(args, mod)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, "update data", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, "read affected rows", err)
	}

	return affected, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", repo.table, where)

	ctx, scope := repo.scope(ctx, "Delete", query)
	defer scope.End()

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "delete data", err)
	}

	return nil
}

// BuildWhereClause renders filter as a WHERE clause with its named arguments. An empty filter
// renders nothing.
func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func (repo *Repository[T]) placeholders() string {
	named := make([]string, len(repo.InsertColumns))
	for idx, col := range repo.InsertColumns {
		named[idx] = ":" + col
	}

	return strings.Join(named, ", ")
}

// selectColumns lists every mapped column, or only the requested ones.
func (repo *Repository[T]) selectColumns(only ...string) string {
	expressions := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		expressions = append(expressions, col.expression())
	}

	return strings.Join(expressions, ", ")
}

func ordering(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
}

// pagination adds the limit and offset arguments to args.
func pagination(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = (params.Page - 1) * params.Limit

	return "LIMIT :limit OFFSET :offset"
}

// getColumns walks the db tags of t, descending into embedded structs such as the metadata.
// A table tag marks a column of a joined table, which is selected but never inserted; a
// column tag names the source column when it differs from the db tag.
func getColumns(table string, t reflect.Type) (columns []column, insertColumns []string) {
	for idx := range t.NumField() {
		field := t.Field(idx)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		source := field.Tag.Get("table")
		if source == "" {
			source = table
		}

		if source == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != "" {
			columns = append(columns, column{name: colTag, table: source, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: source})
		}
	}

	return columns, insertColumns
}
