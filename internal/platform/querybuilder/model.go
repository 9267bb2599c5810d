package querybuilder

import (
	"errors"
	"reflect"
	"strings"
	"sync"
)

// InsertModel inserts every db-tagged exported field of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValues(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel sets every db-tagged column except the key and the listed skip columns.
func UpdateModel(table string, model any, key string, keyValue any, skip ...string) (string, []any, error) {
	cols, vals, err := columnsAndValues(model)
	if err != nil {
		return "", nil, err
	}

	b := Update(table)
	for i, col := range cols {
		if col == key || contains(skip, col) {
			continue
		}
		b.Set(col, vals[i])
	}
	return b.Where(Eq(key, keyValue)).ToSQL()
}

type modelField struct {
	index  int
	column string
}

// fieldPlans caches the tagged field layout per struct type.
var fieldPlans sync.Map

func planFor(typ reflect.Type) []modelField {
	if cached, ok := fieldPlans.Load(typ); ok {
		return cached.([]modelField)
	}

	plan := make([]modelField, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		plan = append(plan, modelField{index: i, column: col})
	}

	actual, _ := fieldPlans.LoadOrStore(typ, plan)
	return actual.([]modelField)
}

func columnsAndValues(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, errors.New("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, errors.New("model must be struct")
	}

	plan := planFor(value.Type())
	if len(plan) == 0 {
		return nil, nil, errors.New("model has no db columns")
	}

	cols := make([]string, len(plan))
	vals := make([]any, len(plan))
	for i, f := range plan {
		cols[i] = f.column
		vals[i] = value.Field(f.index).Interface()
	}
	return cols, vals, nil
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
