package querybuilder

import "strings"

// Condition is one predicate of a WHERE clause. Conditions are joined with AND.
type Condition interface {
	appendSQL(w *writer)
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func (c compareCondition) appendSQL(w *writer) {
	w.write(c.column, " ", c.op, " ")
	w.bind(c.value)
}

func Eq(column string, value any) Condition {
	return compareCondition{column: column, op: "=", value: value}
}

// ILike matches a case-insensitive substring. LIKE wildcards in substr are escaped.
func ILike(column, substr string) Condition {
	return compareCondition{column: column, op: "ILIKE", value: "%" + likeEscaper.Replace(substr) + "%"}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type inCondition struct {
	column string
	values []any
}

// In renders an always-false predicate for an empty value list.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) appendSQL(w *writer) {
	if len(c.values) == 0 {
		w.write("1=0")
		return
	}
	w.write(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
}

type isNullCondition string

func IsNull(column string) Condition {
	return isNullCondition(column)
}

func (c isNullCondition) appendSQL(w *writer) {
	w.write(string(c), " IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr is a raw predicate; each '?' binds the next arg.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(w *writer) {
	w.expr(c.expr, c.args)
}

type orCondition []Condition

func Or(conditions ...Condition) Condition {
	return orCondition(conditions)
}

func (c orCondition) appendSQL(w *writer) {
	if len(c) == 0 {
		w.write("1=0")
		return
	}
	w.write("(")
	for i, cond := range c {
		if i > 0 {
			w.write(" OR ")
		}
		cond.appendSQL(w)
	}
	w.write(")")
}
