package postgres

import (
	"bytes"
	"database/sql"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/valyala/bytebufferpool"
)

const uniqueViolation = "23505"

// ErrDuplicate marks inserts rejected by a unique index.
var ErrDuplicate = errors.New("duplicate row")

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func markDuplicate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errors.Mark(err, ErrDuplicate)
	}
	return err
}

func requireAffected(res sql.Result, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return errors.Newf(format, args...)
	}
	return nil
}

// encodeJSONB renders v for a jsonb column using a pooled buffer.
func encodeJSONB(v any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(v); err != nil {
		return nil, errors.Wrap(err, "encode jsonb")
	}
	return bytes.Clone(bytes.TrimRight(buf.B, "\n")), nil
}

func decodeJSONB(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, v); err != nil {
		return errors.Wrap(err, "decode jsonb")
	}
	return nil
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
