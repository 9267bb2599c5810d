package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("users").
		Where(Eq("tenant_id", "t1"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM users WHERE tenant_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("users").
		Columns("id", "name").
		Values("u1", "name-1").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO users (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != "name-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("users").
		Set("name", "new").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "u1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE users SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "new" || args[1] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("group_teams").
		Where(Eq("group_id", "g1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM group_teams WHERE group_id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "g1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("teams").ToSQL(); err == nil {
		t.Fatalf("expected error for unfiltered delete")
	}
}

func TestSelectBuilder_OrILikeOffset(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(Or(Eq("team_a_id", "t1"), Eq("team_b_id", "t1")), ILike("group_name", "50%_a")).
		OrderBy("match_date").
		Limit(5).
		Offset(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE (team_a_id = $1 OR team_b_id = $2) AND group_name ILIKE $3 ORDER BY match_date LIMIT 5 OFFSET 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != `%50\%\_a%` {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateModel(t *testing.T) {
	type row struct {
		ID        string `db:"id"`
		Name      string `db:"name"`
		GroupName string `db:"group_name"`
		CreatedAt string `db:"created_at"`
	}

	query, args, err := UpdateModel("teams", row{ID: "t1", Name: "Lions", GroupName: "A", CreatedAt: "x"}, "id", "t1", "created_at")
	if err != nil {
		t.Fatalf("build update model: %v", err)
	}

	wantQuery := "UPDATE teams SET name = $1, group_name = $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_SkipsUntaggedFields(t *testing.T) {
	type row struct {
		PublicID string `db:"public_id"`
		Name     string `db:"name,omitempty"`
		Ignored  string `db:"-"`
		Plain    string
		hidden   string `db:"hidden"`
	}

	query, args, err := InsertModel("teams", &row{PublicID: "t1", Name: "Lions", hidden: "x"}, "ON CONFLICT (public_id) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}

	wantQuery := "INSERT INTO teams (public_id, name) VALUES ($1, $2) ON CONFLICT (public_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "t1" || args[1] != "Lions" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsInvalidModels(t *testing.T) {
	var nilRow *struct {
		ID string `db:"id"`
	}
	if _, _, err := InsertModel("teams", nilRow, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
	if _, _, err := InsertModel("teams", "not-a-struct", ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	if _, _, err := InsertModel("teams", struct{ Name string }{Name: "x"}, ""); err == nil {
		t.Fatalf("expected error for model without db tags")
	}
}

func TestConditions_InAndExpr(t *testing.T) {
	query, args, err := Select("public_id").
		From("matches").
		Where(In("status", []any{"live", "completed"}), Expr("score_a + score_b > ?", 3), In("stage", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id FROM matches WHERE status IN ($1, $2) AND score_a + score_b > $3 AND 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_SetExprWithArgs(t *testing.T) {
	query, args, err := Update("tournament_groups").
		SetExpr("team_public_ids", "array_remove(team_public_ids, ?)", "t9").
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "g1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE tournament_groups SET team_public_ids = array_remove(team_public_ids, $1), updated_at = NOW() WHERE public_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "t9" || args[1] != "g1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	if _, _, err := InsertInto("teams").Columns("a", "b").Values("only-one").ToSQL(); err == nil {
		t.Fatalf("expected error for short row")
	}
}
