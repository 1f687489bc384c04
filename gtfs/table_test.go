package gtfs

import "testing"

func TestParseTable(t *testing.T) {
	text := "trip_id , service_id\nT1,S1\n\nT2,S2,extra\nT3\n"
	tbl := parseTable(text)

	tid, ok := tbl.column("trip_id")
	if !ok {
		t.Fatal("header names are trimmed before indexing")
	}
	sid, ok := tbl.column("service_id")
	if !ok {
		t.Fatal("service_id column missing")
	}
	if _, ok := tbl.column("nope"); ok {
		t.Error("unknown column must not resolve")
	}

	if len(tbl.rows) != 3 {
		t.Fatalf("blank lines are skipped, want 3 rows, got %d", len(tbl.rows))
	}
	if got := tbl.field(tbl.rows[0], tid); got != "T1" {
		t.Errorf("want T1, got %q", got)
	}
	// short row: missing column reads as empty, not a panic
	if got := tbl.field(tbl.rows[2], sid); got != "" {
		t.Errorf("short row should read empty, got %q", got)
	}
}

func TestParseTable_NoQuoting(t *testing.T) {
	// The feed format has no quoting: embedded quotes stay literal and a
	// quoted comma still splits.
	tbl := parseTable("a,b\n\"x,y\",z\n")
	a, _ := tbl.column("a")
	b, _ := tbl.column("b")
	if got := tbl.field(tbl.rows[0], a); got != "\"x" {
		t.Errorf("want literal \"x, got %q", got)
	}
	if got := tbl.field(tbl.rows[0], b); got != "y\"" {
		t.Errorf("want y\", got %q", got)
	}
}

func TestParseTable_HeaderOnly(t *testing.T) {
	tbl := parseTable("trip_id,service_id\n")
	if len(tbl.rows) != 0 {
		t.Errorf("want no rows, got %v", tbl.rows)
	}
}
