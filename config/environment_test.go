package config

import (
	"reflect"
	"testing"
)

func lookup(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestFromLookupDefaults(t *testing.T) {
	env := FromLookup(lookup(nil))

	if env.Port != "8080" {
		t.Fatalf("Port: got=%q", env.Port)
	}
	if env.DBDriver != DriverSQLite || env.DBURL != "flashcards.db" {
		t.Fatalf("db defaults: driver=%q url=%q", env.DBDriver, env.DBURL)
	}
	if !reflect.DeepEqual(env.AllowedOrigins, defaultOrigins) {
		t.Fatalf("AllowedOrigins: got=%v", env.AllowedOrigins)
	}
	if env.ServerAddr() != "0.0.0.0:8080" {
		t.Fatalf("ServerAddr: got=%q", env.ServerAddr())
	}
}

func TestFromLookupOverrides(t *testing.T) {
	env := FromLookup(lookup(map[string]string{
		"PORT":                 "9000",
		"DB_DRIVER":            " Postgres ",
		"DB_URL":               "postgres://localhost/flashcards",
		"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
		"LOG_MODE":             "prod",
		"SEED_FILE":            "seed.yaml",
	}))

	if env.Port != "9000" || env.DBDriver != DriverPostgres || env.LogMode != "prod" || env.SeedFile != "seed.yaml" {
		t.Fatalf("unexpected env: %+v", env)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(env.AllowedOrigins, want) {
		t.Fatalf("AllowedOrigins: got=%v want=%v", env.AllowedOrigins, want)
	}
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	cases := map[string]string{
		"flashcards.db":                   "flashcards.db?_foreign_keys=on",
		"file:x?mode=memory&cache=shared": "file:x?mode=memory&cache=shared&_foreign_keys=on",
		"file:x?_foreign_keys=off":        "file:x?_foreign_keys=off",
	}
	for in, want := range cases {
		if got := sqliteDSN(in); got != want {
			t.Fatalf("sqliteDSN(%q): got=%q want=%q", in, got, want)
		}
	}
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	if _, err := Connect("mysql", "", true); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestConnectMigratesSQLite(t *testing.T) {
	db, err := Connect(DriverSQLite, "file:connect_test?mode=memory&cache=shared", true)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	for _, table := range []string{"users", "decks", "cards", "user_card_progress"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
}
