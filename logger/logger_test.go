package logger

import "testing"

func TestSanitizeKVsRedactsSensitiveKeys(t *testing.T) {
	got := sanitizeKVs([]interface{}{"username", "learner", "email", "learner@example.com", "DB_DSN", "postgres://x"})
	want := []interface{}{"username", "learner", "email", "[REDACTED]", "DB_DSN", "[REDACTED]"}
	if len(got) != len(want) {
		t.Fatalf("len mismatch: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kv[%d]: got=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestSanitizeKVsKeepsDanglingKey(t *testing.T) {
	got := sanitizeKVs([]interface{}{"deck_id", 3, "orphan"})
	if len(got) != 3 || got[2] != "orphan" {
		t.Fatalf("unexpected output: %v", got)
	}
}
