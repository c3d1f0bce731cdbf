package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		t.Fatalf("read embedded dir: %v", err)
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	if len(ups) == 0 {
		t.Fatal("no migrations embedded")
	}
	for base := range ups {
		if !downs[base] {
			t.Errorf("migration %s has no down file", base)
		}
	}
	for base := range downs {
		if !ups[base] {
			t.Errorf("migration %s has no up file", base)
		}
	}
}

func TestSchemaUsesIdentityColumns(t *testing.T) {
	data, err := fs.ReadFile(files, "000001_init_schema.up.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	schema := string(data)
	if strings.Contains(strings.ToLower(schema), "max(id)") {
		t.Error("schema must not derive ids from max(id)")
	}
	if got := strings.Count(schema, "GENERATED BY DEFAULT AS IDENTITY"); got != 10 {
		t.Errorf("identity columns = %d, want 10", got)
	}
}
