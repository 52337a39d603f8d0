package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kotaroooo0/emojifish"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		body     string
		expected *Config
		err      bool
	}{
		{
			body: "storage: rdb\n" +
				"database:\n" +
				"  driver: sqlite3\n" +
				"  db: emojifish.db\n" +
				"log_level: debug\n",
			expected: &Config{
				Storage:       storageRdb,
				Database:      emojifish.DBConfig{Driver: "sqlite3", DB: "emojifish.db"},
				LogLevel:      "debug",
				QueryAnalyzer: analyzerEnglish,
			},
		},
		{
			body:     "query_analyzer: japanese\n",
			expected: &Config{Storage: storageEmbedded, LogLevel: "info", QueryAnalyzer: analyzerJapanese},
		},
		{
			body: "storage: rdb\ndatabase:\n  driver: oracle\n",
			err:  true,
		},
		{
			body: "storage: s3\n",
			err:  true,
		},
		{
			body: "log_level: loud\n",
			err:  true,
		},
	}

	for _, tt := range cases {
		cfg, err := loadConfig(writeConfig(t, tt.body))
		if (err != nil) != tt.err {
			t.Fatalf("err = %v, want error %v", err, tt.err)
		}
		if diff := cmp.Diff(cfg, tt.expected); diff != "" {
			t.Errorf("Diff: (-got +want)\n%s", diff)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, defaultConfig()); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}
