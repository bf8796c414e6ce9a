package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NOTEBOOK_DATA_DIR", "")
	t.Setenv("NOTEBOOK_BACKEND", "")
	t.Setenv("NOTEBOOK_SLOT_KEY", "")

	cfg := NewConfig()

	if cfg.DataDir != filepath.Join(".", "data") {
		t.Errorf("Expected default data dir, got %s", cfg.DataDir)
	}
	if cfg.Backend != "sqlite" {
		t.Errorf("Expected default backend sqlite, got %s", cfg.Backend)
	}
	if cfg.SlotKey != "assignments" {
		t.Errorf("Expected default slot key assignments, got %s", cfg.SlotKey)
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NOTEBOOK_DATA_DIR", "/tmp/notebook")
	t.Setenv("NOTEBOOK_BACKEND", "bolt")
	t.Setenv("NOTEBOOK_SLOT_KEY", "homework")

	cfg := NewConfig()

	if cfg.DataDir != "/tmp/notebook" || cfg.Backend != "bolt" || cfg.SlotKey != "homework" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestNewConfigFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("NOTEBOOK_BACKEND", "memory")
	// .env の値が使われるよう未設定にする（終了時に t.Setenv が元に戻す）
	for _, key := range []string{"NOTEBOOK_DATA_DIR", "NOTEBOOK_SLOT_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	env := "NOTEBOOK_DATA_DIR=from-dotenv\nNOTEBOOK_BACKEND=bolt\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	cfg := NewConfig()

	if cfg.DataDir != "from-dotenv" {
		t.Errorf("Expected data dir from .env, got %s", cfg.DataDir)
	}
	// 既に設定されている環境変数が優先されること
	if cfg.Backend != "memory" {
		t.Errorf("Expected environment to win over .env, got %s", cfg.Backend)
	}
}
