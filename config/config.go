// Package config はアプリケーション設定を管理します。
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データディレクトリのパス
	DataDir string

	// ストアのバックエンド（sqlite / bolt / memory）
	Backend string

	// 課題一覧を保存するキー
	SlotKey string
}

// NewConfig は .env と環境変数から設定を読み込み、Configインスタンスを生成します。
func NewConfig() *Config {
	// .env がある場合は読み込む（既存の環境変数は上書きしない）
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load .env file: %v", err)
	}

	return &Config{
		DataDir: getenv("NOTEBOOK_DATA_DIR", filepath.Join(".", "data")),
		Backend: getenv("NOTEBOOK_BACKEND", "sqlite"),
		SlotKey: getenv("NOTEBOOK_SLOT_KEY", "assignments"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
