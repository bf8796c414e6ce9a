// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"fmt"

	"github.com/stsysd/notebook/db"
)

// SlotStore は文字列キーで値全体を読み書きするキーバリューストアのインターフェースです。
type SlotStore interface {
	// Get は指定されたキーの値を取得します。値がない場合は model.ErrSlotNotFound を返します。
	Get(ctx context.Context, key string) ([]byte, error)
	// Put は指定されたキーの値を上書きします。書き込みは一括で行われ、失敗時は以前の値が残ります。
	Put(ctx context.Context, key string, value []byte) error
	// Close はストアを閉じます。
	Close() error
}

// バックエンド名
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Open は指定されたバックエンドのストアを開きます。
func Open(backend, dataDir string) (SlotStore, error) {
	switch backend {
	case BackendSQLite, "":
		return NewSQLiteStore(dataDir, db.Migrate)
	case BackendBolt:
		return NewBoltStore(dataDir)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}
