package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stsysd/notebook/model"
	"go.etcd.io/bbolt"
)

var settingsBucket = []byte("Settings")

// BoltStore はbboltを使用したSlotStoreの実装です。
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore はデータディレクトリにbboltファイルを開き、BoltStoreを作成します。
func NewBoltStore(dataDir string) (*BoltStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bbolt.Open(filepath.Join(dataDir, "notebook.bolt"), 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	// バケットの作成
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(settingsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Get は指定されたキーの値を取得します。
func (s *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(settingsBucket)
		if b == nil {
			return fmt.Errorf("bucket %s not found", settingsBucket)
		}
		v := b.Get([]byte(key))
		if v == nil {
			return model.ErrSlotNotFound
		}
		// トランザクション外では値が無効になるためコピーする
		out = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Put は指定されたキーの値を上書きします。
func (s *BoltStore) Put(_ context.Context, key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(settingsBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

// Close はデータベースを閉じます。
func (s *BoltStore) Close() error {
	return s.db.Close()
}
