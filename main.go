// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"log"

	"github.com/stsysd/notebook/config"
)

func main() {
	// 設定の読み込み
	cfg := config.NewConfig()

	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Fatal(err)
	}
}
