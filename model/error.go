// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import "errors"

// センチネルエラー - スロットに値が保存されていない場合
var ErrSlotNotFound = errors.New("slot not found")
