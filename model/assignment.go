// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// referenceDate は旧アプリが数値の日付を保存する際の基準時刻です。
var referenceDate = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// Assignment は課題（科目名・説明・締切日）を表すモデルです。
type Assignment struct {
	ID          uuid.UUID `json:"id"`          // 生成時に割り当てられる識別子
	Course      string    `json:"course"`      // 科目名
	Description string    `json:"description"` // 課題の説明
	DueDate     time.Time `json:"dueDate"`     // 締切日時
}

// NewAssignment は新しいIDを持つAssignmentを作成します。
// 入力値の検証は行いません。
func NewAssignment(course, description string, dueDate time.Time) Assignment {
	return Assignment{
		ID:          uuid.New(),
		Course:      course,
		Description: description,
		DueDate:     dueDate,
	}
}

// UnmarshalJSON は dueDate が RFC3339 文字列でも、
// 旧アプリ形式の数値（2001-01-01 からの秒数）でも読み込めるようにします。
func (a *Assignment) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          uuid.UUID       `json:"id"`
		Course      string          `json:"course"`
		Description string          `json:"description"`
		DueDate     json.RawMessage `json:"dueDate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	due, err := decodeDueDate(raw.DueDate)
	if err != nil {
		return err
	}

	// 保存された値はそのまま復元する（nil のIDも書き込まれた通りに読み戻す）
	*a = Assignment{
		ID:          raw.ID,
		Course:      raw.Course,
		Description: raw.Description,
		DueDate:     due,
	}
	return nil
}

func decodeDueDate(data json.RawMessage) (time.Time, error) {
	if len(data) == 0 || string(data) == "null" {
		return time.Time{}, nil
	}

	if data[0] == '"' {
		var t time.Time
		if err := json.Unmarshal(data, &t); err != nil {
			return time.Time{}, fmt.Errorf("invalid dueDate: %w", err)
		}
		return t, nil
	}

	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return time.Time{}, fmt.Errorf("invalid dueDate: %w", err)
	}
	// time.Duration では約292年を超える値が表せないため、秒とナノ秒に分けて計算する
	whole, frac := math.Modf(seconds)
	return time.Unix(referenceDate.Unix()+int64(whole), int64(frac*float64(time.Second))).UTC(), nil
}
