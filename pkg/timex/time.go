// Package timex provides a time type that serializes consistently across JSON and SQL
// Package timex 提供在 JSON 和 SQL 之间序列化一致的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Time 数据库与接口统一使用的时间类型
type Time time.Time

// Now 获取当前时间
func Now() Time {
	return Time(time.Now())
}

func (t Time) String() string {
	return time.Time(t).Format(timeLayout)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

// MarshalJSON 输出为 "2006-01-02 15:04:05" 格式的 JSON 字符串
func (t Time) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(timeLayout)+2)
	b = append(b, '"')
	b = time.Time(t).AppendFormat(b, timeLayout)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON 解析 "2006-01-02 15:04:05" 格式的 JSON 字符串
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}
	parsed, err := time.ParseInLocation(`"`+timeLayout+`"`, string(data), time.Local)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value 实现 driver.Valuer，写入数据库
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

// Scan 实现 sql.Scanner，从数据库读取
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case []byte:
		return t.scanString(string(value))
	case string:
		return t.scanString(value)
	case nil:
		return nil
	default:
		return fmt.Errorf("can not convert %v to timex.Time", v)
	}
}

func (t *Time) scanString(s string) error {
	parsed, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		// sqlite may return RFC3339 when the column was written as time.Time
		// sqlite 在列以 time.Time 写入时可能返回 RFC3339
		parsed, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
	}
	*t = Time(parsed)
	return nil
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}
