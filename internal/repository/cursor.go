package repository

import (
	"encoding/base64"
	"time"
)

const (
	timeFormat = "2006-01-02T15:04:05.999Z07:00" // reduce precision from RFC3339Nano as date format

	MaxPageNum     = 30
	DefaultPageNum = 10
)

// EncodeCursor will encode the last item's timestamp into an opaque cursor
func EncodeCursor(t time.Time) string {
	timeString := t.Format(timeFormat)

	return base64.StdEncoding.EncodeToString([]byte(timeString))
}

// DecodeCursor will decode a cursor back into a timestamp
func DecodeCursor(encodedTime string) (time.Time, error) {
	byt, err := base64.StdEncoding.DecodeString(encodedTime)
	if err != nil {
		return time.Time{}, err
	}

	timeString := string(byt)
	t, err := time.Parse(timeFormat, timeString)

	return t, err
}

// PageVerify 校验分页参数, 越界时回退到默认值
func PageVerify(num *int64) {
	if *num <= 0 || *num > MaxPageNum {
		*num = DefaultPageNum
	}
}
