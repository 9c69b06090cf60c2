package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// DateOnly is a calendar date without a time component, serialized as
// "YYYY-MM-DD" in JSON and stored as a Postgres date column.
type DateOnly time.Time

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

func (d DateOnly) Time() time.Time {
	return time.Time(d)
}

func (d DateOnly) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d DateOnly) String() string {
	return time.Time(d).Format(dateOnlyLayout)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = DateOnly{}
		return nil
	}
	parsed, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", raw, err)
	}
	*d = DateOnly(parsed)
	return nil
}

func (d DateOnly) Value() (driver.Value, error) {
	return time.Time(d), nil
}

func (d *DateOnly) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewDateOnly(v)
		return nil
	case string:
		parsed, err := time.Parse(dateOnlyLayout, v)
		if err != nil {
			return err
		}
		*d = DateOnly(parsed)
		return nil
	case nil:
		*d = DateOnly{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

func (DateOnly) GormDataType() string {
	return "date"
}
