package sqlite

import (
	"fmt"
	"time"
)

// Timestamp scans a timestamp column whatever the driver hands back: a
// time.Time (Postgres, or SQLite DATETIME columns the driver converted) or the
// raw text SQLite stores.
type Timestamp struct {
	Time time.Time
}

func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		ts.Time = time.Time{}
	case time.Time:
		ts.Time = v
	case string:
		t, err := ParseTime(v)
		if err != nil {
			return err
		}
		ts.Time = t
	case []byte:
		t, err := ParseTime(string(v))
		if err != nil {
			return err
		}
		ts.Time = t
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
	return nil
}
