package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Timestamp is a creation time kept as text. Documents written by the Node
// server store it as a BSON date; those are read back as RFC3339 strings.
type Timestamp string

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(time.RFC3339))
}

func (ts *Timestamp) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*ts = Timestamp(raw.StringValue())
	case bsontype.DateTime:
		*ts = NewTimestamp(raw.Time())
	case bsontype.Null, bsontype.Undefined:
		*ts = ""
	default:
		return fmt.Errorf("cannot decode %v into a Timestamp", t)
	}
	return nil
}
