package chatpb

import (
	"time"

	"github.com/golang/protobuf/ptypes"
	timestamp "github.com/golang/protobuf/ptypes/timestamp"
)

// ToTimestamp converts a Go time into the wire Timestamp, never returning
// an error for the times this fabric actually produces (always set from
// time.Now().UTC() or a store-read value).
func ToTimestamp(t time.Time) *timestamp.Timestamp {
	ts, err := ptypes.TimestampProto(t)
	if err != nil {
		// Only unrepresentable timestamps (year outside [1,9999]) fail here,
		// which the store never produces.
		return &timestamp.Timestamp{}
	}
	return ts
}

// FromTimestamp converts a wire Timestamp back to a Go time, treating nil
// as the zero time.
func FromTimestamp(ts *timestamp.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	t, err := ptypes.Timestamp(ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
