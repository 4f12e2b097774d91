package model

// RecordSchemaVersion identifies the wire layout of Record. Bump on any
// field change so old readers can refuse records they do not understand.
const RecordSchemaVersion = 1

// Record is the flat storage form of a Message. The schema is closed: every
// field is validated on both encode and decode.
type Record struct {
	Schema  int     `json:"schema"`
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Content string  `json:"content"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	SentAt  string  `json:"sent_at"`
	Sender  string  `json:"sender"`
	IsRead  bool    `json:"is_read"`
}
