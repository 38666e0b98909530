package models

// CallEvent is one observed call to a model backend, parsed from a single
// "chat" record in a server call log. Timestamps keep the log's float
// precision (seconds since epoch).
type CallEvent struct {
	Tstamp float64
	Model  string
	UserID string
}

// ModelCall is one call as seen from the model side of the index.
type ModelCall struct {
	Tstamp float64
	UserID string
}

// UserCall is one call as seen from the user side of the index.
type UserCall struct {
	Tstamp float64
	Model  string
}

// ModelIndex groups calls by model identifier in arrival order.
// Rebuilt wholesale every refresh cycle; never mutated in place.
type ModelIndex map[string][]ModelCall

// UserIndex groups calls by user identifier in arrival order.
// Rebuilt wholesale every refresh cycle; never mutated in place.
type UserIndex map[string][]UserCall

// Add appends the event to the index under its model.
func (idx ModelIndex) Add(event CallEvent) {
	idx[event.Model] = append(idx[event.Model], ModelCall{Tstamp: event.Tstamp, UserID: event.UserID})
}

// Add appends the event to the index under its user.
func (idx UserIndex) Add(event CallEvent) {
	idx[event.UserID] = append(idx[event.UserID], UserCall{Tstamp: event.Tstamp, Model: event.Model})
}
