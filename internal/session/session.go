// Package session holds the conversational context for the service: the most
// recent summary plus a bounded window of follow-up turns.
package session

// TurnWindowSize is the number of follow-up turns kept as context. Older
// turns are evicted FIFO.
const TurnWindowSize = 3

// Turn is a single answered follow-up question.
type Turn struct {
	Question string
	Answer   string
}

// Store is the session-state contract. Setting a new summary invalidates the
// follow-up history: SetSummary atomically overwrites the summary and clears
// the turn window.
type Store interface {
	SetSummary(summary string)
	HasSummary() bool
	Summary() string
	AppendTurn(question, answer string)
	Turns() []Turn
}
