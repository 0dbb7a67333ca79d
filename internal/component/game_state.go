package component

// SessionStatus — состояние сессии уровня
type SessionStatus int

const (
	StatusActive SessionStatus = iota
	StatusPaused
	StatusOver      // враг прорвался, терминальное
	StatusCompleted // квота выполнена, поле пустое, терминальное
)

func (s SessionStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// Terminal — из этого состояния выходит только сброс сессии.
func (s SessionStatus) Terminal() bool {
	return s == StatusOver || s == StatusCompleted
}
