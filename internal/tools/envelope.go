package tools

// Envelope wraps the result of every successful tool call.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Summary string `json:"summary"`
}

func success(data any, summary string) *Envelope {
	return &Envelope{Success: true, Data: data, Summary: summary}
}
