package runner

// resultResponse reports a completed dispatch attempt: the aggregate
// success bool and how many destinations were registered for the pass.
type resultResponse struct {
	Success      bool `json:"success"`
	Destinations int  `json:"destinations"`
}

// errorResponse reports an invocation that never completed a dispatch
// attempt. Error carries one of the fixed contract messages.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
