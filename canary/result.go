package canary

import (
	"encoding/json"
)

// Outcome of a probe run. Exactly one of the value or the message is set.
type Result struct {
	ok      bool
	value   string
	message string
}

type envelope struct {
	Error *string `json:"error"`
	Data  *string `json:"data"`
}

func Success(value string) Result {
	return Result{ok: true, value: value}
}

func Failure(message string) Result {
	return Result{message: message}
}

func (r Result) OK() bool {
	return r.ok
}

func (r Result) Value() string {
	return r.value
}

func (r Result) Message() string {
	return r.message
}

// Encodes the result as {"error":...,"data":...} with the unused field null
func (r Result) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(envelope{Data: &r.value})
	}
	return json.Marshal(envelope{Error: &r.message})
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}

	switch {
	case e.Error != nil:
		*r = Failure(*e.Error)
	case e.Data != nil:
		*r = Success(*e.Data)
	default:
		*r = Failure("")
	}
	return nil
}
