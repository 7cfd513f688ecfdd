package cli

import "fmt"

type invalidInputError struct {
	what  string
	input string
	err   error
}

func (e invalidInputError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.what, e.input, e.err)
	}
	return fmt.Sprintf("invalid %s %q", e.what, e.input)
}

func (e invalidInputError) Unwrap() error { return e.err }

func errInvalidInput(what, input string, err error) error {
	return invalidInputError{what: what, input: input, err: err}
}

type unknownTopicError struct {
	topic string
}

func (e unknownTopicError) Error() string {
	return fmt.Sprintf("unknown docs topic: %q (run `datepick docs` to list topics)", e.topic)
}

func errUnknownTopic(topic string) error {
	return unknownTopicError{topic: topic}
}
