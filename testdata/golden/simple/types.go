// Package simple holds one type per capability.
package simple

//go:generate go run github.com/origadmin/tryfrom/cmd/tryfrom

// User is read and written.
//
//go:tryfrom:derive
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email *string  `json:"email"`
	Roles []string `json:"roles,omitempty"`
}

// Event is only ever read.
//
//go:tryfrom:derive=decode
type Event struct {
	Kind    string `json:"kind"`
	Payload []byte `json:"payload"`
}

// Report is only ever written.
//
//go:tryfrom:derive=encode
type Report struct {
	Lines []string `json:"lines"`
}

// Draft is not annotated.
type Draft struct {
	Body string
}
