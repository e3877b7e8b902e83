package analyzer

import (
	"errors"
	"fmt"

	"github.com/hengadev/errsx"
)

var (
	// ErrUnsupportedType is reported when a directive annotates an alias or a
	// type that cannot carry the generated methods or can never be a value,
	// such as interfaces, channels, functions and named pointers.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrMethodConflict is reported when a type already declares a method or
	// field the generator would add.
	ErrMethodConflict = errors.New("method conflict")
	// ErrNameConflict is reported when a generated constructor would clash
	// with a package-level identifier.
	ErrNameConflict = errors.New("name conflict")
	// ErrUnknownType is reported for a types entry in the config file that
	// names no type of the package.
	ErrUnknownType = errors.New("unknown type")
)

// ValidationError collects every problem found in one package.
type ValidationError struct {
	Package  string
	Problems []error
	errs     errsx.Map
}

func (e *ValidationError) add(key string, err error) {
	e.Problems = append(e.Problems, err)
	e.errs.Set(key, err)
}

func (e *ValidationError) empty() bool {
	return e.errs.IsEmpty()
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tryfrom: package %s: %d problem(s): %v", e.Package, len(e.Problems), e.errs.AsError())
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Problems
}
