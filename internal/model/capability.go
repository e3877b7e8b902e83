package model

import "strconv"

// Capability is the set of conversions generated for a type.
type Capability uint8

const (
	// Decode generates FromValue and the <Type>FromValue constructor.
	Decode Capability = 1 << iota
	// Encode generates ToValue and MustToValue.
	Encode

	None Capability = 0
	Both            = Decode | Encode
)

// Has reports whether every bit of o is set in c.
func (c Capability) Has(o Capability) bool {
	return o != None && c&o == o
}

func (c Capability) String() string {
	switch c {
	case None:
		return "none"
	case Decode:
		return "decode"
	case Encode:
		return "encode"
	case Both:
		return "both"
	}
	return "Capability(" + strconv.Itoa(int(c)) + ")"
}
