package config

import (
	"fmt"
	"strings"

	"github.com/origadmin/tryfrom/internal/model"
)

var capabilityWords = map[string]model.Capability{
	"decode": model.Decode,
	"de":     model.Decode,
	"encode": model.Encode,
	"se":     model.Encode,
	"both":   model.Both,
}

// ParseCapability parses the value of a derive directive. An empty value
// means both conversions; otherwise it is a comma separated list of decode
// (de), encode (se) or both.
func ParseCapability(s string) (model.Capability, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Both, nil
	}
	var c model.Capability
	for _, word := range strings.Split(s, ",") {
		word = strings.ToLower(strings.TrimSpace(word))
		bits, ok := capabilityWords[word]
		if !ok {
			return model.None, fmt.Errorf("%w: %q in %q", ErrInvalidCapability, word, s)
		}
		c |= bits
	}
	return c, nil
}
