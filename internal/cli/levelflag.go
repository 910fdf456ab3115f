package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// levelValue is a pflag.Value that validates the log level at parse
// time instead of silently falling back at logger construction.
type levelValue struct {
	level zerolog.Level
}

var _ pflag.Value = (*levelValue)(nil)

func (v *levelValue) String() string {
	return v.level.String()
}

func (v *levelValue) Set(s string) error {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return fmt.Errorf("invalid log level %q (use trace, debug, info, warn or error)", s)
	}
	v.level = level
	return nil
}

func (v *levelValue) Type() string {
	return "level"
}
