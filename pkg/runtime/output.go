package runtime

import (
	barleyerrors "github.com/panthios/barley/pkg/errors"
)

// OutputKind identifies the variant carried by an Output.
type OutputKind int

const (
	// OutputString tags a string output.
	OutputString OutputKind = iota
	// OutputInteger tags a 64-bit signed integer output.
	OutputInteger
	// OutputFloat tags a 64-bit float output.
	OutputFloat
	// OutputBoolean tags a boolean output.
	OutputBoolean
)

func (k OutputKind) String() string {
	switch k {
	case OutputString:
		return "string"
	case OutputInteger:
		return "int64"
	case OutputFloat:
		return "float64"
	case OutputBoolean:
		return "bool"
	default:
		return "unknown"
	}
}

// Output is the tagged value an action publishes for its dependents.
// Constructing an Output from a primitive is total; converting back is
// fallible and reports the requested target type on mismatch.
type Output struct {
	kind    OutputKind
	str     string
	integer int64
	float   float64
	boolean bool
}

// StringOutput wraps a string.
func StringOutput(v string) Output {
	return Output{kind: OutputString, str: v}
}

// IntOutput wraps a 64-bit signed integer.
func IntOutput(v int64) Output {
	return Output{kind: OutputInteger, integer: v}
}

// FloatOutput wraps a 64-bit float.
func FloatOutput(v float64) Output {
	return Output{kind: OutputFloat, float: v}
}

// BoolOutput wraps a boolean.
func BoolOutput(v bool) Output {
	return Output{kind: OutputBoolean, boolean: v}
}

// Kind returns the variant tag.
func (o Output) Kind() OutputKind {
	return o.kind
}

// AsString unwraps a string output.
func (o Output) AsString() (string, error) {
	if o.kind != OutputString {
		return "", barleyerrors.NewOutputConversionError(OutputString.String())
	}
	return o.str, nil
}

// AsInt unwraps an integer output.
func (o Output) AsInt() (int64, error) {
	if o.kind != OutputInteger {
		return 0, barleyerrors.NewOutputConversionError(OutputInteger.String())
	}
	return o.integer, nil
}

// AsFloat unwraps a float output.
func (o Output) AsFloat() (float64, error) {
	if o.kind != OutputFloat {
		return 0, barleyerrors.NewOutputConversionError(OutputFloat.String())
	}
	return o.float, nil
}

// AsBool unwraps a boolean output.
func (o Output) AsBool() (bool, error) {
	if o.kind != OutputBoolean {
		return false, barleyerrors.NewOutputConversionError(OutputBoolean.String())
	}
	return o.boolean, nil
}
