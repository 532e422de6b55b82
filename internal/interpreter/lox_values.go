package interpreter

import (
	"fmt"
	"strconv"
)

type ValueType uint

const (
	ValueNilType ValueType = iota
	ValueBoolType
	ValueFloatType
	ValueStringType
)

type Value interface {
	Type() ValueType
	fmt.Stringer
}

type (
	ValueNil    struct{}
	ValueBool   bool
	ValueFloat  float64
	ValueString string
)

var (
	NilValue         = ValueNil{}
	EmptyStringValue = ValueString("")
)

// Type implements Value.
func (v ValueNil) Type() ValueType {
	return ValueNilType
}

// Type implements Value.
func (v ValueBool) Type() ValueType {
	return ValueBoolType
}

// Type implements Value.
func (v ValueFloat) Type() ValueType {
	return ValueFloatType
}

// Type implements Value.
func (v ValueString) Type() ValueType {
	return ValueStringType
}

func (v ValueNil) String() string {
	return "nil"
}

func (v ValueBool) String() string {
	return strconv.FormatBool(bool(v))
}

// String drops the fractional part of integral numbers: 3.0 prints as "3".
func (v ValueFloat) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

func (v ValueString) String() string {
	return string(v)
}

var (
	_ Value = ValueNil{}
	_ Value = ValueBool(false)
	_ Value = ValueFloat(0)
	_ Value = ValueString("")
)
