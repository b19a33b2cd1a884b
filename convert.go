package cmdargs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/language"

	"github.com/quindle/cmdargs/internal/culture"
)

// Built-in converters. Numeric converters honor the parse-wide culture:
// grouping separators are stripped and the locale's decimal separator is
// rewritten before parsing, so "1.234,5" converts under a German culture to
// the same value as "1234.5" under the invariant one. An empty input string
// is a valid input and is handed to the converter unchanged.

// ConvertString passes the text through.
func ConvertString(text string, _ language.Tag) (interface{}, error) {
	return text, nil
}

// ConvertBool accepts the strconv boolean forms.
func ConvertBool(text string, _ language.Tag) (interface{}, error) {
	v, err := strconv.ParseBool(text)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a boolean: %w", text, err)
	}
	return v, nil
}

// ConvertInt converts to int.
func ConvertInt(text string, tag language.Tag) (interface{}, error) {
	v, err := strconv.ParseInt(culture.Normalize(text, tag), 10, 0)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not an integer: %w", text, err)
	}
	return int(v), nil
}

// ConvertInt64 converts to int64.
func ConvertInt64(text string, tag language.Tag) (interface{}, error) {
	v, err := strconv.ParseInt(culture.Normalize(text, tag), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not an integer: %w", text, err)
	}
	return v, nil
}

// ConvertUint64 converts to uint64.
func ConvertUint64(text string, tag language.Tag) (interface{}, error) {
	v, err := strconv.ParseUint(culture.Normalize(text, tag), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not an unsigned integer: %w", text, err)
	}
	return v, nil
}

// ConvertFloat64 converts to float64.
func ConvertFloat64(text string, tag language.Tag) (interface{}, error) {
	v, err := strconv.ParseFloat(culture.Normalize(text, tag), 64)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a number: %w", text, err)
	}
	return v, nil
}

// ConvertTime converts using permissive date parsing (dateparse), accepting
// most common layouts.
func ConvertTime(text string, _ language.Tag) (interface{}, error) {
	v, err := dateparse.ParseAny(text)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a date/time: %w", text, err)
	}
	return v, nil
}

// ConvertDuration converts using time.ParseDuration.
func ConvertDuration(text string, _ language.Tag) (interface{}, error) {
	v, err := time.ParseDuration(text)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a duration: %w", text, err)
	}
	return v, nil
}

// converterFor returns the converter used for an argument's values.
func (a *Argument) converterFor() ConverterFunc {
	if a.Converter != nil {
		return a.Converter
	}
	if a.Kind == Switch {
		return ConvertBool
	}
	return ConvertString
}

func (a *Argument) keyConverterFor() ConverterFunc {
	if a.KeyConverter != nil {
		return a.KeyConverter
	}
	return ConvertString
}

func (a *Argument) valueConverterFor() ConverterFunc {
	if a.ValueConverter != nil {
		return a.ValueConverter
	}
	return ConvertString
}
