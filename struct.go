package cmdargs

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/iancoleman/strcase"

	"github.com/quindle/cmdargs/errs"
	"github.com/quindle/cmdargs/types/orderedmap"
)

// The struct provider derives an argument set from a tagged struct and binds
// parsed values back onto its fields during finalization.
//
// Tag syntax, semicolon-separated key:value entries under the "cmdargs" key:
//
//	type options struct {
//		Output  string   `cmdargs:"short:o;desc:output path;required:true"`
//		Verbose bool     `cmdargs:"short:v"`
//		Include []string `cmdargs:"name:include;sep:,"`
//		Props   map[string]string
//		Ignored string   `cmdargs:"-"`
//	}
//
// Untagged exported fields still become arguments under their lower-camel
// field name. Booleans become switches, slices multi-value arguments and
// maps dictionary arguments; converters follow the field's element type.

// ValidateArguments lets a target struct check cross-field consistency after
// all values are applied. A returned error fails the parse.
type ValidateArguments interface {
	ValidateArguments() error
}

type boundField struct {
	arg   *Argument
	value reflect.Value
}

// NewParserFromStruct derives arguments from target's tagged fields and
// returns a parser that fills the struct on a successful parse.
func NewParserFromStruct[T any](target *T, configs ...ConfigureParserFunc) (*Parser, error) {
	p, err := NewParserWith(configs...)
	if err != nil {
		return nil, err
	}
	if err := p.bindStruct(target); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) bindStruct(target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("target must be a pointer to a struct, got %T", target)
	}
	elem := v.Elem()
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("cmdargs")
		if tag == "-" {
			continue
		}
		arg, err := argumentFromField(field, tag)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		if err := p.AddFlag(arg); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		p.fields = append(p.fields, boundField{arg: arg, value: elem.Field(i)})
	}
	p.target = target
	if validator, ok := target.(ValidateArguments); ok {
		p.finalizer = validator.ValidateArguments
	}
	return nil
}

func argumentFromField(field reflect.StructField, tag string) (*Argument, error) {
	arg := &Argument{Name: strcase.ToLowerCamel(field.Name)}
	inferKind(arg, field.Type)

	if tag != "" {
		for _, entry := range strings.Split(tag, ";") {
			if entry == "" {
				continue
			}
			key, value, found := strings.Cut(entry, ":")
			if !found {
				return nil, fmt.Errorf("malformed tag entry '%s'", entry)
			}
			if err := applyTagEntry(arg, key, value); err != nil {
				return nil, err
			}
		}
	}
	return arg, nil
}

func applyTagEntry(arg *Argument, key, value string) error {
	switch key {
	case "name":
		arg.Name = value
	case "short":
		runes := []rune(value)
		if len(runes) != 1 {
			return fmt.Errorf("short name '%s' must be a single character", value)
		}
		arg.Short = runes[0]
	case "alias":
		arg.Aliases = append(arg.Aliases, strings.Split(value, ",")...)
	case "desc":
		arg.Description = value
	case "category":
		arg.Category = value
	case "required":
		required, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("required: %w", err)
		}
		arg.Required = required
	case "pos":
		pos, err := strconv.Atoi(value)
		if err != nil || pos < 0 {
			return fmt.Errorf("pos '%s' must be a non-negative integer", value)
		}
		arg.Position = &pos
	case "default":
		arg.DefaultValue = value
	case "sep":
		arg.MultiValueSeparator = value
	case "greedy":
		greedy, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("greedy: %w", err)
		}
		arg.GreedyValues = greedy
	case "kvsep":
		arg.KeyValueSeparator = value
	case "hidden":
		hidden, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("hidden: %w", err)
		}
		arg.Hidden = hidden
	case "secure":
		secure, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("secure: %w", err)
		}
		arg.Secure.IsSecure = secure
	case "prompt":
		arg.Secure.IsSecure = true
		arg.Secure.Prompt = value
	case "inline":
		inline, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("inline: %w", err)
		}
		arg.InlineOnly = inline
	default:
		return fmt.Errorf("unknown tag key '%s'", key)
	}
	return nil
}

// inferKind selects the argument kind and converters from the field type.
func inferKind(arg *Argument, t reflect.Type) {
	switch t.Kind() {
	case reflect.Slice:
		arg.Kind = MultiValue
		arg.Converter = converterForType(t.Elem())
	case reflect.Map:
		arg.Kind = Dictionary
		arg.KeyConverter = converterForType(t.Key())
		arg.ValueConverter = converterForType(t.Elem())
	case reflect.Bool:
		arg.Kind = Switch
	default:
		arg.Kind = SingleValue
		arg.Converter = converterForType(t)
	}
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

func converterForType(t reflect.Type) ConverterFunc {
	if t == timeType {
		return ConvertTime
	}
	if t == durationType {
		return ConvertDuration
	}
	switch t.Kind() {
	case reflect.Bool:
		return ConvertBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return ConvertInt
	case reflect.Int64:
		return ConvertInt64
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ConvertUint64
	case reflect.Float32, reflect.Float64:
		return ConvertFloat64
	default:
		return ConvertString
	}
}

// applyFields assigns bound values and defaults onto the target struct. It
// runs during finalization; a value that cannot be assigned to its field
// fails the parse.
func (p *Parser) applyFields() *errs.Error {
	for _, bf := range p.fields {
		var value interface{}
		switch {
		case p.run != nil && p.run.set[bf.arg.id]:
			value = p.run.values[bf.arg.id]
		case bf.arg.DefaultValue != nil:
			value = bf.arg.DefaultValue
			// string defaults of non-string fields run through the converter
			if text, ok := value.(string); ok && bf.value.Kind() != reflect.String {
				converted, cerr := p.convertOne(bf.arg, bf.arg.converterFor(), text)
				if cerr != nil {
					return errs.ErrApplyValueError.
						WithArgs(bf.arg.Name).
						ForArgument(bf.arg.Name).
						Wrap(cerr)
				}
				value = converted
			}
		default:
			continue
		}
		if err := assignField(bf.value, value); err != nil {
			return errs.ErrApplyValueError.
				WithArgs(bf.arg.Name).
				ForArgument(bf.arg.Name).
				Wrap(err)
		}
	}
	return nil
}

func assignField(field reflect.Value, value interface{}) error {
	if value == nil {
		return nil
	}
	t := field.Type()
	switch t.Kind() {
	case reflect.Slice:
		list, ok := value.([]interface{})
		if !ok {
			return assignScalar(field, value)
		}
		out := reflect.MakeSlice(t, 0, len(list))
		for _, item := range list {
			iv, err := coerce(reflect.ValueOf(item), t.Elem())
			if err != nil {
				return err
			}
			out = reflect.Append(out, iv)
		}
		field.Set(out)
		return nil
	case reflect.Map:
		dict, ok := value.(*orderedmap.OrderedMap[interface{}, interface{}])
		if !ok {
			return assignScalar(field, value)
		}
		out := reflect.MakeMapWithSize(t, dict.Len())
		var ferr error
		dict.ForEach(func(k, v interface{}) bool {
			kv, err := coerce(reflect.ValueOf(k), t.Key())
			if err != nil {
				ferr = err
				return false
			}
			vv, err := coerce(reflect.ValueOf(v), t.Elem())
			if err != nil {
				ferr = err
				return false
			}
			out.SetMapIndex(kv, vv)
			return true
		})
		if ferr != nil {
			return ferr
		}
		field.Set(out)
		return nil
	default:
		return assignScalar(field, value)
	}
}

func assignScalar(field reflect.Value, value interface{}) error {
	coerced, err := coerce(reflect.ValueOf(value), field.Type())
	if err != nil {
		return err
	}
	field.Set(coerced)
	return nil
}

func coerce(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if v.Type().ConvertibleTo(t) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot assign %s to %s", v.Type(), t)
}
