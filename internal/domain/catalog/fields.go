package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Fields es un body JSON indexado por nombre de campo.
// Guardamos el JSON crudo para detectar presencia y null (igual que un PATCH real).
type Fields map[string]json.RawMessage

// IgnoredFields se aceptan en el body pero nunca se escriben (id es asignado por el store).
var IgnoredFields = []string{"id"}

func DecodeFields(r io.Reader) (Fields, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, Invalid("", "invalid json")
	}
	return ParseFields(b)
}

func ParseFields(b []byte) (Fields, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return Fields{}, nil
	}
	var f Fields
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, Invalid("", "invalid json: body must be an object")
	}
	if f == nil {
		return nil, Invalid("", "invalid json: body must be an object")
	}
	return f, nil
}

// Allow rechaza cualquier campo fuera de la allow-list.
func (f Fields) Allow(allowed []string) error {
	var unknown []string
	for k := range f {
		if contains(allowed, k) || contains(IgnoredFields, k) {
			continue
		}
		unknown = append(unknown, k)
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return Invalid("", "unknown field(s): %s", strings.Join(unknown, ", "))
}

func (f Fields) has(name string) (json.RawMessage, bool) {
	v, ok := f[name]
	return v, ok
}

func isNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}

// String devuelve nil si el campo no vino. null se normaliza a "".
func (f Fields) String(name string) (*string, error) {
	v, ok := f.has(name)
	if !ok {
		return nil, nil
	}
	s := ""
	if !isNull(v) {
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, Invalid(name, "must be a string")
		}
	}
	return &s, nil
}

// Int acepta números enteros y, para formularios, strings numéricos.
func (f Fields) Int(name string) (Nullable[int], error) {
	v, ok := f.has(name)
	if !ok {
		return Nullable[int]{}, nil
	}
	if isNull(v) {
		return Null[int](), nil
	}

	var num float64
	if err := json.Unmarshal(v, &num); err != nil {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return Nullable[int]{}, Invalid(name, "must be an integer")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return Null[int](), nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Nullable[int]{}, Invalid(name, "must be an integer")
		}
		return Some(n), nil
	}
	if num != math.Trunc(num) || num > math.MaxInt32 || num < math.MinInt32 {
		return Nullable[int]{}, Invalid(name, "must be an integer")
	}
	return Some(int(num)), nil
}

func (f Fields) Date(name string) (Nullable[Date], error) {
	v, ok := f.has(name)
	if !ok {
		return Nullable[Date]{}, nil
	}
	if isNull(v) {
		return Null[Date](), nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return Nullable[Date]{}, Invalid(name, "must be a date (YYYY-MM-DD)")
	}
	if strings.TrimSpace(s) == "" {
		return Null[Date](), nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return Nullable[Date]{}, Invalid(name, "must be a date (YYYY-MM-DD)")
	}
	return Some(d), nil
}

// Strings devuelve nil si el campo no vino. null se normaliza a lista vacía.
func (f Fields) Strings(name string) (*[]string, error) {
	v, ok := f.has(name)
	if !ok {
		return nil, nil
	}
	out := []string{}
	if !isNull(v) {
		if err := json.Unmarshal(v, &out); err != nil {
			return nil, Invalid(name, "must be an array of strings")
		}
		if out == nil {
			out = []string{}
		}
	}
	return &out, nil
}

// Required valida que un string obligatorio, si está presente, no esté vacío.
func Required(name string, v *string) error {
	if v != nil && strings.TrimSpace(*v) == "" {
		return Invalid(name, "is required")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
