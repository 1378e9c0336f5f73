package questiongen

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AnswerKind tags the dynamic type of an AnswerValue.
type AnswerKind int

const (
	KindNull AnswerKind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindObject
)

// AnswerValue is a tagged union over the value shapes an answer can
// take: a single option text, a list of selected options, or a mapping
// from item to category. It round-trips through JSON unchanged, so
// snapshots and scoring see the same value the model produced.
type AnswerValue struct {
	Kind   AnswerKind
	Str    string
	Num    float64
	Bool   bool
	List   []AnswerValue
	Object map[string]AnswerValue
}

// Null returns the absent-answer value.
func Null() AnswerValue { return AnswerValue{Kind: KindNull} }

// StringValue wraps a plain string answer.
func StringValue(s string) AnswerValue { return AnswerValue{Kind: KindString, Str: s} }

// NumberValue wraps a numeric answer.
func NumberValue(n float64) AnswerValue { return AnswerValue{Kind: KindNumber, Num: n} }

// BoolValue wraps a boolean answer.
func BoolValue(b bool) AnswerValue { return AnswerValue{Kind: KindBool, Bool: b} }

// ListValue wraps an ordered list answer (multi-select selections).
func ListValue(items ...AnswerValue) AnswerValue {
	return AnswerValue{Kind: KindList, List: items}
}

// StringList builds a list value from plain strings.
func StringList(items ...string) AnswerValue {
	vals := make([]AnswerValue, len(items))
	for i, s := range items {
		vals[i] = StringValue(s)
	}
	return ListValue(vals...)
}

// ObjectValue wraps an item→category mapping answer.
func ObjectValue(m map[string]AnswerValue) AnswerValue {
	return AnswerValue{Kind: KindObject, Object: m}
}

// StringMap builds an object value from a plain string map.
func StringMap(m map[string]string) AnswerValue {
	out := make(map[string]AnswerValue, len(m))
	for k, v := range m {
		out[k] = StringValue(v)
	}
	return ObjectValue(out)
}

// IsNull reports whether the value is absent.
func (v AnswerValue) IsNull() bool { return v.Kind == KindNull }

// Equal reports structural equality: kinds must match, lists compare
// element-wise in order, objects compare key-by-key. A string never
// equals a one-element list containing it.
func Equal(a, b AnswerValue) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindString:
		return a.Str == b.Str
	case KindNumber:
		return a.Num == b.Num
	case KindBool:
		return a.Bool == b.Bool
	case KindList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.Object) != len(b.Object) {
			return false
		}
		for k, av := range a.Object {
			bv, ok := b.Object[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON emits the underlying value in its natural JSON form.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case KindObject:
		if v.Object == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Object)
	}
	return nil, fmt.Errorf("unknown answer kind %d", v.Kind)
}

// UnmarshalJSON accepts any JSON value and tags it.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = fromAny(raw)
	return nil
}

func fromAny(raw any) AnswerValue {
	switch t := raw.(type) {
	case nil:
		return Null()
	case string:
		return StringValue(t)
	case bool:
		return BoolValue(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return StringValue(t.String())
		}
		return NumberValue(f)
	case float64:
		return NumberValue(t)
	case []any:
		items := make([]AnswerValue, len(t))
		for i, e := range t {
			items[i] = fromAny(e)
		}
		return ListValue(items...)
	case map[string]any:
		m := make(map[string]AnswerValue, len(t))
		for k, e := range t {
			m[k] = fromAny(e)
		}
		return ObjectValue(m)
	}
	return Null()
}

// String renders the value for display, not for comparison.
func (v AnswerValue) String() string {
	switch v.Kind {
	case KindNull:
		return ""
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.String()
		}
		return strings.Join(parts, ", ")
	case KindObject:
		keys := make([]string, 0, len(v.Object))
		for k := range v.Object {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.Object[k].String()
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
