package questiongen

import (
	"encoding/json"
	"testing"
)

func TestEqual_Strings(t *testing.T) {
	if !Equal(StringValue("12"), StringValue("12")) {
		t.Fatal("identical strings must be equal")
	}
	if Equal(StringValue("12"), StringValue("12 ")) {
		t.Fatal("comparison is exact, no trimming")
	}
}

func TestEqual_StringVsList(t *testing.T) {
	if Equal(StringValue("A"), StringList("A")) {
		t.Fatal("a string must not equal a one-element list containing it")
	}
}

func TestEqual_ListsOrderSensitive(t *testing.T) {
	if !Equal(StringList("A", "C"), StringList("A", "C")) {
		t.Fatal("identical lists must be equal")
	}
	if Equal(StringList("A", "C"), StringList("C", "A")) {
		t.Fatal("list comparison is order-sensitive")
	}
	if Equal(StringList("A"), StringList("A", "C")) {
		t.Fatal("lists of different lengths must differ")
	}
}

func TestEqual_Objects(t *testing.T) {
	a := StringMap(map[string]string{"Kucing": "Mamalia", "Elang": "Burung"})
	b := StringMap(map[string]string{"Elang": "Burung", "Kucing": "Mamalia"})
	if !Equal(a, b) {
		t.Fatal("object comparison ignores key order")
	}

	c := StringMap(map[string]string{"Kucing": "Burung", "Elang": "Burung"})
	if Equal(a, c) {
		t.Fatal("objects with different values must differ")
	}

	d := StringMap(map[string]string{"Kucing": "Mamalia"})
	if Equal(a, d) {
		t.Fatal("objects with different key sets must differ")
	}
}

func TestEqual_Null(t *testing.T) {
	if !Equal(Null(), Null()) {
		t.Fatal("null equals null")
	}
	if Equal(Null(), StringValue("")) {
		t.Fatal("null must not equal an empty string")
	}
}

func TestAnswerValue_JSONRoundTrip(t *testing.T) {
	cases := []AnswerValue{
		Null(),
		StringValue("Jawaban A"),
		NumberValue(42),
		BoolValue(true),
		StringList("A", "C"),
		StringMap(map[string]string{"Paus": "Mamalia"}),
		ListValue(StringValue("A"), NumberValue(3), BoolValue(false)),
	}

	for _, orig := range cases {
		data, err := json.Marshal(orig)
		if err != nil {
			t.Fatalf("marshal %v: %v", orig, err)
		}
		var got AnswerValue
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if !Equal(orig, got) {
			t.Fatalf("round trip changed value: %v -> %v", orig, got)
		}
	}
}

func TestAnswerValue_String(t *testing.T) {
	if got := StringList("A", "C").String(); got != "A, C" {
		t.Fatalf("unexpected list rendering: %q", got)
	}
	if got := NumberValue(3.5).String(); got != "3.5" {
		t.Fatalf("unexpected number rendering: %q", got)
	}
	if got := Null().String(); got != "" {
		t.Fatalf("null should render empty, got %q", got)
	}
}
