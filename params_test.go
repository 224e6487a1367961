package v2ex

import (
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func TestParamsValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   Params
		expected url.Values
	}{
		{"empty", Params{}, url.Values{}},
		{"int", Params{"p": 2}, url.Values{"p": {"2"}}},
		{"int64", Params{"id": int64(17452804)}, url.Values{"id": {"17452804"}}},
		{"string", Params{"node": "python"}, url.Values{"node": {"python"}}},
		{"bool", Params{"full": true}, url.Values{"full": {"true"}}},
		{"float", Params{"ratio": 0.5}, url.Values{"ratio": {"0.5"}}},
		{"nil", Params{"empty": nil}, url.Values{"empty": {""}}},
		{"string list", Params{"tag": []string{"go", "python"}}, url.Values{"tag": {"go", "python"}}},
		{"int list", Params{"id": []int{1, 2}}, url.Values{"id": {"1", "2"}}},
		{"mixed list", Params{"v": []any{1, "a", true}}, url.Values{"v": {"1", "a", "true"}}},
		{"mapping", Params{"filter": map[string]any{"node": "go"}}, url.Values{"filter": {`{"node":"go"}`}}},
		{"string mapping", Params{"filter": map[string]string{"a": "b"}}, url.Values{"filter": {`{"a":"b"}`}}},
		{"other type", Params{"u": uint8(7)}, url.Values{"u": {"7"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.params.Values()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParamsValues_NestedList(t *testing.T) {
	t.Parallel()

	_, err := Params{"v": []any{[]any{1}}}.Values()

	if err == nil {
		t.Fatal("expected error for nested list")
	}

	if !strings.Contains(err.Error(), `param "v": nested list at index 0 is not supported`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParamsValues_UnencodableMapping(t *testing.T) {
	t.Parallel()

	_, err := Params{"bad": map[string]any{"ch": make(chan int)}}.Values()

	if err == nil {
		t.Fatal("expected error for unencodable mapping")
	}

	if !strings.Contains(err.Error(), `param "bad"`) {
		t.Errorf("unexpected error: %v", err)
	}
}
