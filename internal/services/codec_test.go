package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/adanyl0v/go-tasks/internal/models"
)

func TestCodec_RoundTrip(t *testing.T) {
	tasks := models.TaskList{
		{ID: "a", Text: "buy milk"},
		{ID: "b", Text: "walk dog", Completed: true},
	}

	value, err := encodeTasks(tasks)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := decodeTasks(value)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(tasks, decoded) {
		t.Errorf("expected %+v, got %+v", tasks, decoded)
	}
}

func TestCodec_EmptyListEncodesAsArray(t *testing.T) {
	value, err := encodeTasks(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(value) != "[]" {
		t.Fatalf("expected [], got %s", value)
	}

	decoded, err := decodeTasks(value)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected an empty list, got %d tasks", len(decoded))
	}
}

func TestCodec_DecodeRejectsMalformedValues(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"not json", "{"},
		{"object instead of array", `{"id":"a","text":"x","completed":false}`},
		{"unknown field", `[{"id":"a","text":"x","completed":false,"extra":1}]`},
		{"trailing content", `[] []`},
		{"missing id", `[{"text":"x","completed":false}]`},
		{"empty id", `[{"id":"","text":"x","completed":false}]`},
		{
			"duplicate ids",
			`[{"id":"a","text":"x","completed":false},{"id":"a","text":"y","completed":true}]`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeTasks([]byte(tc.value))
			if err == nil {
				t.Fatalf("expected %s to be rejected", tc.name)
			}
			if !errors.Is(err, errMalformedTaskList) {
				t.Errorf("expected a malformed list error, got %v", err)
			}
		})
	}
}

func TestCodec_DecodeKeepsOrder(t *testing.T) {
	value := []byte(`[` +
		`{"id":"c","text":"third","completed":false},` +
		`{"id":"a","text":"first","completed":true},` +
		`{"id":"b","text":"second","completed":false}]`)

	decoded, err := decodeTasks(value)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []string{"c", "a", "b"}
	for i, id := range want {
		if decoded[i].ID != id {
			t.Fatalf("expected id %q at %d, got %q", id, i, decoded[i].ID)
		}
	}
}
