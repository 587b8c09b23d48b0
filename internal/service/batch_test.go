package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecodeBatch_KeepsNumbersExact(t *testing.T) {
	records, err := DecodeBatch(strings.NewReader(`[{"id":"g1","rtp":96.55}, 3]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records=%d want 2", len(records))
	}
	obj := records[0].(map[string]any)
	if n, ok := obj["rtp"].(json.Number); !ok || n.String() != "96.55" {
		t.Fatalf("rtp=%#v", obj["rtp"])
	}
}

func TestDecodeBatch_AllowsTrailingWhitespace(t *testing.T) {
	records, err := DecodeBatch(strings.NewReader("[{\"id\":\"a\"}]\n  \n"))
	if err != nil || len(records) != 1 {
		t.Fatalf("records=%v err=%v", records, err)
	}
}

func TestDecodeBatch_RejectsNonArrays(t *testing.T) {
	for _, body := range []string{"", "{}", "null", `"x"`, "[1,", `[{"id":"a"}] garbage {`, `[] []`} {
		if _, err := DecodeBatch(strings.NewReader(body)); !errors.Is(err, ErrNotArray) {
			t.Fatalf("body %q: err=%v", body, err)
		}
	}
}
