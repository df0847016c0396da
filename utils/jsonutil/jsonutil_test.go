package jsonutil_test

import (
	"testing"

	"cssb/geom"
	"cssb/utils/jsonutil"
)

func TestRoundTrip(t *testing.T) {
	r := geom.NewRect(3, 4.5)

	data, err := jsonutil.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"width":3,"height":4.5}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	back, err := jsonutil.Unmarshal[geom.Rect](data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != r {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, r)
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	if _, err := jsonutil.Unmarshal[geom.Rect]([]byte(`{"width":`)); err == nil {
		t.Error("Unmarshal() with malformed input should fail")
	}
}
