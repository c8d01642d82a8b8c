package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestStringListScanFallsBackToEmpty(t *testing.T) {
	cases := []struct {
		name string
		src  any
	}{
		{"nil", nil},
		{"malformed", "[S,M"},
		{"json null", "null"},
		{"object", []byte(`{"a":1}`)},
		{"number", int64(4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l StringList
			if err := l.Scan(tc.src); err != nil {
				t.Fatalf("Scan returned error: %v", err)
			}
			if l == nil || len(l) != 0 {
				t.Fatalf("want empty non-nil list, got %#v", l)
			}
		})
	}
}

func TestStringListRoundTripKeepsOrder(t *testing.T) {
	in := StringList{"XL", "S", "M"}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out StringList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(out) != 3 || out[0] != "XL" || out[1] != "S" || out[2] != "M" {
		t.Fatalf("got %v", out)
	}
}

func TestNilListsEncodeAsEmptyArrays(t *testing.T) {
	var l StringList
	v, _ := l.Value()
	if v != "[]" {
		t.Fatalf("Value() = %v", v)
	}
	b, _ := json.Marshal(struct {
		Sizes StringList `json:"sizes"`
		Items LineItems  `json:"items"`
	}{})
	if string(b) != `{"sizes":[],"items":[]}` {
		t.Fatalf("json = %s", b)
	}
}

func TestLineItemsKeepOpaqueShapes(t *testing.T) {
	var items LineItems
	if err := json.Unmarshal([]byte(`[{"productId":"p1","qty":2},"gift-card",7]`), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	v, err := items.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var back LineItems
	if err := back.Scan([]byte(v.(string))); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	b, _ := json.Marshal(back)
	if string(b) != `[{"productId":"p1","qty":2},"gift-card",7]` {
		t.Fatalf("round trip = %s", b)
	}
}

func TestDecimalMarshalsAsNumber(t *testing.T) {
	b, _ := json.Marshal(Product{Price: decimal.RequireFromString("19.99")})
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	if _, ok := m["price"].(float64); !ok {
		t.Fatalf("price should be a JSON number, got %T (%s)", m["price"], b)
	}
}

func TestUserCanAccess(t *testing.T) {
	owner := User{ID: "u1", Role: RoleUser}
	admin := User{ID: "a1", Role: RoleAdmin}
	other := User{ID: "u2", Role: RoleUser}

	if !owner.CanAccess("u1") {
		t.Fatal("owner denied")
	}
	if !admin.CanAccess("u1") {
		t.Fatal("admin denied")
	}
	if other.CanAccess("u1") {
		t.Fatal("stranger allowed")
	}
}
