package submitfeed

import (
	"testing"

	"github.com/mkessler/matchcore/pkg/engine"
)

func TestDecode_Order(t *testing.T) {
	raw := `{"type":"order","id":1001,"side":"BUY","price_tick":100000,"quantity":50,"kind":"LIMIT","tif":"GTC","participant_tag":7,"timestamp":42}`

	sub, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if sub.IsCancel {
		t.Fatalf("Decode() returned IsCancel = true for an order envelope")
	}
	want := engine.Order{
		ID:             1001,
		Side:           engine.Buy,
		PriceTick:      100000,
		Quantity:       50,
		Kind:           engine.Limit,
		TIF:            engine.GTC,
		ParticipantTag: 7,
		Timestamp:      42,
	}
	if sub.Order != want {
		t.Errorf("Decode() order = %+v, want %+v", sub.Order, want)
	}
}

func TestDecode_Cancel(t *testing.T) {
	raw := `{"type":"cancel","cancel_id":1001}`

	sub, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !sub.IsCancel || sub.CancelID != 1001 {
		t.Errorf("Decode() = %+v, want cancel of id 1001", sub)
	}
}

func TestDecode_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"type":"order"`},
		{"unknown type", `{"type":"modify"}`},
		{"cancel missing id", `{"type":"cancel"}`},
		{"unknown side", `{"type":"order","side":"LONG","kind":"LIMIT","tif":"GTC"}`},
		{"unknown kind", `{"type":"order","side":"BUY","kind":"ICEBERG","tif":"GTC"}`},
		{"unknown tif", `{"type":"order","side":"BUY","kind":"LIMIT","tif":"GFD"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.raw)); err == nil {
				t.Errorf("Decode(%q) returned no error, want rejection", tt.raw)
			}
		})
	}
}
