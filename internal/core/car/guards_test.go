package car

import (
	"math"
	"reflect"
	"testing"

	"github.com/example/carline/internal/core/validation"
)

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name        string
		ctx         SubmitContext
		wantAllowed bool
		wantFields  []string
	}{
		{
			name:        "valid submission",
			ctx:         SubmitContext{Brand: "Toyota", Model: "Corolla", Doors: validation.Number(4), LineID: "line1"},
			wantAllowed: true,
		},
		{
			name:        "line id is not validated",
			ctx:         SubmitContext{Brand: "Toyota", Model: "Corolla", Doors: validation.Number(4), LineID: ""},
			wantAllowed: true,
		},
		{
			name:        "doors below minimum",
			ctx:         SubmitContext{Brand: "Toyota", Model: "Corolla", Doors: validation.Number(2), LineID: "line1"},
			wantAllowed: false,
			wantFields:  []string{"door"},
		},
		{
			name:        "doors above maximum",
			ctx:         SubmitContext{Brand: "Toyota", Model: "Corolla", Doors: validation.Number(6), LineID: "line1"},
			wantAllowed: false,
			wantFields:  []string{"door"},
		},
		{
			name:        "missing brand and model",
			ctx:         SubmitContext{Doors: validation.Number(3), LineID: "line1"},
			wantAllowed: false,
			wantFields:  []string{"brand", "model"},
		},
		{
			name:        "everything missing",
			ctx:         SubmitContext{Doors: validation.Number(0)},
			wantAllowed: false,
			wantFields:  []string{"brand", "model", "door"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSubmit(tt.ctx)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanSubmit() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !reflect.DeepEqual(result.Fields, tt.wantFields) {
				t.Errorf("CanSubmit() Fields = %v, want %v", result.Fields, tt.wantFields)
			}

			err := result.Error()
			if tt.wantAllowed && err != nil {
				t.Errorf("CanSubmit().Error() = %v, want nil", err)
			}
			if !tt.wantAllowed && err == nil {
				t.Error("CanSubmit().Error() = nil, want error")
			}
		})
	}
}

func TestParseDoors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantNaN bool
	}{
		{name: "integer", raw: "4", want: 4},
		{name: "surrounding space", raw: " 5 ", want: 5},
		{name: "blank is zero", raw: "", want: 0},
		{name: "negative", raw: "-3", want: -3},
		{name: "text is NaN", raw: "four", wantNaN: true},
		{name: "fraction is NaN", raw: "4.5", wantNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDoors(tt.raw)
			if got.Kind != validation.KindNumber {
				t.Fatalf("ParseDoors(%q) kind = %v, want number", tt.raw, got.Kind)
			}
			if tt.wantNaN {
				if !math.IsNaN(got.Num) {
					t.Errorf("ParseDoors(%q) = %v, want NaN", tt.raw, got.Num)
				}
				return
			}
			if got.Num != tt.want {
				t.Errorf("ParseDoors(%q) = %v, want %v", tt.raw, got.Num, tt.want)
			}
		})
	}
}
