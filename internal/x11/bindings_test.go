package x11

import (
	"reflect"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestLockCombinations(t *testing.T) {
	caps := uint16(xproto.ModMaskLock)
	num := uint16(xproto.ModMask2)
	scroll := uint16(xproto.ModMask5)

	tests := []struct {
		name  string
		masks []uint16
		want  []uint16
	}{
		{"caps only", []uint16{caps, 0, 0}, []uint16{0, caps}},
		{"caps and num", []uint16{caps, num, 0}, []uint16{0, caps, num, caps | num}},
		{"num equals caps", []uint16{caps, caps, 0}, []uint16{0, caps}},
		{"all three", []uint16{caps, num, scroll}, []uint16{
			0, caps, num, caps | num, scroll, caps | scroll, num | scroll, caps | num | scroll,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lockCombinations(tt.masks...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lockCombinations(%v) = %v, want %v", tt.masks, got, tt.want)
			}
		})
	}
}
