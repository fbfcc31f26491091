package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProcessWithTail(t *testing.T) {
	type call struct{ offset, count int }
	tests := []struct {
		size, lanes int
		want        []call
	}{
		{size: 8, lanes: 4, want: []call{{0, 4}, {4, 4}}},
		{size: 10, lanes: 4, want: []call{{0, 4}, {4, 4}, {8, 2}}},
		{size: 3, lanes: 4, want: []call{{0, 3}}},
		{size: 0, lanes: 4, want: nil},
		{size: 5, lanes: 0, want: []call{{0, 5}}},
	}
	for _, tt := range tests {
		var got []call
		ProcessWithTail(tt.size, tt.lanes,
			func(offset int) { got = append(got, call{offset, tt.lanes}) },
			func(offset, count int) { got = append(got, call{offset, count}) },
		)
		if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(call{})); diff != "" {
			t.Errorf("ProcessWithTail(%d, %d) mismatch (-want +got):\n%s", tt.size, tt.lanes, diff)
		}
	}
}
