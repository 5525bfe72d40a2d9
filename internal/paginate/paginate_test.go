package paginate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_TwentyItemsThirdPage(t *testing.T) {
	page := Paginate(seq(20), 9, 3)

	if diff := cmp.Diff([]int{18, 19}, page.Items); diff != "" {
		t.Fatalf("Items mismatch (-want +got):\n%s", diff)
	}
	if page.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", page.TotalPages)
	}
	if !page.ShowControl() {
		t.Fatalf("ShowControl = false, want true for 20 items of 9")
	}
	if page.HasNext() || !page.HasPrev() {
		t.Fatalf("HasNext=%v HasPrev=%v on last page", page.HasNext(), page.HasPrev())
	}
	if page.First() != 18 {
		t.Fatalf("First = %d, want 18", page.First())
	}
}

func TestPaginate_PagesReassembleCollection(t *testing.T) {
	for size := 0; size <= 40; size++ {
		for _, pageSize := range []int{1, 2, 5, 9, 10} {
			items := seq(size)
			total := TotalPages(size, pageSize)

			var joined []int
			for idx := 1; idx <= total; idx++ {
				page := Paginate(items, pageSize, idx)
				if len(page.Items) > pageSize {
					t.Fatalf("size=%d pageSize=%d idx=%d: %d items exceeds page size", size, pageSize, idx, len(page.Items))
				}
				if len(page.Items) == 0 {
					t.Fatalf("size=%d pageSize=%d idx=%d: empty page inside range", size, pageSize, idx)
				}
				joined = append(joined, page.Items...)
			}
			if diff := cmp.Diff(items, joined, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("size=%d pageSize=%d: reassembled mismatch (-want +got):\n%s", size, pageSize, diff)
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		size, pageSize, want int
	}{
		{0, 9, 0},
		{1, 9, 1},
		{9, 9, 1},
		{10, 9, 2},
		{18, 9, 2},
		{19, 9, 3},
		{5, 0, 1},
		{10, -1, 2},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.size, tt.pageSize); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.size, tt.pageSize, got, tt.want)
		}
	}
}

func TestShowControl_HiddenWhenCollectionFitsOnePage(t *testing.T) {
	for size := 0; size <= 9; size++ {
		if Paginate(seq(size), 9, 1).ShowControl() {
			t.Fatalf("ShowControl = true for %d items, want false", size)
		}
	}
	if !Paginate(seq(10), 9, 1).ShowControl() {
		t.Fatalf("ShowControl = false for 10 items, want true")
	}
}

func TestPaginate_OutOfRangeIndex(t *testing.T) {
	page := Paginate(seq(5), 9, 4)
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("Items = %#v, want empty non-nil slice", page.Items)
	}

	for _, index := range []int{4, 1024819115206086203, math.MaxInt} {
		page = Paginate(seq(20), 9, index)
		if page.Items == nil || len(page.Items) != 0 || page.Index != index || page.TotalPages != 3 {
			t.Fatalf("index %d: page = %#v, want empty page 3 of 3", index, page)
		}
	}

	page = Paginate(seq(5), math.MaxInt, 1)
	if len(page.Items) != 5 || page.TotalPages != 1 {
		t.Fatalf("huge page size: page = %#v", page)
	}

	page = Paginate(seq(5), 9, 0)
	if page.Index != 1 || len(page.Items) != 5 {
		t.Fatalf("index 0 should behave like 1, got index=%d items=%d", page.Index, len(page.Items))
	}
}

func TestPaginate_NilCollection(t *testing.T) {
	page := Paginate[string](nil, 9, 1)
	if page.Items == nil || len(page.Items) != 0 || page.TotalPages != 0 || page.ShowControl() {
		t.Fatalf("nil collection page = %#v", page)
	}
}

func TestPaginate_ItemsCannotGrowIntoCollection(t *testing.T) {
	items := seq(10)
	page := Paginate(items, 3, 1)
	_ = append(page.Items, 99)
	if items[3] != 3 {
		t.Fatalf("append through page mutated collection: items[3] = %d", items[3])
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		index, size, pageSize, want int
	}{
		{0, 20, 9, 1},
		{3, 20, 9, 3},
		{7, 20, 9, 3},
		{5, 0, 9, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.index, tt.size, tt.pageSize); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.index, tt.size, tt.pageSize, got, tt.want)
		}
	}
}
