package board

import (
	"reflect"
	"testing"

	"github.com/cheonTH/singlelife/internal/models"
)

func cmt(id int64, parent *int64) models.Comment {
	return models.Comment{ID: id, ParentID: parent}
}

func ref(id int64) *int64 { return &id }

func commentIDs(comments []models.Comment) []int64 {
	out := make([]int64, len(comments))
	for i, c := range comments {
		out[i] = c.ID
	}
	return out
}

func TestThread(t *testing.T) {
	cases := []struct {
		name string
		in   []models.Comment
		want []int64
	}{
		{
			"replies follow their parent",
			[]models.Comment{cmt(1, nil), cmt(3, ref(1)), cmt(2, nil), cmt(4, ref(2))},
			[]int64{1, 3, 2, 4},
		},
		{
			"replies sorted ascending under parent",
			[]models.Comment{cmt(5, ref(1)), cmt(1, nil), cmt(3, ref(1)), cmt(2, ref(1))},
			[]int64{1, 2, 3, 5},
		},
		{
			"no comments",
			nil,
			[]int64{},
		},
		{
			"only top-level",
			[]models.Comment{cmt(3, nil), cmt(1, nil), cmt(2, nil)},
			[]int64{1, 2, 3},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := commentIDs(Thread(c.in))
			if len(got) == 0 && len(c.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestThreadFlattensDeepNesting(t *testing.T) {
	// 4 replies to 3, which replies to top-level 1; 4 must land under 1.
	in := []models.Comment{
		cmt(1, nil),
		cmt(3, ref(1)),
		cmt(4, ref(3)),
		cmt(2, nil),
	}

	got := commentIDs(Thread(in))
	want := []int64{1, 3, 4, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestThreadDoesNotMutateInput(t *testing.T) {
	in := []models.Comment{cmt(2, nil), cmt(1, nil)}
	Thread(in)
	if in[0].ID != 2 || in[1].ID != 1 {
		t.Fatalf("input slice was reordered")
	}
}
