package otl

import (
	"reflect"
	"testing"
)

func docWithLevels(levels ...int) *Document {
	d := &Document{}
	for _, lvl := range levels {
		d.Headlines = append(d.Headlines, Headline{Level: lvl, Text: []byte("h")})
	}
	return d
}

func TestRoots(t *testing.T) {
	d := docWithLevels(0, 1, 1, 0, 1, 2, 0)
	if got, want := d.Roots(), []int{0, 3, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Roots = %v, want %v", got, want)
	}
	if got := docWithLevels().Roots(); got != nil {
		t.Fatalf("Roots of empty document = %v, want nil", got)
	}
}

func TestChildren(t *testing.T) {
	//  0: A
	//  1:   B
	//  2:     C
	//  3:   D
	//  4: E
	d := docWithLevels(0, 1, 2, 1, 0)

	cases := []struct {
		idx  int
		want []int
	}{
		{0, []int{1, 3}},
		{1, []int{2}},
		{2, nil},
		{4, nil},
		{-1, nil},
		{99, nil},
	}
	for _, c := range cases {
		if got := d.Children(c.idx); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Children(%d) = %v, want %v", c.idx, got, c.want)
		}
	}
}

func TestChildrenLevelSkip(t *testing.T) {
	// Пропуск уровня: запись на глубине 2 сразу под корнем всё равно
	// прикрепляется к ближайшему более мелкому предшественнику.
	d := docWithLevels(0, 2, 2, 1, 0)
	if got, want := d.Children(0), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Children(0) = %v, want %v", got, want)
	}
	// После того как встретился уровень 1, более глубокие записи к корню
	// больше не относятся.
	d = docWithLevels(0, 1, 2, 2)
	if got, want := d.Children(0), []int{1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Children(0) = %v, want %v", got, want)
	}
}

func TestSubtreeEnd(t *testing.T) {
	d := docWithLevels(0, 1, 2, 1, 0)

	cases := []struct {
		idx, want int
	}{
		{0, 4},
		{1, 3},
		{2, 3},
		{3, 4},
		{4, 5},
		{99, 5},
	}
	for _, c := range cases {
		if got := d.SubtreeEnd(c.idx); got != c.want {
			t.Errorf("SubtreeEnd(%d) = %d, want %d", c.idx, got, c.want)
		}
	}
}

func TestHasNextSibling(t *testing.T) {
	h := Headline{Attr: attrSibling}
	if !h.HasNextSibling() {
		t.Fatal("sibling bit not reported")
	}
	h.Attr = attrHasNote
	if h.HasNextSibling() {
		t.Fatal("sibling reported without the bit")
	}
}
