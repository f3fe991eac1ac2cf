package service

import (
	"Commons/internal/model"
	"fmt"
	"testing"
)

func TestFilterAndSortMembers(t *testing.T) {
	a := decodedPost("a", 1)
	b := decodedPost("b", 2)
	b.IsMembersOnly = true
	c := decodedPost("c", 3)
	c.IsMembersOnly = true

	got := FilterAndSort([]*model.Post{a, b, c}, model.ViewMembers)
	if fmt.Sprint(ids(got)) != "[c b]" {
		t.Fatalf("ids = %v", ids(got))
	}
}

func TestFilterAndSortMedia(t *testing.T) {
	none := decodedPost("none", 1)
	legacy := decodedPost("legacy", 2)
	legacy.ImageURL = "https://cdn.example.org/a.jpg"
	emptyItems := decodedPost("empty-items", 3)
	emptyItems.MediaItems = []*model.MediaItem{{ID: "x", URL: ""}}
	withItem := decodedPost("with-item", 4)
	withItem.MediaItems = []*model.MediaItem{
		{ID: "blank", URL: "", Order: 0},
		{ID: "img", URL: "posts/img.jpg", Order: 1},
	}

	got := FilterAndSort([]*model.Post{none, legacy, emptyItems, withItem}, model.ViewMedia)
	if fmt.Sprint(ids(got)) != "[with-item legacy]" {
		t.Fatalf("ids = %v", ids(got))
	}
	if len(withItem.MediaItems) != 1 || withItem.MediaItems[0].ID != "img" {
		t.Fatalf("empty url item not dropped: %+v", withItem.MediaItems)
	}
}

func TestFilterAndSortAllKeepsEverythingStable(t *testing.T) {
	first := decodedPost("first", 5)
	second := decodedPost("second", 5)
	older := decodedPost("older", 1)
	blank := decodedPost("blank-media", 7)
	blank.MediaItems = []*model.MediaItem{{ID: "x", URL: ""}}

	got := FilterAndSort([]*model.Post{older, first, second, blank}, model.ViewAll)
	if fmt.Sprint(ids(got)) != "[blank-media first second older]" {
		t.Fatalf("ids = %v", ids(got))
	}
	if len(blank.MediaItems) != 1 {
		t.Fatal("all view must not drop media items")
	}
}

func TestSortMediaItemsTiesKeepArrayOrder(t *testing.T) {
	items := []*model.MediaItem{
		{ID: "c", Order: 2},
		{ID: "a1", Order: 0},
		{ID: "b", Order: 1},
		{ID: "a2", Order: 0},
	}
	SortMediaItems(items)

	var got []string
	for _, m := range items {
		got = append(got, m.ID)
	}
	if fmt.Sprint(got) != "[a1 a2 b c]" {
		t.Fatalf("order = %v", got)
	}
}
