package topics

import (
	"fmt"
	"testing"
)

func TestToggle_AddAndRemove(t *testing.T) {
	s := DefaultSelection()

	s = Toggle(s, CategoryMath, "Aljabar Dasar")
	if !s.Contains(CategoryMath, "Aljabar Dasar") {
		t.Fatal("expected topic to be added")
	}

	s = Toggle(s, CategoryMath, "Aljabar Dasar")
	if s.Contains(CategoryMath, "Aljabar Dasar") {
		t.Fatal("expected topic to be removed")
	}
}

func TestToggle_RefusesEmptyingCategory(t *testing.T) {
	s := Selection{
		Math:       []string{"KPK & FPB"},
		Indonesian: []string{"Puisi & Majas"},
	}

	s = Toggle(s, CategoryMath, "KPK & FPB")
	if !s.Contains(CategoryMath, "KPK & FPB") {
		t.Fatal("last math topic must not be removable")
	}

	s = Toggle(s, CategoryIndonesian, "Puisi & Majas")
	if !s.Contains(CategoryIndonesian, "Puisi & Majas") {
		t.Fatal("last indonesian topic must not be removable")
	}
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	orig := DefaultSelection()
	before := len(orig.Math)

	_ = Toggle(orig, CategoryMath, "Data & Statistik")
	if len(orig.Math) != before {
		t.Fatal("Toggle mutated its input")
	}
}

func TestToggle_UnknownCategoryIsNoop(t *testing.T) {
	s := DefaultSelection()
	out := Toggle(s, Category("bogus"), "KPK & FPB")
	if len(out.All()) != len(s.All()) {
		t.Fatal("unknown category should not change the selection")
	}
}

func TestAll_MathFirst(t *testing.T) {
	s := Selection{
		Math:       []string{"A", "B"},
		Indonesian: []string{"C"},
	}
	all := s.All()
	want := []string{"A", "B", "C"}
	if len(all) != len(want) {
		t.Fatalf("expected %d topics, got %d", len(want), len(all))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], all[i])
		}
	}
}

func TestDefaultSelection_Valid(t *testing.T) {
	s := DefaultSelection()
	if s.IsEmpty() {
		t.Fatal("default selection must cover both categories")
	}
	for _, topic := range s.Math {
		if !inCatalog(NumeracyCatalog, topic) {
			t.Fatalf("default math topic %q not in catalog", topic)
		}
	}
	for _, topic := range s.Indonesian {
		if !inCatalog(LiteracyCatalog, topic) {
			t.Fatalf("default indonesian topic %q not in catalog", topic)
		}
	}
}

func inCatalog(catalog []string, topic string) bool {
	for _, t := range catalog {
		if t == topic {
			return true
		}
	}
	return false
}

func TestUndoStack_UndoRedo(t *testing.T) {
	s0 := DefaultSelection()
	u := NewUndoStack(s0)

	s1 := Toggle(s0, CategoryMath, "Data & Statistik")
	u.Record(s1)

	s2 := Toggle(s1, CategoryIndonesian, "Puisi & Majas")
	u.Record(s2)

	got, ok := u.Undo()
	if !ok || !got.Contains(CategoryMath, "Data & Statistik") || got.Contains(CategoryIndonesian, "Puisi & Majas") {
		t.Fatal("undo should return the middle snapshot")
	}

	got, ok = u.Undo()
	if !ok || got.Contains(CategoryMath, "Data & Statistik") {
		t.Fatal("second undo should return the initial snapshot")
	}

	if _, ok := u.Undo(); ok {
		t.Fatal("undo past the oldest entry must report false")
	}

	got, ok = u.Redo()
	if !ok || !got.Contains(CategoryMath, "Data & Statistik") {
		t.Fatal("redo should restore the middle snapshot")
	}
}

func TestUndoStack_RecordTruncatesRedoTail(t *testing.T) {
	s0 := DefaultSelection()
	u := NewUndoStack(s0)
	u.Record(Toggle(s0, CategoryMath, "Data & Statistik"))

	if _, ok := u.Undo(); !ok {
		t.Fatal("expected undo to succeed")
	}

	u.Record(Toggle(s0, CategoryMath, "Pecahan & Desimal"))

	if _, ok := u.Redo(); ok {
		t.Fatal("redo tail should have been discarded after Record")
	}
	if !u.Current().Contains(CategoryMath, "Pecahan & Desimal") {
		t.Fatal("current should be the newly recorded snapshot")
	}
}

func TestUndoStack_BoundedAtCap(t *testing.T) {
	s := DefaultSelection()
	u := NewUndoStack(s)

	for i := 0; i < HistoryCap*2; i++ {
		u.Record(Toggle(s, CategoryMath, fmt.Sprintf("Topik %d", i)))
	}

	if u.Len() != HistoryCap {
		t.Fatalf("expected stack bounded at %d, got %d", HistoryCap, u.Len())
	}

	// Walk all the way back; must terminate at the cap, not the full history.
	steps := 0
	for {
		if _, ok := u.Undo(); !ok {
			break
		}
		steps++
	}
	if steps != HistoryCap-1 {
		t.Fatalf("expected %d undo steps, got %d", HistoryCap-1, steps)
	}
}
