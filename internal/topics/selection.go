package topics

// Category identifies one of the two exam sections.
type Category string

const (
	// CategoryMath is the numeracy section.
	CategoryMath Category = "math"

	// CategoryIndonesian is the literacy section.
	CategoryIndonesian Category = "indonesian"
)

// NumeracyCatalog lists the selectable numeracy topics.
var NumeracyCatalog = []string{
	"Bilangan & Operasi",
	"Aljabar Dasar",
	"Geometri Bangun Datar",
	"Geometri Bangun Ruang",
	"Pengukuran & Satuan",
	"Data & Statistik",
	"KPK & FPB",
	"Pecahan & Desimal",
	"Perbandingan & Skala",
}

// LiteracyCatalog lists the selectable literacy topics.
var LiteracyCatalog = []string{
	"Teks Fiksi (Sastra)",
	"Teks Informasi (Faktual)",
	"Ide Pokok & Pendukung",
	"Simpulan & Interpretasi",
	"Ejaan & Tata Bahasa",
	"Kosakata & Sinonim",
	"Puisi & Majas",
	"Struktur Kalimat",
}

// Selection holds the chosen topics per category. Ordered as selected.
// Invariant: neither category is ever empty — Toggle refuses to remove
// the last remaining topic of a category.
type Selection struct {
	Math       []string
	Indonesian []string
}

// DefaultSelection returns the initial selection offered to new users.
func DefaultSelection() Selection {
	return Selection{
		Math:       []string{"Bilangan & Operasi", "Geometri Bangun Datar"},
		Indonesian: []string{"Teks Fiksi (Sastra)", "Teks Informasi (Faktual)"},
	}
}

// Toggle returns a copy of s with topic's membership in the category
// flipped. Removing the last selected topic of a category is a no-op:
// the returned selection keeps it, preserving the non-empty invariant.
func Toggle(s Selection, cat Category, topic string) Selection {
	out := clone(s)
	var list *[]string
	switch cat {
	case CategoryMath:
		list = &out.Math
	case CategoryIndonesian:
		list = &out.Indonesian
	default:
		return out
	}

	for i, t := range *list {
		if t == topic {
			if len(*list) == 1 {
				// Last topic in this category stays selected.
				return out
			}
			*list = append((*list)[:i], (*list)[i+1:]...)
			return out
		}
	}

	*list = append(*list, topic)
	return out
}

// Contains reports whether topic is selected in the given category.
func (s Selection) Contains(cat Category, topic string) bool {
	var list []string
	switch cat {
	case CategoryMath:
		list = s.Math
	case CategoryIndonesian:
		list = s.Indonesian
	}
	for _, t := range list {
		if t == topic {
			return true
		}
	}
	return false
}

// All returns every selected topic, math first, in selection order.
func (s Selection) All() []string {
	out := make([]string, 0, len(s.Math)+len(s.Indonesian))
	out = append(out, s.Math...)
	out = append(out, s.Indonesian...)
	return out
}

// IsEmpty reports whether either category has no selected topics.
// A valid selection never satisfies this; it guards deserialized input.
func (s Selection) IsEmpty() bool {
	return len(s.Math) == 0 || len(s.Indonesian) == 0
}

func clone(s Selection) Selection {
	out := Selection{
		Math:       make([]string, len(s.Math)),
		Indonesian: make([]string, len(s.Indonesian)),
	}
	copy(out.Math, s.Math)
	copy(out.Indonesian, s.Indonesian)
	return out
}
