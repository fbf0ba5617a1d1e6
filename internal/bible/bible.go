// Package bible knows the canonical book order of the Protestant canon and
// parses scripture references such as "1 John 3:16-18".
package bible

// Testament partitions the canon.
type Testament string

// Both testaments.
const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// Book describes one canonical book. Verses holds the KJV verse count of
// each chapter, chapter 1 first.
type Book struct {
	Name      string
	Abbrev    string
	Testament Testament
	Verses    []int
}

// Chapters returns the number of chapters.
func (b Book) Chapters() int {
	return len(b.Verses)
}

// ChapterVerses returns the verse count of a 1-based chapter, or 0 when the
// chapter does not exist.
func (b Book) ChapterVerses(chapter int) int {
	if chapter < 1 || chapter > len(b.Verses) {
		return 0
	}
	return b.Verses[chapter-1]
}

// NTStartIndex is the canonical index of Matthew.
const NTStartIndex = 39

var byName = func() map[string]int {
	m := make(map[string]int, len(kjvBooks))
	for i, b := range kjvBooks {
		m[b.Name] = i
	}
	return m
}()

// Books returns all 66 books in canonical order.
func Books() []Book {
	out := make([]Book, len(kjvBooks))
	copy(out, kjvBooks)
	return out
}

// Lookup finds a book by its canonical name.
func Lookup(name string) (Book, bool) {
	i, ok := byName[name]
	if !ok {
		return Book{}, false
	}
	return kjvBooks[i], true
}

// Index returns the canonical position of a book, or -1.
func Index(name string) int {
	if i, ok := byName[name]; ok {
		return i
	}
	return -1
}

// TestamentOf returns the testament of a canonical book name.
func TestamentOf(name string) (Testament, bool) {
	b, ok := Lookup(name)
	return b.Testament, ok
}

// IsNewTestament reports whether name is a New Testament book.
func IsNewTestament(name string) bool {
	t, ok := TestamentOf(name)
	return ok && t == NewTestament
}

// OldTestamentBooks returns the 39 Old Testament names in order.
func OldTestamentBooks() []string {
	return names(kjvBooks[:NTStartIndex])
}

// NewTestamentBooks returns the 27 New Testament names in order.
func NewTestamentBooks() []string {
	return names(kjvBooks[NTStartIndex:])
}

func names(books []Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Name)
	}
	return out
}
