package bible

import (
	"regexp"
	"strings"
	"unicode"
)

// aliases maps lowercased spellings without periods to canonical names.
var aliases = func() map[string]string {
	m := map[string]string{
		"psalm":                "Psalms",
		"pss":                  "Psalms",
		"song of songs":        "Song of Solomon",
		"song of sol":          "Song of Solomon",
		"canticles":            "Song of Solomon",
		"qoheleth":             "Ecclesiastes",
		"revelations":          "Revelation",
		"apocalypse":           "Revelation",
		"gn":                   "Genesis",
		"ex":                   "Exodus",
		"dt":                   "Deuteronomy",
		"jdg":                  "Judges",
		"prv":                  "Proverbs",
		"mt":                   "Matthew",
		"mk":                   "Mark",
		"lk":                   "Luke",
		"jn":                   "John",
		"jhn":                  "John",
		"phil":                 "Philippians",
		"php":                  "Philippians",
		"philem":               "Philemon",
		"jas":                  "James",
		"jude":                 "Jude",
		"1 jn":                 "1 John",
		"2 jn":                 "2 John",
		"3 jn":                 "3 John",
		"1 sam":                "1 Samuel",
		"2 sam":                "2 Samuel",
		"1 kings":              "1 Kings",
		"2 kings":              "2 Kings",
		"1 cor":                "1 Corinthians",
		"2 cor":                "2 Corinthians",
		"1 thess":              "1 Thessalonians",
		"2 thess":              "2 Thessalonians",
		"1 tim":                "1 Timothy",
		"2 tim":                "2 Timothy",
		"1 pet":                "1 Peter",
		"2 pet":                "2 Peter",
		"the revelation":       "Revelation",
		"revelation of john":   "Revelation",
		"song":                 "Song of Solomon",
		"eccles":               "Ecclesiastes",
		"ecc":                  "Ecclesiastes",
		"ps":                   "Psalms",
		"rev":                  "Revelation",
		"first john":           "1 John",
		"second corinthians":   "2 Corinthians",
		"first corinthians":    "1 Corinthians",
		"first thessalonians":  "1 Thessalonians",
		"second thessalonians": "2 Thessalonians",
	}
	for _, b := range kjvBooks {
		m[strings.ToLower(b.Name)] = b.Name
		m[normalizeName(b.Abbrev)] = b.Name
		if len(b.Name) >= 3 {
			short := strings.ToLower(b.Name)
			if i := strings.IndexByte(short, ' '); i > 0 && unicode.IsDigit(rune(short[0])) {
				short = short[:i+1] + trimTo(short[i+1:], 3)
			} else {
				short = trimTo(short, 3)
			}
			if _, taken := m[short]; !taken {
				m[short] = b.Name
			}
		}
	}
	return m
}()

func trimTo(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var numberedPrefix = regexp.MustCompile(`^([1-3])\s*([a-z])`)

// normalizeName lowercases, strips periods, collapses spaces and splits a
// numeric prefix from the book name ("1John" becomes "1 john").
func normalizeName(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, ".", ""))
	s = strings.Join(strings.Fields(s), " ")
	return numberedPrefix.ReplaceAllString(s, "$1 $2")
}

// ParseBookName extracts the canonical book name from a reference such as
// "1 John 3:16" or "Ps 23". It returns "" for unknown books.
func ParseBookName(ref string) string {
	name, _ := splitReference(ref)
	if name == "" {
		return ""
	}
	return aliases[normalizeName(name)]
}

// splitReference separates the book part from the chapter/verse part. The
// book is the first token plus every following token that does not start
// with a digit.
func splitReference(ref string) (string, string) {
	fields := strings.Fields(strings.TrimSpace(ref))
	if len(fields) == 0 {
		return "", ""
	}
	end := 1
	for end < len(fields) {
		r := []rune(fields[end])
		if unicode.IsDigit(r[0]) {
			break
		}
		end++
	}
	return strings.Join(fields[:end], " "), strings.Join(fields[end:], " ")
}
