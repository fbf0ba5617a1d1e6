package bible

import (
	"strconv"
	"strings"
)

// CountVerses returns how many verses a reference covers, using KJV chapter
// lengths for whole chapters and cross-chapter ranges. It returns 0 when the
// book is unknown or any part of the reference cannot be parsed.
//
//	John 3:16          1
//	John 3:16-18       3
//	Ps 23:1-3,5        4
//	Rom 8:28, 12:1-2   3
//	Gen 1:26-2:3       (1:26..1:31) + (2:1..2:3)
//	Ps 23              6
func CountVerses(ref string) int {
	name, rest := splitReference(ref)
	book, ok := Lookup(aliases[normalizeName(name)])
	if !ok {
		return 0
	}
	rest = strings.ReplaceAll(strings.TrimSpace(rest), " ", "")
	if rest == "" {
		return 0
	}

	total := 0
	chapter := 0
	for seg := range strings.SplitSeq(rest, ",") {
		if seg == "" {
			return 0
		}
		n, ch, ok := countSegment(book, seg, chapter)
		if !ok {
			return 0
		}
		total += n
		chapter = ch
	}
	return total
}

// countSegment counts one comma-separated piece. current is the chapter in
// effect from the previous segment, 0 if none. It returns the count and the
// chapter in effect afterwards.
func countSegment(book Book, seg string, current int) (int, int, bool) {
	from, to, isRange := strings.Cut(seg, "-")

	if !strings.Contains(from, ":") {
		if current > 0 {
			// A bare number after "C:V," is another verse of the same chapter.
			return countVerseRange(book, current, from, to, isRange)
		}
		return countChapters(book, from, to, isRange)
	}

	chStr, vStr, _ := strings.Cut(from, ":")
	ch, ok := atoi(chStr)
	if !ok || book.ChapterVerses(ch) == 0 {
		return 0, 0, false
	}
	if !isRange || !strings.Contains(to, ":") {
		return countVerseRange(book, ch, vStr, to, isRange)
	}

	v1, ok := atoi(vStr)
	if !ok || v1 > book.ChapterVerses(ch) {
		return 0, 0, false
	}
	ch2Str, v2Str, _ := strings.Cut(to, ":")
	ch2, ok1 := atoi(ch2Str)
	v2, ok2 := atoi(v2Str)
	if !ok1 || !ok2 || ch2 <= ch || v2 > book.ChapterVerses(ch2) {
		return 0, 0, false
	}
	n := book.ChapterVerses(ch) - v1 + 1
	for c := ch + 1; c < ch2; c++ {
		n += book.ChapterVerses(c)
	}
	return n + v2, ch2, true
}

func countVerseRange(book Book, ch int, fromStr, toStr string, isRange bool) (int, int, bool) {
	v1, ok := atoi(fromStr)
	if !ok || v1 > book.ChapterVerses(ch) {
		return 0, 0, false
	}
	if !isRange {
		return 1, ch, true
	}
	v2, ok := atoi(toStr)
	if !ok || v2 < v1 {
		return 0, 0, false
	}
	return v2 - v1 + 1, ch, true
}

func countChapters(book Book, fromStr, toStr string, isRange bool) (int, int, bool) {
	c1, ok := atoi(fromStr)
	if !ok || book.ChapterVerses(c1) == 0 {
		return 0, 0, false
	}
	c2 := c1
	if isRange {
		if c2, ok = atoi(toStr); !ok || c2 < c1 || book.ChapterVerses(c2) == 0 {
			return 0, 0, false
		}
	}
	n := 0
	for c := c1; c <= c2; c++ {
		n += book.ChapterVerses(c)
	}
	// Whole chapters leave no chapter context for following segments.
	return n, 0, true
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
