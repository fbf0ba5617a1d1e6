package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var parser = newParser()

func newParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseAsOf resolves a reference instant relative to now. It accepts an
// empty string (now), RFC 3339, a YYYY-MM-DD date (noon in loc) or an
// English phrase such as "last sunday" or "3 days ago".
func ParseAsOf(s string, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if d, err := time.ParseInLocation(DateFormat, s, loc); err == nil {
		return d.Add(12 * time.Hour), nil
	}

	r, err := parser.Parse(s, now.In(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid as-of %q: %w", s, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("invalid as-of %q: no date found", s)
	}
	return r.Time, nil
}
