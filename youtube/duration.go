package youtube

import (
	"regexp"
	"strconv"
	"strings"
)

var durationRE = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// Labels are the unit labels used when rendering a duration. The deployment
// ships Spanish labels; callers may substitute their own locale.
type Labels struct {
	Hour   string
	Minute string
	Second string
}

// SpanishLabels are the product's default unit labels.
var SpanishLabels = Labels{Hour: "h", Minute: "min", Second: "seg"}

// FormatDuration renders an ISO-8601 duration with the default labels.
// Unparseable or empty input renders as the zero duration.
func FormatDuration(iso string) string {
	return SpanishLabels.Format(iso)
}

// Format renders an ISO-8601 duration ("PT1H9M30S") as a short display string.
//
// Seconds only surface when hours and minutes are both zero; otherwise they
// are truncated, not rounded. Display badges across existing content depend
// on this exact behavior, so keep it even though it is lossy.
func (l Labels) Format(iso string) string {
	zero := "0 " + l.Minute
	if iso == "" {
		return zero
	}

	m := durationRE.FindStringSubmatch(iso)
	if m == nil {
		return zero
	}

	hours := atoi(m[1])
	minutes := atoi(m[2])
	seconds := atoi(m[3])

	var b strings.Builder
	if hours > 0 {
		b.WriteString(strconv.Itoa(hours))
		b.WriteString(" " + l.Hour + " ")
	}
	if minutes > 0 {
		b.WriteString(strconv.Itoa(minutes))
		b.WriteString(" " + l.Minute)
	} else if hours == 0 && seconds > 0 {
		b.WriteString(strconv.Itoa(seconds))
		b.WriteString(" " + l.Second)
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return zero
	}
	return out
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
