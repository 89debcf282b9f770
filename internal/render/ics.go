package render

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nibzard/greenthumb/internal/calendar"
	"github.com/nibzard/greenthumb/internal/locale"
)

// ICSProductID identifies the generator in exported calendars.
const ICSProductID = "-//nibzard//greenthumb//FI"

// uidNamespace scopes event UIDs so that the same task on the same day
// keeps its UID across exports.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://greenthumb.nibzard.dev/events"))

// ICSFileName returns the iCalendar file name of a year.
func ICSFileName(year int) string {
	return fmt.Sprintf("hoitokalenteri-%d.ics", year)
}

// ICS writes the calendar as an iCalendar file with one all-day event per
// day and task list, and returns the written path.
func (r *Renderer) ICS(cal *calendar.Calendar) (string, error) {
	return r.write(ICSFileName(cal.Year()), r.encodeICS(cal))
}

func (r *Renderer) encodeICS(cal *calendar.Calendar) []byte {
	var buf bytes.Buffer
	line := func(format string, args ...any) {
		writeICSLine(&buf, fmt.Sprintf(format, args...))
	}

	stamp := r.now().UTC().Format("20060102T150405Z")

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", ICSProductID)
	line("X-WR-CALNAME:%s", escapeICalText(fmt.Sprintf("Hoitokalenteri %d", cal.Year())))
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")

	for d, lists := range cal.Days() {
		for _, l := range lists.Lists() {
			day := d.Time()
			line("BEGIN:VEVENT")
			line("UID:%s@greenthumb", eventUID(d.String(), l.Name))
			line("DTSTAMP:%s", stamp)
			line("DTSTART;VALUE=DATE:%s", day.Format("20060102"))
			line("DTEND;VALUE=DATE:%s", day.AddDate(0, 0, 1).Format("20060102"))
			line("SUMMARY:%s", escapeICalText(locale.ListName(l.Name)+": "+strings.Join(l.Items, ", ")))
			line("CATEGORIES:%s", escapeICalText(locale.ListName(l.Name)))
			line("TRANSP:TRANSPARENT")
			line("END:VEVENT")
		}
	}

	line("END:VCALENDAR")
	return buf.Bytes()
}

// eventUID derives a stable UID from the day and the task list name.
func eventUID(day, list string) string {
	return uuid.NewSHA1(uidNamespace, []byte(day+"/"+list)).String()
}

// writeICSLine writes a content line terminated by CRLF, folding it at 75
// octets without splitting UTF-8 sequences.
func writeICSLine(buf *bytes.Buffer, s string) {
	const limit = 75
	first := true
	for len(s) > 0 {
		width := limit
		if !first {
			width-- // continuation lines start with a space
			buf.WriteByte(' ')
		}
		if len(s) <= width {
			buf.WriteString(s)
			break
		}
		cut := width
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		buf.WriteString(s[:cut])
		buf.WriteString("\r\n")
		s = s[cut:]
		first = false
	}
	buf.WriteString("\r\n")
}

func escapeICalText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
