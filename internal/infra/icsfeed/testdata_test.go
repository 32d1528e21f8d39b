//go:build unit

package icsfeed

import "strings"

func ics(events ...string) []byte {
	body := "BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//venue//calendar test//EN\n" +
		strings.Join(events, "") +
		"END:VCALENDAR\n"
	return []byte(strings.ReplaceAll(body, "\n", "\r\n"))
}

func vevent(lines ...string) string {
	return "BEGIN:VEVENT\nDTSTAMP:20250601T000000Z\n" + strings.Join(lines, "\n") + "\nEND:VEVENT\n"
}
