// Package render holds the HTML templates and the helpers they call.
package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/datefmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SongLength formats seconds as m:ss; 0 renders as "".
func SongLength(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Title title-cases labels such as record types ("single" -> "Single").
func Title(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

func FuncMap(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"longDate": func(s string) string {
			return datefmt.LongString(s, loc)
		},
		"description": Description,
		"songLength":  SongLength,
		"title":       Title,
		"join":        strings.Join,
		"add": func(a, b int) int {
			return a + b
		},
	}
}
