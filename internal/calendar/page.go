package calendar

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"
	"time"
)

//go:embed templates/calendar.html
var templatesFS embed.FS

var calendarTemplate = template.Must(
	template.New("calendar.html").
		Funcs(template.FuncMap{
			"monthTitle": monthTitle,
			"weight": func(w float64) string {
				return strconv.FormatFloat(w, 'f', -1, 64)
			},
		}).
		ParseFS(templatesFS, "templates/calendar.html"),
)

func monthTitle(month string) string {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

// RenderPage renders the month as a standalone HTML page.
func RenderPage(month *Month) ([]byte, error) {
	var buf bytes.Buffer
	if err := calendarTemplate.Execute(&buf, month); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
