package commission

import "time"

// Formatos aceitos nos parâmetros de data das queries.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// endOfDayUTC estende o limite superior para 23:59:59.999 UTC do mesmo dia.
func endOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999*int(time.Millisecond), time.UTC)
}

// janela resolve um par after/before em limites concretos e inclusivos.
// Defaults: after vira a época Unix, before vira agora; o limite superior é
// sempre estendido para o fim do dia em UTC.
func janela(after, before string, now time.Time) (time.Time, time.Time) {
	start := time.Unix(0, 0).UTC()
	if after != "" {
		if t, ok := parseDate(after); ok {
			start = t
		}
	}

	end := now
	if before != "" {
		if t, ok := parseDate(before); ok {
			end = t
		}
	}

	return start, endOfDayUTC(end)
}

// dentroDaJanela testa pertencimento com limites fechados.
func dentroDaJanela(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
