package export

import (
	"fmt"

	"github.com/gmartins/ufmg-calendar/internal/event"
)

// Summary maps an event's flags onto the short calendar-visible label.
//
// The audience segment combines the graduation flags and is dropped
// entirely when neither is set. The kind segment is resolved in priority
// order: matrícula beats trancamento beats feriado. Important events get a
// trailing "!". This text is user-visible calendar content, so the exact
// wording and punctuation matter.
func Summary(f event.Flags) string {
	audience := ""
	switch {
	case f.Grad && f.Pos:
		audience = "Graduação e Pós-Graduação"
	case f.Grad:
		audience = "Graduação"
	case f.Pos:
		audience = "Pós-Graduação"
	}

	kind := "Outros"
	switch {
	case f.Matricula:
		kind = "Matrícula"
	case f.Trancamento:
		kind = "Trancamento"
	case f.Feriado:
		kind = "Recesso/Feriado"
	}

	s := "UFMG: "
	if audience != "" {
		s += audience + " - "
	}
	s += kind
	if f.Importante {
		s += "!"
	}
	return s
}

// Subject builds the reminder-alarm description for an event:
// "Alerta <dd/mm> na <Summary>".
func Subject(evt *event.Event) string {
	return fmt.Sprintf("Alerta %s na %s", evt.Start.Format("02/01"), Summary(evt.Flags))
}
