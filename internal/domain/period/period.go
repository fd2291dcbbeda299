// Package period resuelve tokens simbólicos de período (day/week/month/quarter/year/custom)
// a rangos concretos [Start, End] de time.Time.
//
// Reglas:
//   - La semana es ISO: inicia lunes 00:00:00 y termina domingo 23:59:59.999.
//   - Los fines de período se calculan restando un milisegundo a la medianoche
//     siguiente, nunca con aritmética de "restar N días"; así el mes previo de un
//     mes corto (febrero) no necesita caso especial de desborde de día.
//   - Funciones totales: siempre Start <= End, sin condiciones de error.
package period

import "time"

// Token identifica la forma del período solicitado.
type Token string

const (
	Day     Token = "day"
	Week    Token = "week"
	Month   Token = "month"
	Quarter Token = "quarter"
	Year    Token = "year"
	Custom  Token = "custom"
)

// ParseToken normaliza un string de query a Token. Un valor no reconocido
// se trata como Custom sin rango (ventana de 30 días), el mismo default seguro
// que un custom sin fechas.
func ParseToken(s string) Token {
	switch Token(s) {
	case Day, Week, Month, Quarter, Year, Custom:
		return Token(s)
	default:
		return Custom
	}
}

// Range rango cerrado [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del rango, extremos incluidos.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// trailingDays ventana por defecto para custom sin rango explícito.
const trailingDays = 30

// Resolve calcula el rango concreto para el token con ref como instante de referencia.
// Para Custom, explicit aporta el rango; si es nil (o está incompleto) se usa la
// ventana de los últimos 30 días terminando en ref.
func Resolve(token Token, ref time.Time, explicit *Range) Range {
	switch token {
	case Day:
		return Range{Start: startOfDay(ref), End: ref}
	case Week:
		monday := startOfWeek(ref)
		return Range{Start: monday, End: endOfSpan(monday.AddDate(0, 0, 7))}
	case Month:
		first := startOfMonth(ref)
		return Range{Start: first, End: endOfSpan(first.AddDate(0, 1, 0))}
	case Quarter:
		first := startOfQuarter(ref)
		return Range{Start: first, End: endOfSpan(first.AddDate(0, 3, 0))}
	case Year:
		first := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return Range{Start: first, End: endOfSpan(first.AddDate(1, 0, 0))}
	default: // Custom y tokens no reconocidos
		if explicit != nil && !explicit.Start.IsZero() && !explicit.End.IsZero() && !explicit.Start.After(explicit.End) {
			return *explicit
		}
		return Range{Start: ref.AddDate(0, 0, -trailingDays), End: ref}
	}
}

// Previous devuelve la ventana de la misma forma desplazada exactamente un
// período hacia atrás (día anterior, semana ISO anterior, mes calendario
// anterior, etc.). Se usa para los cálculos de tendencia del dashboard.
func Previous(token Token, ref time.Time) Range {
	switch token {
	case Day:
		start := startOfDay(ref).AddDate(0, 0, -1)
		return Range{Start: start, End: endOfSpan(start.AddDate(0, 0, 1))}
	case Week:
		monday := startOfWeek(ref).AddDate(0, 0, -7)
		return Range{Start: monday, End: endOfSpan(monday.AddDate(0, 0, 7))}
	case Month:
		firstOfCurrent := startOfMonth(ref)
		return Range{Start: firstOfCurrent.AddDate(0, -1, 0), End: endOfSpan(firstOfCurrent)}
	case Quarter:
		firstOfCurrent := startOfQuarter(ref)
		return Range{Start: firstOfCurrent.AddDate(0, -3, 0), End: endOfSpan(firstOfCurrent)}
	case Year:
		firstOfCurrent := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return Range{Start: firstOfCurrent.AddDate(-1, 0, 0), End: endOfSpan(firstOfCurrent)}
	default: // Custom: ventana de 30 días inmediatamente anterior a la actual
		end := ref.AddDate(0, 0, -trailingDays)
		return Range{Start: end.AddDate(0, 0, -trailingDays), End: end}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek devuelve el lunes 00:00:00 de la semana ISO de t.
func startOfWeek(t time.Time) time.Time {
	// time.Weekday: domingo = 0; lo rotamos para que lunes = 0.
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfQuarter(t time.Time) time.Time {
	quarterFirstMonth := time.Month((int(t.Month())-1)/3*3 + 1)
	return time.Date(t.Year(), quarterFirstMonth, 1, 0, 0, 0, 0, t.Location())
}

// endOfSpan convierte la medianoche que inicia el período siguiente en el
// instante final inclusivo del actual: 23:59:59.999.
func endOfSpan(nextStart time.Time) time.Time {
	return nextStart.Add(-time.Millisecond)
}
