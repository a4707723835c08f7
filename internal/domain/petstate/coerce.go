package petstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Claves de delta tal como llegan desde la UI (data-weight, data-happiness, data-energy).
const (
	KeyAction    = "action"
	KeyWeight    = "weight"
	KeyHappiness = "happiness"
	KeyEnergy    = "energy"
)

// Coerce convierte cualquier valor a entero de forma permisiva.
// nil, strings vacíos o inválidos, NaN e Inf valen 0; fracciones truncan hacia cero;
// true vale 1; números fuera de rango saturan. Nunca falla.
func Coerce(v any) int {
	switch x := v.(type) {
	case nil:
		return 0
	case int:
		return x
	case int8:
		return int(x)
	case int16:
		return int(x)
	case int32:
		return int(x)
	case int64:
		return int(x)
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return int(x)
	case uint16:
		return int(x)
	case uint32:
		return int(x)
	case uint64:
		return fromUint(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		return fromString(string(x))
	case string:
		return fromString(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// CoerceAction convierte el valor crudo de "action" a Action normalizada.
// Valores falsy (nil, false, 0, NaN, "") quedan como acción vacía (categoría genérica).
func CoerceAction(v any) Action {
	if falsy(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return NormalizeAction(x)
	case json.Number:
		return NormalizeAction(string(x))
	default:
		return NormalizeAction(fmt.Sprint(x))
	}
}

func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		return err == nil && (f == 0 || math.IsNaN(f))
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case float64:
		return x == 0 || math.IsNaN(x)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Coerce(x) == 0
	default:
		return false
	}
}

// DeltaFromValues arma un ActionDelta desde un mapa crudo (p.ej. body JSON o data-* attrs).
// Claves faltantes o basura valen 0.
func DeltaFromValues(values map[string]any) ActionDelta {
	return ActionDelta{
		Action:    CoerceAction(values[KeyAction]),
		Weight:    Coerce(values[KeyWeight]),
		Happiness: Coerce(values[KeyHappiness]),
		Energy:    Coerce(values[KeyEnergy]),
	}
}

func fromString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		// literal finito fuera de rango: satura igual que un float grande
		switch {
		case math.IsInf(f, 1):
			return math.MaxInt
		case math.IsInf(f, -1):
			return math.MinInt
		default:
			return 0
		}
	}
	if err != nil {
		return 0
	}
	return fromFloat(f)
}

func fromUint(u uint64) int {
	if u > math.MaxInt {
		return math.MaxInt
	}
	return int(u)
}

func fromFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt
	}
	if f <= math.MinInt64 {
		return math.MinInt
	}
	return int(f)
}
