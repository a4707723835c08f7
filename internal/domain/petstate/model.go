package petstate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Action es el nombre de la acción pedida por la UI, ya normalizado a minúsculas.
// Es un string abierto: cualquier valor fuera de los conocidos se clasifica como genérico.
type Action string

const (
	ActionTreat    Action = "treat"
	ActionPlay     Action = "play"
	ActionExercise Action = "exercise"
	ActionSleep    Action = "sleep"
)

// Valores iniciales de cada sesión.
const (
	DefaultName      = "Pico"
	InitialWeight    = 5
	InitialHappiness = 5
	InitialEnergy    = 5
)

var lower = cases.Lower(language.Und)

// NormalizeAction recorta espacios y pasa a minúsculas.
func NormalizeAction(raw string) Action {
	return Action(lower.String(strings.TrimSpace(raw)))
}

// PetState es la foto de los atributos de la mascota.
// Name no cambia después de Initialize; los numéricos son >= 0 en todo estado publicado.
type PetState struct {
	Name      string `json:"name"`
	Weight    int    `json:"weight"`
	Happiness int    `json:"happiness"`
	Energy    int    `json:"energy"`
}

// ActionDelta describe un cambio pedido. Campos ausentes valen 0.
type ActionDelta struct {
	Action    Action
	Weight    int
	Happiness int
	Energy    int
}
