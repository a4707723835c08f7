// Package effects clasifica acciones aplicadas y dispara sus efectos secundarios
// (comentario de la mascota, animación, imagen y sonido).
package effects

import "virtual-pet/internal/domain/petstate"

// Kind es la variante cerrada de acciones conocidas más KindOther.
type Kind string

const (
	KindTreat    Kind = "treat"
	KindPlay     Kind = "play"
	KindExercise Kind = "exercise"
	KindSleep    Kind = "sleep"
	KindOther    Kind = "other"
)

// Kinds lista todas las variantes, KindOther al final.
var Kinds = []Kind{KindTreat, KindPlay, KindExercise, KindSleep, KindOther}

// Classify es total: lo que no es conocido cae en KindOther.
func Classify(a petstate.Action) Kind {
	switch a {
	case petstate.ActionTreat:
		return KindTreat
	case petstate.ActionPlay:
		return KindPlay
	case petstate.ActionExercise:
		return KindExercise
	case petstate.ActionSleep:
		return KindSleep
	default:
		return KindOther
	}
}

type Animation string

const (
	AnimationPulse Animation = "pulse"
	AnimationShake Animation = "shake"
	AnimationDoze  Animation = "doze"
)

// Sound identifica un efecto de audio. SoundNone = no reproducir nada.
type Sound string

const (
	SoundNone Sound = ""
	SoundEat  Sound = "eat"
	SoundBark Sound = "bark"
	SoundWalk Sound = "walk"
)

// Sounds son todos los efectos que el mixer detiene antes de reproducir uno nuevo.
var Sounds = []Sound{SoundEat, SoundBark, SoundWalk}

const (
	ImageEating     = "images/Dog Eating.png"
	ImagePlaying    = "images/Dog Playing.png"
	ImageExercising = "images/Dog Exercising.png"
	ImageSleeping   = "images/Dog Sleeping.png"
)

// Descriptor es todo lo que la UI necesita para reflejar una acción.
type Descriptor struct {
	Kind      Kind      `json:"kind"`
	Comment   string    `json:"comment"`
	Animation Animation `json:"animation"`
	Image     string    `json:"image"`
	Overlay   bool      `json:"overlay"` // "zzz" encima de la imagen
	Sound     Sound     `json:"sound,omitempty"`
}

var catalog = map[Kind]Descriptor{
	KindTreat: {
		Kind:      KindTreat,
		Comment:   "Yum! That treat was delicious!",
		Animation: AnimationPulse,
		Image:     ImageEating,
		Sound:     SoundEat,
	},
	KindPlay: {
		Kind:      KindPlay,
		Comment:   "That was fun! Let's play again soon!",
		Animation: AnimationPulse,
		Image:     ImagePlaying,
		Sound:     SoundBark,
	},
	KindExercise: {
		Kind:      KindExercise,
		Comment:   "Pant pant... I'm getting stronger!",
		Animation: AnimationShake,
		Image:     ImageExercising,
		Sound:     SoundWalk,
	},
	// sleep no tiene sonido.
	KindSleep: {
		Kind:      KindSleep,
		Comment:   "Zzz... I feel well rested!",
		Animation: AnimationDoze,
		Image:     ImageSleeping,
		Overlay:   true,
	},
	KindOther: {
		Kind:      KindOther,
		Comment:   "I'm feeling great!",
		Animation: AnimationPulse,
		Image:     ImagePlaying,
	},
}

// DescriptorFor devuelve el descriptor de k; kinds desconocidos usan el de KindOther.
func DescriptorFor(k Kind) Descriptor {
	if d, ok := catalog[k]; ok {
		return d
	}
	return catalog[KindOther]
}

// Describe = DescriptorFor(Classify(a)).
func Describe(a petstate.Action) Descriptor {
	return DescriptorFor(Classify(a))
}
