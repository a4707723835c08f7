package devtools

import (
	"encoding/json"
	"time"
)

// Sample es la salida de SampleTransform.
type Sample struct {
	Name           string `json:"name"`
	SnapshotEnergy int    `json:"snapshotEnergy"`
	ISOTime        string `json:"isoTime"`
}

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// SampleTransform copia nombre y energía con un timestamp ISO en UTC.
func SampleTransform(name string, energy int, at time.Time) Sample {
	return Sample{
		Name:           name,
		SnapshotEnergy: energy,
		ISOTime:        at.UTC().Format(isoMillis),
	}
}

// RunSample corre la transformación y deja el resultado en el journal.
func RunSample(j *Journal, name string, energy int, at time.Time) Sample {
	out := SampleTransform(name, energy, at)
	b, _ := json.Marshal(out)
	j.Log("Sample result: " + string(b))
	return out
}

// CaughtError parsea JSON inválido a propósito y registra el error capturado.
func CaughtError(j *Journal) error {
	var v any
	err := json.Unmarshal([]byte("{ bad json"), &v)
	if err != nil {
		j.Log("Caught error: " + err.Error())
	}
	return err
}
