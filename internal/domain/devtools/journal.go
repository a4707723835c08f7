// Package devtools reúne las rutinas de práctica de depuración del demo:
// un timer con ticks, una transformación de ejemplo y un error capturado.
// Todo escribe en un Journal en memoria que la UI muestra tal cual.
package devtools

import (
	"strings"
	"sync"
	"time"
)

const defaultJournalSize = 200

// Journal guarda las últimas líneas "[hh:mm:ss] mensaje".
type Journal struct {
	mu    sync.Mutex
	lines []string
	max   int
	now   func() time.Time
}

func NewJournal(max int) *Journal {
	if max <= 0 {
		max = defaultJournalSize
	}
	return &Journal{max: max, now: time.Now}
}

func (j *Journal) Log(msg string) {
	line := "[" + j.now().Format(time.TimeOnly) + "] " + msg

	j.mu.Lock()
	defer j.mu.Unlock()
	j.lines = append(j.lines, line)
	if over := len(j.lines) - j.max; over > 0 {
		j.lines = append(j.lines[:0:0], j.lines[over:]...)
	}
}

func (j *Journal) Lines() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.lines...)
}

func (j *Journal) Text() string {
	return strings.Join(j.Lines(), "\n")
}
