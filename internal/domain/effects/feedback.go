package effects

import "context"

// Commenter muestra el comentario de la mascota (en el demo original: fade in/out).
type Commenter interface {
	Comment(ctx context.Context, text string)
}
