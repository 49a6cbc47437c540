package images

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver resuelve el nombre de un animal a su foto en disco.
// La ausencia de foto es un resultado normal (la UI muestra placeholder),
// nunca un error.
type Resolver struct {
	dir string
}

func NewResolver(dir string) *Resolver {
	return &Resolver{dir: strings.TrimSpace(dir)}
}

// Lookup busca <nombre en minúsculas>.jpg dentro del directorio configurado.
func (r *Resolver) Lookup(name string) (string, bool) {
	if r == nil || r.dir == "" {
		return "", false
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}

	path := filepath.Join(r.dir, name+".jpg")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
