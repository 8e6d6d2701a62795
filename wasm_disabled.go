//go:build !(js && wasm)

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/marisvali/tetris1/world"
)

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	world.Check(err)
}

// debugLogWriter opens the debug log in the temp folder, so that logging
// doesn't interfere with the terminal the game was started from.
func debugLogWriter() (io.Writer, error) {
	path := filepath.Join(os.TempDir(), "tetris1-debug.log")
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
