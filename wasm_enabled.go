//go:build js && wasm

package main

import "io"

// The browser has no disk to write recordings or logs to.

func WriteFile(name string, data []byte) {
}

func debugLogWriter() (io.Writer, error) {
	return io.Discard, nil
}
