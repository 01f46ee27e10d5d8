package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON table from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded table %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse table %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON table, panicking on error.
// The tables ship inside the binary, so a failure here is a build defect.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
