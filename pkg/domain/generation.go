package domain

import (
	"encoding/base64"
	"fmt"
)

type GenerationKind int

const (
	// GenerationUnknown covers any response shape that is neither an image nor a structured error.
	GenerationUnknown GenerationKind = iota
	GenerationImage
	GenerationFailed
)

// Generation is the outcome of one text-to-image request.
type Generation struct {
	Kind     GenerationKind
	B64Image string
	Created  int64
	Error    string
}

func (g Generation) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(g.B64Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return data, nil
}

// Filename names a stored image after its creation timestamp and prompt.
func Filename(created int64, prompt string) string {
	return fmt.Sprintf("%d - %s.png", created, prompt)
}
