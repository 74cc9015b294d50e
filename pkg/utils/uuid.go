package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para os artefatos de relatório
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
