package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto sem caracteres especiais para os identificadores ficarem seguros
// em URLs e nas chaves de cache
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 6

// GenerateID gera o identificador curto usado por usuários, contas de
// anúncios e campanhas
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
