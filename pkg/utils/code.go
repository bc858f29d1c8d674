package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	codeAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	saleCodeLength = 8
)

// GenerateSaleCode gera o código legível de uma venda
func GenerateSaleCode() (string, error) {
	return gonanoid.Generate(codeAlphabet, saleCodeLength)
}
