// Package verificationcode define o contrato do código de verificação:
// normalização, formato e geração no template L#LLL#.
package verificationcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Length é o tamanho fixo do código impresso na carteirinha.
const Length = 6

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"

	// pattern descreve o template do código gerado no servidor:
	// L = letra, # = dígito (ex: L3JVJ2).
	pattern = "L#LLL#"
)

// Normalize remove espaços das bordas e converte para maiúsculas.
// "a1b2c3" e "A1B2C3" denotam o mesmo registro; a normalização é
// idempotente e aplicada tanto na gravação quanto na consulta.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsWellFormed informa se o código, após normalização, tem o tamanho exato.
func IsWellFormed(code string) bool {
	return len(Normalize(code)) == Length
}

// Generate produz um código novo no template L#LLL# usando crypto/rand.
// A unicidade não é garantida aqui: quem insere precisa tratar colisão.
func Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(Length)
	for _, slot := range pattern {
		alphabet := letters
		if slot == '#' {
			alphabet = digits
		}
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("falha ao gerar código de verificação: %w", err)
		}
		sb.WriteByte(alphabet[idx.Int64()])
	}
	return sb.String(), nil
}
