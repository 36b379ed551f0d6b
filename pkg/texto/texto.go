package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeAcentos decompõe (NFD), descarta as marcas de combinação e recompõe (NFC).
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoverAcentos devolve s sem sinais diacríticos ("depósito" -> "deposito").
// Em caso de falha na transformação devolve a string original.
func RemoverAcentos(s string) string {
	out, _, err := transform.String(removeAcentos, s)
	if err != nil {
		return s
	}
	return out
}

// Normalizar remove acentos e baixa a caixa, para comparação insensível
// a acentuação (busca de produtos por nome).
func Normalizar(s string) string {
	return strings.ToLower(RemoverAcentos(s))
}
