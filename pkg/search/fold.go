// Package search normaliza texto para búsquedas insensibles a acentos y mayúsculas.
// Los listados de casas e inquilinos aceptan ?q= y comparan contra la forma plegada.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold elimina marcas diacríticas y pasa a minúsculas: "Peñalosa" -> "penalosa".
// Si la transformación falla (entrada no UTF-8 válida) devuelve la entrada en minúsculas.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Matches reporta si needle aparece en haystack comparando formas plegadas.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
