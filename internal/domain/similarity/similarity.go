// Package similarity calcula similitud de cadenas para la detección de
// nombres de empresa probablemente duplicados. Usa coeficiente de Dice sobre
// bigramas de caracteres, insensible a mayúsculas y acentos.
package similarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DuplicateThreshold umbral a partir del cual dos nombres se consideran
// probablemente duplicados.
const DuplicateThreshold = 0.60

// quita marcas diacríticas: NFD + remover Mn + NFC ("Compañía" → "Compania")
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// bigrams devuelve el multiconjunto de bigramas de runas de s.
func bigrams(s string) map[string]int {
	rs := []rune(s)
	grams := make(map[string]int)
	for i := 0; i+1 < len(rs); i++ {
		grams[string(rs[i:i+2])]++
	}
	return grams
}

// Score devuelve la similitud Dice entre a y b en [0,1]:
// 2 × bigramas compartidos / (bigramas de a + bigramas de b).
func Score(a, b string) float64 {
	a = normalize(a)
	b = normalize(b)
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}

	ga := bigrams(a)
	gb := bigrams(b)

	totalA, totalB := 0, 0
	for _, n := range ga {
		totalA += n
	}
	for _, n := range gb {
		totalB += n
	}
	if totalA+totalB == 0 {
		return 0
	}

	shared := 0
	for g, n := range ga {
		if m, ok := gb[g]; ok {
			if m < n {
				shared += m
			} else {
				shared += n
			}
		}
	}
	return 2 * float64(shared) / float64(totalA+totalB)
}

// MaxScore devuelve la mayor similitud del candidato contra los nombres
// existentes. Con lista vacía devuelve 0.
func MaxScore(candidate string, existing []string) float64 {
	max := 0.0
	for _, name := range existing {
		if s := Score(candidate, name); s > max {
			max = s
		}
	}
	return max
}
