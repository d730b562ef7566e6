package animals

import (
	"crypto/rand"
	"strings"
)

const (
	// PrefixLength: caracteres tomados de la especie.
	PrefixLength = 3
	// SuffixLength: 62^8 ≈ 2.2e14 combinaciones por especie.
	SuffixLength = 8

	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// IDGenerator produce un identificador para la especie dada.
type IDGenerator func(Species) (string, error)

// Prefix devuelve el prefijo de largo fijo derivado de la especie, con "_" final.
// Ej: dog -> "dog_", bird -> "bir_".
func Prefix(s Species) string {
	p := strings.ToLower(strings.TrimSpace(string(s)))
	if len(p) > PrefixLength {
		p = p[:PrefixLength]
	}
	for len(p) < PrefixLength {
		p += "x"
	}
	return p + "_"
}

// NewAnimalID = Prefix(species) + sufijo alfanumérico aleatorio (crypto/rand).
func NewAnimalID(s Species) (string, error) {
	suffix, err := randomAlphanumeric(SuffixLength)
	if err != nil {
		return "", err
	}
	return Prefix(s) + suffix, nil
}

// assignAnimalID solo genera si el animal todavía no tiene identificador.
func assignAnimalID(a Animal, gen IDGenerator) (Animal, error) {
	if a.AnimalID != "" {
		return a, nil
	}
	id, err := gen(a.Species)
	if err != nil {
		return Animal{}, err
	}
	a.AnimalID = id
	return a, nil
}

// randomAlphanumeric usa rejection sampling para no sesgar el alfabeto (62 no divide 256).
func randomAlphanumeric(n int) (string, error) {
	const maxByte = 256 - (256 % len(alphabet))

	out := make([]byte, 0, n)
	buf := make([]byte, n*2)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= maxByte {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
