// Package band implements the band formatting pipeline: a list of bands is
// run through a chain of small transforms, each returning a new band.
package band

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vinodhalaharvi/funcintro/pkg/ct"
)

// Band is a band and the country it comes from.
type Band struct {
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
}

// Transform maps a band to a new band.
type Transform = func(Band) Band

// SetCountry returns a transform that moves a band to country.
func SetCountry(country string) Transform {
	return func(b Band) Band {
		b.Country = country
		return b
	}
}

// CapitalizeName upper-cases the first letter of every word in the name.
func CapitalizeName(b Band) Band {
	b.Name = Capitalize(b.Name)
	return b
}

// Capitalize title-cases s word by word.
func Capitalize(s string) string {
	// A Caser keeps state between calls; one per call keeps this pure.
	return cases.Title(language.Und).String(s)
}

// Format applies fns, in order, to every band.
func Format(bands []Band, fns ...Transform) []Band {
	return ct.Map(bands, ct.Pipeline(fns...))
}
