package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vinodhalaharvi/funcintro/pkg/band"
)

//go:embed samples.yaml
var samplesYAML []byte

// Samples are the inputs every lesson reads.
type Samples struct {
	Languages    []string    `yaml:"languages"`
	NewLanguages []string    `yaml:"new_languages"`
	Numbers      []int       `yaml:"numbers"`
	Greetings    []string    `yaml:"greetings"`
	Bands        []band.Band `yaml:"bands"`
}

// DefaultSamples decodes the embedded sample inputs.
func DefaultSamples() (Samples, error) {
	return ParseSamples(samplesYAML)
}

// ParseSamples decodes samples from YAML.
func ParseSamples(data []byte) (Samples, error) {
	var s Samples
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Samples{}, fmt.Errorf("failed to parse samples: %w", err)
	}
	return s, nil
}
