// Package catalog registers the runnable lessons by name.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/vinodhalaharvi/funcintro/pkg/band"
	"github.com/vinodhalaharvi/funcintro/pkg/basics"
	"github.com/vinodhalaharvi/funcintro/pkg/config"
	"github.com/vinodhalaharvi/funcintro/pkg/ct"
	"github.com/vinodhalaharvi/funcintro/pkg/race"
	"github.com/vinodhalaharvi/funcintro/pkg/random"
)

// ErrUnknownExample is returned by Lookup for names that are not registered.
var ErrUnknownExample = errors.New("unknown example")

// Env is what a lesson runs against.
type Env struct {
	Samples Samples
	Config  config.Config
	Logger  *zap.Logger
}

// Source returns a fresh random source seeded from the config, so every
// lesson sees the same sequence regardless of what else ran.
func (e Env) Source() random.Source {
	return random.New(e.Config.Race.Seed)
}

func (e Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Output is the result of one lesson. Value is structured, Text is for people.
type Output struct {
	Value any
	Text  string
}

// Example is a named, runnable lesson.
type Example struct {
	Name    string
	Summary string
	Run     func(Env) (Output, error)
}

// Catalog is an ordered set of examples.
type Catalog struct {
	examples []Example
	byName   map[string]Example
}

// New creates a catalog of the given examples, in that order.
func New(examples ...Example) *Catalog {
	return &Catalog{
		examples: examples,
		byName:   lo.KeyBy(examples, func(e Example) string { return e.Name }),
	}
}

// Default returns the catalog of built-in lessons.
func Default() *Catalog {
	return New(
		Example{Name: "increment", Summary: "impure in-place increment next to a pure one", Run: runIncrement},
		Example{Name: "lengths", Summary: "map each language to its length", Run: runLengths},
		Example{Name: "squares", Summary: "map each number to its square", Run: runSquares},
		Example{Name: "random-languages", Summary: "replace languages at random, in place and with map", Run: runRandomLanguages},
		Example{Name: "sum", Summary: "reduce numbers to their sum", Run: runSum},
		Example{Name: "hello-count", Summary: "count hellos with a loop and with reduce", Run: runHelloCount},
		Example{Name: "race", Summary: "car race as a pure step function", Run: runRace},
		Example{Name: "bands", Summary: "format bands in place and with a pipeline", Run: runBands},
		Example{Name: "band-records", Summary: "band pipeline over key/value records", Run: runBandRecords},
		Example{Name: "band-update", Summary: "optional update of a record property", Run: runBandUpdate},
	)
}

// Examples returns the examples in registration order.
func (c *Catalog) Examples() []Example {
	return slices.Clone(c.examples)
}

// Names returns the example names, sorted.
func (c *Catalog) Names() []string {
	names := lo.Keys(c.byName)
	slices.Sort(names)
	return names
}

// Lookup finds an example by name.
func (c *Catalog) Lookup(name string) (Example, error) {
	e, ok := c.byName[name]
	if !ok {
		return Example{}, fmt.Errorf("%w: %q", ErrUnknownExample, name)
	}
	return e, nil
}

// Run looks up and runs the named example.
func (c *Catalog) Run(env Env, name string) (Output, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return Output{}, err
	}
	log := env.logger().With(zap.String("example", name))
	log.Debug("Running example")

	out, err := e.Run(env)
	if err != nil {
		log.Debug("Example failed", zap.Error(err))
		return Output{}, fmt.Errorf("example %s: %w", name, err)
	}
	return out, nil
}

func runIncrement(Env) (Output, error) {
	a := 0
	basics.IncrementInPlace(&a)
	inPlace := a

	b := basics.Increment(0)
	return Output{
		Value: map[string]int{"in_place": inPlace, "pure": b},
		Text:  fmt.Sprintf("in place: %d\npure: %d", inPlace, b),
	}, nil
}

func runLengths(env Env) (Output, error) {
	lengths := basics.Lengths(env.Samples.Languages)
	return Output{Value: lengths, Text: fmt.Sprint(lengths)}, nil
}

func runSquares(env Env) (Output, error) {
	squares := basics.Squares(env.Samples.Numbers)
	return Output{Value: squares, Text: fmt.Sprint(squares)}, nil
}

func runRandomLanguages(env Env) (Output, error) {
	if len(env.Samples.NewLanguages) == 0 {
		return Output{}, errors.New("no new languages to choose from")
	}
	imperative := slices.Clone(env.Samples.Languages)
	basics.ReplaceWithRandom(imperative, env.Samples.NewLanguages, env.Source())

	functional := basics.RandomChoices(env.Samples.Languages, env.Samples.NewLanguages, env.Source())
	return Output{
		Value: map[string][]string{"imperative": imperative, "functional": functional},
		Text:  fmt.Sprintf("imperative: %v\nfunctional: %v", imperative, functional),
	}, nil
}

func runSum(env Env) (Output, error) {
	sum := basics.Sum(env.Samples.Numbers)
	return Output{Value: sum, Text: fmt.Sprint(sum)}, nil
}

func runHelloCount(env Env) (Output, error) {
	imperative := basics.CountContainingLoop(env.Samples.Greetings, "hello")
	functional := basics.CountContaining(env.Samples.Greetings, "hello")
	return Output{
		Value: map[string]int{"imperative": imperative, "functional": functional},
		Text:  fmt.Sprintf("imperative: %d\nfunctional: %d", imperative, functional),
	}, nil
}

func runRace(env Env) (Output, error) {
	opts := env.Config.RaceOptions()
	states := race.States(race.Start(opts), race.Step(env.Source(), opts))
	env.logger().Debug("Race finished",
		zap.Int("ticks", len(states)),
		zap.Ints("leaders", race.Leaders(states[len(states)-1])))

	return Output{
		Value: states,
		Text:  strings.Join(ct.Map(states, race.Render), "\n\n"),
	}, nil
}

func runBands(env Env) (Output, error) {
	country := env.Config.Bands.Country
	imperative := slices.Clone(env.Samples.Bands)
	basics.FormatBandsInPlace(imperative, country)

	functional := band.Format(env.Samples.Bands, band.SetCountry(country), band.CapitalizeName)
	return Output{
		Value: map[string][]band.Band{"imperative": imperative, "functional": functional},
		Text:  "imperative:\n" + formatBands(imperative) + "\nfunctional:\n" + formatBands(functional),
	}, nil
}

func formatBands(bands []band.Band) string {
	lines := ct.Map(bands, func(b band.Band) string {
		return fmt.Sprintf("  %s (%s)", b.Name, b.Country)
	})
	return strings.Join(lines, "\n")
}

func runBandRecords(env Env) (Output, error) {
	country := env.Config.Bands.Country
	records, err := band.FormatRecords(
		ct.Map(env.Samples.Bands, band.Band.Record),
		band.Call(func(string) string { return country }, band.KeyCountry),
		band.Call(band.Capitalize, band.KeyName),
	)
	if err != nil {
		return Output{}, err
	}
	return Output{Value: records, Text: formatRecords(records)}, nil
}

func runBandUpdate(env Env) (Output, error) {
	records := ct.Map(env.Samples.Bands, func(b band.Band) band.Record {
		r := band.UpdateProperty(b.Record(), band.KeyCountry, func(o mo.Option[string]) mo.Option[string] {
			return mo.Some(strings.ToUpper(o.OrElse(env.Config.Bands.Country)))
		})
		return band.UpdateProperty(r, "genre", func(o mo.Option[string]) mo.Option[string] {
			return mo.Some(o.OrElse("unknown"))
		})
	})
	return Output{Value: records, Text: formatRecords(records)}, nil
}

func formatRecords(records []band.Record) string {
	return strings.Join(ct.Map(records, formatRecord), "\n")
}

func formatRecord(r band.Record) string {
	keys := lo.Keys(r)
	slices.Sort(keys)
	return strings.Join(ct.Map(keys, func(k string) string { return k + "=" + r[k] }), " ")
}
