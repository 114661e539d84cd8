package band

import (
	"github.com/samber/mo"

	"github.com/vinodhalaharvi/funcintro/pkg/ct"
)

// Record keys.
const (
	KeyName    = "name"
	KeyCountry = "country"
)

// Record is a band as a loosely typed key/value map.
type Record = map[string]string

// RecordTransform maps a record to a new record, failing when a key it
// needs is missing.
type RecordTransform = func(Record) (Record, error)

// Call lifts fn into a transform of the value stored at key.
func Call(fn func(string) string, key string) RecordTransform {
	return func(r Record) (Record, error) {
		return ct.Update(r, key, fn)
	}
}

// FormatRecords applies fns, in order, to every record. The first missing
// key aborts the whole run.
func FormatRecords(records []Record, fns ...RecordTransform) ([]Record, error) {
	chain := ct.Reduce(fns, RecordTransform(func(r Record) (Record, error) { return r, nil }), ct.ComposeE[Record])
	return ct.TryMap(records, chain)
}

// UpdateProperty sets, changes or removes the value at key. update sees None
// when the key is absent and removes it by returning None.
func UpdateProperty(r Record, key string, update func(mo.Option[string]) mo.Option[string]) Record {
	return ct.Alter(r, key, update)
}

// Record returns b as a Record.
func (b Band) Record() Record {
	return Record{KeyName: b.Name, KeyCountry: b.Country}
}

// FromRecord reads a Band out of r. Both keys are required.
func FromRecord(r Record) (Band, error) {
	name, err := ct.Get(r, KeyName)
	if err != nil {
		return Band{}, err
	}
	country, err := ct.Get(r, KeyCountry)
	if err != nil {
		return Band{}, err
	}
	return Band{Name: name, Country: country}, nil
}
