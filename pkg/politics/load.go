package politics

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/felgenland/staratlas/pkg/errors"
)

// rawDocument mirrors the top-level shape of the political-entity document.
// Nations and economic zones decode into yaml.MapSlice so the mapping order
// of the source document survives into the dataset.
type rawDocument struct {
	Metadata      Metadata      `yaml:"metadata"`
	Nations       yaml.MapSlice `yaml:"nations"`
	EconomicZones yaml.MapSlice `yaml:"economic_zones"`
}

// Load parses a political-entity document into a typed Dataset.
//
// The document may be JSON or YAML; both top-level shapes are identical
// (metadata, nations, economic_zones). Structural problems such as a missing
// required field, a field of the wrong type, or a record that is not a mapping
// abort the load with a ParseError naming the offending slug and field.
// Load has no side effects and never returns a partially built dataset.
func Load(data []byte) (*Dataset, error) {
	var doc rawDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("document", "", err)
	}

	if doc.Nations == nil {
		return nil, errors.NewParseError("document", "", "nations", "required section is missing")
	}

	ds := &Dataset{
		metadata: doc.Metadata,
		nations:  NewNations(),
		zones:    NewZones(),
	}

	for _, item := range doc.Nations {
		slug, ok := item.Key.(string)
		if !ok {
			return nil, errors.NewParseError("nation", fmt.Sprint(item.Key), "", "slug must be a string")
		}
		nation, err := decodeNation(NationID(slug), item.Value)
		if err != nil {
			return nil, err
		}
		if err := ds.nations.Add(nation); err != nil {
			return nil, errors.NewParseError("nation", slug, "", err.Error())
		}
	}

	for _, item := range doc.EconomicZones {
		slug, ok := item.Key.(string)
		if !ok {
			return nil, errors.NewParseError("zone", fmt.Sprint(item.Key), "", "slug must be a string")
		}
		zone, err := decodeZone(ZoneID(slug), item.Value)
		if err != nil {
			return nil, err
		}
		if err := ds.zones.Add(zone); err != nil {
			return nil, errors.NewParseError("zone", slug, "", err.Error())
		}
	}

	return ds, nil
}

// LoadFile reads and parses a political-entity document from disk.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Load(data)
}

// LoadFS reads and parses a political-entity document from a filesystem.
func LoadFS(fsys fs.FS, name string) (*Dataset, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	return Load(data)
}

// decodeNation builds a Nation from a raw document record.
func decodeNation(slug NationID, value any) (*Nation, error) {
	fields, ok := asMapping(value)
	if !ok {
		return nil, errors.NewParseError("nation", string(slug), "", "record is not a mapping")
	}

	dec := &fieldDecoder{resource: "nation", slug: string(slug), fields: fields}

	nation := &Nation{
		ID:            slug,
		Name:          dec.requireString("name"),
		FullName:      dec.optionalString("full_name"),
		CapitalSystem: dec.optionalString("capital_system"),
		CapitalStarID: StarID(dec.requireInt("capital_star_id")),
		CapitalPlanet: dec.optionalString("capital_planet"),
		Government:    dec.optionalString("government_type"),
		Color:         dec.optionalString("color"),
		BorderColor:   dec.optionalString("border_color"),
		Established:   dec.optionalPositiveInt("established_year"),
		Description:   dec.optionalString("description"),
		Territories:   dec.requireStarIDs("territories"),
		Specialties:   dec.optionalStrings("specialties"),

		Population:       dec.optionalString("population"),
		MilitaryStrength: dec.optionalString("military_strength"),
		Economy:          dec.optionalString("economy"),
		PoliticalSystem:  dec.optionalString("political_system"),
		DiplomaticStance: dec.optionalString("diplomatic_stance"),
	}

	if dec.err != nil {
		return nil, dec.err
	}
	return nation, nil
}

// decodeZone builds an EconomicZone from a raw document record.
func decodeZone(slug ZoneID, value any) (*EconomicZone, error) {
	fields, ok := asMapping(value)
	if !ok {
		return nil, errors.NewParseError("zone", string(slug), "", "record is not a mapping")
	}

	dec := &fieldDecoder{resource: "zone", slug: string(slug), fields: fields}

	zone := &EconomicZone{
		ID:               slug,
		Name:             dec.requireString("name"),
		MemberSystems:    dec.requireStarIDs("member_systems"),
		Currency:         dec.optionalString("currency"),
		TradeRegulations: dec.optionalString("trade_regulations"),
		TaxRate:          dec.optionalString("tax_rate"),
		Description:      dec.optionalString("description"),
	}

	if dec.err != nil {
		return nil, dec.err
	}
	return zone, nil
}

// fieldDecoder extracts typed fields from a raw record, recording the first
// structural failure it encounters. Once failed, subsequent extractions
// return zero values.
type fieldDecoder struct {
	resource string
	slug     string
	fields   map[string]any
	err      error
}

func (d *fieldDecoder) fail(field, message string) {
	if d.err == nil {
		d.err = errors.NewParseError(d.resource, d.slug, field, message)
	}
}

func (d *fieldDecoder) requireString(field string) string {
	v, ok := d.fields[field]
	if !ok || v == nil {
		d.fail(field, "required field is missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(field, "expected string, got "+typeName(v))
		return ""
	}
	return s
}

func (d *fieldDecoder) optionalString(field string) string {
	v, ok := d.fields[field]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(field, "expected string, got "+typeName(v))
		return ""
	}
	return s
}

func (d *fieldDecoder) requireInt(field string) int {
	v, ok := d.fields[field]
	if !ok || v == nil {
		d.fail(field, "required field is missing")
		return 0
	}
	n, ok := intValue(v)
	if !ok {
		d.fail(field, "expected integer, got "+typeName(v))
		return 0
	}
	return n
}

func (d *fieldDecoder) optionalPositiveInt(field string) int {
	v, ok := d.fields[field]
	if !ok || v == nil {
		return 0
	}
	n, ok := intValue(v)
	if !ok {
		d.fail(field, "expected integer, got "+typeName(v))
		return 0
	}
	if n <= 0 {
		d.fail(field, fmt.Sprintf("expected positive integer, got %d", n))
		return 0
	}
	return n
}

func (d *fieldDecoder) requireStarIDs(field string) []StarID {
	v, ok := d.fields[field]
	if !ok || v == nil {
		d.fail(field, "required field is missing")
		return nil
	}
	seq, ok := asSequence(v)
	if !ok {
		d.fail(field, "expected sequence of integers, got "+typeName(v))
		return nil
	}
	ids := make([]StarID, 0, len(seq))
	for i, elem := range seq {
		n, ok := intValue(elem)
		if !ok {
			d.fail(field, fmt.Sprintf("element %d: expected integer, got %s", i, typeName(elem)))
			return nil
		}
		ids = append(ids, StarID(n))
	}
	return ids
}

func (d *fieldDecoder) optionalStrings(field string) []string {
	v, ok := d.fields[field]
	if !ok || v == nil {
		return nil
	}
	seq, ok := asSequence(v)
	if !ok {
		d.fail(field, "expected sequence of strings, got "+typeName(v))
		return nil
	}
	out := make([]string, 0, len(seq))
	for i, elem := range seq {
		s, ok := elem.(string)
		if !ok {
			d.fail(field, fmt.Sprintf("element %d: expected string, got %s", i, typeName(elem)))
			return nil
		}
		out = append(out, s)
	}
	return out
}

// asMapping normalizes the decoder's mapping representations. goccy/go-yaml
// yields map[string]any for nested mappings decoded into any, and
// yaml.MapSlice when ordered decoding is in effect.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case yaml.MapSlice:
		out := make(map[string]any, len(m))
		for _, item := range m {
			key, ok := item.Key.(string)
			if !ok {
				return nil, false
			}
			out[key] = item.Value
		}
		return out, true
	default:
		return nil, false
	}
}

// asSequence normalizes sequence values decoded into any.
func asSequence(v any) ([]any, bool) {
	seq, ok := v.([]any)
	return seq, ok
}

// intValue coerces the numeric representations the decoder can produce into
// an int, rejecting non-integral floats.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// typeName reports a document-level type name for error messages, so dataset
// editors see YAML/JSON vocabulary rather than Go types.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	case []any:
		return "sequence"
	case map[string]any, yaml.MapSlice:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
