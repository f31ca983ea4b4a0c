package salary

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tariffs.yaml
var embeddedTariffs []byte

// TariffPoint is the base salary for one pay grade and step in a given year.
type TariffPoint struct {
	Entgeltgruppe string  `yaml:"entgeltgruppe"`
	Stufe         string  `yaml:"stufe"`
	Jahr          int     `yaml:"jahr"`
	Grundentgelt  float64 `yaml:"grundentgelt"`
}

type tariffKey struct {
	jahr          int
	entgeltgruppe string
	stufe         string
}

func (p TariffPoint) key() tariffKey {
	return tariffKey{jahr: p.Jahr, entgeltgruppe: p.Entgeltgruppe, stufe: p.Stufe}
}

// Catalog is the immutable tariff table. It is built once at process start
// and only read afterwards, so it is safe for concurrent use.
type Catalog struct {
	points []TariffPoint
	index  map[tariffKey]int
}

type catalogFile struct {
	Tariffs []TariffPoint `yaml:"tariffs"`
}

// NewCatalog validates the given points and builds a catalog from a copy of them.
func NewCatalog(points []TariffPoint) (*Catalog, error) {
	c := &Catalog{
		points: make([]TariffPoint, 0, len(points)),
		index:  make(map[tariffKey]int, len(points)),
	}
	for _, p := range points {
		if p.Entgeltgruppe == "" || p.Stufe == "" {
			return nil, fmt.Errorf("tariff point for year %d is missing entgeltgruppe or stufe", p.Jahr)
		}
		if p.Grundentgelt <= 0 {
			return nil, fmt.Errorf("tariff point %s %s %d: grundentgelt must be positive, got %v",
				p.Entgeltgruppe, p.Stufe, p.Jahr, p.Grundentgelt)
		}
		if _, exists := c.index[p.key()]; exists {
			return nil, fmt.Errorf("%w: %s %s %d", ErrDuplicateTariffPoint, p.Entgeltgruppe, p.Stufe, p.Jahr)
		}
		c.index[p.key()] = len(c.points)
		c.points = append(c.points, p)
	}
	return c, nil
}

// ParseCatalog decodes a YAML tariff table.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tariff catalog: %w", err)
	}
	return NewCatalog(file.Tariffs)
}

// DefaultCatalog returns the tariff table compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(embeddedTariffs)
}

// Lookup returns the tariff point for the given year, pay grade and step.
func (c *Catalog) Lookup(jahr int, entgeltgruppe, stufe string) (TariffPoint, error) {
	i, ok := c.index[tariffKey{jahr: jahr, entgeltgruppe: entgeltgruppe, stufe: stufe}]
	if !ok {
		return TariffPoint{}, fmt.Errorf("%w: %s %s %d", ErrTariffPointNotFound, entgeltgruppe, stufe, jahr)
	}
	return c.points[i], nil
}

// Len returns the number of tariff points.
func (c *Catalog) Len() int {
	return len(c.points)
}

// Years lists the distinct catalog years in ascending order.
func (c *Catalog) Years() []int {
	seen := make(map[int]struct{})
	var years []int
	for _, p := range c.points {
		if _, ok := seen[p.Jahr]; ok {
			continue
		}
		seen[p.Jahr] = struct{}{}
		years = append(years, p.Jahr)
	}
	sort.Ints(years)
	return years
}

// Groups lists the pay grades available in a year.
func (c *Catalog) Groups(jahr int) []string {
	return c.distinct(func(p TariffPoint) (string, bool) {
		return p.Entgeltgruppe, p.Jahr == jahr
	})
}

// Steps lists the steps available for a pay grade in a year.
func (c *Catalog) Steps(jahr int, entgeltgruppe string) []string {
	return c.distinct(func(p TariffPoint) (string, bool) {
		return p.Stufe, p.Jahr == jahr && p.Entgeltgruppe == entgeltgruppe
	})
}

// ForYear returns the points of a year in catalog order.
func (c *Catalog) ForYear(jahr int) []TariffPoint {
	var points []TariffPoint
	for _, p := range c.points {
		if p.Jahr == jahr {
			points = append(points, p)
		}
	}
	return points
}

func (c *Catalog) distinct(pick func(TariffPoint) (string, bool)) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range c.points {
		v, ok := pick(p)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
