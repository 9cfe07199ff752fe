package zipstat

import (
	"slices"
	"strings"
	"time"

	"github.com/nao1215/zipstat/domain/model"
)

// PopulationProcessor answers population questions.
type PopulationProcessor struct {
	byZip map[string]int
	total int
}

// NewPopulationProcessor indexes populations by ZIP code. When a ZIP code
// appears more than once, the last record wins.
func NewPopulationProcessor(populations []model.Population) *PopulationProcessor {
	p := &PopulationProcessor{byZip: make(map[string]int, len(populations))}
	for _, pop := range populations {
		p.byZip[pop.ZipCode] = pop.Population
	}
	for _, n := range p.byZip {
		p.total += n
	}
	return p
}

// TotalPopulation returns the population summed over all ZIP codes.
func (p *PopulationProcessor) TotalPopulation() int {
	return p.total
}

// PopulationOf returns the population of zip and whether it is known.
func (p *PopulationProcessor) PopulationOf(zip string) (int, bool) {
	n, ok := p.byZip[zip]
	return n, ok
}

// ZipRate is a per-capita figure for one ZIP code.
type ZipRate struct {
	ZipCode string
	Rate    float64
}

type perCapitaKey struct {
	kind model.VaccinationKind
	date string
}

// VaccinationProcessor answers vaccination questions.
type VaccinationProcessor struct {
	vaccinations []model.Vaccination
	population   *PopulationProcessor

	perCapita       *cache[perCapitaKey, []ZipRate]
	fullyVaccinated *cache[struct{}, int]
}

// NewVaccinationProcessor creates a processor over the given reports.
// population may be nil, in which case no per-capita figure is known.
func NewVaccinationProcessor(vaccinations []model.Vaccination, population *PopulationProcessor) *VaccinationProcessor {
	return &VaccinationProcessor{
		vaccinations:    vaccinations,
		population:      population,
		perCapita:       newCache[perCapitaKey, []ZipRate](),
		fullyVaccinated: newCache[struct{}, int](),
	}
}

// PerCapita returns, for every ZIP code with a report on date, the vaccination
// count of kind divided by the ZIP code's population. When a ZIP code has
// several reports that day the latest one is used. ZIP codes with a zero count
// or an unknown or zero population are left out. The result is sorted by ZIP
// code.
func (p *VaccinationProcessor) PerCapita(kind model.VaccinationKind, date time.Time) []ZipRate {
	key := perCapitaKey{kind: kind, date: date.Format(model.DateLayout)}
	rates := p.perCapita.getOrCompute(key, func() []ZipRate {
		return p.computePerCapita(key)
	})
	return slices.Clone(rates)
}

func (p *VaccinationProcessor) computePerCapita(key perCapitaKey) []ZipRate {
	latest := make(map[string]model.Vaccination)
	for _, v := range p.vaccinations {
		if v.Date() != key.date {
			continue
		}
		if prev, ok := latest[v.ZipCode]; !ok || v.Timestamp.After(prev.Timestamp) {
			latest[v.ZipCode] = v
		}
	}

	rates := make([]ZipRate, 0, len(latest))
	for zip, v := range latest {
		count := v.Count(key.kind)
		if count == 0 || p.population == nil {
			continue
		}
		pop, ok := p.population.PopulationOf(zip)
		if !ok || pop == 0 {
			continue
		}
		rates = append(rates, ZipRate{ZipCode: zip, Rate: float64(count) / float64(pop)})
	}

	slices.SortFunc(rates, func(a, b ZipRate) int {
		return strings.Compare(a.ZipCode, b.ZipCode)
	})
	return rates
}

// TotalFullyVaccinated returns, summed over ZIP codes, the highest fully
// vaccinated count reported for each ZIP code.
func (p *VaccinationProcessor) TotalFullyVaccinated() int {
	return p.fullyVaccinated.getOrCompute(struct{}{}, func() int {
		highest := make(map[string]int)
		for _, v := range p.vaccinations {
			if v.FullyVaccinated > highest[v.ZipCode] {
				highest[v.ZipCode] = v.FullyVaccinated
			}
		}
		total := 0
		for _, n := range highest {
			total += n
		}
		return total
	})
}

type averageKey struct {
	measure string
	zip     string
}

// PropertyProcessor answers property questions.
type PropertyProcessor struct {
	byZip      map[string][]model.Property
	population *PopulationProcessor

	averages  *cache[averageKey, int]
	perCapita *cache[string, int]
}

// NewPropertyProcessor groups properties by ZIP code. population may be nil,
// in which case per-capita figures are 0.
func NewPropertyProcessor(properties []model.Property, population *PopulationProcessor) *PropertyProcessor {
	byZip := make(map[string][]model.Property)
	for _, prop := range properties {
		byZip[prop.ZipCode] = append(byZip[prop.ZipCode], prop)
	}
	return &PropertyProcessor{
		byZip:      byZip,
		population: population,
		averages:   newCache[averageKey, int](),
		perCapita:  newCache[string, int](),
	}
}

// Average returns the truncated average computed by calc over the properties
// in zip, or 0 if zip has no property with a known measure.
func (p *PropertyProcessor) Average(calc AverageCalculator, zip string) int {
	key := averageKey{measure: calc.Name(), zip: zip}
	return p.averages.getOrCompute(key, func() int {
		return int(calc.Average(p.byZip[zip]))
	})
}

// MarketValuePerCapita returns the total known market value in zip divided by
// its population, truncated. It is 0 when zip has no properties or its
// population is unknown or zero.
func (p *PropertyProcessor) MarketValuePerCapita(zip string) int {
	return p.perCapita.getOrCompute(zip, func() int {
		if p.population == nil {
			return 0
		}
		pop, ok := p.population.PopulationOf(zip)
		if !ok || pop == 0 {
			return 0
		}
		properties := p.byZip[zip]
		if len(properties) == 0 {
			return 0
		}
		var total float64
		for _, prop := range properties {
			if prop.HasMarketValue() {
				total += prop.MarketValue
			}
		}
		return int(total / float64(pop))
	})
}
