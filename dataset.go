package zipstat

import (
	"fmt"

	"github.com/nao1215/zipstat/domain/model"
)

// DatasetKind identifies one of the input datasets.
type DatasetKind int

const (
	// DatasetPopulation is the per-ZIP population file
	DatasetPopulation DatasetKind = iota
	// DatasetVaccination is the COVID report file
	DatasetVaccination
	// DatasetProperty is the property assessment file
	DatasetProperty
)

// String returns the flag name of the dataset.
func (k DatasetKind) String() string {
	switch k {
	case DatasetPopulation:
		return "population"
	case DatasetVaccination:
		return "covid"
	case DatasetProperty:
		return "properties"
	default:
		return "unknown"
	}
}

// Action is a numbered question the menu can answer.
type Action int

const (
	// ActionExit ends the session
	ActionExit Action = iota
	// ActionListActions lists the actions available for the loaded data
	ActionListActions
	// ActionTotalPopulation prints the population over all ZIP codes
	ActionTotalPopulation
	// ActionVaccinationsPerCapita prints per-capita vaccinations for a date
	ActionVaccinationsPerCapita
	// ActionAverageMarketValue prints the average market value in a ZIP code
	ActionAverageMarketValue
	// ActionAverageLivableArea prints the average livable area in a ZIP code
	ActionAverageLivableArea
	// ActionMarketValuePerCapita prints the market value per capita in a ZIP code
	ActionMarketValuePerCapita
	// ActionTotalFullyVaccinated prints the fully vaccinated count over all ZIP codes
	ActionTotalFullyVaccinated
)

// Actions returns every action in menu order.
func Actions() []Action {
	return []Action{
		ActionExit,
		ActionListActions,
		ActionTotalPopulation,
		ActionVaccinationsPerCapita,
		ActionAverageMarketValue,
		ActionAverageLivableArea,
		ActionMarketValuePerCapita,
		ActionTotalFullyVaccinated,
	}
}

// Valid reports whether a is one of the defined actions.
func (a Action) Valid() bool {
	return a >= ActionExit && a <= ActionTotalFullyVaccinated
}

// String returns the menu text of the action.
func (a Action) String() string {
	switch a {
	case ActionExit:
		return "Exit the program."
	case ActionListActions:
		return "Show the available actions."
	case ActionTotalPopulation:
		return "Show the total population for all ZIP Codes."
	case ActionVaccinationsPerCapita:
		return "Show the total vaccinations per capita for each ZIP Code for the specified date."
	case ActionAverageMarketValue:
		return "Show the average market value for properties in a specified ZIP Code."
	case ActionAverageLivableArea:
		return "Show the average total livable area for properties in a specified ZIP Code."
	case ActionMarketValuePerCapita:
		return "Show the total market value of properties, per capita, for a specified ZIP Code."
	case ActionTotalFullyVaccinated:
		return "Show the total number of fully vaccinated people across all ZIP Codes."
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Requires returns the datasets the action needs.
func (a Action) Requires() []DatasetKind {
	switch a {
	case ActionTotalPopulation:
		return []DatasetKind{DatasetPopulation}
	case ActionVaccinationsPerCapita:
		return []DatasetKind{DatasetPopulation, DatasetVaccination}
	case ActionAverageMarketValue, ActionAverageLivableArea:
		return []DatasetKind{DatasetProperty}
	case ActionMarketValuePerCapita:
		return []DatasetKind{DatasetPopulation, DatasetProperty}
	case ActionTotalFullyVaccinated:
		return []DatasetKind{DatasetVaccination}
	default:
		return nil
	}
}

// Dataset holds the loaded records and the processors built over them.
// It is immutable after Build and safe for concurrent use.
type Dataset struct {
	Populations  []model.Population
	Vaccinations []model.Vaccination
	Properties   []model.Property

	loaded      map[DatasetKind]bool
	population  *PopulationProcessor
	vaccination *VaccinationProcessor
	property    *PropertyProcessor
}

// newDataset builds the processors. A nil slice for a kind listed in loaded
// is an empty dataset, not a missing one.
func newDataset(populations []model.Population, vaccinations []model.Vaccination, properties []model.Property, loaded map[DatasetKind]bool) *Dataset {
	d := &Dataset{
		Populations:  populations,
		Vaccinations: vaccinations,
		Properties:   properties,
		loaded:       loaded,
	}

	if loaded[DatasetPopulation] {
		d.population = NewPopulationProcessor(populations)
	}
	if loaded[DatasetVaccination] {
		d.vaccination = NewVaccinationProcessor(vaccinations, d.population)
	}
	if loaded[DatasetProperty] {
		d.property = NewPropertyProcessor(properties, d.population)
	}
	return d
}

// Has reports whether the dataset of the given kind was loaded.
func (d *Dataset) Has(kind DatasetKind) bool {
	return d.loaded[kind]
}

// Supports reports whether every dataset a needs is loaded.
func (d *Dataset) Supports(a Action) bool {
	if !a.Valid() {
		return false
	}
	for _, kind := range a.Requires() {
		if !d.Has(kind) {
			return false
		}
	}
	return true
}

// AvailableActions returns the actions the loaded data can answer, in menu
// order. ActionExit and ActionListActions are always available.
func (d *Dataset) AvailableActions() []Action {
	var actions []Action
	for _, a := range Actions() {
		if d.Supports(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// PopulationProcessor returns the population processor, or
// ErrDatasetNotLoaded.
func (d *Dataset) PopulationProcessor() (*PopulationProcessor, error) {
	if d.population == nil {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotLoaded, DatasetPopulation)
	}
	return d.population, nil
}

// VaccinationProcessor returns the vaccination processor, or
// ErrDatasetNotLoaded.
func (d *Dataset) VaccinationProcessor() (*VaccinationProcessor, error) {
	if d.vaccination == nil {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotLoaded, DatasetVaccination)
	}
	return d.vaccination, nil
}

// PropertyProcessor returns the property processor, or ErrDatasetNotLoaded.
func (d *Dataset) PropertyProcessor() (*PropertyProcessor, error) {
	if d.property == nil {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotLoaded, DatasetProperty)
	}
	return d.property, nil
}
