package zipstat

import (
	"context"

	"github.com/nao1215/zipstat/domain/model"
)

// Builder configures the input files of a Dataset.
// Use NewBuilder to create a new instance, then chain method calls to configure it.
//
// The typical usage pattern is:
//
//	dataset, err := zipstat.NewBuilder().
//		WithPopulation("population.csv").
//		WithVaccinations("covid.json").
//		WithProperties("properties.csv.gz").
//		Build(ctx)
//	if err != nil {
//		return err
//	}
type Builder struct {
	// paths contains the input file of each configured dataset
	paths  map[DatasetKind]string
	logger Logger
}

// NewBuilder creates a builder with no inputs and a discarding logger.
func NewBuilder() *Builder {
	return &Builder{
		paths:  make(map[DatasetKind]string),
		logger: NopLogger(),
	}
}

// WithPopulation sets the population file (CSV or XLSX, optionally compressed).
func (b *Builder) WithPopulation(path string) *Builder {
	b.paths[DatasetPopulation] = path
	return b
}

// WithVaccinations sets the COVID report file (CSV, XLSX or JSON, optionally
// compressed).
func (b *Builder) WithVaccinations(path string) *Builder {
	b.paths[DatasetVaccination] = path
	return b
}

// WithProperties sets the property file (CSV or XLSX, optionally compressed).
func (b *Builder) WithProperties(path string) *Builder {
	b.paths[DatasetProperty] = path
	return b
}

// WithLogger sets the logger that receives load events. A nil logger keeps
// the current one.
func (b *Builder) WithLogger(logger Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build validates every configured path, then reads the files. At least one
// dataset must be configured.
func (b *Builder) Build(ctx context.Context) (*Dataset, error) {
	v := newValidator()
	if err := v.validateInputsAvailable(b.paths); err != nil {
		return nil, err
	}
	for _, kind := range []DatasetKind{DatasetPopulation, DatasetVaccination, DatasetProperty} {
		path, ok := b.paths[kind]
		if !ok {
			continue
		}
		if err := v.validatePath(kind, path); err != nil {
			return nil, err
		}
	}

	loaded := make(map[DatasetKind]bool, len(b.paths))
	var (
		populations  []model.Population
		vaccinations []model.Vaccination
		properties   []model.Property
		err          error
	)

	if path, ok := b.paths[DatasetPopulation]; ok {
		if populations, err = ReadPopulations(ctx, path, b.logger); err != nil {
			return nil, err
		}
		loaded[DatasetPopulation] = true
	}
	if path, ok := b.paths[DatasetVaccination]; ok {
		if vaccinations, err = ReadVaccinations(ctx, path, b.logger); err != nil {
			return nil, err
		}
		loaded[DatasetVaccination] = true
	}
	if path, ok := b.paths[DatasetProperty]; ok {
		if properties, err = ReadProperties(ctx, path, b.logger); err != nil {
			return nil, err
		}
		loaded[DatasetProperty] = true
	}

	return newDataset(populations, vaccinations, properties, loaded), nil
}
