package zipstat

import "github.com/nao1215/zipstat/domain/model"

// AverageCalculator averages one measure over a set of properties.
type AverageCalculator interface {
	// Name identifies the measure; results are memoized per name.
	Name() string
	// Average returns the mean of the known measures, or 0 if none is known.
	Average(properties []model.Property) float64
}

// MarketValue averages the assessed market value.
type MarketValue struct{}

// Name returns "market_value".
func (MarketValue) Name() string { return model.ColumnMarketValue }

// Average returns the mean market value, ignoring unknown values.
func (MarketValue) Average(properties []model.Property) float64 {
	return averageOf(properties, model.Property.HasMarketValue, func(p model.Property) float64 {
		return p.MarketValue
	})
}

// LivableArea averages the total livable area.
type LivableArea struct{}

// Name returns "total_livable_area".
func (LivableArea) Name() string { return model.ColumnTotalLivableArea }

// Average returns the mean livable area, ignoring unknown values.
func (LivableArea) Average(properties []model.Property) float64 {
	return averageOf(properties, model.Property.HasLivableArea, func(p model.Property) float64 {
		return p.TotalLivableArea
	})
}

func averageOf(properties []model.Property, known func(model.Property) bool, measure func(model.Property) float64) float64 {
	var (
		sum   float64
		count int
	)
	for _, p := range properties {
		if !known(p) {
			continue
		}
		sum += measure(p)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
