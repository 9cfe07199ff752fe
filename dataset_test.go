package zipstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction(t *testing.T) {
	t.Parallel()

	assert.Len(t, Actions(), 8)
	for i, a := range Actions() {
		assert.Equal(t, i, int(a))
		assert.True(t, a.Valid())
		assert.NotEmpty(t, a.String())
	}

	assert.False(t, Action(-1).Valid())
	assert.False(t, Action(8).Valid())
	assert.Equal(t, "Action(8)", Action(8).String())

	assert.Empty(t, ActionExit.Requires())
	assert.Empty(t, ActionListActions.Requires())
	assert.Equal(t, []DatasetKind{DatasetPopulation, DatasetVaccination}, ActionVaccinationsPerCapita.Requires())
	assert.Equal(t, []DatasetKind{DatasetPopulation, DatasetProperty}, ActionMarketValuePerCapita.Requires())
}

func TestDatasetKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "population", DatasetPopulation.String())
	assert.Equal(t, "covid", DatasetVaccination.String())
	assert.Equal(t, "properties", DatasetProperty.String())
	assert.Equal(t, "unknown", DatasetKind(9).String())
}

func TestDataset_AvailableActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		loaded map[DatasetKind]bool
		want   []Action
	}{
		{
			name:   "nothing loaded",
			loaded: map[DatasetKind]bool{},
			want:   []Action{ActionExit, ActionListActions},
		},
		{
			name:   "population only",
			loaded: map[DatasetKind]bool{DatasetPopulation: true},
			want:   []Action{ActionExit, ActionListActions, ActionTotalPopulation},
		},
		{
			name:   "vaccination only",
			loaded: map[DatasetKind]bool{DatasetVaccination: true},
			want:   []Action{ActionExit, ActionListActions, ActionTotalFullyVaccinated},
		},
		{
			name:   "property only",
			loaded: map[DatasetKind]bool{DatasetProperty: true},
			want:   []Action{ActionExit, ActionListActions, ActionAverageMarketValue, ActionAverageLivableArea},
		},
		{
			name:   "everything",
			loaded: map[DatasetKind]bool{DatasetPopulation: true, DatasetVaccination: true, DatasetProperty: true},
			want:   Actions(),
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newDataset(nil, nil, nil, tt.loaded)
			assert.Equal(t, tt.want, d.AvailableActions())
		})
	}
}

func TestDataset_Processors(t *testing.T) {
	t.Parallel()

	empty := newDataset(nil, nil, nil, map[DatasetKind]bool{})
	_, err := empty.PopulationProcessor()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
	_, err = empty.VaccinationProcessor()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
	_, err = empty.PropertyProcessor()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
	assert.False(t, empty.Has(DatasetPopulation))

	full := newDataset(nil, nil, nil, map[DatasetKind]bool{DatasetPopulation: true, DatasetVaccination: true, DatasetProperty: true})
	assert.True(t, full.Has(DatasetProperty))
	p, err := full.PopulationProcessor()
	require.NoError(t, err)
	assert.Equal(t, 0, p.TotalPopulation())
	_, err = full.VaccinationProcessor()
	assert.NoError(t, err)
	_, err = full.PropertyProcessor()
	assert.NoError(t, err)
}
