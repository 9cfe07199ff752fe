// Package zipstat answers questions about ZIP-code level civic data:
// population counts, COVID vaccination reports and property assessments.
//
// Input files are parsed with the streaming tokenizer in package csvreader,
// or read from XLSX workbooks and JSON arrays. Compressed inputs (gzip, bzip2,
// xz, zstandard) are decompressed transparently based on the file suffix.
//
// # Features
//
//   - Population, vaccination and property readers that skip and log invalid records
//   - Totals, per-capita figures and averages, memoized per request
//   - Export of the loaded data to SQLite
//
// # Basic Usage
//
//	dataset, err := zipstat.NewBuilder().
//	    WithPopulation("population.csv").
//	    WithVaccinations("covid_data.json").
//	    WithProperties("properties.csv.gz").
//	    WithLogger(logger).
//	    Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	population, err := dataset.PopulationProcessor()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(population.TotalPopulation())
//
// # SQL Access
//
// OpenDB copies the dataset into an in-memory SQLite database with the tables
// "population", "vaccination" and "property":
//
//	db, err := dataset.OpenDB(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	rows, err := db.QueryContext(ctx, "SELECT zip_code, AVG(market_value) FROM property GROUP BY zip_code")
//
// Unknown property measures are NULL in SQL and NaN in Go.
package zipstat
