// Package ui implements the interactive text menu of zipstat.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/zipstat"
	"github.com/nao1215/zipstat/domain/model"
)

const (
	beginOutput = "BEGIN OUTPUT"
	endOutput   = "END OUTPUT"
	prompt      = "> "
)

// errInputClosed ends the session when the input runs out mid-question.
var errInputClosed = errors.New("input closed")

// Menu reads action numbers from In and writes answers to Out.
type Menu struct {
	In      io.Reader
	Out     io.Writer
	Dataset *zipstat.Dataset
	Logger  zipstat.Logger

	scanner *bufio.Scanner
}

// Run shows the menu until the user selects ActionExit, the input ends or ctx
// is canceled. Only a canceled context or a failed read is an error.
func (m *Menu) Run(ctx context.Context) error {
	if m.Logger == nil {
		m.Logger = zipstat.NopLogger()
	}
	m.scanner = bufio.NewScanner(m.In)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		action, err := m.readAction()
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		if action == zipstat.ActionExit {
			m.printf("%s\n%s\n", beginOutput, endOutput)
			return nil
		}
		if err := m.perform(action); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) printMenu() {
	for _, a := range zipstat.Actions() {
		m.printf("%d. %s\n", int(a), a)
	}
	m.printf("%s", prompt)
}

// readAction reads lines until one holds a number.
func (m *Menu) readAction() (zipstat.Action, error) {
	for {
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		m.printf("\n")

		n, err := strconv.Atoi(line)
		if err != nil {
			m.Logger.Warn("invalid input", "input", line)
			m.printf("Error: Invalid input. Please enter a number.\n%s", prompt)
			continue
		}
		m.Logger.Info("user input", "action", n)
		return zipstat.Action(n), nil
	}
}

func (m *Menu) perform(action zipstat.Action) error {
	if !action.Valid() {
		m.Logger.Warn("invalid choice", "action", int(action))
		m.printf("Error: Invalid choice. Please enter a number between %d and %d.\n",
			int(zipstat.ActionExit), int(zipstat.ActionTotalFullyVaccinated))
		return nil
	}
	if !m.Dataset.Supports(action) {
		m.Logger.Warn("action unavailable", "action", int(action), "requires", action.Requires())
		m.printf("Error: This action needs the %s data. Please provide it on the command line.\n",
			joinKinds(action.Requires()))
		return nil
	}

	switch action {
	case zipstat.ActionListActions:
		return m.listActions()
	case zipstat.ActionTotalPopulation:
		return m.totalPopulation()
	case zipstat.ActionVaccinationsPerCapita:
		return m.vaccinationsPerCapita()
	case zipstat.ActionAverageMarketValue:
		return m.averageProperty(zipstat.MarketValue{})
	case zipstat.ActionAverageLivableArea:
		return m.averageProperty(zipstat.LivableArea{})
	case zipstat.ActionMarketValuePerCapita:
		return m.marketValuePerCapita()
	case zipstat.ActionTotalFullyVaccinated:
		return m.totalFullyVaccinated()
	}
	return nil
}

func (m *Menu) listActions() error {
	actions := m.Dataset.AvailableActions()
	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, strconv.Itoa(int(a)))
	}
	m.Logger.Info("available actions", "actions", lines)
	m.output(lines...)
	return nil
}

func (m *Menu) totalPopulation() error {
	p, err := m.Dataset.PopulationProcessor()
	if err != nil {
		return err
	}
	total := p.TotalPopulation()
	m.Logger.Info("total population", "result", total)
	m.output(strconv.Itoa(total))
	return nil
}

func (m *Menu) vaccinationsPerCapita() error {
	p, err := m.Dataset.VaccinationProcessor()
	if err != nil {
		return err
	}

	kind, err := m.askVaccinationKind()
	if err != nil {
		return err
	}
	date, err := m.askDate()
	if err != nil {
		return err
	}

	rates := p.PerCapita(kind, date)
	lines := make([]string, 0, len(rates))
	for _, r := range rates {
		lines = append(lines, fmt.Sprintf("%s %.4f", r.ZipCode, r.Rate))
	}
	m.Logger.Info("vaccinations per capita", "kind", kind.String(), "date", date.Format(model.DateLayout), "zip_codes", len(rates))
	m.output(lines...)
	return nil
}

func (m *Menu) averageProperty(calc zipstat.AverageCalculator) error {
	p, err := m.Dataset.PropertyProcessor()
	if err != nil {
		return err
	}
	zip, err := m.askZipCode()
	if err != nil {
		return err
	}
	avg := p.Average(calc, zip)
	m.Logger.Info("average property measure", "measure", calc.Name(), "zip_code", zip, "result", avg)
	m.output(strconv.Itoa(avg))
	return nil
}

func (m *Menu) marketValuePerCapita() error {
	p, err := m.Dataset.PropertyProcessor()
	if err != nil {
		return err
	}
	zip, err := m.askZipCode()
	if err != nil {
		return err
	}
	v := p.MarketValuePerCapita(zip)
	m.Logger.Info("market value per capita", "zip_code", zip, "result", v)
	m.output(strconv.Itoa(v))
	return nil
}

func (m *Menu) totalFullyVaccinated() error {
	p, err := m.Dataset.VaccinationProcessor()
	if err != nil {
		return err
	}
	total := p.TotalFullyVaccinated()
	m.Logger.Info("total fully vaccinated", "result", total)
	m.output(strconv.Itoa(total))
	return nil
}

func (m *Menu) askVaccinationKind() (model.VaccinationKind, error) {
	for {
		m.printf("Enter the vaccination type (partial or full):\n%s", prompt)
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		m.Logger.Info("user input", "vaccination_kind", line)
		kind, err := model.ParseVaccinationKind(line)
		if err == nil {
			return kind, nil
		}
		m.printf("Invalid vaccination type. Please enter partial or full.\n")
	}
}

func (m *Menu) askDate() (time.Time, error) {
	for {
		m.printf("Enter the date in the format YYYY-MM-DD:\n%s", prompt)
		line, err := m.readLine()
		if err != nil {
			return time.Time{}, err
		}
		m.Logger.Info("user input", "date", line)
		date, err := model.ParseDate(line)
		if err == nil {
			return date, nil
		}
		m.printf("Invalid date format. Please enter a valid date in the format YYYY-MM-DD.\n")
	}
}

func (m *Menu) askZipCode() (string, error) {
	for {
		m.printf("Enter a 5-digit ZIP Code:\n%s", prompt)
		line, err := m.readLine()
		if err != nil {
			return "", err
		}
		m.Logger.Info("user input", "zip_code", line)
		if model.IsZipCode(line) {
			return line, nil
		}
		m.printf("Invalid ZIP Code. Please enter exactly 5 digits.\n")
	}
}

// readLine returns the next input line without surrounding whitespace.
func (m *Menu) readLine() (string, error) {
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.scanner.Text()), nil
}

// output prints lines between the output markers.
func (m *Menu) output(lines ...string) {
	m.printf("%s\n", beginOutput)
	for _, line := range lines {
		m.printf("%s\n", line)
	}
	m.printf("%s\n", endOutput)
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.Out, format, args...) // Ignore write error
}

func joinKinds(kinds []zipstat.DatasetKind) string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return strings.Join(names, " and ")
}
