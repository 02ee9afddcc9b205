package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"resort-concierge/model"
	"resort-concierge/service"
	"resort-concierge/store"
)

const allSections = "All"

type menuSection struct {
	name  string
	items []model.MenuItem
}

func newMenuCmd() *cobra.Command {
	var section, at string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the bar and kitchen menu",
		Long:  `Print the menu with prices, promotions and serving hours. Without --section you pick one interactively.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			now, err := clockAt(at, time.Now())
			if err != nil {
				return err
			}
			sections := menuSections(catalog)
			if section == "" {
				if section, err = promptSection(sections); err != nil {
					return err
				}
			}
			selected, err := pickSections(sections, section)
			if err != nil {
				return err
			}
			renderMenu(cmd.OutOrStdout(), selected, now)
			return nil
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "drinks, food or all")
	cmd.Flags().StringVar(&at, "at", "", "check availability at this time of day (HH:MM)")
	return cmd
}

func menuSections(catalog store.Catalog) map[string]menuSection {
	return map[string]menuSection{
		"Drinks": {name: "Drinks", items: catalog.Drinks()},
		"Food":   {name: "Food", items: catalog.Food()},
	}
}

func sectionNames(sections map[string]menuSection) []string {
	names := maps.Keys(sections)
	sort.Strings(names)
	return names
}

func promptSection(sections map[string]menuSection) (string, error) {
	selectSection := promptui.Select{
		Label: "Select Menu",
		Items: append(sectionNames(sections), allSections),
		Size:  10,
	}
	_, name, err := selectSection.Run()
	if err != nil {
		return "", fmt.Errorf("select menu: %w", err)
	}
	return name, nil
}

// pickSections resolves a section name, case-insensitively, to the sections to print.
func pickSections(sections map[string]menuSection, name string) ([]menuSection, error) {
	if strings.EqualFold(name, allSections) {
		var out []menuSection
		for _, n := range sectionNames(sections) {
			out = append(out, sections[n])
		}
		return out, nil
	}
	for n, section := range sections {
		if strings.EqualFold(n, name) {
			return []menuSection{section}, nil
		}
	}
	return nil, fmt.Errorf("unknown menu section %q: want one of %s", name, strings.Join(append(sectionNames(sections), allSections), ", "))
}

// clockAt returns today at the HH:MM in value, or fallback when value is empty.
func clockAt(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	minutes, err := service.ParseClock(value)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := fallback.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, fallback.Location()), nil
}

func renderMenu(w io.Writer, sections []menuSection, now time.Time) {
	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Menu", "Item", "Price", "Offer", "Hours", "Now"}, rowConfigAutoMerge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, WidthMax: 28},
	})
	t.Style().Options.SeparateRows = true

	for _, section := range sections {
		var rows []table.Row
		for _, item := range section.items {
			hours := "All day"
			if item.AvailableFrom != "" && item.AvailableTo != "" {
				hours = item.AvailableFrom + " - " + item.AvailableTo
			}
			status := "Available"
			if !service.IsAvailable(item, now) {
				status = "Unavailable"
			}
			rows = append(rows, table.Row{section.name, item.Name, service.FormatPrice(item.Price), offer(item), hours, status})
		}
		t.AppendRows(rows, rowConfigAutoMerge)
		t.AppendSeparator()
	}
	t.Render()
}

func offer(item model.MenuItem) string {
	if item.Promotion == nil {
		return ""
	}
	return fmt.Sprintf("%s (-%d%%, was %s)", item.Promotion.Label, item.Promotion.DiscountPercentage, service.FormatPrice(item.Promotion.OriginalPrice))
}
