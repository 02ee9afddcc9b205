package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"resort-concierge/model"
	"resort-concierge/service"
)

func newSunbedsCmd() *cobra.Command {
	var zone string
	cmd := &cobra.Command{
		Use:   "sunbeds",
		Short: "Print the sunbeds by zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			var zones []string
			if zone != "" {
				zones = []string{zone}
			}
			renderSunbeds(cmd.OutOrStdout(), service.FilterSunbeds(catalog.Sunbeds, "", zones))
			return nil
		},
	}
	cmd.Flags().StringVar(&zone, "zone", "", "only list this zone, e.g. \"Pool Area\"")
	return cmd
}

func renderSunbeds(w io.Writer, sunbeds []model.Sunbed) {
	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Zone", "Sunbed", "Status", "Note"}, rowConfigAutoMerge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	t.Style().Options.SeparateRows = true

	for _, group := range service.GroupByZone(sunbeds) {
		var rows []table.Row
		for _, sunbed := range group.Sunbeds {
			rows = append(rows, table.Row{group.Zone, sunbed.ID, statusLabel(sunbed.Status), sunbed.Description})
		}
		t.AppendRows(rows, rowConfigAutoMerge)
		t.AppendSeparator()
	}
	t.Render()
}

func statusLabel(status model.SunbedStatus) string {
	switch status {
	case model.SunbedAvailable:
		return "Available"
	case model.SunbedOccupied:
		return "Occupied"
	case model.SunbedComingSoon:
		return "Coming soon"
	case model.SunbedMaintenance:
		return "Maintenance"
	default:
		return string(status)
	}
}
