// Package demo holds the sample table shared by the example programs.
package demo

import (
	"fmt"

	"github.com/go-theft-auto/table"
)

// Columns returns a two-level column set: a "Vehicle" group over make and
// model, then standalone top speed and price columns.
func Columns() []table.Column {
	return []table.Column{
		{
			ID:     "vehicle",
			Header: "Vehicle",
			Columns: []table.Column{
				{ID: "make", Header: "Make", Width: 120},
				{ID: "model", Header: "Model", Width: 160, MinWidth: 60},
			},
		},
		{ID: "speed", Header: "Top speed", Width: 100, MaxWidth: 200},
		{ID: "price", Header: "Price", Width: 90, DisableResizing: true},
	}
}

// Rows returns n generated rows.
func Rows(n int) []map[string]any {
	makes := []string{"Grotti", "Pegassi", "Vapid", "Albany", "Declasse"}
	models := []string{"Cheetah", "Infernus", "Dominator", "Emperor", "Sabre"}
	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = map[string]any{
			"make":  makes[i%len(makes)],
			"model": models[(i*3)%len(models)],
			"speed": fmt.Sprintf("%d km/h", 180+(i*17)%120),
			"price": fmt.Sprintf("$%d", 95000+i*12500),
		}
	}
	return rows
}

// Plugins returns the plugin set used by every example.
func Plugins() table.Option {
	return table.WithPlugins(table.FlexLayout(), table.ResizeColumns())
}
