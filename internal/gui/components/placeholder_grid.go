package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// GridRows is the placeholder content of the left panel, row by row.
var GridRows = [][]string{
	{"First row, first column", "First row, second column"},
	{"Second row, first column", "Second row, second column", "Second row, third column"},
	{"Same cell", "Third row, second column"},
}

// NewPlaceholderGrid lays out rows as a grid of labels. Short rows leave
// their trailing cells empty.
func NewPlaceholderGrid(rows [][]string) *fyne.Container {
	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	if columns == 0 {
		return container.NewVBox()
	}

	cells := make([]fyne.CanvasObject, 0, len(rows)*columns)
	for _, row := range rows {
		for i := 0; i < columns; i++ {
			if i < len(row) {
				cells = append(cells, widget.NewLabel(row[i]))
			} else {
				cells = append(cells, layout.NewSpacer())
			}
		}
	}
	return container.NewVBox(container.NewGridWithColumns(columns, cells...))
}
