package charts

import (
	"crossdash/internal/crossfilter"
	"crossdash/internal/dataset"
)

// Computation ids the layout file refers to.
const (
	LineChartID    = "lineChart"
	ScatterChartID = "scatterChart"
	BarChartID     = "barChart"
)

// Context carries everything a chart computation may read. The table is
// the full dataset; each chart applies the year range itself.
type Context struct {
	Table  dataset.Table
	Width  int
	Height int
}

func (c Context) size(minW, minH int) (int, int) {
	w, h := c.Width, c.Height
	if w < minW {
		w = minW
	}
	if h < minH {
		h = minH
	}
	return w, h
}

// Title returns the heading a panel shows above the computation's
// output. Unknown ids fall back to the id itself so a layout pointing
// at a new chart still renders something sensible.
func Title(id string) string {
	switch id {
	case LineChartID:
		return "GDP per capita"
	case ScatterChartID:
		return "Life expectancy vs GDP"
	case BarChartID:
		return "Population by continent"
	}
	return id
}

// Register binds every chart computation under its well-known id.
func Register(inv *crossfilter.ComputationInvoker[Context]) error {
	for _, c := range []struct {
		id string
		fn crossfilter.Computation[Context]
	}{
		{LineChartID, GDPLine},
		{ScatterChartID, LifeExpScatter},
		{BarChartID, PopulationBar},
	} {
		if err := inv.Register(c.id, c.fn); err != nil {
			return err
		}
	}
	return nil
}
