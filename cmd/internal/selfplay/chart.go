package selfplay

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tictactician/tictactician/ttt"
)

// WriteChart renders an HTML page with the wins per player and mark,
// and the overall outcome split.
func WriteChart(w io.Writer, st *Stats, p1, p2 string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Wins by mark",
			Subtitle: fmt.Sprintf("%d games", st.Count()),
		}),
	)
	bar.SetXAxis([]string{"as X", "as O", "total"})
	for i, name := range []string{p1, p2} {
		ps := st.Players[i]
		bar.AddSeries(fmt.Sprintf("p%d %s", i+1, name), []opts.BarData{
			{Value: ps.XWins},
			{Value: ps.OWins},
			{Value: ps.Wins},
		})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Outcomes"}),
	)
	pie.AddSeries("outcomes", []opts.PieData{
		{Name: "X wins", Value: st.X},
		{Name: "O wins", Value: st.O},
		{Name: "draws", Value: st.Ties},
	})

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "p1 score by game"}),
	)
	var xs []string
	var ys []opts.LineData
	score := 0.0
	for i, r := range st.Games {
		switch w := r.Outcome.Winner(); {
		case w == ttt.Empty:
			score += 0.5
		case w == r.P1:
			score++
		}
		xs = append(xs, fmt.Sprintf("%d", i+1))
		ys = append(ys, opts.LineData{Value: score / float64(i+1)})
	}
	line.SetXAxis(xs).AddSeries(p1, ys)

	page := components.NewPage()
	page.AddCharts(bar, pie, line)
	return page.Render(w)
}
