package profileweb

import (
	"bytes"
	"fmt"
	"html"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/motion.report/internal/motion"
)

// traceLine builds one go-echarts line chart for a single profile trace.
func traceLine(title, yAxis string, p *motion.Profile, trace []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("samples=%d dt=%gs", p.Len(), p.Dt)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxis, NameLocation: "middle", NameGap: 40}),
	)

	x := make([]string, len(trace))
	y := make([]opts.LineData, len(trace))
	for i, v := range trace {
		x[i] = fmt.Sprintf("%.4f", float64(i)*p.Dt)
		y[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(x).AddSeries(title, y)
	return line
}

// overlayLine builds a chart with both planned and effective series. The two
// traces share a time axis: WithAdvance preserves the sample count and Dt of
// its input.
func overlayLine(title, yAxis string, planned *motion.Profile, plannedTrace, effectiveTrace []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxis, NameLocation: "middle", NameGap: 40}),
	)

	x := make([]string, len(plannedTrace))
	for i := range x {
		x[i] = fmt.Sprintf("%.4f", float64(i)*planned.Dt)
	}

	plannedData := make([]opts.LineData, len(plannedTrace))
	for i, v := range plannedTrace {
		plannedData[i] = opts.LineData{Value: v}
	}
	effectiveData := make([]opts.LineData, len(effectiveTrace))
	for i, v := range effectiveTrace {
		effectiveData[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(x).
		AddSeries("planned", plannedData).
		AddSeries("effective", effectiveData)
	return line
}

// handleProfileChart renders the planned profile's three traces as a single
// HTML page of stacked line charts.
func (ws *WebServer) handleProfileChart(w http.ResponseWriter, r *http.Request) {
	planned, _, err := ws.assembleFromQuery(r.URL.Query())
	if err != nil {
		ws.writeJSONError(w, errorStatus(err), err.Error())
		return
	}

	page := components.NewPage()
	page.AddCharts(
		traceLine("Extrusion position", "Extrusion (mm)", planned, planned.Position),
		traceLine("Extrusion velocity", "Velocity (mm/s)", planned, planned.Velocity),
		traceLine("Extrusion acceleration", "Acceleration (mm/s²)", planned, planned.Acceleration),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// handleAdvanceChart renders planned vs effective overlays so the pressure
// advance correction is visible per trace.
func (ws *WebServer) handleAdvanceChart(w http.ResponseWriter, r *http.Request) {
	planned, effective, err := ws.assembleFromQuery(r.URL.Query())
	if err != nil {
		ws.writeJSONError(w, errorStatus(err), err.Error())
		return
	}

	page := components.NewPage()
	page.AddCharts(
		overlayLine("Position with advance", "Extrusion (mm)", planned, planned.Position, effective.Position),
		overlayLine("Velocity with advance", "Velocity (mm/s)", planned, planned.Velocity, effective.Velocity),
		overlayLine("Acceleration with advance", "Acceleration (mm/s²)", planned, planned.Acceleration, effective.Acceleration),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
<title>Motion Profile Explorer</title>
<style>
body { font-family: sans-serif; margin: 1em; background: #1e1e1e; color: #ddd; }
iframe { width: 100%%; height: 1200px; border: 1px solid #444; background: #fff; }
a { color: #7ab8ff; }
</style>
</head>
<body>
<h1>Motion Profile Explorer</h1>
<p>
Append query parameters to override the defaults, e.g.
<code>?trajectory=sextic&amp;rate=120&amp;smooth_time=0.02&amp;advance_mode=lag</code>.
</p>
<p>
<a href="/charts/profile%[1]s">planned profile</a> |
<a href="/charts/advance%[1]s">advance comparison</a> |
<a href="/api/profile%[1]s">summary JSON</a>
</p>
<iframe src="/charts/profile%[1]s"></iframe>
<iframe src="/charts/advance%[1]s"></iframe>
</body>
</html>
`

// handleDashboard renders a simple page with links and iframes to the charts,
// forwarding the request's query string so overrides carry through.
func (ws *WebServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	qs := ""
	if r.URL.RawQuery != "" {
		qs = "?" + r.URL.RawQuery
	}
	// The query string lands inside href/src attributes.
	safeQs := html.EscapeString(qs)

	doc := fmt.Sprintf(dashboardHTML, safeQs)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}
