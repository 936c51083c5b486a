package widget

import (
	"html/template"
	"net/http"

	"github.com/ecomodal/footprint/core/controls"
	"github.com/ecomodal/footprint/core/model"
)

type pageData struct {
	Datasets          []string
	DefaultDataset    string
	DistanceMin       int
	DistanceMax       int
	DistanceStep      int
	DefaultDistance   int
	PassengersMin     int
	PassengersMax     int
	DefaultPassengers int
}

var pageTmpl = template.Must(template.New("widget").Parse(pageHTML))

// NewPageHandler serves the control page at GET /. The page drives the trip
// and chart endpoints from the browser; all numbers shown there are rounded
// client side to one decimal, the API always returns full precision.
func NewPageHandler() http.Handler {
	data := pageData{
		DefaultDataset:    controls.DefaultDataset.String(),
		DistanceMin:       controls.DistanceMin,
		DistanceMax:       controls.DistanceMax,
		DistanceStep:      controls.DistanceStep,
		DefaultDistance:   controls.DefaultDistanceKm,
		PassengersMin:     controls.PassengersMin,
		PassengersMax:     controls.PassengersMax,
		DefaultPassengers: controls.DefaultPassengers,
	}
	for _, ds := range model.Datasets() {
		data.Datasets = append(data.Datasets, ds.String())
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = pageTmpl.Execute(w, data)
	})
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>footprint</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 720px; padding: 0 1rem; }
.controls { display: flex; gap: 1.5rem; align-items: center; flex-wrap: wrap; }
table { border-collapse: collapse; margin: 1rem 0; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.8rem; text-align: left; }
td.value { text-align: right; }
img { max-width: 100%; }
</style>
</head>
<body>
<h1>Trip footprint</h1>
<div class="controls">
  <label>dataset
    <select id="dataset">
      {{range .Datasets}}<option value="{{.}}"{{if eq . $.DefaultDataset}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </label>
  <label>distance <span id="distance-value">{{.DefaultDistance}}</span> km
    <input type="range" id="distance" min="{{.DistanceMin}}" max="{{.DistanceMax}}" step="{{.DistanceStep}}" value="{{.DefaultDistance}}">
  </label>
  <label>passengers
    <input type="number" id="passengers" min="{{.PassengersMin}}" max="{{.PassengersMax}}" value="{{.DefaultPassengers}}">
  </label>
</div>
<table>
  <thead><tr><th>mode</th><th>kg CO2e</th></tr></thead>
  <tbody id="rows"></tbody>
</table>
<img id="chart" alt="emissions per mode">
<script>
var dataset = document.getElementById('dataset');
var distance = document.getElementById('distance');
var passengers = document.getElementById('passengers');
var distanceValue = document.getElementById('distance-value');

function params() {
  return 'dataset=' + encodeURIComponent(dataset.value) +
    '&distance=' + distance.value +
    '&passengers=' + passengers.value;
}

async function update() {
  distanceValue.textContent = distance.value;
  var resp = await fetch('/api/trip?' + params());
  if (!resp.ok) {
    return;
  }
  var result = await resp.json();
  var rows = document.getElementById('rows');
  rows.innerHTML = '';
  for (var e of result.emissions) {
    var tr = document.createElement('tr');
    var name = document.createElement('td');
    name.textContent = e.mode;
    var value = document.createElement('td');
    value.className = 'value';
    value.textContent = e.no_data ? 'n/a' : e.kg_co2e.toFixed(1);
    tr.appendChild(name);
    tr.appendChild(value);
    rows.appendChild(tr);
  }
  document.getElementById('chart').src = '/api/chart?' + params();
}

dataset.addEventListener('change', update);
distance.addEventListener('input', update);
passengers.addEventListener('change', update);
update();
</script>
</body>
</html>
`
