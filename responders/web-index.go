package responders

import (
	"html/template"
	"net/http"

	"github.com/jbeshir/tumorcheck-frontend/controllers"
	"github.com/jbeshir/tumorcheck-frontend/data"
)

type indexField struct {
	Name  string
	Title string
	Value string
}

type indexPage struct {
	Fields  []indexField
	Verdict *data.Verdict
}

var fieldTitles = map[string]string{
	"radius_mean":     "Mean Radius",
	"texture_mean":    "Mean Texture",
	"perimeter_mean":  "Mean Perimeter",
	"concavity_mean":  "Mean Concavity",
	"smoothness_mean": "Mean Smoothness",
}

var indexTemplate = template.Must(template.New("index").Parse(
	`<html>
<head>
	<link href="https://fonts.googleapis.com/css?family=Roboto|Roboto+Slab" rel="stylesheet">
	<link rel="stylesheet" type="text/css" href="/static/tumorcheck.css" />
</head>
<body class="predict-page">
<h1>Breast Tumor Risk Check</h1>
<form id="prediction-form" action="/" method="post">
	<div>Enter the five cell nucleus measurements from a fine needle aspirate to get the classifier's assessment of the tumor.</div>
	{{range .Fields}}<label class="prediction-field">{{.Title}}
		<input type="text" name="{{.Name}}" value="{{.Value}}" class="prediction-text-input" required></input>
	</label>
	{{end}}<button type="submit">Predict</button>
{{with .Verdict}}{{if .HasResult}}<div class="prediction-result-msg {{.SeverityClass}}"><div class="prediction-result">{{.Label}}</div><div class="prediction-detail">{{.Message}}</div></div>{{else}}<div class="prediction-fault-msg">{{.Message}}</div>{{end}}{{end}}
</form>
</body>
</html>`))

type WebIndexResponder struct{}

func (_ *WebIndexResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebIndexResponder) OnResult(w http.ResponseWriter, r *controllers.IndexResult) {
	page := &indexPage{
		Verdict: r.Verdict,
	}
	for _, name := range data.FeatureNames {
		page.Fields = append(page.Fields, indexField{
			Name:  name,
			Title: fieldTitles[name],
			Value: r.Values[name],
		})
	}
	indexTemplate.Execute(w, page)
}
