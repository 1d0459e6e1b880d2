package ui

import "html/template"

var (
	cardTmpl = mustParse("card", `<section class="card">
  {{if .Title}}<header class="card-header"><h2>{{.Title}}</h2>{{if .Subtitle}}<p class="card-subtitle">{{.Subtitle}}</p>{{end}}</header>{{end}}
  <div class="card-body">{{.Body}}</div>
</section>`)

	statsCardTmpl = mustParse("statsCard", `<div class="stats-card">
  <p class="stats-title">{{.Title}}</p>
  <p class="stats-value">{{.Value}}</p>
  {{if .Subtitle}}<p class="stats-subtitle">{{.Subtitle}}</p>{{end}}
</div>`)
)

type cardData struct {
	Title    string
	Subtitle string
	Body     template.HTML
}

type statsCardData struct {
	Title    string
	Value    string
	Subtitle string
}

// Card wraps a fragment in a titled panel.
func Card(title, subtitle string, body template.HTML) template.HTML {
	return renderTemplate(cardTmpl, cardData{Title: title, Subtitle: subtitle, Body: body})
}

// StatsCard renders a single headline figure.
func StatsCard(title, value, subtitle string) template.HTML {
	return renderTemplate(statsCardTmpl, statsCardData{Title: title, Value: value, Subtitle: subtitle})
}
