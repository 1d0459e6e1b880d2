package ui

import "html/template"

var tabsTmpl = mustParse("tabs", `<div class="tabs">
  <nav class="tab-list" role="tablist">
    {{$active := .Active}}{{range .Tabs}}<a role="tab" class="tab{{if eq .Value $active}} tab-active{{end}}" aria-selected="{{eq .Value $active}}" href="{{.URL}}">{{.Label}}</a>
    {{end}}
  </nav>
  <div class="tab-panel" role="tabpanel">{{.Panel}}</div>
</div>`)

// Tab is one selectable entry in a tab strip. URL is the link that
// selects it, typically the page URL with a ?tab= parameter.
type Tab struct {
	Value string
	Label string
	URL   string
}

type tabsData struct {
	Tabs   []Tab
	Active string
	Panel  template.HTML
}

// ResolveTab returns the requested tab when it names one of tabs,
// otherwise the default. An unknown or absent selection never leaves the
// strip without an active tab.
func ResolveTab(tabs []Tab, requested, fallback string) string {
	for _, t := range tabs {
		if t.Value == requested {
			return requested
		}
	}
	return fallback
}

// Tabs renders the tab strip with exactly one panel: the one whose value
// matches active. Callers resolve the selection with ResolveTab first.
func Tabs(tabs []Tab, active string, panel template.HTML) template.HTML {
	return renderTemplate(tabsTmpl, tabsData{Tabs: tabs, Active: active, Panel: panel})
}
