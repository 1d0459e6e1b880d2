package ui

import "html/template"

var (
	tableTmpl = mustParse("table", `<table class="table">
  <thead>
    <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
  </thead>
  <tbody>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
    {{end}}
  </tbody>
</table>`)

	skeletonTmpl = mustParse("skeleton", `<table class="table table-loading" aria-busy="true">
  <thead>
    <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
  </thead>
  <tbody>
    {{range .Rows}}<tr>{{range .}}<td><span class="skeleton"></span></td>{{end}}</tr>
    {{end}}
  </tbody>
</table>`)
)

const skeletonRows = 3

// Column describes one table column for rows of type T.
type Column[T any] struct {
	Header string
	Render func(T) template.HTML
}

// TableState carries the view state a table renders besides its rows.
type TableState struct {
	Loading      bool
	Err          string
	RetryURL     string
	EmptyTitle   string
	EmptyMessage string
}

type tableData struct {
	Headers []string
	Rows    [][]template.HTML
}

// Table renders rows of T with a fixed state precedence: an error always
// wins, then loading, then the empty state, and only then the rows. A
// request that failed while older rows were still on screen shows the
// error, not the stale rows.
func Table[T any](rows []T, cols []Column[T], state TableState) template.HTML {
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Header
	}

	if state.Err != "" {
		return ErrorMessage("Error", state.Err, state.RetryURL)
	}
	if state.Loading {
		skeleton := make([][]template.HTML, skeletonRows)
		for i := range skeleton {
			skeleton[i] = make([]template.HTML, len(cols))
		}
		return renderTemplate(skeletonTmpl, tableData{Headers: headers, Rows: skeleton})
	}
	if len(rows) == 0 {
		title := state.EmptyTitle
		if title == "" {
			title = "Sin resultados"
		}
		message := state.EmptyMessage
		if message == "" {
			message = "No hay datos disponibles"
		}
		return InfoMessage(title, message)
	}

	body := make([][]template.HTML, len(rows))
	for i, row := range rows {
		cells := make([]template.HTML, len(cols))
		for j, col := range cols {
			cells[j] = col.Render(row)
		}
		body[i] = cells
	}
	return renderTemplate(tableTmpl, tableData{Headers: headers, Rows: body})
}
