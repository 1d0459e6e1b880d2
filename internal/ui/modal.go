package ui

import "html/template"

var modalTmpl = mustParse("modal", `<div class="modal-backdrop">
  <a class="modal-dismiss" href="{{.CloseURL}}" aria-label="Cerrar"></a>
  <div class="modal" role="dialog" aria-modal="true">
    <header class="modal-header">
      <h2>{{.Title}}</h2>
      <a class="modal-close" href="{{.CloseURL}}">&times;</a>
    </header>
    <div class="modal-body">{{.Body}}</div>
  </div>
</div>`)

type modalData struct {
	Title    string
	CloseURL string
	Body     template.HTML
}

// Modal renders a dialog over a backdrop when open, and nothing at all
// when closed. Both the backdrop and the close button link to closeURL,
// which is the only way to dismiss it.
func Modal(open bool, title, closeURL string, body template.HTML) template.HTML {
	if !open {
		return ""
	}
	return renderTemplate(modalTmpl, modalData{Title: title, CloseURL: closeURL, Body: body})
}
