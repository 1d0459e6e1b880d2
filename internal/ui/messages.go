package ui

import "html/template"

var (
	errorMessageTmpl = mustParse("errorMessage", `<div class="message message-error" role="alert">
  <h3>{{.Title}}</h3>
  <p>{{.Message}}</p>
  {{if .RetryURL}}<a class="button button-outline" href="{{.RetryURL}}">Reintentar</a>{{end}}
</div>`)

	successMessageTmpl = mustParse("successMessage", `<div class="message message-success" role="status">
  <h3>{{.Title}}</h3>
  <p>{{.Message}}</p>
</div>`)

	infoMessageTmpl = mustParse("infoMessage", `<div class="message message-info">
  <h3>{{.Title}}</h3>
  <p>{{.Message}}</p>
</div>`)
)

type messageData struct {
	Title    string
	Message  string
	RetryURL string
}

// ErrorMessage renders an error block with an optional retry action.
func ErrorMessage(title, message, retryURL string) template.HTML {
	return renderTemplate(errorMessageTmpl, messageData{Title: title, Message: message, RetryURL: retryURL})
}

// SuccessMessage renders a success notice.
func SuccessMessage(title, message string) template.HTML {
	return renderTemplate(successMessageTmpl, messageData{Title: title, Message: message})
}

// InfoMessage renders an informational empty-state block.
func InfoMessage(title, message string) template.HTML {
	return renderTemplate(infoMessageTmpl, messageData{Title: title, Message: message})
}
