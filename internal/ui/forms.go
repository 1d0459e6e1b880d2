package ui

import (
	"html/template"
	"net/url"

	"github.com/jdvalencia/fondos-dashboard-go/internal/currency"
	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
)

var (
	subscribeFormTmpl = mustParse("subscribeForm", `<form class="form" method="post" action="{{.Action}}">
  <p>Estás a punto de suscribirte al fondo <strong>{{.FundName}}</strong>.</p>
  <label for="amount">Monto a invertir</label>
  <input type="text" id="amount" name="amount" value="{{.Amount}}" inputmode="decimal" required>
  <p class="form-hint">Monto mínimo: {{.MinimumDisplay}}</p>
  <div class="form-actions">
    <a class="button button-outline" href="{{.CancelURL}}">Volver</a>
    <button class="button" type="submit">Confirmar suscripción</button>
  </div>
</form>`)

	cancelFormTmpl = mustParse("cancelForm", `<form class="form" method="post" action="{{.Action}}">
  <p>¿Deseas cancelar tu suscripción al fondo <strong>{{.FundName}}</strong>?</p>
  <p class="form-hint">El monto invertido ({{.InvestedDisplay}}) será retornado a tu balance.</p>
  <div class="form-actions">
    <a class="button button-outline" href="{{.CancelURL}}">Volver</a>
    <button class="button button-danger" type="submit">Cancelar suscripción</button>
  </div>
</form>`)

	preferencesFormTmpl = mustParse("preferencesForm", `<form class="form" method="post" action="/preferences">
  <fieldset>
    <legend>Canal de notificación</legend>
    <label><input type="radio" name="notification_type" value="email"{{if .EmailSelected}} checked{{end}}> Correo electrónico</label>
    <label><input type="radio" name="notification_type" value="sms"{{if .SMSSelected}} checked{{end}}> SMS</label>
  </fieldset>
  <label><input type="checkbox" name="email_enabled" value="true"{{if .EmailEnabled}} checked{{end}}> Recibir notificaciones por correo</label>
  <label for="email_address">Correo electrónico</label>
  <input type="email" id="email_address" name="email_address" value="{{.EmailAddress}}">
  <label><input type="checkbox" name="sms_enabled" value="true"{{if .SMSEnabled}} checked{{end}}> Recibir notificaciones por SMS</label>
  <label for="phone_number">Teléfono</label>
  <input type="tel" id="phone_number" name="phone_number" value="{{.PhoneNumber}}">
  <div class="form-actions">
    <button class="button" type="submit">Guardar preferencias</button>
  </div>
</form>`)
)

type subscribeFormData struct {
	Action         string
	FundName       string
	Amount         string
	MinimumDisplay string
	CancelURL      string
}

type cancelFormData struct {
	Action          string
	FundName        string
	InvestedDisplay string
	CancelURL       string
}

type preferencesFormData struct {
	EmailSelected bool
	SMSSelected   bool
	EmailEnabled  bool
	SMSEnabled    bool
	EmailAddress  string
	PhoneNumber   string
}

// SubscribeForm renders the subscription confirmation form. The amount
// field is prefilled with the fund's minimum so the default submission is
// already valid.
func SubscribeForm(fund domain.Fund, closeURL string) template.HTML {
	return renderTemplate(subscribeFormTmpl, subscribeFormData{
		Action:         "/funds/" + url.PathEscape(fund.ID) + "/subscribe",
		FundName:       fund.Name,
		Amount:         fund.MinimumAmount,
		MinimumDisplay: currency.FormatString(fund.MinimumAmount),
		CancelURL:      closeURL,
	})
}

// CancelForm renders the cancellation confirmation form.
func CancelForm(userFund domain.UserFund, closeURL string) template.HTML {
	return renderTemplate(cancelFormTmpl, cancelFormData{
		Action:          "/funds/" + url.PathEscape(userFund.Subscription.FundID) + "/cancel",
		FundName:        userFund.Fund.Name,
		InvestedDisplay: currency.FormatString(userFund.Subscription.InvestedAmount),
		CancelURL:       closeURL,
	})
}

// PreferencesForm renders the notification settings form prefilled with
// the current server-confirmed preferences.
func PreferencesForm(prefs domain.NotificationPreferences) template.HTML {
	return renderTemplate(preferencesFormTmpl, preferencesFormData{
		EmailSelected: prefs.NotificationType == domain.ChannelEmail,
		SMSSelected:   prefs.NotificationType == domain.ChannelSMS,
		EmailEnabled:  prefs.EmailEnabled,
		SMSEnabled:    prefs.SMSEnabled,
		EmailAddress:  prefs.EmailAddress,
		PhoneNumber:   prefs.PhoneNumber,
	})
}
