package ui

import "html/template"

var pageTmpl = mustParse("page", `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #f5f6f8; color: #1b1f27; }
    .page-header { background: #10243e; color: #fff; padding: 1rem 2rem; }
    .page-header h1 { margin: 0; font-size: 1.25rem; }
    .page-header .user { font-size: .85rem; opacity: .8; }
    main { max-width: 72rem; margin: 1.5rem auto; padding: 0 1rem; }
    .card { background: #fff; border-radius: .5rem; box-shadow: 0 1px 3px rgba(0,0,0,.08); margin-bottom: 1.5rem; }
    .card-header { padding: 1rem 1.25rem 0; }
    .card-header h2 { margin: 0; font-size: 1.05rem; }
    .card-subtitle { color: #5c6676; font-size: .85rem; margin: .25rem 0 0; }
    .card-body { padding: 1.25rem; }
    .table { width: 100%; border-collapse: collapse; }
    .table th, .table td { text-align: left; padding: .6rem .75rem; border-bottom: 1px solid #e4e7ec; font-size: .9rem; }
    .skeleton { display: inline-block; width: 100%; height: .9rem; border-radius: .25rem; background: #e4e7ec; }
    .badge { display: inline-block; padding: .15rem .5rem; border-radius: 1rem; font-size: .75rem; }
    .badge-green { background: #def7e4; color: #116632; }
    .badge-red { background: #fde2e1; color: #8f1f1b; }
    .badge-yellow { background: #fdf3d7; color: #7a5c0b; }
    .badge-blue { background: #dbeafe; color: #1d4ed8; }
    .badge-gray { background: #eceef1; color: #4b5563; }
    .button { display: inline-block; background: #10243e; color: #fff; border: 0; border-radius: .375rem; padding: .45rem .9rem; font-size: .85rem; text-decoration: none; cursor: pointer; }
    .button-outline { background: #fff; color: #10243e; border: 1px solid #10243e; }
    .button-danger { background: #b3261e; }
    .message { border-radius: .5rem; padding: 1rem 1.25rem; margin-bottom: 1rem; }
    .message h3 { margin: 0 0 .25rem; font-size: .95rem; }
    .message p { margin: 0 0 .5rem; font-size: .9rem; }
    .message-error { background: #fde2e1; }
    .message-success { background: #def7e4; }
    .message-info { background: #eef1f5; }
    .tabs .tab-list { display: flex; gap: .25rem; border-bottom: 2px solid #e4e7ec; margin-bottom: 1rem; }
    .tab { padding: .5rem .9rem; text-decoration: none; color: #5c6676; font-size: .9rem; }
    .tab-active { color: #10243e; font-weight: 600; border-bottom: 2px solid #10243e; margin-bottom: -2px; }
    .stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(12rem, 1fr)); gap: 1rem; margin-bottom: 1.5rem; }
    .stats-card { background: #fff; border-radius: .5rem; box-shadow: 0 1px 3px rgba(0,0,0,.08); padding: 1rem 1.25rem; }
    .stats-title { margin: 0; color: #5c6676; font-size: .8rem; }
    .stats-value { margin: .25rem 0 0; font-size: 1.4rem; font-weight: 600; }
    .stats-subtitle { margin: .25rem 0 0; color: #98a1b0; font-size: .75rem; }
    .form label { display: block; margin: .6rem 0 .25rem; font-size: .9rem; }
    .form input[type=text], .form input[type=email], .form input[type=tel] { width: 100%; padding: .45rem .6rem; border: 1px solid #cbd2dc; border-radius: .375rem; box-sizing: border-box; }
    .form-hint { color: #5c6676; font-size: .8rem; }
    .form-actions { display: flex; gap: .5rem; justify-content: flex-end; margin-top: 1rem; }
    .modal-backdrop { position: fixed; inset: 0; background: rgba(16,36,62,.5); display: flex; align-items: center; justify-content: center; }
    .modal-dismiss { position: absolute; inset: 0; }
    .modal { position: relative; background: #fff; border-radius: .5rem; max-width: 28rem; width: 90%; padding: 1.25rem; }
    .modal-header { display: flex; justify-content: space-between; align-items: center; }
    .modal-header h2 { margin: 0; font-size: 1.05rem; }
    .modal-close { text-decoration: none; color: #5c6676; font-size: 1.25rem; }
  </style>
</head>
<body>
  <header class="page-header">
    <h1>{{.Title}}</h1>
    {{if .UserName}}<p class="user">{{.UserName}}</p>{{end}}
  </header>
  <main>{{.Body}}</main>
</body>
</html>`)

type pageData struct {
	Title    string
	UserName string
	Body     template.HTML
}

// Page wraps a body fragment in the full dashboard document.
func Page(title, userName string, body template.HTML) template.HTML {
	return renderTemplate(pageTmpl, pageData{Title: title, UserName: userName, Body: body})
}
