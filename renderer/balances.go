package renderer

import (
	"github.com/kuzeyardabulut/fxdesk"
)

type balanceView struct {
	Code    string
	Reserve string
}

type balancesPage struct {
	Balances []balanceView
	Alerts   []alertView
}

const balancesTemplate = `# Current balances

| Code | Reserve |
|---|---:|
{{- range .Balances}}
| {{.Code}} | {{.Reserve}} |
{{- end}}
{{if .Alerts}}
## Critical reserve alerts
{{range .Alerts}}
- **{{.Code}}** reserve below critical minimum ({{.Reserve}} < {{.CriticalMin}})
{{- end}}
{{end}}`

// BalancesMarkdown renders the reserve of every currency in registry
// order, with critical alerts when any reserve sits below its
// threshold.
func BalancesMarkdown(reg *fxdesk.Registry) string {
	page := balancesPage{Alerts: alertViews(reg.CriticalAlerts())}
	for _, code := range reg.Codes() {
		reserve, err := reg.Reserve(code)
		if err != nil {
			continue
		}
		page.Balances = append(page.Balances, balanceView{
			Code:    code,
			Reserve: fxdesk.DisplayMoney(code, reserve),
		})
	}
	return renderTemplate("balances", balancesTemplate, page)
}
