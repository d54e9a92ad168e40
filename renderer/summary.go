package renderer

import (
	"github.com/kuzeyardabulut/fxdesk"
)

// summaryView is the pre-formatted data handed to the summary
// template.
type summaryView struct {
	Date         string
	YearMonth    string
	File         string
	Count        int
	Profit       string
	MonthCount   int
	MonthProfit  string
	CashierBonus string
	Base         string
	Alerts       []alertView
}

const summaryTemplate = `# End-of-day report for {{.Date}}

| | |
|---|---:|
| Transactions | {{.Count}} |
| Profit ({{.Base}}) | {{.Profit}} |
| Month-to-date transactions ({{.YearMonth}}) | {{.MonthCount}} |
| Month-to-date profit ({{.Base}}) | {{.MonthProfit}} |
| Cashier bonus (5% of month profit) | {{.CashierBonus}} |

Transactions are read from ` + "`{{.File}}`" + `.
{{if .Alerts}}
## Critical reserve alerts
{{range .Alerts}}
- **{{.Code}}** reserve below critical minimum ({{.Reserve}} < {{.CriticalMin}})
{{- end}}
{{end}}`

// DailySummaryMarkdown renders the end-of-day report, optionally with
// the desk's current critical-reserve alerts.
func DailySummaryMarkdown(s fxdesk.Summary, base string, alerts []fxdesk.Alert) string {
	v := summaryView{
		Date:         s.Date.String(),
		YearMonth:    s.YearMonth,
		File:         fxdesk.FileName(s.Date),
		Count:        s.Transactions,
		Profit:       fxdesk.DisplayMoney(base, s.Profit),
		MonthCount:   s.MonthTransactions,
		MonthProfit:  fxdesk.DisplayMoney(base, s.MonthProfit),
		CashierBonus: fxdesk.DisplayMoney(base, s.CashierBonus),
		Base:         base,
		Alerts:       alertViews(alerts),
	}
	return renderTemplate("summary", summaryTemplate, v)
}

type alertView struct {
	Code        string
	Reserve     string
	CriticalMin string
}

func alertViews(alerts []fxdesk.Alert) []alertView {
	var views []alertView
	for _, a := range alerts {
		views = append(views, alertView{
			Code:        a.Code,
			Reserve:     fxdesk.DisplayMoney(a.Code, a.Reserve),
			CriticalMin: fxdesk.DisplayMoney(a.Code, a.CriticalMin),
		})
	}
	return views
}
