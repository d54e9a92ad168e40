package renderer

import (
	"fmt"

	"github.com/kuzeyardabulut/fxdesk"
)

type rateView struct {
	Code string
	Buy  string
	Sell string
}

type ratesPage struct {
	Base  string
	Rates []rateView
}

const ratesTemplate = `# Exchange rates (relative to {{.Base}})

| Code | BUY → {{.Base}} | SELL → {{.Base}} |
|---|---:|---:|
{{- range .Rates}}
| {{.Code}} | {{.Buy}} | {{.Sell}} |
{{- end}}

BUY is what the desk credits in {{.Base}} per 1 unit received.
SELL is what a client pays in {{.Base}} per 1 unit disbursed.
`

// RatesMarkdown renders the current rate table of the registry.
func RatesMarkdown(reg *fxdesk.Registry) string {
	page := ratesPage{Base: reg.Base()}
	for _, code := range reg.Codes() {
		buy, sell, err := reg.Rates(code)
		if err != nil {
			continue
		}
		page.Rates = append(page.Rates, rateView{
			Code: code,
			Buy:  fmt.Sprintf("%.6f", buy),
			Sell: fmt.Sprintf("%.6f", sell),
		})
	}
	return renderTemplate("rates", ratesTemplate, page)
}
