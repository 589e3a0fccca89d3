package fulfillment

import (
	"bytes"
	"html/template"
)

// Inline styles only: email clients strip everything else.
var confirmationTmpl = template.Must(template.New("purchase-confirmation").Parse(`<html>
  <body style="background-color:#f4f4f4;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;">
    <div style="background-color:#ffffff;margin:0 auto;padding:40px 20px;max-width:560px;border-radius:8px;">
      <h1 style="color:#333333;font-size:24px;font-weight:600;line-height:1.3;margin:0 0 20px;">Thank you for your purchase!</h1>
      <p style="color:#333333;font-size:16px;line-height:1.5;margin:0 0 16px;">Hi {{.BuyerName}},</p>
      <p style="color:#333333;font-size:16px;line-height:1.5;margin:0 0 16px;">Your purchase of <strong>{{.ProductName}}</strong> is confirmed.</p>
{{if and (not .Physical) .DownloadURL}}      <div style="background-color:#f9f9f9;border-radius:8px;padding:24px;margin:24px 0;">
        <p style="color:#333333;font-size:16px;line-height:1.5;margin:0 0 16px;">Download your product using the button below:</p>
        <a href="{{.DownloadURL}}" style="background-color:#7dd1e1;border-radius:6px;color:#1a1a1a;display:inline-block;font-size:16px;font-weight:600;padding:12px 24px;text-decoration:none;">Download Now</a>
        <p style="color:#666666;font-size:13px;line-height:1.5;margin:8px 0 0;">This link expires in 7 days.</p>
      </div>
{{end}}{{if .Physical}}      <p style="color:#333333;font-size:16px;line-height:1.5;margin:0 0 16px;">Your order will ship within 5-7 business days. We&#39;ll send tracking information when your package is on its way.</p>
{{end}}      <hr style="border:none;border-top:1px solid #e6e6e6;margin:24px 0;" />
      <p style="color:#666666;font-size:14px;font-style:italic;">&mdash; Maggie</p>
    </div>
  </body>
</html>
`))

func renderConfirmation(c Confirmation) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
