package receipts

import (
	"fmt"
	"html/template"
	"os"
)

// HTMLRenderer writes the receipt as a standalone HTML page. It backs up the
// PDF renderer and is also selectable via CC_RECEIPTS_FORMAT=html.
type HTMLRenderer struct{}

func (r *HTMLRenderer) Extension() string { return ".html" }

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ERS 220 Component Reservation</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #111; }
.badge { display: inline-block; background: #8B5CF6; color: #fff; font-weight: bold; font-size: 18px; padding: 10px 14px; }
table { border-collapse: collapse; margin-top: 12px; }
th, td { border: 1px solid #000; padding: 6px 10px; text-align: left; }
th { background: #808080; color: #fff; }
tr.total td { background: #d3d3d3; font-weight: bold; }
.goodluck { color: purple; text-align: center; margin-top: 30px; }
.disclaimer { color: red; font-style: italic; text-align: center; font-size: 0.9em; }
</style>
</head>
<body>
<p><span class="badge">EE</span> <strong>ERS 220 Component Reservation</strong></p>
<h1>COMPONENT COMPASS</h1>
<h2>Reservations</h2>
<p>
<strong>Student:</strong> {{.StudentName}}<br>
<strong>Email:</strong> {{.StudentEmail}}<br>
<strong>Reservation Date:</strong> {{.ReservationDate}}<br>
<strong>Collection Deadline:</strong> {{.CollectionDeadline}}
</p>
<h3>Collection Instructions</h3>
<p>Please collect your reserved components within 3 days from the respective stores. Bring this reservation confirmation and your student ID.</p>
<h3>Reserved Components</h3>
<table>
<tr><th>Component Name</th><th>Store</th><th>Price</th></tr>
{{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Store}}</td><td>${{.Price.StringFixed 2}}</td></tr>
{{end}}<tr class="total"><td></td><td>Total Cost:</td><td>${{.Total.StringFixed 2}}</td></tr>
</table>
<p class="goodluck">Good luck with your practical! We&#39;re excited to see what you&#39;ll build with these components.</p>
<p class="disclaimer">Note: Components are reserved for 3 days only. Uncollected items will be released back to general stock.</p>
</body>
</html>
`))

func (r *HTMLRenderer) Render(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating receipt file: %w", err)
	}
	defer f.Close()

	if err := receiptTemplate.Execute(f, doc); err != nil {
		return fmt.Errorf("rendering receipt template: %w", err)
	}
	return nil
}
