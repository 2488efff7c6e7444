package services

import (
	"html/template"

	"github.com/mechcorp/maintenance-api/utils"
)

var reportFuncs = template.FuncMap{
	"shortDate":     utils.ShortDate,
	"shortDateOrNA": utils.ShortDateOrNA,
	"timestamp":     utils.Timestamp,
}

const reportStyle = `
    body { font-family: Arial; margin: 20px; }
    .header { text-align: center; margin-bottom: 30px; }
    .tech-section { margin-bottom: 30px; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
    th { background-color: #f2f2f2; }
`

var equipmentStatusTemplate = template.Must(template.New("equipment-status").Funcs(reportFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <style>` + reportStyle + `</style>
</head>
<body>
  <div class="header">
    <h1>MechCorp Manufacturing</h1>
    <h2>Equipment Status Report</h2>
    <p>Generated on: {{timestamp .GeneratedAt}}</p>
  </div>
  <table>
    <tr>
      <th>Name</th>
      <th>Type</th>
      <th>Status</th>
      <th>Last Maintenance</th>
      <th>Next Maintenance</th>
    </tr>
    {{range .Equipment}}
    <tr>
      <td>{{.Name}}</td>
      <td>{{.Type}}</td>
      <td>{{.Status}}</td>
      <td>{{shortDateOrNA .LastMaintenanceDate}}</td>
      <td>{{shortDate .NextMaintenanceDate}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>`))

var workOrderSummaryTemplate = template.Must(template.New("work-order-summary").Funcs(reportFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <style>` + reportStyle + `</style>
</head>
<body>
  <div class="header">
    <h1>MechCorp Manufacturing</h1>
    <h2>Work Order Summary Report</h2>
    <p>Generated on: {{timestamp .GeneratedAt}}</p>
  </div>
  <table>
    <tr>
      <th>Title</th>
      <th>Equipment</th>
      <th>Priority</th>
      <th>Status</th>
      <th>Assigned To</th>
      <th>Due Date</th>
    </tr>
    {{range .WorkOrders}}
    <tr>
      <td>{{.Title}}</td>
      <td>{{if .Equipment}}{{.Equipment.Name}}{{else}}N/A{{end}}</td>
      <td>{{.Priority}}</td>
      <td>{{.Status}}</td>
      <td>{{if .AssignedTechnician}}{{.AssignedTechnician.Name}}{{else}}Unassigned{{end}}</td>
      <td>{{shortDate .DueDate}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>`))

var technicianWorkloadTemplate = template.Must(template.New("technician-workload").Funcs(reportFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <style>` + reportStyle + `</style>
</head>
<body>
  <div class="header">
    <h1>MechCorp Manufacturing</h1>
    <h2>Technician Workload Report</h2>
    <p>Generated on: {{timestamp .GeneratedAt}}</p>
  </div>
  {{range .Workloads}}
  <div class="tech-section">
    <h3>{{.Technician.Name}} - Active Work Orders: {{.ActiveWorkOrders}}</h3>
    <table>
      <tr>
        <th>Title</th>
        <th>Equipment</th>
        <th>Status</th>
        <th>Due Date</th>
      </tr>
      {{range .WorkOrders}}
      <tr>
        <td>{{.Title}}</td>
        <td>{{if .Equipment}}{{.Equipment.Name}}{{else}}N/A{{end}}</td>
        <td>{{.Status}}</td>
        <td>{{shortDate .DueDate}}</td>
      </tr>
      {{end}}
    </table>
  </div>
  {{end}}
</body>
</html>`))
