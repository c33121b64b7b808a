package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	cadastro "github.com/FreakPy/Banco-de-Dados"
)

// Manager wires the application core to the window content.
type Manager struct {
	app    *cadastro.App
	window fyne.Window

	clients   *clientsView
	services  *servicesView
	estimates *estimatesView
	logs      *logsView
}

// NewManager creates the view manager and all tab views.
func NewManager(app *cadastro.App, window fyne.Window) *Manager {
	m := &Manager{
		app:    app,
		window: window,
	}
	m.clients = newClientsView(m)
	m.services = newServicesView(m)
	m.estimates = newEstimatesView(m)
	m.logs = newLogsView(m)
	return m
}

// Build assembles the tab container shown as the window content.
func (m *Manager) Build() fyne.CanvasObject {
	tabs := container.NewAppTabs(
		container.NewTabItem("Cadastro de Clientes", m.clients.container()),
		container.NewTabItem("Cadastro de Serviços", m.services.container()),
		container.NewTabItem("Orçamentos", m.estimates.container()),
		container.NewTabItem("Atividade", m.logs.container()),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	m.clients.reload()
	m.services.reload()
	m.estimates.reload()
	m.logs.reload()

	return tabs
}

// showError surfaces a failed operation. Validation failures come back as a
// short field message; storage failures are logged before being shown.
func (m *Manager) showError(err error) {
	var validationErr *cadastro.ValidationError
	if !errors.As(err, &validationErr) {
		m.app.Logger.Error().Err(err).Msg("operation failed")
		// Best effort: the store behind the activity log may be the
		// thing that just failed.
		_ = m.app.WriteLog("ERROR", err.Error())
	}
	dialog.ShowError(err, m.window)
}

// newRowTable builds a table whose first row holds the column headers.
// Clicking a header toggles the sort of that column; clicking a data row
// selects it through onSelect.
func newRowTable(headers []string, rows func() []cadastro.Row, onHeader func(column int), onSelect func(row int)) *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			return len(rows()) + 1, len(headers)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, object fyne.CanvasObject) {
			label := object.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(headers[id.Col])
				return
			}
			label.TextStyle = fyne.TextStyle{}
			current := rows()
			if id.Row-1 >= len(current) {
				label.SetText("")
				return
			}
			row := current[id.Row-1]
			if id.Col >= len(row) {
				label.SetText("")
				return
			}
			label.SetText(row[id.Col])
		},
	)

	table.OnSelected = func(id widget.TableCellID) {
		defer table.UnselectAll()
		if id.Row == 0 {
			onHeader(id.Col)
			return
		}
		onSelect(id.Row - 1)
	}

	return table
}

// searchBar builds the filter entry shared by the tabular views.
func searchBar(onChanged func(term string)) fyne.CanvasObject {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Pesquisar...")
	entry.OnChanged = onChanged
	return container.NewBorder(nil, nil, widget.NewLabel("Pesquisar:"), nil, entry)
}
