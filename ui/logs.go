package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	cadastro "github.com/FreakPy/Banco-de-Dados"
	"github.com/FreakPy/Banco-de-Dados/domain"
)

var logHeaders = []string{"Data", "Nível", "Mensagem"}

// logsView renders the activity log tab. It registers itself as the App log
// handler so new entries appear without a manual reload.
type logsView struct {
	manager *Manager

	all     []cadastro.Row
	visible []cadastro.Row
	term    string

	table *widget.Table
	root  fyne.CanvasObject
}

func newLogsView(manager *Manager) *logsView {
	view := &logsView{manager: manager}

	view.table = newRowTable(logHeaders,
		func() []cadastro.Row { return view.visible },
		func(int) {},
		func(int) {},
	)

	if err := manager.app.WithOptions(cadastro.WithLogHandler(view.append)); err != nil {
		manager.showError(err)
	}

	view.root = container.NewBorder(
		searchBar(view.setFilter),
		container.NewHBox(widget.NewButton("Recarregar", view.reload)),
		nil,
		nil,
		view.table,
	)
	return view
}

func (v *logsView) container() fyne.CanvasObject {
	return v.root
}

func logRow(log domain.Log) cadastro.Row {
	message := log.Message
	for key, value := range log.Context {
		message = fmt.Sprintf("%s [%s=%v]", message, key, value)
	}
	return cadastro.Row{
		log.Timestamp.Format("02/01/2006 15:04:05"),
		log.Level,
		message,
	}
}

func (v *logsView) reload() {
	logs, err := v.manager.app.Logs()
	if err != nil {
		v.manager.showError(err)
		return
	}

	v.all = v.all[:0]
	for _, log := range logs {
		v.all = append(v.all, logRow(*log))
	}
	v.refresh()
}

// append receives the entries written while the application runs.
func (v *logsView) append(log domain.Log) error {
	v.all = append(v.all, logRow(log))
	v.refresh()
	return nil
}

func (v *logsView) refresh() {
	v.visible = cadastro.FilterRows(v.all, v.term)
	v.table.Refresh()
}

func (v *logsView) setFilter(term string) {
	v.term = term
	v.refresh()
}
