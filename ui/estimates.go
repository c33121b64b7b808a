package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	cadastro "github.com/FreakPy/Banco-de-Dados"
)

var estimateHeaders = []string{"ID", "Cliente", "Tipo", "Execução", "Prazo", "Serviço", "Data"}

// estimatesView renders the estimates tab.
type estimatesView struct {
	manager *Manager

	all      []cadastro.Row
	visible  []cadastro.Row
	term     string
	sort     cadastro.SortState
	selected int

	table *widget.Table
	root  fyne.CanvasObject
}

func newEstimatesView(manager *Manager) *estimatesView {
	view := &estimatesView{
		manager:  manager,
		sort:     cadastro.NewSortState(),
		selected: -1,
	}

	view.table = newRowTable(estimateHeaders,
		func() []cadastro.Row { return view.visible },
		view.toggleSort,
		func(row int) { view.selected = row },
	)

	buttons := container.NewHBox(
		widget.NewButton("Adicionar", view.openAddDialog),
		widget.NewButton("Editar", view.openEditDialog),
		widget.NewButton("Excluir", view.deleteSelected),
		widget.NewButton("Recarregar", view.reload),
	)

	view.root = container.NewBorder(
		searchBar(view.setFilter),
		buttons,
		nil,
		nil,
		view.table,
	)
	return view
}

func (v *estimatesView) container() fyne.CanvasObject {
	return v.root
}

func (v *estimatesView) reload() {
	estimates, err := v.manager.app.Estimates()
	if err != nil {
		v.manager.showError(err)
		return
	}

	v.all = v.all[:0]
	for _, estimate := range estimates {
		v.all = append(v.all, cadastro.Row{
			estimate.Token,
			estimate.ClientName,
			estimate.Kind,
			estimate.Completion,
			estimate.Deadline,
			estimate.ServiceName,
			estimate.CreatedAt.Format("02/01/2006"),
		})
	}
	v.refresh()
}

func (v *estimatesView) refresh() {
	v.visible = cadastro.FilterRows(v.all, v.term)
	if v.sort.Column >= 0 {
		cadastro.SortRows(v.visible, v.sort.Column, v.sort.Descending)
	}
	v.selected = -1
	v.table.Refresh()
}

func (v *estimatesView) setFilter(term string) {
	v.term = term
	v.refresh()
}

func (v *estimatesView) toggleSort(column int) {
	v.sort.Toggle(column)
	v.refresh()
}

func (v *estimatesView) selectedToken() (string, bool) {
	if v.selected < 0 || v.selected >= len(v.visible) {
		return "", false
	}
	return v.visible[v.selected][0], true
}

// clientNames lists the registered client display names for the owner select.
func (v *estimatesView) clientNames() []string {
	clients, err := v.manager.app.Clients()
	if err != nil {
		v.manager.showError(err)
		return nil
	}
	names := make([]string, 0, len(clients))
	for _, client := range clients {
		names = append(names, client.Name)
	}
	return names
}

// serviceNames lists the catalog entries for the service select.
func (v *estimatesView) serviceNames() []string {
	services, err := v.manager.app.Services()
	if err != nil {
		v.manager.showError(err)
		return nil
	}
	names := make([]string, 0, len(services))
	for _, service := range services {
		names = append(names, service.Name)
	}
	return names
}

// estimateForm builds the shared dialog fields. The client select is only
// shown on create; edits keep the owning client.
func (v *estimatesView) estimateForm(withClient bool, kind, completion, deadline, serviceName string) (items []*widget.FormItem, read func() (string, string, string, string, string)) {
	clientSelect := widget.NewSelect(v.clientNames(), nil)

	kindEntry := widget.NewEntry()
	kindEntry.SetPlaceHolder("Tipo de orçamento")
	kindEntry.SetText(kind)
	kindEntry.Validator = func(value string) error {
		if cadastro.Sanitize(value) == "" {
			return errors.New("o campo tipo é obrigatório")
		}
		return nil
	}

	completionEntry := widget.NewEntry()
	completionEntry.SetPlaceHolder("Prazo de execução")
	completionEntry.SetText(completion)

	deadlineEntry := widget.NewEntry()
	deadlineEntry.SetPlaceHolder("Validade da proposta")
	deadlineEntry.SetText(deadline)

	serviceSelect := widget.NewSelect(v.serviceNames(), nil)
	if serviceName != "" {
		serviceSelect.SetSelected(serviceName)
	}

	if withClient {
		items = append(items, widget.NewFormItem("Cliente", clientSelect))
	}
	items = append(items,
		widget.NewFormItem("Tipo", kindEntry),
		widget.NewFormItem("Execução", completionEntry),
		widget.NewFormItem("Prazo", deadlineEntry),
		widget.NewFormItem("Serviço", serviceSelect),
	)
	read = func() (string, string, string, string, string) {
		return clientSelect.Selected, kindEntry.Text, completionEntry.Text, deadlineEntry.Text, serviceSelect.Selected
	}
	return items, read
}

func (v *estimatesView) openAddDialog() {
	items, read := v.estimateForm(true, "", "", "", "")

	dialog.ShowForm("Adicionar Orçamento", "Salvar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		clientName, kind, completion, deadline, serviceName := read()
		if _, err := v.manager.app.CreateEstimate(clientName, kind, completion, deadline, serviceName); err != nil {
			v.manager.showError(err)
			return
		}
		v.reload()
	}, v.manager.window)
}

func (v *estimatesView) openEditDialog() {
	token, ok := v.selectedToken()
	if !ok {
		dialog.ShowInformation("Aviso", "Selecione um orçamento para editar.", v.manager.window)
		return
	}
	row := v.visible[v.selected]

	items, read := v.estimateForm(false, row[2], row[3], row[4], row[5])

	dialog.ShowForm("Editar Orçamento", "Salvar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		_, kind, completion, deadline, serviceName := read()
		if _, err := v.manager.app.UpdateEstimate(token, kind, completion, deadline, serviceName); err != nil {
			v.manager.showError(err)
			return
		}
		v.reload()
	}, v.manager.window)
}

func (v *estimatesView) deleteSelected() {
	token, ok := v.selectedToken()
	if !ok {
		dialog.ShowInformation("Aviso", "Selecione um orçamento para excluir.", v.manager.window)
		return
	}

	message := fmt.Sprintf("Tem certeza que deseja excluir o orçamento %s?", token)
	dialog.ShowConfirm("Confirmação", message, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := v.manager.app.DeleteEstimate(token); err != nil {
			v.manager.showError(err)
			return
		}
		v.reload()
	}, v.manager.window)
}
