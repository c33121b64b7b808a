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

var clientHeaders = []string{"ID", "Nome", "Email", "Telefone", "Observação", "Data de Cadastro"}

// clientsView renders the client records tab.
type clientsView struct {
	manager *Manager

	all      []cadastro.Row // Every row loaded from storage.
	visible  []cadastro.Row // Rows after filter and sort.
	term     string
	sort     cadastro.SortState
	selected int // Index into visible, -1 when nothing is selected.

	table *widget.Table
	root  fyne.CanvasObject
}

func newClientsView(manager *Manager) *clientsView {
	view := &clientsView{
		manager:  manager,
		sort:     cadastro.NewSortState(),
		selected: -1,
	}

	view.table = newRowTable(clientHeaders,
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

func (v *clientsView) container() fyne.CanvasObject {
	return v.root
}

// reload replaces the row set with a fresh full listing.
func (v *clientsView) reload() {
	clients, err := v.manager.app.Clients()
	if err != nil {
		v.manager.showError(err)
		return
	}

	v.all = v.all[:0]
	for _, client := range clients {
		v.all = append(v.all, cadastro.Row{
			client.Token,
			client.Name,
			client.Email,
			client.Phone,
			client.Observation,
			client.RegisteredAt.Format("02/01/2006"),
		})
	}
	v.refresh()
}

// refresh reapplies the filter and sort to the loaded rows.
func (v *clientsView) refresh() {
	v.visible = cadastro.FilterRows(v.all, v.term)
	if v.sort.Column >= 0 {
		cadastro.SortRows(v.visible, v.sort.Column, v.sort.Descending)
	}
	v.selected = -1
	v.table.Refresh()
}

func (v *clientsView) setFilter(term string) {
	v.term = term
	v.refresh()
}

func (v *clientsView) toggleSort(column int) {
	v.sort.Toggle(column)
	v.refresh()
}

// selectedToken returns the token of the currently selected row.
func (v *clientsView) selectedToken() (string, bool) {
	if v.selected < 0 || v.selected >= len(v.visible) {
		return "", false
	}
	return v.visible[v.selected][0], true
}

// clientForm builds the entry widgets shared by the add and edit dialogs.
// Name and email carry inline validators so the dialog highlights the field
// and keeps the confirm button disabled while invalid.
func clientForm(name, email, phone, observation string) (items []*widget.FormItem, read func() (string, string, string, string)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Digite o nome")
	nameEntry.SetText(name)
	nameEntry.Validator = func(value string) error {
		if cadastro.Sanitize(value) == "" {
			return errors.New("o campo nome é obrigatório")
		}
		return nil
	}

	emailEntry := widget.NewEntry()
	emailEntry.SetPlaceHolder("Digite o email")
	emailEntry.SetText(email)
	emailEntry.Validator = func(value string) error {
		value = cadastro.Sanitize(value)
		if value != "" && !cadastro.ValidEmail(value) {
			return errors.New("email inválido")
		}
		return nil
	}

	phoneEntry := widget.NewEntry()
	phoneEntry.SetPlaceHolder("(XX) X XXXX-XXXX")
	phoneEntry.SetText(phone)
	phoneEntry.OnChanged = func(value string) {
		formatted := cadastro.FormatPhone(value)
		if formatted != value {
			phoneEntry.SetText(formatted)
		}
	}

	observationEntry := widget.NewMultiLineEntry()
	observationEntry.SetMinRowsVisible(4)
	observationEntry.SetText(observation)

	items = []*widget.FormItem{
		widget.NewFormItem("Nome", nameEntry),
		widget.NewFormItem("Email", emailEntry),
		widget.NewFormItem("Telefone", phoneEntry),
		widget.NewFormItem("Observação", observationEntry),
	}
	read = func() (string, string, string, string) {
		return nameEntry.Text, emailEntry.Text, phoneEntry.Text, observationEntry.Text
	}
	return items, read
}

func (v *clientsView) openAddDialog() {
	items, read := clientForm("", "", "", "")

	dialog.ShowForm("Adicionar Cliente", "Salvar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		name, email, phone, observation := read()
		if _, err := v.manager.app.CreateClient(name, email, phone, observation); err != nil {
			v.manager.showError(err)
			return
		}
		v.reload()
	}, v.manager.window)
}

func (v *clientsView) openEditDialog() {
	token, ok := v.selectedToken()
	if !ok {
		dialog.ShowInformation("Aviso", "Selecione um cliente para editar.", v.manager.window)
		return
	}
	row := v.visible[v.selected]

	items, read := clientForm(row[1], row[2], row[3], row[4])

	dialog.ShowForm("Editar Cliente", "Salvar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		name, email, phone, observation := read()
		if _, err := v.manager.app.UpdateClient(token, name, email, phone, observation); err != nil {
			v.manager.showError(err)
			return
		}
		v.reload()
	}, v.manager.window)
}

func (v *clientsView) deleteSelected() {
	token, ok := v.selectedToken()
	if !ok {
		dialog.ShowInformation("Aviso", "Selecione um cliente para excluir.", v.manager.window)
		return
	}

	message := fmt.Sprintf("Tem certeza que deseja excluir o cliente %s?", token)
	dialog.ShowConfirm("Confirmação", message, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := v.manager.app.DeleteClient(token); err != nil {
			v.manager.showError(err)
			return
		}
		v.reload()
	}, v.manager.window)
}
