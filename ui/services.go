package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	cadastro "github.com/FreakPy/Banco-de-Dados"
)

var serviceHeaders = []string{"ID", "Nome do Serviço", "Unidade", "Preço Unitário", "Tipo de Serviço"}

// servicesView renders the service catalog tab.
type servicesView struct {
	manager *Manager

	all      []cadastro.Row
	visible  []cadastro.Row
	term     string
	sort     cadastro.SortState
	selected int

	table *widget.Table
	root  fyne.CanvasObject
}

func newServicesView(manager *Manager) *servicesView {
	view := &servicesView{
		manager:  manager,
		sort:     cadastro.NewSortState(),
		selected: -1,
	}

	view.table = newRowTable(serviceHeaders,
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

func (v *servicesView) container() fyne.CanvasObject {
	return v.root
}

func (v *servicesView) reload() {
	services, err := v.manager.app.Services()
	if err != nil {
		v.manager.showError(err)
		return
	}

	v.all = v.all[:0]
	for _, service := range services {
		v.all = append(v.all, cadastro.Row{
			service.ID.String(),
			service.Name,
			service.Unit,
			cadastro.FormatPrice(service.PriceCents),
			service.ServiceType,
		})
	}
	v.refresh()
}

func (v *servicesView) refresh() {
	v.visible = cadastro.FilterRows(v.all, v.term)
	if v.sort.Column >= 0 {
		cadastro.SortRows(v.visible, v.sort.Column, v.sort.Descending)
	}
	v.selected = -1
	v.table.Refresh()
}

func (v *servicesView) setFilter(term string) {
	v.term = term
	v.refresh()
}

func (v *servicesView) toggleSort(column int) {
	v.sort.Toggle(column)
	v.refresh()
}

// selectedID parses the catalog id of the currently selected row.
func (v *servicesView) selectedID() (uuid.UUID, bool) {
	if v.selected < 0 || v.selected >= len(v.visible) {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v.visible[v.selected][0])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// typeOptions lists the configured categories plus the placeholder that
// triggers the add-category dialog.
func (v *servicesView) typeOptions() []string {
	types := v.manager.app.Config.ServiceTypes
	options := make([]string, 0, len(types)+1)
	options = append(options, types...)
	return append(options, cadastro.NewServiceTypeOption)
}

// serviceForm builds the entry widgets shared by the add and edit dialogs.
// Selecting the "new type" placeholder opens a small dialog that adds the
// typed category to the configuration and selects it; the placeholder itself
// never survives as the field value.
func (v *servicesView) serviceForm(name, unit, price, serviceType string) (items []*widget.FormItem, read func() (string, string, string, string)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Digite o nome do serviço")
	nameEntry.SetText(name)
	nameEntry.Validator = func(value string) error {
		if cadastro.Sanitize(value) == "" {
			return errors.New("o campo nome é obrigatório")
		}
		return nil
	}

	unitSelect := widget.NewSelect(v.manager.app.Config.Units, nil)
	if unit != "" {
		unitSelect.SetSelected(unit)
	}

	priceEntry := widget.NewEntry()
	priceEntry.SetPlaceHolder("0,00")
	priceEntry.SetText(price)
	priceEntry.Validator = func(value string) error {
		if _, err := cadastro.ParsePrice(value); err != nil {
			return errors.New("valor inválido")
		}
		return nil
	}

	typeSelect := widget.NewSelect(v.typeOptions(), nil)
	typeSelect.OnChanged = func(value string) {
		if value == cadastro.NewServiceTypeOption {
			v.openNewTypeDialog(typeSelect, serviceType)
		}
	}
	if serviceType != "" {
		typeSelect.SetSelected(serviceType)
	}

	items = []*widget.FormItem{
		widget.NewFormItem("Nome", nameEntry),
		widget.NewFormItem("Unidade", unitSelect),
		widget.NewFormItem("Preço", priceEntry),
		widget.NewFormItem("Tipo", typeSelect),
	}
	read = func() (string, string, string, string) {
		return nameEntry.Text, unitSelect.Selected, priceEntry.Text, typeSelect.Selected
	}
	return items, read
}

// openNewTypeDialog asks for a new category name. On success the category is
// persisted and selected; on cancel or failure the select falls back to the
// previous value so the placeholder is never left selected.
func (v *servicesView) openNewTypeDialog(typeSelect *widget.Select, previous string) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Digite o novo tipo")

	items := []*widget.FormItem{widget.NewFormItem("Tipo", nameEntry)}
	dialog.ShowForm("Novo Tipo de Serviço", "Adicionar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			typeSelect.SetSelected(previous)
			return
		}
		name := cadastro.Sanitize(nameEntry.Text)
		if err := v.manager.app.Config.AddServiceType(name); err != nil {
			v.manager.showError(err)
			typeSelect.SetSelected(previous)
			return
		}
		typeSelect.SetOptions(v.typeOptions())
		typeSelect.SetSelected(name)
	}, v.manager.window)
}

func (v *servicesView) openAddDialog() {
	items, read := v.serviceForm("", "", "", "")

	dialog.ShowForm("Adicionar Serviço", "Salvar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		name, unit, price, serviceType := read()
		if _, err := v.manager.app.CreateService(name, unit, price, serviceType); err != nil {
			v.manager.showError(err)
			return
		}
		v.reload()
	}, v.manager.window)
}

func (v *servicesView) openEditDialog() {
	id, ok := v.selectedID()
	if !ok {
		dialog.ShowInformation("Aviso", "Selecione um serviço para editar.", v.manager.window)
		return
	}
	row := v.visible[v.selected]

	items, read := v.serviceForm(row[1], row[2], row[3], row[4])

	dialog.ShowForm("Editar Serviço", "Salvar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		name, unit, price, serviceType := read()
		if _, err := v.manager.app.UpdateService(id, name, unit, price, serviceType); err != nil {
			v.manager.showError(err)
			return
		}
		v.reload()
	}, v.manager.window)
}

func (v *servicesView) deleteSelected() {
	id, ok := v.selectedID()
	if !ok {
		dialog.ShowInformation("Aviso", "Selecione um serviço para excluir.", v.manager.window)
		return
	}
	name := v.visible[v.selected][1]

	message := fmt.Sprintf("Tem certeza que deseja excluir o serviço %q?", name)
	dialog.ShowConfirm("Confirmação", message, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := v.manager.app.DeleteService(id); err != nil {
			v.manager.showError(err)
			return
		}
		v.reload()
	}, v.manager.window)
}
