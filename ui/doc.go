// Package ui builds the Fyne views of the Cadastro application: one tab per
// entity, each backed by a table of rows loaded from the core App, with modal
// form dialogs for create/edit and confirmation dialogs for delete.
//
// The views hold no business logic. Every action calls into cadastro.App and
// reloads the full row set afterwards; filtering and sorting happen on the
// in-memory rows of the current view only.
package ui
