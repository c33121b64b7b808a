package cadastro

import (
	"fmt"

	"github.com/FreakPy/Banco-de-Dados/domain"
	"github.com/google/uuid"
)

// Services retrieves the whole service catalog.
func (app *App) Services() ([]*domain.Service, error) {
	services, err := app.Repo.GetServices()
	if err != nil {
		return nil, fmt.Errorf("listing services : %w", err)
	}
	return services, nil
}

// CreateService validates the form fields and stores a new catalog entry.
// The price is given as the currency text typed into the form.
func (app *App) CreateService(name, unit, priceText, serviceType string) (*domain.Service, error) {
	service, err := app.serviceFromForm(name, unit, priceText, serviceType)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating service id : %w", err)
	}
	service.ID = id

	if err := app.Repo.InsertService(service); err != nil {
		return nil, fmt.Errorf("creating service : %w", err)
	}

	app.Logger.Info().Str("id", service.ID.String()).Msg("service created")
	app.WriteLog("INFO", fmt.Sprintf("Serviço %q cadastrado", service.Name))
	return service, nil
}

// UpdateService validates the form fields and updates the catalog entry
// identified by id.
func (app *App) UpdateService(id uuid.UUID, name, unit, priceText, serviceType string) (*domain.Service, error) {
	service, err := app.serviceFromForm(name, unit, priceText, serviceType)
	if err != nil {
		return nil, err
	}
	service.ID = id

	if err := app.Repo.UpdateService(service); err != nil {
		return nil, fmt.Errorf("updating service %s : %w", id, err)
	}

	app.Logger.Info().Str("id", id.String()).Msg("service updated")
	app.WriteLog("INFO", fmt.Sprintf("Serviço %q atualizado", service.Name))
	return service, nil
}

// DeleteService removes the catalog entry with the given id.
func (app *App) DeleteService(id uuid.UUID) error {
	if err := app.Repo.DeleteService(id); err != nil {
		return fmt.Errorf("deleting service %s : %w", id, err)
	}

	app.Logger.Info().Str("id", id.String()).Msg("service deleted")
	app.WriteLog("INFO", fmt.Sprintf("Serviço %s excluído", id))
	return nil
}

// serviceFromForm builds a Service from raw form fields, enforcing the
// catalog rules: name required, unit from the configured set, category a real
// configured category (the "new type" placeholder is never stored) and a
// parseable price.
func (app *App) serviceFromForm(name, unit, priceText, serviceType string) (*domain.Service, error) {
	service := &domain.Service{
		Name:        Sanitize(name),
		Unit:        Sanitize(unit),
		ServiceType: Sanitize(serviceType),
	}

	if err := validateName("nome", service.Name); err != nil {
		return nil, err
	}
	if !app.Config.HasUnit(service.Unit) {
		return nil, &ValidationError{Field: "unidade", Reason: "unidade desconhecida"}
	}
	if service.ServiceType == NewServiceTypeOption {
		return nil, &ValidationError{Field: "tipo", Reason: "selecione um tipo real"}
	}
	if !app.Config.HasServiceType(service.ServiceType) {
		return nil, &ValidationError{Field: "tipo", Reason: "tipo desconhecido"}
	}

	cents, err := ParsePrice(priceText)
	if err != nil {
		return nil, &ValidationError{Field: "preço", Reason: "valor inválido"}
	}
	service.PriceCents = cents

	return service, nil
}
