package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	// UpdateStatus cambia solo el estado; lo usa la promoción a cliente del
	// flujo "ganado" dentro de la transacción compartida.
	UpdateStatus(id, status string) error
	UpdateCoordinates(id string, lat, lng float64) error
	List(limit, offset int) ([]*entity.Company, error)
	// ListNames devuelve todos los nombres registrados (chequeo de duplicados).
	ListNames() ([]string, error)
	Delete(id string) error
}
