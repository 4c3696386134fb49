package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByID(id string) (*entity.Contact, error)
	ListByCompany(companyID string) ([]*entity.Contact, error)
	CountByCompany(companyID string) (int, error)
	Update(contact *entity.Contact) error
	Delete(id string) error
}
