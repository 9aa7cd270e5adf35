package repository

import (
	"errors"
	"scheduler/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *DefaultPersonRepository {
	return &DefaultPersonRepository{db: db}
}

func (p *DefaultPersonRepository) FindByID(id string) (*entity.Person, error) {
	var person entity.Person
	err := p.db.First(&person, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &person, err
}

func (p *DefaultPersonRepository) ExistsByID(id string) (bool, error) {
	var count int64
	err := p.db.Model(&entity.Person{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// ExistsByEmail matches the email exactly; uniqueness is case-sensitive.
func (p *DefaultPersonRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := p.db.Model(&entity.Person{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (p *DefaultPersonRepository) Save(person *entity.Person) error {
	return p.db.Save(person).Error
}
