package service

import (
	"scheduler/cmd/internal/domain/entity"
	"scheduler/cmd/internal/utils"
	"scheduler/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type PersonRepository interface {
	FindByID(id string) (*entity.Person, error)
	ExistsByID(id string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Save(person *entity.Person) error
}

type CreatePersonRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

type PersonResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DefaultPersonService struct {
	PersonRepo  PersonRepository
	MeetingRepo MeetingRepository
	Validate    *validator.Validate
}

func NewPersonService(personRepo PersonRepository, meetingRepo MeetingRepository, validate *validator.Validate) *DefaultPersonService {
	return &DefaultPersonService{PersonRepo: personRepo, MeetingRepo: meetingRepo, Validate: validate}
}

// RegisterPerson stores a new person under a fresh id. Emails are unique by
// exact, case-sensitive match.
func (p *DefaultPersonService) RegisterPerson(req *CreatePersonRequest) (*PersonResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.NameEmailRequiredError
	}

	taken, err := p.PersonRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if email %s is taken: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	if taken {
		return nil, apierror.EmailNotUniqueError
	}

	person := &entity.Person{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: utils.NowUTC(),
	}

	err = p.PersonRepo.Save(person)
	if err != nil {
		log.Errorf("failed to save person: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPersonResponse(person), nil
}

// GetSchedule returns the person's upcoming meetings, in booking order.
func (p *DefaultPersonService) GetSchedule(personID string) ([]*MeetingResponse, apierror.ErrorResponse) {
	found, err := p.PersonRepo.ExistsByID(personID)
	if err != nil {
		log.Errorf("failed to look up person %s: %v", personID, err)
		return nil, apierror.InternalServerError
	}

	if !found {
		return nil, apierror.PersonNotFoundError
	}

	meetings, err := p.MeetingRepo.FindUpcomingByPersonID(personID, utils.NowUTC())
	if err != nil {
		log.Errorf("failed to fetch schedule for person %s: %v", personID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*MeetingResponse, len(meetings))
	for i, meeting := range meetings {
		resp[i] = toMeetingResponse(meeting)
	}
	return resp, nil
}

func toPersonResponse(person *entity.Person) *PersonResponse {
	return &PersonResponse{
		ID:    person.ID,
		Name:  person.Name,
		Email: person.Email,
	}
}
