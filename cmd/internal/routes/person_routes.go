package routes

import (
	"net/http"
	"strings"

	"scheduler/cmd/internal/service"
	"scheduler/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PersonService interface {
	RegisterPerson(req *service.CreatePersonRequest) (*service.PersonResponse, apierror.ErrorResponse)
	GetSchedule(personID string) ([]*service.MeetingResponse, apierror.ErrorResponse)
}

type DefaultPersonRoute struct {
	PersonService PersonService
}

func NewPersonDefault(personService PersonService) *DefaultPersonRoute {
	return &DefaultPersonRoute{PersonService: personService}
}

func (p *DefaultPersonRoute) CreatePerson(c echo.Context) error {
	var req service.CreatePersonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	person, apierr := p.PersonService.RegisterPerson(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, person)
}

func (p *DefaultPersonRoute) GetSchedule(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	meetings, apierr := p.PersonService.GetSchedule(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, meetings)
}
