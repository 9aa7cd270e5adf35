package routes

import (
	"net/http"

	"scheduler/cmd/internal/service"
	"scheduler/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type MeetingService interface {
	CreateMeeting(req *service.CreateMeetingRequest) (*service.MeetingResponse, apierror.ErrorResponse)
	SuggestSlots(req *service.SuggestSlotsRequest) (*service.SuggestSlotsResponse, apierror.ErrorResponse)
}

type DefaultMeetingRoute struct {
	MeetingService MeetingService
}

func NewMeetingDefault(meetingService MeetingService) *DefaultMeetingRoute {
	return &DefaultMeetingRoute{MeetingService: meetingService}
}

func (m *DefaultMeetingRoute) CreateMeeting(c echo.Context) error {
	var req service.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	meeting, apierr := m.MeetingService.CreateMeeting(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, meeting)
}

func (m *DefaultMeetingRoute) SuggestSlots(c echo.Context) error {
	var req service.SuggestSlotsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	suggestions, apierr := m.MeetingService.SuggestSlots(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, suggestions)
}
