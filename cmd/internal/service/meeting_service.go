package service

import (
	"scheduler/cmd/internal/domain/entity"
	"scheduler/cmd/internal/utils"
	"scheduler/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type MeetingRepository interface {
	HasConflict(personID string, slot int64) (bool, error)
	Save(meeting *entity.Meeting, participants []string) error
	FindUpcomingByPersonID(personID string, asOf int64) ([]*entity.Meeting, error)
	OccupiedSlots(personIDs []string, candidates []int64) ([]int64, error)
}

type CreateMeetingRequest struct {
	Time         string   `json:"time" validate:"required"`
	Participants []string `json:"participants" validate:"required,min=1"`
}

type SuggestSlotsRequest struct {
	Participants []string `json:"participants" validate:"required,min=1"`
	From         string   `json:"from" validate:"required,iso8601"`
	// To is part of the documented contract but unused: the engine always
	// proposes the next 24 hourly candidates from From.
	To string `json:"to"`
}

type MeetingResponse struct {
	ID           string   `json:"id"`
	Time         string   `json:"time"`
	Participants []string `json:"participants"`
}

type SuggestSlotsResponse struct {
	Slots []string `json:"slots"`
}

// Meetings last exactly one hour, so a day of candidates is 24 slots.
const suggestionWindowHours = 24

type DefaultMeetingService struct {
	MeetingRepo MeetingRepository
	PersonRepo  PersonRepository
	Validate    *validator.Validate
}

func NewMeetingService(meetingRepo MeetingRepository, personRepo PersonRepository, validate *validator.Validate) *DefaultMeetingService {
	return &DefaultMeetingService{MeetingRepo: meetingRepo, PersonRepo: personRepo, Validate: validate}
}

// CreateMeeting books a one-hour meeting. Checks run in a fixed order and
// the first failure wins: input shape, hour alignment, participant
// existence, then conflicts. Nothing is written until every check passes,
// and the ledger entry and slot reservations commit as one transaction.
func (m *DefaultMeetingService) CreateMeeting(req *CreateMeetingRequest) (*MeetingResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := m.Validate.Struct(req); err != nil {
		return nil, apierror.TimeParticipantsRequiredError
	}

	start, err := utils.FromEpoch(req.Time)
	if err != nil {
		// An unparseable time reads as "not at the hour mark".
		return nil, apierror.HourMarkError
	}

	if !utils.IsHourExact(start) {
		return nil, apierror.HourMarkError
	}

	for _, pid := range req.Participants {
		found, err := m.PersonRepo.ExistsByID(pid)
		if err != nil {
			log.Errorf("failed to look up participant %s: %v", pid, err)
			return nil, apierror.InternalServerError
		}
		if !found {
			return nil, apierror.NewPersonMissingError(pid)
		}
	}

	for _, pid := range req.Participants {
		conflict, err := m.MeetingRepo.HasConflict(pid, start)
		if err != nil {
			log.Errorf("failed to check conflict for %s at %d: %v", pid, start, err)
			return nil, apierror.InternalServerError
		}
		if conflict {
			return nil, apierror.NewSlotConflictError(pid)
		}
	}

	meeting := &entity.Meeting{
		ID:        uuid.NewString(),
		StartsAt:  start,
		CreatedAt: utils.NowUTC(),
	}

	err = m.MeetingRepo.Save(meeting, req.Participants)
	if err != nil {
		log.Errorf("failed to save meeting: %v", err)
		return nil, apierror.InternalServerError
	}
	return toMeetingResponse(meeting), nil
}

// SuggestSlots proposes free slots for the group: the 24 hourly candidates
// starting at the hour-floor of From, minus every slot where at least one
// participant is already booked. Order is chronological by construction.
func (m *DefaultMeetingService) SuggestSlots(req *SuggestSlotsRequest) (*SuggestSlotsResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := m.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	from, err := utils.FromEpoch(req.From)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	base := utils.FloorToHour(from)
	candidates := make([]int64, suggestionWindowHours)
	for i := range candidates {
		candidates[i] = base + int64(i)*utils.MillisInHour
	}

	occupied, err := m.MeetingRepo.OccupiedSlots(req.Participants, candidates)
	if err != nil {
		log.Errorf("failed to fetch occupied slots: %v", err)
		return nil, apierror.InternalServerError
	}

	taken := make(map[int64]bool, len(occupied))
	for _, slot := range occupied {
		taken[slot] = true
	}

	slots := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if !taken[candidate] {
			slots = append(slots, utils.FormatEpoch(candidate))
		}
	}
	return &SuggestSlotsResponse{Slots: slots}, nil
}

func toMeetingResponse(meeting *entity.Meeting) *MeetingResponse {
	participants := make([]string, len(meeting.Slots))
	for i, slot := range meeting.Slots {
		participants[i] = slot.PersonID
	}
	return &MeetingResponse{
		ID:           meeting.ID,
		Time:         utils.FormatEpoch(meeting.StartsAt),
		Participants: participants,
	}
}
