package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scheduler/cmd/internal/domain/sqlite"
	"scheduler/cmd/internal/domain/sqlite/repository"
	"scheduler/cmd/internal/routes"
	"scheduler/cmd/internal/service"
	"scheduler/cmd/internal/utils/apierror"
	"scheduler/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := sqlite.Init()
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("iso8601", validators.IsIso8601))

	personRepo := repository.NewPersonRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	personRoutes := routes.NewPersonDefault(service.NewPersonService(personRepo, meetingRepo, validate))
	meetingRoutes := routes.NewMeetingDefault(service.NewMeetingService(meetingRepo, personRepo, validate))

	e := echo.New()
	e.POST("/persons", personRoutes.CreatePerson)
	e.GET("/persons/:id/schedule", personRoutes.GetSchedule)
	e.POST("/meetings", meetingRoutes.CreateMeeting)
	e.POST("/meetings/suggest", meetingRoutes.SuggestSlots)
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(apierror.NotFoundError.Code(), apierror.NotFoundError)
	})
	return e
}

func do(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func createPerson(t *testing.T, e *echo.Echo, name, email string) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/persons", echo.Map{"name": name, "email": email})
	require.Equal(t, http.StatusCreated, rec.Code)

	var person struct {
		ID string `json:"id"`
	}
	decode(t, rec, &person)
	require.NotEmpty(t, person.ID)
	return person.ID
}

func TestCreatePersonEndpoint(t *testing.T) {
	e := newAPI(t)

	rec := do(t, e, http.MethodPost, "/persons", echo.Map{"name": "Alice", "email": "alice@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var person struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	decode(t, rec, &person)
	assert.NotEmpty(t, person.ID)
	assert.Equal(t, "Alice", person.Name)
	assert.Equal(t, "alice@example.com", person.Email)
}

func TestCreatePersonRejectsDuplicateEmail(t *testing.T) {
	e := newAPI(t)
	createPerson(t, e, "Bob", "bob@example.com")

	rec := do(t, e, http.MethodPost, "/persons", echo.Map{"name": "Bobby", "email": "bob@example.com"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreatePersonRequiresNameAndEmail(t *testing.T) {
	e := newAPI(t)

	rec := do(t, e, http.MethodPost, "/persons", echo.Map{"name": "Alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMeetingEndpoint(t *testing.T) {
	e := newAPI(t)
	alice := createPerson(t, e, "Alice", "alice@example.com")

	rec := do(t, e, http.MethodPost, "/meetings", echo.Map{
		"time":         "2025-09-09T10:00:00.000Z",
		"participants": []string{alice},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var meeting struct {
		ID           string   `json:"id"`
		Time         string   `json:"time"`
		Participants []string `json:"participants"`
	}
	decode(t, rec, &meeting)
	assert.NotEmpty(t, meeting.ID)
	assert.Equal(t, "2025-09-09T10:00:00.000Z", meeting.Time)
	assert.Equal(t, []string{alice}, meeting.Participants)
}

func TestCreateMeetingRejectsNonHourMark(t *testing.T) {
	e := newAPI(t)
	alice := createPerson(t, e, "Alice", "alice@example.com")

	rec := do(t, e, http.MethodPost, "/meetings", echo.Map{
		"time":         "2025-09-09T10:30:00.000Z",
		"participants": []string{alice},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMeetingRejectsDoubleBooking(t *testing.T) {
	e := newAPI(t)
	alice := createPerson(t, e, "Alice", "alice@example.com")

	body := echo.Map{"time": "2025-09-09T10:00:00.000Z", "participants": []string{alice}}
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/meetings", body).Code)
	assert.Equal(t, http.StatusConflict, do(t, e, http.MethodPost, "/meetings", body).Code)
}

func TestCreateMeetingUnknownParticipant(t *testing.T) {
	e := newAPI(t)

	rec := do(t, e, http.MethodPost, "/meetings", echo.Map{
		"time":         "2025-09-09T10:00:00.000Z",
		"participants": []string{"ghost-id"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleEndpoint(t *testing.T) {
	e := newAPI(t)
	alice := createPerson(t, e, "Alice", "alice@example.com")

	rec := do(t, e, http.MethodPost, "/meetings", echo.Map{
		"time":         "2099-01-01T10:00:00.000Z",
		"participants": []string{alice},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodGet, "/persons/"+alice+"/schedule", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var schedule []struct {
		Time string `json:"time"`
	}
	decode(t, rec, &schedule)
	require.Len(t, schedule, 1)
	assert.Equal(t, "2099-01-01T10:00:00.000Z", schedule[0].Time)
}

func TestScheduleEndpointUnknownPerson(t *testing.T) {
	e := newAPI(t)

	rec := do(t, e, http.MethodGet, "/persons/no-such-id/schedule", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSuggestEndpoint(t *testing.T) {
	e := newAPI(t)
	alice := createPerson(t, e, "Alice", "alice@example.com")
	bob := createPerson(t, e, "Bob", "bob@example.com")

	rec := do(t, e, http.MethodPost, "/meetings", echo.Map{
		"time":         "2025-09-09T10:00:00.000Z",
		"participants": []string{alice, bob},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodPost, "/meetings/suggest", echo.Map{
		"participants": []string{alice, bob},
		"from":         "2025-09-09T09:00:00.000Z",
		"to":           "2025-09-09T12:00:00.000Z",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Slots []string `json:"slots"`
	}
	decode(t, rec, &resp)
	assert.Contains(t, resp.Slots, "2025-09-09T09:00:00.000Z")
	assert.NotContains(t, resp.Slots, "2025-09-09T10:00:00.000Z")
}

func TestSuggestEndpointValidation(t *testing.T) {
	e := newAPI(t)

	rec := do(t, e, http.MethodPost, "/meetings/suggest", echo.Map{
		"participants": []string{},
		"from":         "2025-09-09T09:00:00.000Z",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	e := newAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/persons", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	e := newAPI(t)

	rec := do(t, e, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "Not Found", body.Error)
}
