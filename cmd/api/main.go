package main

import (
	"os"

	"scheduler/cmd/internal/domain/sqlite"
	"scheduler/cmd/internal/domain/sqlite/repository"
	"scheduler/cmd/internal/routes"
	"scheduler/cmd/internal/service"
	"scheduler/cmd/internal/utils/apierror"
	"scheduler/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	// The .env file is optional: all state is in-memory, only PORT lives there.
	_ = godotenv.Load()

	// Init in-memory SQLite
	db, err := sqlite.Init()
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	// Getting repositories
	personRepo := repository.NewPersonRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	// Getting services
	personService := service.NewPersonService(personRepo, meetingRepo, validate)
	meetingService := service.NewMeetingService(meetingRepo, personRepo, validate)

	// Getting routes
	personRoutes := routes.NewPersonDefault(personService)
	meetingRoutes := routes.NewMeetingDefault(meetingService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	// Persons
	e.POST("/persons", personRoutes.CreatePerson)
	e.GET("/persons/:id/schedule", personRoutes.GetSchedule)

	// Meetings
	e.POST("/meetings", meetingRoutes.CreateMeeting)
	e.POST("/meetings/suggest", meetingRoutes.SuggestSlots)

	// Keep the catch-all body in the same shape as every other error.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(apierror.NotFoundError.Code(), apierror.NotFoundError)
	})

	err = e.Start(":" + port())
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "3000"
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("iso8601", validators.IsIso8601)
}
