package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "timetableportal/docs"
	"timetableportal/internal/delivery/http/controllers"
)

// Middleware wraps a handler func, e.g. the session guard.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// NewRouter initializes the HTTP router with all application routes. The
// auth endpoints and swagger stay outside the session guard.
func NewRouter(
	authController *controllers.AuthController,
	viewController *controllers.ViewController,
	entryController *controllers.EntryController,
	requireSession Middleware,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/register", authController.Register)
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("POST /auth/logout", requireSession(authController.Logout))

	// Role views
	mux.HandleFunc("GET /views/admin/day/{day}", requireSession(viewController.AdminDay))
	mux.HandleFunc("GET /views/faculty/day/{day}", requireSession(viewController.FacultyDay))
	mux.HandleFunc("GET /views/hod/day/{day}", requireSession(viewController.HODDay))
	mux.HandleFunc("GET /views/student/day/{day}", requireSession(viewController.StudentDay))
	mux.HandleFunc("GET /views/meta", requireSession(viewController.Meta))

	// Timetable mutations
	mux.HandleFunc("POST /timetable/daily", requireSession(entryController.CreateDaily))
	mux.HandleFunc("PUT /timetable/{dailyID}/slot/{slotID}", requireSession(entryController.UpdateSlot))
	mux.HandleFunc("DELETE /timetable/{dailyID}/slot/{slotID}", requireSession(entryController.DeleteSlot))
	mux.HandleFunc("DELETE /timetable/{dailyID}", requireSession(entryController.DeleteDaily))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
