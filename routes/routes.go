package routes

import (
	"github.com/Biagem01/TorneoLive-sub000/handlers"
	"github.com/Biagem01/TorneoLive-sub000/middleware"
	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes mounts every endpoint on the router. Read endpoints are
// public; anything that mutates tournament data requires a token with the
// admin or organizer role.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	teamHandler *handlers.TeamHandler,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	groupHandler *handlers.GroupHandler,
	standingsHandler *handlers.StandingsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)
	manageOnly := middleware.RequireRole(models.RoleAdmin, models.RoleOrganizer)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)
	router.Get("/auth/confirm", authHandler.ConfirmEmail)
	router.With(authenticate).Get("/auth/me", authHandler.Me)

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.List)
		r.Get("/{tournamentID}", tournamentHandler.GetByID)
		r.Get("/{tournamentID}/teams", teamHandler.ListByTournament)
		r.Get("/{tournamentID}/matches", matchHandler.ListByTournament)
		r.Get("/{tournamentID}/groups", groupHandler.List)
		r.Get("/{tournamentID}/standings", standingsHandler.Standings)
		r.Get("/{tournamentID}/standings/groups", standingsHandler.GroupStandings)
		r.Get("/{tournamentID}/topscorers", standingsHandler.TopScorers)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(manageOnly)

			r.Post("/", tournamentHandler.Create)
			r.Put("/{tournamentID}", tournamentHandler.Update)
			r.Delete("/{tournamentID}", tournamentHandler.Delete)
			r.Post("/{tournamentID}/logo", tournamentHandler.UploadLogo)
			r.Post("/{tournamentID}/groups/generate", groupHandler.Generate)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/{teamID}", teamHandler.GetByID)
		r.Get("/{teamID}/players", playerHandler.ListByTeam)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(manageOnly)

			r.Post("/", teamHandler.Create)
			r.Put("/{teamID}", teamHandler.Update)
			r.Delete("/{teamID}", teamHandler.Delete)
			r.Post("/{teamID}/crest", teamHandler.UploadCrest)
		})
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/{playerID}", playerHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(manageOnly)

			r.Post("/", playerHandler.Create)
			r.Put("/{playerID}", playerHandler.Update)
			r.Delete("/{playerID}", playerHandler.Delete)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", matchHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(manageOnly)

			r.Post("/", matchHandler.Create)
			r.Post("/{matchID}/result", matchHandler.RecordResult)
			r.Put("/{matchID}/kickoff", matchHandler.Reschedule)
			r.Delete("/{matchID}", matchHandler.Delete)
		})
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)
}
