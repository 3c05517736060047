package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"watchparty/internal/delivery/http/controllers"
	"watchparty/internal/delivery/http/helpers"
)

// Controllers groups the handlers wired into the router.
type Controllers struct {
	Invitations *controllers.InvitationController
	Chat        *controllers.ChatController
	Polls       *controllers.PollController
	TeaSpills   *controllers.TeaSpillController
	Predictions *controllers.PredictionController
	Translate   *controllers.TranslateController
}

// NewRouter initializes the HTTP router with all application routes.
// The websocket handler is passed in separately because it lives outside
// the JSON delivery layer.
func NewRouter(c Controllers, ws http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Invitations
	mux.HandleFunc("POST /api/invite", c.Invitations.Issue)
	mux.HandleFunc("POST /api/invitations", c.Invitations.List)
	mux.HandleFunc("POST /api/validate-code", c.Invitations.ValidateCode)

	// Chat over plain HTTP; live traffic goes over /ws
	mux.HandleFunc("POST /api/messages", c.Chat.History)
	mux.HandleFunc("POST /api/chat-send", c.Chat.Send)

	// Polls
	mux.HandleFunc("GET /api/polls", c.Polls.Get)
	mux.HandleFunc("POST /api/polls", c.Polls.Vote)

	// Tea spills
	mux.HandleFunc("GET /api/teaspill", c.TeaSpills.Get)
	mux.HandleFunc("POST /api/teaspill", c.TeaSpills.Post)

	// Predictions
	mux.HandleFunc("GET /api/predictions", c.Predictions.Get)
	mux.HandleFunc("POST /api/predictions", c.Predictions.Post)

	// Translator
	mux.HandleFunc("POST /api/translate", c.Translate.Translate)

	// Websocket room
	mux.HandleFunc("GET /ws", ws)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Wrong-method requests on known paths get a JSON 405 instead of the
	// ServeMux plain-text default.
	for _, path := range []string{
		"/api/invite",
		"/api/invitations",
		"/api/validate-code",
		"/api/messages",
		"/api/chat-send",
		"/api/polls",
		"/api/teaspill",
		"/api/predictions",
		"/api/translate",
		"/ws",
	} {
		mux.HandleFunc(path, methodNotAllowed)
	}

	return mux
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONError(w, http.StatusMethodNotAllowed, helpers.ErrCodeMethodNotAllowed, "Method not allowed.")
}
