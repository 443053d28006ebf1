package app

import (
	"github.com/go-chi/oauth"

	"github.com/Kryoz0512/Survey-Chain/config"
	"github.com/Kryoz0512/Survey-Chain/draft"
	"github.com/Kryoz0512/Survey-Chain/escrow"
)

type App struct {
	*oauth.BearerServer
	config.Config
	Sessions    *draft.Sessions
	Coordinator *draft.Coordinator
	Escrow      *escrow.Store
}
