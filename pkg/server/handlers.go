package server

import (
	"Suivi/handler"
)

type Handlers struct {
	Health   *handler.Health
	QRCode   *handler.QRCode
	Page     *handler.Page
	Redirect *handler.Redirect
}
