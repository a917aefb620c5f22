package models

import "github.com/cascadews/cascade.go/pkg/wire"

// Authentication is sent with every request. An API key takes precedence
// over username and password.
type Authentication struct {
	Username string
	Password string
	APIKey   string
}

func (a Authentication) IsZero() bool {
	return a.Username == "" && a.Password == "" && a.APIKey == ""
}

func (a Authentication) ToWire() wire.Object {
	if a.APIKey != "" {
		return wire.Object{"apiKey": a.APIKey}
	}
	return wire.Object{
		"username": a.Username,
		"password": a.Password,
	}
}
