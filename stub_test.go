package cascade_test

import (
	"fmt"

	"github.com/cascadews/cascade.go/internal/mock"
)

func newStubConnection() *mock.Connection {
	return mock.New()
}

func hexID(n int) string {
	return fmt.Sprintf("%032x", n)
}
