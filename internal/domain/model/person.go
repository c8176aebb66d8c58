package model

import "strings"

// Person represents a login credential pair managed by the service.
type Person struct {
	ID       int64
	Login    string
	Password string
}

// NewPerson builds an unsaved person with the given credentials.
func NewPerson(login, password string) *Person {
	return &Person{Login: login, Password: password}
}

// Valid reports whether both login and password are present.
func (p *Person) Valid() bool {
	return p != nil && strings.TrimSpace(p.Login) != "" && p.Password != ""
}
