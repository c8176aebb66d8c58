package dto

// PersonRequest describes create and update payloads. ID is ignored on create.
type PersonRequest struct {
	ID       int64  `json:"id"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// PersonResponse is the JSON form of a stored person.
type PersonResponse struct {
	ID       int64  `json:"id"`
	Login    string `json:"login"`
	Password string `json:"password"`
}
