package entity

// Contact holds the reachable identity of a donor or requester.
// It is disclosed to the counterparty only after a request is approved.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
