package models

type Student struct {
	StudentID  string `json:"studentId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Registration is one student's registration for an event. The backend owns
// every field; the gateway only mirrors Attended while a toggle is in flight.
type Registration struct {
	RegistrationID int64   `json:"registrationId"`
	Attended       bool    `json:"attended"`
	Student        Student `json:"student"`
}
