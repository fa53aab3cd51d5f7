package domain

type OperatorAuth struct {
	ID           string
	Email        string
	PasswordHash string
	Status       string
}
