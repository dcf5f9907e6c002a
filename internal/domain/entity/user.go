package entity

// User usuario del dashboard. PasswordHash guarda únicamente el hash bcrypt;
// el texto plano jamás se persiste.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}
