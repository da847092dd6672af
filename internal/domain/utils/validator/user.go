package validator

const minPasswordLength = 6

func Password(password string) bool {
	return len(password) >= minPasswordLength
}
