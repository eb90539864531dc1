package domain

// User is a predefined member of the office directory
type User struct {
	ID        string
	Name      string
	AvatarURL string
}
