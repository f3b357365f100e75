package entity

import "time"

// User is the account snapshot returned by the upstream inventory API.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// CredentialDraft is the login form.
type CredentialDraft struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// RegistrationDraft is the sign-up form.
type RegistrationDraft struct {
	Name            string `json:"name" yaml:"name"`
	Email           string `json:"email" yaml:"email"`
	Password        string `json:"password" yaml:"password"`
	ConfirmPassword string `json:"confirmPassword" yaml:"confirmPassword"`
	Role            Role   `json:"role" yaml:"role"`
}

// NewRegistrationDraft returns an empty registration form with the default role.
func NewRegistrationDraft() RegistrationDraft {
	return RegistrationDraft{Role: RoleStaff}
}

// ProfileDraft is the profile form, pre-populated from the current user.
type ProfileDraft struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// DraftFromUser pre-populates a ProfileDraft.
func DraftFromUser(u *User) ProfileDraft {
	if u == nil {
		return ProfileDraft{}
	}

	return ProfileDraft{Name: u.Name, Email: u.Email}
}

// PasswordChangeDraft is the password tab of the profile page.
type PasswordChangeDraft struct {
	CurrentPassword string `json:"currentPassword" yaml:"currentPassword"`
	NewPassword     string `json:"newPassword" yaml:"newPassword"`
	ConfirmPassword string `json:"confirmPassword" yaml:"confirmPassword"`
}

// AuthResult is what the upstream API returns after login or registration.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
