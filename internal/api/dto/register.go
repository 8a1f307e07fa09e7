package dto

// RegisterRequest represents the multipart registration form. The
// logo file arrives separately as a form file.
type RegisterRequest struct {
	Name                 string `form:"name" binding:"required"`
	Email                string `form:"email" binding:"required,email,max=254"`
	Password             string `form:"password" binding:"required,min=8"`
	PasswordConfirmation string `form:"password_confirmation" binding:"required"`
	Employer             string `form:"employer" binding:"required"`
}
