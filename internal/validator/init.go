package validator

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("cell", validateCell); err != nil {
		panic(err)
	}
}

// validateCell accepts integers addressing a board cell (1..9).
func validateCell(fl validator.FieldLevel) bool {
	return game.ValidCell(int(fl.Field().Int()))
}

func GetValidator() *validator.Validate {
	return validate
}
