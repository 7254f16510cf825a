package dto

type RegisterDebtorInput struct {
	Name  string `validate:"required"`
	Phone string `validate:"omitempty,numeric"`
}
