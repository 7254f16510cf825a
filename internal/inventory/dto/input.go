package dto

type CreateProductInput struct {
	Name      string `validate:"required"`
	Price     int    `validate:"gt=0"`
	Stock     int    `validate:"gte=0"`
	Cost      int    `validate:"gte=0"`
	ImagePath string
}

type UpdateProductInput struct {
	ID        int    `validate:"gt=0"`
	Name      string `validate:"required"`
	Price     int    `validate:"gt=0"`
	Stock     int    `validate:"gte=0"`
	Cost      int    `validate:"gte=0"`
	ImagePath string
}
