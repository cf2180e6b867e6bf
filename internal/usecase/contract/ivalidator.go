package usecasecontract

// IValidator checks free-form input that does not arrive through request binding.
type IValidator interface {
	ValidateImageURL(url string) error
	ValidateSlug(slug string) error
}
