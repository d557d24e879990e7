package httpx

import (
	"errors"
	"io"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// DecodeJSON reads a single JSON object. Unknown fields are ignored because
// the booking form posts whatever inputs it has.
func DecodeJSON(body io.Reader, v interface{}) error {
	if body == nil {
		return errors.New("empty body")
	}
	if err := render.DecodeJSON(body, v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	return nil
}

func ValidationDetails(errs validator.ValidationErrors) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	details := make(map[string]string, len(errs))
	for _, err := range errs {
		details[err.Field()] = err.Tag()
	}
	return details
}
