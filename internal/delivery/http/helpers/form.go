package helpers

import (
	"net/http"
	"strings"
)

// FormValidator is implemented by form DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type FormValidator interface {
	Validate() []string
}

// ParseAndValidate parses the request's form body and, if dest implements
// FormValidator, runs Validate(). On parse or validation failure it writes a
// 400 JSON error and returns false; otherwise returns true.
// Callers should return immediately when ParseAndValidate returns false.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dest FormDecoder) bool {
	if err := r.ParseForm(); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	dest.DecodeForm(r)
	if v, ok := dest.(FormValidator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}

// FormDecoder is implemented by form DTOs that populate themselves from a
// parsed request form.
type FormDecoder interface {
	DecodeForm(r *http.Request)
}

// OptionalFormValue returns a pointer to the named form value, or nil when
// the field is empty or absent.
func OptionalFormValue(r *http.Request, name string) *string {
	if v := r.PostFormValue(name); v != "" {
		return &v
	}
	return nil
}
