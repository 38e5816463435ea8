package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their catalog key, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Rejection describes a record dropped at load time.
type Rejection struct {
	Index  int      // position in the source list
	Title  string   // may be empty
	Fields []string // failing fields, by catalog key
	Err    error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("record %d: invalid %s", r.Index, strings.Join(r.Fields, ", "))
}

// CheckBook returns an error if b is missing a required field or has a
// non-positive page count.
func CheckBook(b Book) error {
	return validate.Struct(b)
}

// Validate splits books into valid records (order preserved) and rejections.
func Validate(books []Book) ([]Book, []Rejection) {
	valid := make([]Book, 0, len(books))
	var rejected []Rejection
	for i, b := range books {
		err := CheckBook(b)
		if err == nil {
			valid = append(valid, b)
			continue
		}
		rej := Rejection{Index: i, Title: b.Title, Err: err}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				rej.Fields = append(rej.Fields, fe.Field())
			}
		}
		rejected = append(rejected, rej)
	}
	return valid, rejected
}
