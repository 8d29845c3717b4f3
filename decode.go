package attributes

import (
	"errors"

	"github.com/mitchellh/mapstructure"
)

var defaultChecker = NewChecker()

// Decode merges defaults into input, validates the result against spec and
// binds it into out, which must be a non-nil pointer. Struct fields are
// matched by their json tag. Values are not coerced: a string never binds to
// an int field.
//
//	var cfg struct {
//	    Name    string `json:"name"`
//	    Retries int    `json:"retries"`
//	}
//	err := attributes.Decode(spec, raw, &cfg)
func Decode(spec, input, out any) error {
	return defaultChecker.Decode(spec, input, out)
}

func bind(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return errors.Join(ErrDecode, err)
	}
	if err := dec.Decode(in); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}
