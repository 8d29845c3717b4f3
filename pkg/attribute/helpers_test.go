package attribute_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meetnow/validated-attributes/pkg/attribute"
	"github.com/meetnow/validated-attributes/pkg/validator"
)

func stringAttr() *attribute.Leaf {
	return attribute.NewLeaf("string", validator.IsString, attribute.Literal(""))
}

func numberAttr() *attribute.Leaf {
	return attribute.NewLeaf("number", validator.IsNumber, attribute.Literal(0))
}

func requireValidationError(t *testing.T, err error) *attribute.ValidationError {
	t.Helper()
	var verr *attribute.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}
