package inspect

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/meetnow/validated-attributes/pkg/value"
)

// DefaultDepth is the nesting depth used by Format.
const DefaultDepth = 3

// Format renders v using DefaultDepth.
func Format(v any) string {
	return FormatDepth(v, DefaultDepth)
}

// FormatDepth renders v, descending at most depth levels into nested values.
// A negative depth is treated as zero.
func FormatDepth(v any, depth int) string {
	if depth < 0 {
		depth = 0
	}

	switch value.KindOf(v) {
	case value.KindUndefined:
		return "undefined"
	case value.KindNull:
		return "null"
	case value.KindBoolean, value.KindNumber:
		return fmt.Sprint(v)
	case value.KindString:
		s, _ := value.AsString(v)
		return strconv.Quote(s)
	case value.KindFunction:
		return "[Function]"
	case value.KindRegExp:
		switch re := v.(type) {
		case *regexp.Regexp:
			return "/" + re.String() + "/"
		case regexp.Regexp:
			return "/" + re.String() + "/"
		}
	case value.KindDate:
		switch t := v.(type) {
		case time.Time:
			return t.Format(time.RFC3339Nano)
		case *time.Time:
			return t.Format(time.RFC3339Nano)
		}
	case value.KindError:
		return "[" + v.(error).Error() + "]"
	}

	cfg := spew.ConfigState{
		Indent:                  " ",
		MaxDepth:                depth + 1,
		DisableMethods:          true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	return cfg.Sprint(v)
}
