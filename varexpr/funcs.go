package varexpr

import (
	"github.com/expr-lang/expr"

	"github.com/gdcore/serializer/variable"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("tojson", func(params ...any) (any, error) {
			return variable.ToJSON(FromAny(params[0])), nil
		},
			new(func(any) string)),
		expr.Function("fromjson", func(params ...any) (any, error) {
			v, err := variable.FromJSONString(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("number", func(params ...any) (any, error) {
			return FromAny(params[0]).Number(), nil
		},
			new(func(any) float64)),
		expr.Function("text", func(params ...any) (any, error) {
			return FromAny(params[0]).Text(), nil
		},
			new(func(any) string)),
	}
}
