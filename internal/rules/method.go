package rules

import "strings"

// Method is an ability score generation method
type Method string

// Generation methods
const (
	MethodRolled        Method = "rolled"
	MethodStandardArray Method = "standardArray"
	MethodPointBuy      Method = "pointBuy"
)

// DefaultMethod is used when the requested method is not recognized
const DefaultMethod = MethodRolled

var methodAliases = map[string]Method{
	"rolled":          MethodRolled,
	"rolling":         MethodRolled,
	"rolling-assign":  MethodRolled,
	"4d6_drop_lowest": MethodRolled,
	"standardarray":   MethodStandardArray,
	"standard":        MethodStandardArray,
	"standard_array":  MethodStandardArray,
	"pointbuy":        MethodPointBuy,
	"point_buy":       MethodPointBuy,
	"point-buy":       MethodPointBuy,
}

// Methods lists the supported methods
func Methods() []Method {
	return []Method{MethodRolled, MethodStandardArray, MethodPointBuy}
}

// ParseMethod resolves a method name. Unknown names resolve to DefaultMethod
// with ok set to false so callers can report the fallback.
func ParseMethod(s string) (m Method, ok bool) {
	if m, ok := methodAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, true
	}
	return DefaultMethod, false
}
