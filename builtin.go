package datavalidation

import (
	"sort"
	"strings"
)

// builtinRule is an entry of the built-in catalog.
type builtinRule struct {
	check RuleFunc
	// params rejects malformed params before any record is evaluated.
	params func([]string) error
	// skip makes the rule a control rule: when it reports true the field's
	// remaining rules are not evaluated.
	skip     func(any) bool
	describe describeFunc
}

// aliases map alternative spellings onto catalog names.
var aliases = map[string]string{
	"numeric": "number",
	"not_in":  "notIn",
	"bool":    "boolean",
	"str":     "string",
}

var builtins = map[string]builtinRule{
	"required": {check: checkRequired, describe: describeRequired},
	"present":  {check: checkPresent, describe: describeNote("must be present")},
	"filled":   {check: checkFilled, describe: describeNote("must not be empty when present")},

	"string":  {check: checkString, describe: describeType(typeString)},
	"number":  {check: checkNumber, describe: describeType(typeNumber)},
	"integer": {check: checkInteger, describe: describeType(typeInteger)},
	"boolean": {check: checkBoolean, describe: describeType(typeBoolean)},
	"array":   {check: checkArray, describe: describeType(typeArray)},
	"object":  {check: checkObject, describe: describeType(typeObject)},

	"email": {check: checkEmail, describe: describeFormat("email")},
	"url":   {check: checkURL, describe: describeFormat("uri")},
	"date":  {check: checkDate, describe: describeFormat("date")},
	"uuid":  {check: checkUUID, describe: describeFormat("uuid")},
	"ip":    {check: checkIP, describe: describeNote("IP address")},
	"json":  {check: checkJSON, describe: describeNote("JSON document")},
	"regex": {check: checkRegex, params: regexParams, describe: describePattern},

	"min":     {check: checkMin, params: numericParams(1), describe: describeBound(true, false)},
	"max":     {check: checkMax, params: numericParams(1), describe: describeBound(false, false)},
	"between": {check: checkBetween, params: numericParams(2), describe: describeBetween},
	"size":    {check: checkSize, params: numericParams(1), describe: describeSize},
	"gt":      {check: checkGt, params: numericParams(1), describe: describeBound(true, true)},
	"gte":     {check: checkGte, params: numericParams(1), describe: describeBound(true, false)},
	"lt":      {check: checkLt, params: numericParams(1), describe: describeBound(false, true)},
	"lte":     {check: checkLte, params: numericParams(1), describe: describeBound(false, false)},

	"in":    {check: checkIn, params: minParams(1), describe: describeEnum},
	"notIn": {check: checkNotIn, params: minParams(1), describe: describeNotEnum},

	"confirmed": {check: checkConfirmed, describe: describeConfirmed},
	"same":      {check: checkSame, params: minParams(1), describe: describeParamNote("must match")},
	"different": {check: checkDifferent, params: minParams(1), describe: describeParamNote("must differ from")},

	"alpha":      {check: checkAlpha, describe: describeNote("letters only")},
	"alpha_num":  {check: checkAlphaNum, describe: describeNote("letters and digits only")},
	"alpha_dash": {check: checkAlphaDash, describe: describeNote("letters, digits, dashes and underscores only")},
	"has_alpha":  {check: checkHasAlpha, describe: describeNote("must contain at least one alphabetic character")},

	"distinct": {check: checkDistinct, describe: describeDistinct},
	"keys":     {check: checkKeys, params: minParams(1), describe: describeParamNote("keys must be in")},

	"required_if":      {check: checkRequiredIf, params: minParams(2), describe: describeParamNote("required if")},
	"required_unless":  {check: checkRequiredUnless, params: minParams(2), describe: describeParamNote("required unless")},
	"required_with":    {check: checkRequiredWith, params: minParams(1), describe: describeParamNote("required with")},
	"required_without": {check: checkRequiredWithout, params: minParams(1), describe: describeParamNote("required without")},

	"nullable":  {check: pass, skip: skipNullable, describe: describeNullable},
	"sometimes": {check: pass, skip: skipSometimes},
}

// folded maps lowercased catalog names and aliases to catalog names.
var folded = func() map[string]string {
	m := make(map[string]string, len(builtins)+len(aliases))
	for name := range builtins {
		m[strings.ToLower(name)] = name
	}
	for alias, name := range aliases {
		m[strings.ToLower(alias)] = name
	}
	return m
}()

// canonical resolves a rule name to its catalog name, ignoring case and
// following aliases. Names outside the catalog are returned unchanged.
func canonical(name string) string {
	if c, ok := folded[strings.ToLower(name)]; ok {
		return c
	}
	return name
}

func lookupBuiltin(name string) (builtinRule, bool) {
	b, ok := builtins[canonical(name)]
	return b, ok
}

// Builtins returns the names of the built-in rules, aliases included, in
// sorted order.
func Builtins() []string {
	names := make([]string, 0, len(builtins)+len(aliases))
	for name := range builtins {
		names = append(names, name)
	}
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
