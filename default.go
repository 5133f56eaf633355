package datavalidation

// fallbackMessage is used when no template exists for a rule.
const fallbackMessage = ":field is invalid"

// defaultMessages holds the built-in templates. Size rules have typed
// variants ("min.string", "min.numeric", "min.array") picked by the kind of
// the failing value; the plain key is used when the value is not measurable.
var defaultMessages = map[string]string{
	"required": ":field is required",
	"present":  ":field must be present",
	"filled":   ":field must not be empty",

	"string":  ":field must be a string",
	"number":  ":field must be a number",
	"integer": ":field must be an integer",
	"boolean": ":field must be true or false",
	"array":   ":field must be an array",
	"object":  ":field must be an object",

	"email": ":field must be a valid email address",
	"url":   ":field must be a valid URL",
	"date":  ":field must be a valid date",
	"uuid":  ":field must be a valid UUID",
	"ip":    ":field must be a valid IP address",
	"json":  ":field must be a valid JSON string",
	"regex": ":field format is invalid",

	"min":         ":field must be at least :min",
	"min.numeric": ":field must be at least :min",
	"min.string":  ":field must be at least :min characters",
	"min.array":   ":field must have at least :min items",

	"max":         ":field may not be greater than :max",
	"max.numeric": ":field may not be greater than :max",
	"max.string":  ":field may not be greater than :max characters",
	"max.array":   ":field may not have more than :max items",

	"between":         ":field must be between :min and :max",
	"between.numeric": ":field must be between :min and :max",
	"between.string":  ":field must be between :min and :max characters",
	"between.array":   ":field must have between :min and :max items",

	"size":         ":field must be :value",
	"size.numeric": ":field must be :value",
	"size.string":  ":field must be :value characters",
	"size.array":   ":field must contain :value items",

	"gt":  ":field must be greater than :value",
	"gte": ":field must be greater than or equal to :value",
	"lt":  ":field must be less than :value",
	"lte": ":field must be less than or equal to :value",

	"in":    "selected :field is invalid",
	"notIn": "selected :field is not allowed",

	"confirmed": ":field confirmation does not match",
	"same":      ":field and :other must match",
	"different": ":field and :other must be different",

	"alpha":      ":field may only contain letters",
	"alpha_num":  ":field may only contain letters and numbers",
	"alpha_dash": ":field may only contain letters, numbers, dashes and underscores",
	"has_alpha":  ":field must contain at least one alphabetic character",

	"distinct": ":field has a duplicate value",
	"keys":     ":field may only contain the keys :values",

	"required_if":      ":field is required when :other is :param1",
	"required_unless":  ":field is required unless :other is in :param1",
	"required_with":    ":field is required when :values is present",
	"required_without": ":field is required when :values is not present",

	// Templates for rules hosts usually register themselves.
	"phone":      ":field must be a valid phone number",
	"nationalId": ":field must be a valid national ID",
	"unique":     ":field has already been taken",
	"exists":     "selected :field is invalid",
}
