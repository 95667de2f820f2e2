package validation

// Violation types and messages. The vocabulary mirrors the one API clients of
// the directory already parse.
const (
	TypeMissing      = "value_error.missing"
	TypeMinLength    = "value_error.any_str.min_length"
	TypeMaxLength    = "value_error.any_str.max_length"
	TypeNotGT        = "value_error.number.not_gt"
	TypeNotGE        = "value_error.number.not_ge"
	TypeNotLT        = "value_error.number.not_lt"
	TypeNotLE        = "value_error.number.not_le"
	TypeEnum         = "type_error.enum"
	TypeEmail        = "value_error.email"
	TypeCardDigits   = "value_error.payment_card_number.digits"
	TypeCardLuhn     = "value_error.payment_card_number.luhn_check"
	TypeCardLength   = "value_error.payment_card_number.invalid_length_for_brand"
	TypeInteger      = "type_error.integer"
	TypeString       = "type_error.str"
	TypeBool         = "type_error.bool"
	TypeFloat        = "type_error.float"
	TypeDict         = "type_error.dict"
	TypeJSONDecode   = "value_error.jsondecode"
	TypeGeneric      = "value_error"
	MsgMissing       = "field required"
	MsgInteger       = "value is not a valid integer"
	MsgString        = "str type expected"
	MsgBool          = "value could not be parsed to a boolean"
	MsgFloat         = "value is not a valid float"
	MsgDict          = "value is not a valid dict"
	MsgEmail         = "value is not a valid email address"
	MsgCardDigits    = "card number is not all digits"
	MsgCardLuhn      = "card number is not luhn valid"
	MsgCardLength    = "Length for a card number is invalid"
	MsgJSONDecode    = "Expecting value"
	msgEnumPrefix    = "value is not a valid enumeration member; permitted: "
	msgMinLengthFmt  = "ensure this value has at least %s characters"
	msgMaxLengthFmt  = "ensure this value has at most %s characters"
	msgGreaterFmt    = "ensure this value is greater than %s"
	msgGreaterEqFmt  = "ensure this value is greater than or equal to %s"
	msgLessFmt       = "ensure this value is less than %s"
	msgLessEqFmt     = "ensure this value is less than or equal to %s"
	msgGenericRuleFm = "value failed the '%s' rule"
)
