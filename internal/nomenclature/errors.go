package nomenclature

import "fmt"

// UnknownFamilyError: the requested or inferred family key is not in the registry.
type UnknownFamilyError struct {
	Key   string // explicit family key, if one was given
	Model string // model number whose prefix matched nothing
}

func (e *UnknownFamilyError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("unknown product family %q", e.Key)
	}
	return fmt.Sprintf("no product family matches model number %q", e.Model)
}

// MalformedInputError: decode was given input that cannot even be sliced.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed model number: " + e.Reason
}

// InvalidCodeError: encode was given an attribute value with no code in the
// segment's table. Segment names the offending slice so the caller can point
// the user at the right field.
type InvalidCodeError struct {
	Family  string
	Segment string
	Value   string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("family %s: no %s code for value %q", e.Family, e.Segment, e.Value)
}

// MissingAttributeError: strict-mode encode with a required attribute absent.
type MissingAttributeError struct {
	Family  string
	Segment string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("family %s: missing attribute for segment %s", e.Family, e.Segment)
}
