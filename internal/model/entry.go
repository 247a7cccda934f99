package model

// Reserved field names that always resolve to the derived entry metadata.
const (
	FieldGroup    = "_group"
	FieldName     = "_name"
	FieldPassword = "password"
)

// RootGroup is the group of an entry stored directly under the store root.
const RootGroup = "/"

// Entry is a decrypted credential ready to be typed.
//
// Fields holds the password (first line of the decrypted output) and every
// "key: value" metadata line. A field that was never supplied is absent from
// the map; this is how an empty decrypt output yields "no password".
type Entry struct {
	Group    string
	Name     string
	Sequence string
	Fields   map[string]string
}

// Field looks up a named field. Group and name cannot be overridden by
// metadata lines.
func (e *Entry) Field(name string) (string, bool) {
	switch name {
	case FieldGroup:
		return e.Group, true
	case FieldName:
		return e.Name, true
	}
	v, ok := e.Fields[name]
	return v, ok
}

// Password returns the entry's primary secret, if any.
func (e *Entry) Password() (string, bool) {
	return e.Field(FieldPassword)
}

// Display renders a field for listings: "None" when absent.
func (e *Entry) Display(name string) string {
	if v, ok := e.Field(name); ok {
		return v
	}
	return "None"
}
