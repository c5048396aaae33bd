package httpclient

import (
	"io"
	"net/url"
	"strings"
)

// Field is a single name/value pair of a form or multipart body.
type Field struct {
	Name  string
	Value string
}

// FormBody is an application/x-www-form-urlencoded body.
// Fields are encoded in the order they were added.
type FormBody struct {
	Fields []Field
}

// NewForm creates an empty form body.
func NewForm() *FormBody {
	return &FormBody{}
}

// Add appends a field and returns the receiver.
func (f *FormBody) Add(name, value string) *FormBody {
	f.Fields = append(f.Fields, Field{Name: name, Value: value})
	return f
}

// Get returns the first value for name.
func (f *FormBody) Get(name string) string {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld.Value
		}
	}
	return ""
}

// Encode renders the form without reordering fields.
func (f *FormBody) Encode() string {
	var sb strings.Builder
	for i, fld := range f.Fields {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(fld.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(fld.Value))
	}
	return sb.String()
}

func (f *FormBody) encode() (io.Reader, string) {
	return strings.NewReader(f.Encode()), "application/x-www-form-urlencoded"
}
