package ctxlog

import (
	"fmt"
	"strings"
)

// renderFlat produces the human-readable form: an inline mapping-literal
// prefix followed by the message, or the bare message when nothing is bound.
//
//	{request_id: 7f3a, static: 1} Hello
func renderFlat(bindings []Binding, msg string) string {
	if len(bindings) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, bd := range bindings {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(bd.Name)
		b.WriteString(": ")
		fmt.Fprintf(&b, "%v", bd.Value)
	}
	b.WriteString("} ")
	b.WriteString(msg)
	return b.String()
}

// renderStructured produces comma-joined key/value fragments ending with the
// msg field. The caller's record template supplies the surrounding braces
// and the fixed time/level/name fields.
//
//	request_id: 7f3a, static: 1, msg: Hello
func renderStructured(bindings []Binding, msg string) string {
	var b strings.Builder
	for _, bd := range bindings {
		b.WriteString(bd.Name)
		b.WriteString(": ")
		fmt.Fprintf(&b, "%v", bd.Value)
		b.WriteString(", ")
	}
	b.WriteString("msg: ")
	b.WriteString(msg)
	return b.String()
}
