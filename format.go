package vcell

import "github.com/delaneyj/toolbelt/bytebufferpool"

// String formats v for diagnostics as tag(value), with a trailing "~"
// for borrowed payloads.
func (v *Value) String() string {
	t := v.Type()
	if typeInfos[t].family == familyEmpty {
		return t.String()
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.WriteString(t.String())
	buf.WriteByte('(')
	buf.WriteString(kinds[t].format(v))
	buf.WriteByte(')')
	if !v.OwnsValue() {
		buf.WriteByte('~')
	}
	return string(buf.Bytes())
}
