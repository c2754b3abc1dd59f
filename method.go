package forge

// Method is the closed set of HTTP request methods this engine understands.
type Method uint8

const (
	MethodUnknown Method = iota
	MethodGET
	MethodPOST
	MethodPUT
	MethodDELETE
	MethodPATCH
	MethodHEAD
	MethodOPTIONS
	MethodTRACE
)

var methodNames = [...]string{
	MethodUnknown: "",
	MethodGET:     "GET",
	MethodPOST:    "POST",
	MethodPUT:     "PUT",
	MethodDELETE:  "DELETE",
	MethodPATCH:   "PATCH",
	MethodHEAD:    "HEAD",
	MethodOPTIONS: "OPTIONS",
	MethodTRACE:   "TRACE",
}

// String returns the uppercase method name, or "" for MethodUnknown.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return ""
}

// ParseMethod parses an exact-case method token. Any string other than
// the eight recognized uppercase verbs is rejected.
func ParseMethod(s string) (Method, bool) {
	switch len(s) {
	case 3:
		if s == "GET" {
			return MethodGET, true
		}
		if s == "PUT" {
			return MethodPUT, true
		}
	case 4:
		if s == "POST" {
			return MethodPOST, true
		}
		if s == "HEAD" {
			return MethodHEAD, true
		}
	case 5:
		if s == "PATCH" {
			return MethodPATCH, true
		}
		if s == "TRACE" {
			return MethodTRACE, true
		}
	case 6:
		if s == "DELETE" {
			return MethodDELETE, true
		}
	case 7:
		if s == "OPTIONS" {
			return MethodOPTIONS, true
		}
	}
	return MethodUnknown, false
}

// ParseMethodBytes is the zero-copy variant of ParseMethod used by the
// request-line parser; it avoids allocating a string for the common case.
func ParseMethodBytes(b []byte) (Method, bool) {
	switch len(b) {
	case 3:
		if string(b) == "GET" {
			return MethodGET, true
		}
		if string(b) == "PUT" {
			return MethodPUT, true
		}
	case 4:
		if string(b) == "POST" {
			return MethodPOST, true
		}
		if string(b) == "HEAD" {
			return MethodHEAD, true
		}
	case 5:
		if string(b) == "PATCH" {
			return MethodPATCH, true
		}
		if string(b) == "TRACE" {
			return MethodTRACE, true
		}
	case 6:
		if string(b) == "DELETE" {
			return MethodDELETE, true
		}
	case 7:
		if string(b) == "OPTIONS" {
			return MethodOPTIONS, true
		}
	}
	return MethodUnknown, false
}
