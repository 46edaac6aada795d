package domain

// Principal is the opaque identity of a caller as supplied by the
// identity provider. It is used both as campaign creator and as the key of
// the contributor mapping.
type Principal string

// AnonymousPrincipal is the identity assigned to callers that did not
// authenticate.
const AnonymousPrincipal Principal = "2vxsx-fae"

// IsAnonymous reports whether p is empty or the anonymous principal.
func (p Principal) IsAnonymous() bool {
	return p == "" || p == AnonymousPrincipal
}

func (p Principal) String() string {
	return string(p)
}
