package valuetype

import (
	"fmt"

	"github.com/rs/xid"
)

// An opaque, unique token; classified as [Symbol]. Two tokens are equal only
// if one was copied from the other, the description is for display only.
type Token struct {
	id   xid.ID
	desc string
}

func NewToken(description string) Token {
	return Token{id: xid.New(), desc: description}
}

func (t Token) Description() string {
	return t.desc
}

func (t Token) Equals(other Token) bool {
	return t.id == other.id
}

func (t Token) String() string {
	return fmt.Sprintf("Symbol(%s)", t.desc)
}
