package expand

import (
	"go/token"
	"strings"
)

// Kind identifies a directive.
type Kind int

const (
	KindReturn Kind = iota + 1
	KindContinue
	KindBreak
)

var kindByName = map[string]Kind{
	"Return":   KindReturn,
	"Continue": KindContinue,
	"Break":    KindBreak,
}

func (k Kind) String() string {
	switch k {
	case KindReturn:
		return "Return"
	case KindContinue:
		return "Continue"
	case KindBreak:
		return "Break"
	default:
		return "Kind(?)"
	}
}

// MarshalText renders the kind in lower case for reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.String())), nil
}

// keyword is the Go statement the absent path jumps with.
func (k Kind) keyword() string {
	return strings.ToLower(k.String())
}

func (k Kind) callName() string {
	return "tryutils." + k.String()
}

// Directive describes one expanded call.
type Directive struct {
	Kind  Kind           `json:"kind"`
	Label string         `json:"label,omitempty"`
	Pos   token.Position `json:"pos"`
}
