package render

import "fmt"

// Kind selects which render the API produces.
type Kind int

// The zero Kind is invalid.
const (
	Skin Kind = iota + 1
	Head
	Face
	BodyFull
	BodyFront
	BodyBack
	BodyLeft
	BodyRight
)

type kindInfo struct {
	name    string
	segment string
}

// kinds holds exactly one path segment per Kind.
var kinds = [...]kindInfo{
	Skin:      {name: "skin", segment: "skin"},
	Head:      {name: "head", segment: "head"},
	Face:      {name: "face", segment: "face"},
	BodyFull:  {name: "body_full", segment: "body/full"},
	BodyFront: {name: "body_front", segment: "body/front"},
	BodyBack:  {name: "body_back", segment: "body/back"},
	BodyLeft:  {name: "body_left", segment: "body/left"},
	BodyRight: {name: "body_right", segment: "body/right"},
}

// Kinds returns every valid Kind in path-table order.
func Kinds() []Kind {
	return []Kind{Skin, Head, Face, BodyFull, BodyFront, BodyBack, BodyLeft, BodyRight}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= Skin && k <= BodyRight
}

// Segment returns the path segment for k, without slashes on either end.
// It returns an empty string for an invalid Kind.
func (k Kind) Segment() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].segment
}

// Scalable reports whether the API accepts scale and overlay for k.
func (k Kind) Scalable() bool {
	return k.Valid() && k != Skin
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}
