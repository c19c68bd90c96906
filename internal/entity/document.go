package entity

import "github.com/questx-lab/questlog/pkg/enum"

type DocumentKind string

var (
	ActorDocument        = enum.New(DocumentKind("Actor"))
	ItemDocument         = enum.New(DocumentKind("Item"))
	JournalEntryDocument = enum.New(DocumentKind("JournalEntry"))
)

// Document is a host document addressable by an opaque reference string such as "Actor.abc".
// Only the fields needed to display a giver or a reward are kept.
type Document struct {
	Base

	Kind       DocumentKind
	Name       string
	Image      string
	TokenImage string
}
