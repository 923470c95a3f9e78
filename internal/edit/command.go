// Package edit drives record mutations: a command names the target entity,
// a session holds the transient form buffer, and nothing touches the record
// until the session commits.
package edit

import "fmt"

// Kind names an editable entity.
type Kind string

const (
	KindGeneral   Kind = "general"
	KindRating    Kind = "rating"
	KindObjective Kind = "objectives"
	KindPurchase  Kind = "purchase"
	KindFinancing Kind = "financing"
	KindSubsidy   Kind = "subsidy"
	KindWork      Kind = "work"
	KindMaterial  Kind = "material"
	KindJournal   Kind = "journal"
	KindEnergy    Kind = "energy"
)

// Op is what the command does to its target.
type Op string

const (
	OpEdit   Op = "edit"
	OpAdd    Op = "add"
	OpDelete Op = "delete"
)

// Command describes one requested mutation: which entity kind, which list
// position (ignored for singleton sections and adds), and the operation.
// Views never mutate the record directly; they emit commands.
type Command struct {
	Kind  Kind
	Index int
	Op    Op
}

func (c Command) String() string {
	switch c.Op {
	case OpAdd:
		return fmt.Sprintf("add %s", c.Kind)
	case OpDelete:
		return fmt.Sprintf("delete %s[%d]", c.Kind, c.Index)
	default:
		return fmt.Sprintf("edit %s[%d]", c.Kind, c.Index)
	}
}

// listKinds are the entity kinds addressed by index.
var listKinds = map[Kind]bool{
	KindSubsidy:  true,
	KindWork:     true,
	KindMaterial: true,
	KindJournal:  true,
}

// IsList reports whether the kind is a list entity addressed by index.
func (k Kind) IsList() bool {
	return listKinds[k]
}
