package world

import (
	"github.com/vovakirdan/tower/internal/config"
)

// ContactKind tells which reaction a contact triggered.
type ContactKind int

const (
	ContactLanded ContactKind = iota
	ContactHeadHit
)

// String returns a readable name for logs.
func (k ContactKind) String() string {
	if k == ContactHeadHit {
		return "head-hit"
	}
	return "landed"
}

// Contact records one resolved overlap.
type Contact struct {
	Block *Block
	Kind  ContactKind
}

// SnapRule decides where a contact puts the player.
type SnapRule struct {
	Mode     string // config.SnapSurface or config.SnapFixed
	LandingY int    // fixed mode: top edge after landing
	CeilingY int    // fixed mode: top edge after a head hit
}

// SnapRuleFrom reads the rule out of the collision config.
func SnapRuleFrom(cfg config.CollisionConfig) SnapRule {
	return SnapRule{Mode: cfg.Snap, LandingY: cfg.LandingY, CeilingY: cfg.CeilingY}
}

// ResolveVertical checks the player against every block in order. On a
// pixel overlap while dy > 0 the player's bottom snaps to the block's top and
// Landed runs; while dy < 0 its top snaps to the block's bottom and HitHead
// runs. Each block is tested at the position left by the previous one, so the
// last overlapping block wins. There is no horizontal resolution.
func ResolveVertical(p *Player, blocks []*Block, dy int, rule SnapRule) []Contact {
	if dy == 0 {
		return nil
	}

	var contacts []Contact
	for _, b := range blocks {
		if !Overlaps(p, b) {
			continue
		}
		if dy > 0 {
			p.SetBottom(b.Bounds().Y)
			p.Landed()
			if rule.Mode == config.SnapFixed {
				p.SetTop(rule.LandingY)
			}
			contacts = append(contacts, Contact{Block: b, Kind: ContactLanded})
		} else {
			p.SetTop(b.Bounds().Bottom())
			p.HitHead()
			if rule.Mode == config.SnapFixed {
				p.SetTop(rule.CeilingY)
			}
			contacts = append(contacts, Contact{Block: b, Kind: ContactHeadHit})
		}
	}
	return contacts
}
