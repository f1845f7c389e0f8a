package coup

// Role is one of the five influence cards in the Coup deck.
type Role string

const (
	Ambassador Role = "Ambassador"
	Assassin   Role = "Assassin"
	Captain    Role = "Captain"
	Contessa   Role = "Contessa"
	Duke       Role = "Duke"
)

// Roles lists the five roles in a fixed, deterministic order. Three of each
// are in the deck, for fifteen cards total.
var Roles = [5]Role{Ambassador, Assassin, Captain, Contessa, Duke}

// CopiesPerRole is how many copies of each role exist in a full deck.
const CopiesPerRole = 3

// ActionName is the declared top-level action, which may be a role claim or
// one of the three roleless actions (Income, Foreign Aid, Coup).
type ActionName string

const (
	ActionIncome     ActionName = "Income"
	ActionForeignAid ActionName = "Foreign Aid"
	ActionCoup       ActionName = "Coup"
	ActionDuke       ActionName = ActionName(Duke)
	ActionCaptain    ActionName = ActionName(Captain)
	ActionAmbassador ActionName = ActionName(Ambassador)
	ActionAssassin   ActionName = ActionName(Assassin)
	ActionContessa   ActionName = ActionName(Contessa)
)

// isRoleClaim reports whether an action name is also one of the five roles
// (as opposed to Income, Foreign Aid, or Coup, which claim no role).
func isRoleClaim(a ActionName) (Role, bool) {
	switch a {
	case ActionDuke, ActionCaptain, ActionAmbassador, ActionAssassin, ActionContessa:
		return Role(a), true
	default:
		return "", false
	}
}

// blockersFor maps an action to the roles that may claim to block it (§4.2).
var blockersFor = map[ActionName][]Role{
	ActionIncome:     nil,
	ActionForeignAid: {Duke},
	ActionCoup:       nil,
	ActionDuke:       nil,
	ActionCaptain:    {Ambassador, Captain},
	ActionAmbassador: nil,
	ActionAssassin:   {Contessa},
	ActionContessa:   nil,
}

// challengeableFor reports whether a claim to the given action may be
// challenged (§4.2). Income, Foreign Aid, and Coup claim no role and so are
// never challengeable.
var challengeableFor = map[ActionName]bool{
	ActionIncome:     false,
	ActionForeignAid: false,
	ActionCoup:       false,
	ActionDuke:       true,
	ActionCaptain:    true,
	ActionAmbassador: true,
	ActionAssassin:   true,
	ActionContessa:   true,
}

// targetedFor reports whether declaring the given action requires choosing
// an opposing player (§4.2).
var targetedFor = map[ActionName]bool{
	ActionIncome:     false,
	ActionForeignAid: false,
	ActionCoup:       true,
	ActionDuke:       false,
	ActionCaptain:    true,
	ActionAmbassador: false,
	ActionAssassin:   true,
	ActionContessa:   false,
}

// hasChallengeOrBlockWindow reports whether declaring this action opens a
// challenging phase: either it can itself be challenged, or some role may
// claim to block it.
func hasChallengeOrBlockWindow(a ActionName) bool {
	return challengeableFor[a] || len(blockersFor[a]) > 0
}
