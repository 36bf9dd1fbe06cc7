package osrs

// MonsterSkills holds the monster's skill levels.
type MonsterSkills struct {
	Atk    int `json:"atk"`
	Def    int `json:"def"`
	HP     int `json:"hp"`
	Magic  int `json:"magic"`
	Ranged int `json:"ranged"`
	Str    int `json:"str"`
}

// MonsterOffensive holds the monster's attack bonuses.
type MonsterOffensive struct {
	Atk       int `json:"atk"`
	Magic     int `json:"magic"`
	MagicStr  int `json:"magic_str"`
	Ranged    int `json:"ranged"`
	RangedStr int `json:"ranged_str"`
	Str       int `json:"str"`
}

// MonsterDefensive holds the monster's defence bonuses.
type MonsterDefensive struct {
	Stab   int `json:"stab"`
	Slash  int `json:"slash"`
	Crush  int `json:"crush"`
	Magic  int `json:"magic"`
	Ranged int `json:"ranged"`
}

// Monster is the opposing monster shared by every loadout.
type Monster struct {
	Name       string             `json:"name"`
	Image      string             `json:"image"`
	Size       int                `json:"size"`
	Skills     MonsterSkills      `json:"skills"`
	Offensive  MonsterOffensive   `json:"offensive"`
	Defensive  MonsterDefensive   `json:"defensive"`
	Attributes []MonsterAttribute `json:"attributes"`
}

// NewMonster returns a blank size-1 monster with no attributes.
func NewMonster() *Monster {
	return &Monster{Size: 1}
}

// Clone returns a deep copy detached from the original.
func (m *Monster) Clone() *Monster {
	clone := *m
	clone.Attributes = append([]MonsterAttribute(nil), m.Attributes...)
	return &clone
}

// HasAttribute reports whether the monster carries the given attribute.
func (m *Monster) HasAttribute(attr MonsterAttribute) bool {
	for _, candidate := range m.Attributes {
		if candidate == attr {
			return true
		}
	}
	return false
}
