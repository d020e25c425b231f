package authorization

// Role identifies the trust tier of a helper account.
type Role string

const (
	RoleCommunity Role = "community"
	RoleCertified Role = "certified"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Capability names a discrete permission a role grants.
type Capability string

const (
	CapabilityModerate   Capability = "moderate"
	CapabilityAdminister Capability = "administer"
)

var roleCapabilities = map[Role][]Capability{
	RoleCommunity: {},
	RoleCertified: {},
	RoleModerator: {CapabilityModerate},
	RoleAdmin:     {CapabilityModerate, CapabilityAdminister},
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Has reports whether the role grants the given capability.
func (r Role) Has(cap Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == cap {
			return true
		}
	}
	return false
}

func (r Role) CanModerate() bool {
	return r.Has(CapabilityModerate)
}

func (r Role) CanAdminister() bool {
	return r.Has(CapabilityAdminister)
}

// ParseRole maps a stored role string to a Role, defaulting to community.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleCommunity
}
