package models

type ParticipantRole string

const (
	RoleModerator ParticipantRole = "moderator"
	RoleVoter     ParticipantRole = "voter"
	RoleObserver  ParticipantRole = "observer"
)

type ParticipantStatus string

const (
	StatusConnected    ParticipantStatus = "connected"
	StatusDisconnected ParticipantStatus = "disconnected"
	StatusIdle         ParticipantStatus = "idle"
)

// JobRole classifies what a participant does on the team. It is
// informational only: the single place it matters is picking the default
// session role at join time (Admins join as observers).
type JobRole string

const (
	JobRoleAdmin     JobRole = "Admin"
	JobRoleProduct   JobRole = "Product"
	JobRoleDeveloper JobRole = "Developer"
	JobRoleQA        JobRole = "QA"
)

// User carries the identity resolved by the transport handshake.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL string  `json:"avatarUrl,omitempty"`
	JobRole   JobRole `json:"jobRole,omitempty"`
}

// Participant is a user inside a specific session.
type Participant struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	AvatarURL string            `json:"avatarUrl,omitempty"`
	JobRole   JobRole           `json:"jobRole"`
	Role      ParticipantRole   `json:"role"`
	Status    ParticipantStatus `json:"status"`
	HasVoted  bool              `json:"hasVoted"`
}

func NewParticipant(user User, role ParticipantRole) *Participant {
	return &Participant{
		ID:        user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		JobRole:   user.JobRole,
		Role:      role,
		Status:    StatusConnected,
		HasVoted:  false,
	}
}

func (p *Participant) IsModerator() bool {
	return p.Role == RoleModerator
}

func (p *Participant) IsObserver() bool {
	return p.Role == RoleObserver
}
